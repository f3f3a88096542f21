package stmt

import (
	"context"
	"math"

	"github.com/cloudcmds/polka/errz"
)

// Abs pops one value and pushes its absolute value.
type Abs struct{}

// NewAbs creates an Abs statement.
func NewAbs() *Abs {
	return &Abs{}
}

func (a *Abs) Type() Type { return ABS }

func (a *Abs) ArgumentsCount() int { return 1 }

func (a *Abs) ResultsCount() int { return 1 }

func (a *Abs) IsPure() bool { return true }

func (a *Abs) Apply(ctx context.Context, in Stack) (Stack, error) {
	if len(in) < 1 {
		return nil, errz.Underflow("abs", 1, len(in))
	}
	value := in[len(in)-1]
	if value < 0 && value != math.MinInt32 {
		// abs(MinInt32) wraps back to MinInt32 in two's complement.
		value = -value
	}
	return in.withTop(1, value), nil
}

func (a *Abs) String() string {
	return "abs"
}
