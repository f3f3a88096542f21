package stmt

import (
	"context"

	"github.com/cloudcmds/polka/errz"
)

// Dup pushes a copy of the top value without popping it.
type Dup struct{}

// NewDup creates a Dup statement.
func NewDup() *Dup {
	return &Dup{}
}

func (d *Dup) Type() Type { return DUP }

func (d *Dup) ArgumentsCount() int { return 1 }

// ResultsCount is 2: the original top value plus its copy.
func (d *Dup) ResultsCount() int { return 2 }

func (d *Dup) IsPure() bool { return true }

func (d *Dup) Apply(ctx context.Context, in Stack) (Stack, error) {
	if len(in) < 1 {
		return nil, errz.Underflow("dup", 1, len(in))
	}
	return in.withTop(0, in[len(in)-1]), nil
}

func (d *Dup) String() string {
	return "dup"
}
