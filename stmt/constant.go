package stmt

import (
	"context"
	"strconv"
)

// Constant pushes a fixed value onto the stack.
type Constant struct {
	value int32
}

// NewConstant creates a Constant statement carrying the given value.
func NewConstant(value int32) *Constant {
	return &Constant{value: value}
}

// Value returns the value pushed by this statement.
func (c *Constant) Value() int32 {
	return c.value
}

func (c *Constant) Type() Type { return CONSTANT }

func (c *Constant) ArgumentsCount() int { return 0 }

func (c *Constant) ResultsCount() int { return 1 }

func (c *Constant) IsPure() bool { return true }

func (c *Constant) Apply(ctx context.Context, in Stack) (Stack, error) {
	return in.withTop(0, c.value), nil
}

func (c *Constant) String() string {
	return strconv.FormatInt(int64(c.value), 10)
}
