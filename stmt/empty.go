package stmt

import "context"

// Empty is the identity statement: it leaves the stack unchanged. Blank
// source compiles to Empty rather than failing.
type Empty struct{}

// NewEmpty creates an Empty statement.
func NewEmpty() *Empty {
	return &Empty{}
}

func (e *Empty) Type() Type { return EMPTY }

func (e *Empty) ArgumentsCount() int { return 0 }

func (e *Empty) ResultsCount() int { return 0 }

func (e *Empty) IsPure() bool { return true }

func (e *Empty) Apply(ctx context.Context, in Stack) (Stack, error) {
	return in.Clone(), nil
}

func (e *Empty) String() string {
	return ""
}
