package stmt

import (
	"context"
	"strings"
)

// Combine sequences two statements: applying a Combine applies the left
// statement and then applies the right statement to its result.
//
// Its arity is derived from the children without any stack simulation:
//
//	arguments = l.arguments + max(r.arguments - l.results, 0)
//	results   = r.results + max(l.results - r.arguments, 0)
//
// The composite needs the left side's own inputs plus whatever the right
// side requires that the left side does not produce, and yields the right
// side's outputs plus any left-side outputs the right side does not consume.
// The derivation is associative, so any grouping of the same sequence of
// statements reports the same arity.
type Combine struct {
	left      Statement
	right     Statement
	arguments int
	results   int
	pure      bool
}

// NewCombine creates the sequential composition of two statements. The
// children are referenced, never copied, so a single primitive instance may
// be shared by many composites.
func NewCombine(left, right Statement) *Combine {
	return &Combine{
		left:      left,
		right:     right,
		arguments: left.ArgumentsCount() + max(right.ArgumentsCount()-left.ResultsCount(), 0),
		results:   right.ResultsCount() + max(left.ResultsCount()-right.ArgumentsCount(), 0),
		pure:      left.IsPure() && right.IsPure(),
	}
}

// Left returns the statement applied first.
func (c *Combine) Left() Statement {
	return c.left
}

// Right returns the statement applied second.
func (c *Combine) Right() Statement {
	return c.right
}

func (c *Combine) Type() Type { return COMBINE }

func (c *Combine) ArgumentsCount() int { return c.arguments }

func (c *Combine) ResultsCount() int { return c.results }

func (c *Combine) IsPure() bool { return c.pure }

func (c *Combine) Apply(ctx context.Context, in Stack) (Stack, error) {
	mid, err := c.left.Apply(ctx, in)
	if err != nil {
		return nil, err
	}
	return c.right.Apply(ctx, mid)
}

// String renders the composite in source form, left to right.
func (c *Combine) String() string {
	left := c.left.String()
	right := c.right.String()
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	var b strings.Builder
	b.WriteString(left)
	b.WriteString(" ")
	b.WriteString(right)
	return b.String()
}
