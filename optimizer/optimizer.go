// Package optimizer implements constant folding over compiled statement
// trees.
//
// Optimization is a pure tree transformation: it returns a new tree sharing
// unmodified subtrees with the original and never changes observable
// behavior. Folding is conservative: constants are collapsed only when they
// are immediately consumed by a pure operation whose compile-time result is
// provably the same for every input stack.
package optimizer

import (
	"context"

	"github.com/cloudcmds/polka/stmt"
)

// Optimize rewrites a statement tree bottom-up, folding constant subtrees.
// Statements other than composites are already minimal and are returned
// unchanged.
func Optimize(s stmt.Statement) stmt.Statement {
	c, ok := s.(*stmt.Combine)
	if !ok {
		return s
	}
	left := Optimize(c.Left())
	right := Optimize(c.Right())

	// Folding is unsound when the right side needs inputs the left side
	// cannot supply from its compile-time-known outputs.
	if right.ArgumentsCount() > left.ResultsCount() {
		return c
	}
	if folded, ok := fold(left, right); ok {
		return folded
	}
	if left == c.Left() && right == c.Right() {
		return c
	}
	return stmt.NewCombine(left, right)
}

// fold collapses one composite whose result is known at compile time.
func fold(left, right stmt.Statement) (stmt.Statement, bool) {
	// Sequencing with the identity statement is the statement itself.
	if right.Type() == stmt.EMPTY {
		return left, true
	}
	if left.Type() == stmt.EMPTY {
		return right, true
	}
	switch right := right.(type) {
	case *stmt.Abs:
		if c, ok := left.(*stmt.Constant); ok {
			return evalConstant(right, c.Value())
		}
	case *stmt.Binary:
		if a, b, ok := constantPair(left); ok {
			return evalConstant(right, a.Value(), b.Value())
		}
	}
	return nil, false
}

// constantPair matches a composite that pushes exactly two constants.
func constantPair(s stmt.Statement) (a, b *stmt.Constant, ok bool) {
	c, isCombine := s.(*stmt.Combine)
	if !isCombine {
		return nil, nil, false
	}
	a, ok = c.Left().(*stmt.Constant)
	if !ok {
		return nil, nil, false
	}
	b, ok = c.Right().(*stmt.Constant)
	if !ok {
		return nil, nil, false
	}
	return a, b, true
}

// evalConstant applies a pure statement to compile-time-known operands and
// wraps the result in a new constant. Statements that fail at compile time,
// such as a division by zero, are left unfolded so the failure still
// surfaces when the tree is applied.
func evalConstant(s stmt.Statement, operands ...int32) (stmt.Statement, bool) {
	out, err := s.Apply(context.Background(), stmt.Stack(operands))
	if err != nil {
		return nil, false
	}
	value, ok := out.Top()
	if !ok {
		return nil, false
	}
	return stmt.NewConstant(value), true
}
