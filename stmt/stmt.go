// Package stmt provides the statement types produced by compiling
// Polish-notation stack expressions.
//
// A Statement is a unit of stack-to-stack computation with statically known
// arity and purity. External users will often type assert a stmt.Statement
// to a specific statement type, such as *stmt.Constant.
//
// For example:
//
//	switch s := s.(type) {
//	case *stmt.Constant:
//		// do something with s.Value()
//	case *stmt.Combine:
//		// recurse into s.Left() and s.Right()
//	}
//
// The Type() method of each statement may also be used to get a string
// name of the statement type, such as "constant" or "combine".
//
// Statements are immutable once constructed and the same instance may be
// referenced by any number of composite trees, so a compiled tree is safely
// reusable for any number of Apply calls.
package stmt

import (
	"context"
	"fmt"
)

// Type of a statement as a string.
type Type string

// Type constants
const (
	ABS      Type = "abs"
	BINARY   Type = "binary"
	COMBINE  Type = "combine"
	CONSTANT Type = "constant"
	DUP      Type = "dup"
	EMPTY    Type = "empty"
	INPUT    Type = "input"
)

// Statement is the interface that all statement types must implement.
type Statement interface {
	// Type of the statement.
	Type() Type

	// ArgumentsCount is the minimum stack depth required before Apply is safe.
	ArgumentsCount() int

	// ResultsCount is the net stack depth contributed by Apply.
	ResultsCount() int

	// IsPure reports whether this statement and its entire subtree never
	// read from the input source.
	IsPure() bool

	// Apply transforms a stack and returns the result. The given stack is
	// never mutated. Applying a statement to a stack shallower than its
	// arguments count fails with a precondition violation.
	Apply(ctx context.Context, in Stack) (Stack, error)

	// String returns a source-form rendering of the statement.
	fmt.Stringer
}
