// Package polka compiles and evaluates Polish-notation stack expressions.
//
// An expression is a whitespace-separated sequence of integer literals and
// operator keywords (+ - * / % abs input dup). Compiling an expression
// yields a stmt.Statement that can be applied to any number of stacks:
//
//	s := polka.Compile("3 dup *")
//	out, err := s.Apply(ctx, stmt.Stack{})
//	// out is [9]
//
// Compilation always succeeds, for any input string: unrecognized tokens
// are skipped and blank source compiles to the identity statement.
package polka

import (
	"context"

	"github.com/cloudcmds/polka/compiler"
	"github.com/cloudcmds/polka/optimizer"
	"github.com/cloudcmds/polka/stmt"
)

// Option configures compilation or evaluation.
type Option func(*options)

type options struct {
	input      stmt.InputSource
	noOptimize bool
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithInput provides the input source read by input statements. Without
// this option, applying an expression containing "input" fails with an
// input error.
func WithInput(source stmt.InputSource) Option {
	return func(o *options) {
		o.input = source
	}
}

// WithoutOptimization disables the constant folding pass, returning the
// statement tree exactly as compiled.
func WithoutOptimization() Option {
	return func(o *options) {
		o.noOptimize = true
	}
}

// Compile compiles an expression into a statement, running the constant
// folding pass unless disabled.
func Compile(source string, opts ...Option) stmt.Statement {
	o := collectOptions(opts...)
	var compilerOpts []compiler.Option
	if o.input != nil {
		compilerOpts = append(compilerOpts, compiler.WithInput(o.input))
	}
	s := compiler.Compile(source, compilerOpts...)
	if o.noOptimize {
		return s
	}
	return optimizer.Optimize(s)
}

// Eval compiles an expression and applies it to the given stack, returning
// the resulting stack bottom-to-top. The given stack is never mutated.
func Eval(ctx context.Context, source string, stack stmt.Stack, opts ...Option) (stmt.Stack, error) {
	return Compile(source, opts...).Apply(ctx, stack)
}
