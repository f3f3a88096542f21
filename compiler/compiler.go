// Package compiler turns Polish-notation source text into a statement tree.
//
// Compilation never fails: each token becomes a primitive statement, the
// primitives are folded left to right into one composite via stmt.NewCombine,
// unrecognized tokens are skipped, and blank source compiles to stmt.Empty.
package compiler

import (
	"github.com/cloudcmds/polka/lexer"
	"github.com/cloudcmds/polka/op"
	"github.com/cloudcmds/polka/stmt"
	"github.com/cloudcmds/polka/token"
)

// operatorStatements maps operator tokens to shared statement instances.
// The pure operator statements carry no state, so every compiled tree
// references these same instances.
var operatorStatements = map[token.Type]stmt.Statement{
	token.PLUS:     stmt.NewBinary(op.Add),
	token.MINUS:    stmt.NewBinary(op.Subtract),
	token.ASTERISK: stmt.NewBinary(op.Multiply),
	token.SLASH:    stmt.NewBinary(op.Divide),
	token.MOD:      stmt.NewBinary(op.Modulo),
	token.ABS:      stmt.NewAbs(),
	token.DUP:      stmt.NewDup(),
}

// Option is a configuration function for a Compiler.
type Option func(*Compiler)

// WithInput sets the input source used by compiled input statements.
func WithInput(source stmt.InputSource) Option {
	return func(c *Compiler) {
		c.source = source
	}
}

// Compiler compiles expression source into statement trees.
type Compiler struct {
	source stmt.InputSource

	// Shared by every input token compiled by this compiler, since they
	// all read from the same source.
	inputStmt *stmt.Input
}

// New creates a Compiler with the given options.
func New(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles the given source into a single statement. The statement
// for the first token seeds the fold; an expression with one token compiles
// to that token's primitive with no enclosing composite.
func (c *Compiler) Compile(source string) stmt.Statement {
	l := lexer.New(source)
	var ret stmt.Statement
	for {
		tok := l.Next()
		if tok.Type == token.EOF {
			break
		}
		s := c.statementFor(tok)
		if s == nil {
			continue
		}
		if ret == nil {
			ret = s
		} else {
			ret = stmt.NewCombine(ret, s)
		}
	}
	if ret == nil {
		return stmt.NewEmpty()
	}
	return ret
}

// statementFor returns the primitive statement for one token, or nil for
// unrecognized tokens, which are silently skipped by policy.
func (c *Compiler) statementFor(tok token.Token) stmt.Statement {
	switch tok.Type {
	case token.INT:
		return stmt.NewConstant(parseInt32(tok.Literal))
	case token.INPUT:
		if c.inputStmt == nil {
			c.inputStmt = stmt.NewInput(c.source)
		}
		return c.inputStmt
	case token.ILLEGAL:
		return nil
	default:
		return operatorStatements[tok.Type]
	}
}

// parseInt32 parses a literal matching [+-]?[0-9]+ with two's-complement
// wraparound, consistent with the arithmetic overflow policy. The lexer
// guarantees the literal's shape, so no error path exists.
func parseInt32(literal string) int32 {
	neg := false
	i := 0
	switch literal[0] {
	case '+':
		i = 1
	case '-':
		neg = true
		i = 1
	}
	var value int32
	for ; i < len(literal); i++ {
		value = value*10 + int32(literal[i]-'0')
	}
	if neg {
		value = -value
	}
	return value
}

// Compile is a convenience that compiles source with a one-off Compiler.
func Compile(source string, opts ...Option) stmt.Statement {
	return New(opts...).Compile(source)
}
