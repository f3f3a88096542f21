// Package token defines the token types produced when lexing expression source.
package token

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char   int // byte offset of the token in the input
	Column int // 0-indexed column
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Token types
const (
	ABS      = "abs"
	ASTERISK = "*"
	DUP      = "dup"
	EOF      = "EOF"
	ILLEGAL  = "ILLEGAL"
	INPUT    = "input"
	INT      = "INT"
	MINUS    = "-"
	MOD      = "%"
	PLUS     = "+"
	SLASH    = "/"
)

// Operator keywords
var operators = map[string]Type{
	"%":     MOD,
	"*":     ASTERISK,
	"+":     PLUS,
	"-":     MINUS,
	"/":     SLASH,
	"abs":   ABS,
	"dup":   DUP,
	"input": INPUT,
}

// LookupOperator determines whether a word names an operator. Words that are
// neither integer literals nor operator keywords lex as ILLEGAL.
func LookupOperator(word string) (Type, bool) {
	tok, ok := operators[word]
	return tok, ok
}
