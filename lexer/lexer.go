// Package lexer provides a lazy word lexer for expression source code.
//
// The expression language is whitespace-separated: every maximal run of
// non-space bytes is one word. A word that matches the integer literal
// grammar [+-]?[0-9]+ lexes as INT; otherwise it is looked up verbatim in
// the operator table; anything else lexes as ILLEGAL. ILLEGAL is not an
// error: the compiler skips such tokens by policy.
package lexer

import (
	"github.com/cloudcmds/polka/token"
)

// Lexer scans an input string and produces tokens on demand.
type Lexer struct {
	input string
	pos   int
}

// New creates a Lexer for the given input string.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token in the input. After the input is exhausted,
// every call returns an EOF token.
func (l *Lexer) Next() token.Token {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		pos := token.Position{Char: l.pos, Column: l.pos}
		return token.Token{Type: token.EOF, StartPosition: pos, EndPosition: pos}
	}
	start := l.pos
	for l.pos < len(l.input) && !isWhitespace(l.input[l.pos]) {
		l.pos++
	}
	word := l.input[start:l.pos]
	tok := token.Token{
		Literal:       word,
		StartPosition: token.Position{Char: start, Column: start},
		EndPosition:   token.Position{Char: l.pos - 1, Column: l.pos - 1},
	}
	switch {
	case isIntegerLiteral(word):
		tok.Type = token.INT
	default:
		if opType, ok := token.LookupOperator(word); ok {
			tok.Type = opType
		} else {
			tok.Type = token.ILLEGAL
		}
	}
	return tok
}

// Tokenize returns all remaining tokens in the input, not including EOF.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.Next()
		if tok.Type == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isWhitespace(l.input[l.pos]) {
		l.pos++
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isIntegerLiteral reports whether a word matches [+-]?[0-9]+. A sign
// prefix belongs to the literal, so "-5" is the constant negative five
// rather than a subtraction followed by an operand.
func isIntegerLiteral(word string) bool {
	if word == "" {
		return false
	}
	if word[0] == '+' || word[0] == '-' {
		word = word[1:]
	}
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !isDigit(word[i]) {
			return false
		}
	}
	return true
}
