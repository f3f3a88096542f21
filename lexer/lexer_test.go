package lexer

import (
	"testing"

	"github.com/cloudcmds/polka/token"
	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := "6 1 + -2 *   dup abs input % / -"
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.INT, "6"},
		{token.INT, "1"},
		{token.PLUS, "+"},
		{token.INT, "-2"},
		{token.ASTERISK, "*"},
		{token.DUP, "dup"},
		{token.ABS, "abs"},
		{token.INPUT, "input"},
		{token.MOD, "%"},
		{token.SLASH, "/"},
		{token.MINUS, "-"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok := l.Next()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestSignedLiterals(t *testing.T) {
	// A sign immediately followed by digits is a literal, not an operator.
	l := New("+5 -5 + -")
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.INT, "+5"},
		{token.INT, "-5"},
		{token.PLUS, "+"},
		{token.MINUS, "-"},
		{token.EOF, ""},
	}
	for i, tt := range tests {
		tok := l.Next()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestIllegalTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"word", "foo"},
		{"float", "1.5"},
		{"double sign", "--3"},
		{"trailing junk", "12a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New(tt.input).Next()
			require.Equal(t, token.Type(token.ILLEGAL), tok.Type)
			require.Equal(t, tt.input, tok.Literal)
		})
	}
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", " ", "    ", "\t \n"} {
		l := New(input)
		tok := l.Next()
		require.Equal(t, token.Type(token.EOF), tok.Type)
		// EOF repeats once the input is exhausted.
		require.Equal(t, token.Type(token.EOF), l.Next().Type)
	}
}

func TestTokenize(t *testing.T) {
	tokens := New("1 2 +").Tokenize()
	require.Len(t, tokens, 3)
	require.Equal(t, token.Type(token.INT), tokens[0].Type)
	require.Equal(t, token.Type(token.INT), tokens[1].Type)
	require.Equal(t, token.Type(token.PLUS), tokens[2].Type)
}

func TestPositions(t *testing.T) {
	l := New("  12 +")
	tok := l.Next()
	require.Equal(t, 2, tok.StartPosition.Char)
	require.Equal(t, 3, tok.EndPosition.Char)
	require.Equal(t, 3, tok.StartPosition.ColumnNumber())
	tok = l.Next()
	require.Equal(t, 5, tok.StartPosition.Char)
	require.Equal(t, 5, tok.EndPosition.Char)
}
