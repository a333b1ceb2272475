/*
File    : tacc/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `def x = 1 + 2` + "\n",
			Expected: []Token{
				NewToken(DEFINE, "def"),
				NewToken(IDENTIFIER, "x"),
				NewToken(OPERATOR, "="),
				NewToken(NUMBER, "1"),
				NewToken(OPERATOR, "+"),
				NewToken(NUMBER, "2"),
				NewToken(END_OF_LINE, "\n"),
				NewToken(EOF, ""),
			},
		},
		{
			Input: `a == b != c <= d >= e < f > g`,
			Expected: []Token{
				NewToken(IDENTIFIER, "a"),
				NewToken(COMPARISON, "=="),
				NewToken(IDENTIFIER, "b"),
				NewToken(COMPARISON, "!="),
				NewToken(IDENTIFIER, "c"),
				NewToken(COMPARISON, "<="),
				NewToken(IDENTIFIER, "d"),
				NewToken(COMPARISON, ">="),
				NewToken(IDENTIFIER, "e"),
				NewToken(COMPARISON, "<"),
				NewToken(IDENTIFIER, "f"),
				NewToken(COMPARISON, ">"),
				NewToken(IDENTIFIER, "g"),
				NewToken(EOF, ""),
			},
		},
		{
			Input: `a && b || c`,
			Expected: []Token{
				NewToken(IDENTIFIER, "a"),
				NewToken(LOGICAL, "&&"),
				NewToken(IDENTIFIER, "b"),
				NewToken(LOGICAL, "||"),
				NewToken(IDENTIFIER, "c"),
				NewToken(EOF, ""),
			},
		},
		{
			Input: `fn add(a, b) { return a + b }`,
			Expected: []Token{
				NewToken(FUNCTION, "fn"),
				NewToken(IDENTIFIER, "add"),
				NewToken(PAREN_OPEN, "("),
				NewToken(IDENTIFIER, "a"),
				NewToken(COMMA, ","),
				NewToken(IDENTIFIER, "b"),
				NewToken(PAREN_CLOSE, ")"),
				NewToken(BRACE_OPEN, "{"),
				NewToken(RETURN, "return"),
				NewToken(IDENTIFIER, "a"),
				NewToken(OPERATOR, "+"),
				NewToken(IDENTIFIER, "b"),
				NewToken(BRACE_CLOSE, "}"),
				NewToken(EOF, ""),
			},
		},
		{
			Input: `if x else while y`,
			Expected: []Token{
				NewToken(IF, "if"),
				NewToken(IDENTIFIER, "x"),
				NewToken(ELSE, "else"),
				NewToken(WHILE, "while"),
				NewToken(IDENTIFIER, "y"),
				NewToken(EOF, ""),
			},
		},
		{
			Input: `"hello world"`,
			Expected: []Token{
				NewToken(STRING, `"hello world"`),
				NewToken(EOF, ""),
			},
		},
		{
			Input: "def x = 1\n\ndef y = 2\n",
			Expected: []Token{
				NewToken(DEFINE, "def"),
				NewToken(IDENTIFIER, "x"),
				NewToken(OPERATOR, "="),
				NewToken(NUMBER, "1"),
				NewToken(END_OF_LINE, "\n"),
				NewToken(END_OF_LINE, "\n"),
				NewToken(DEFINE, "def"),
				NewToken(IDENTIFIER, "y"),
				NewToken(OPERATOR, "="),
				NewToken(NUMBER, "2"),
				NewToken(END_OF_LINE, "\n"),
				NewToken(EOF, ""),
			},
		},
		{
			Input: `@`,
			Expected: []Token{
				NewToken(UNKNOWN, "@"),
				NewToken(EOF, ""),
			},
		},
	}

	for _, test := range tests {
		lex := New(test.Input)
		got := lex.All()

		require := assert.New(t)
		require.Equal(len(test.Expected), len(got), "token count mismatch for input %q", test.Input)
		for i, want := range test.Expected {
			if i >= len(got) {
				break
			}
			require.Equal(want.Type, got[i].Type, "kind mismatch at token %d for input %q", i, test.Input)
			require.Equal(want.Lexeme, got[i].Lexeme, "lexeme mismatch at token %d for input %q", i, test.Input)
		}
	}
}

func TestLexer_ColumnTracking(t *testing.T) {
	lex := New("ab cd")
	first := lex.Next()
	assert.Equal(t, 1, first.Line)
	assert.Equal(t, 1, first.Column)

	second := lex.Next()
	assert.Equal(t, 1, second.Line)
	assert.Equal(t, 4, second.Column)
}

func TestLexer_LineTracking(t *testing.T) {
	lex := New("a\nb")
	a := lex.Next()
	eol := lex.Next()
	b := lex.Next()

	assert.Equal(t, 1, a.Line)
	assert.Equal(t, END_OF_LINE, eol.Type)
	assert.Equal(t, 1, eol.Line)
	assert.Equal(t, 2, b.Line)
	assert.Equal(t, 1, b.Column)
}

func TestLexer_LongestMatchWinsOverPrefix(t *testing.T) {
	lex := New("a <= b")
	_ = lex.Next()
	op := lex.Next()
	assert.Equal(t, COMPARISON, op.Type)
	assert.Equal(t, "<=", op.Lexeme)
}

func TestClassifyIdentifier_KeywordsAndPlainNames(t *testing.T) {
	assert.Equal(t, WHILE, classifyIdentifier("while"))
	assert.Equal(t, DEFINE, classifyIdentifier("def"))
	assert.Equal(t, FUNCTION, classifyIdentifier("fn"))
	assert.Equal(t, IDENTIFIER, classifyIdentifier("whileLoop"))
	assert.Equal(t, IDENTIFIER, classifyIdentifier("x"))
}
