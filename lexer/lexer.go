/*
File    : tacc/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns tacc source text into a stream of Tokens using a
// fixed table of longest-match regex rules, tried in priority order at
// the current cursor position.
package lexer

import (
	"fmt"
	"os"
	"regexp"
)

// rule pairs a compiled pattern with the token kind it produces. Every
// pattern is anchored at the start of the remaining input so regexp's
// FindStringIndex effectively performs "match here, not search ahead".
type rule struct {
	re   *regexp.Regexp
	kind TokenType
}

// rules is tried in order; the first to match at the cursor wins. This
// is what makes two-character operators like "==" and "<=" win over
// their one-character prefixes: COMPARISON and LOGICAL are tried
// before the catch-all OPERATOR rule.
var rules []rule

// whitespace matches the run of horizontal whitespace skipped before
// every token attempt. Newlines are deliberately excluded: the grammar
// treats '\n' as a significant END_OF_LINE token (statements are
// terminated by it, and a run of blank lines parses as a sequence of
// empty_line statements), so folding it into the generic skip would
// make END_OF_LINE unreachable and break every statement terminator.
var whitespace *regexp.Regexp

// compilePatterns compiles every lexer regex once. A failure here is
// fatal at process startup, mirroring the reference lexer's regcomp
// error path (it also exits on compile failure rather than limping on
// with a partially built rule table).
func compilePatterns() {
	must := func(pattern string) *regexp.Regexp {
		re, err := regexp.Compile("^(?:" + pattern + ")")
		if err != nil {
			fmt.Fprintf(os.Stderr, "lexer: failed to compile regex pattern %q: %v\n", pattern, err)
			os.Exit(1)
		}
		return re
	}

	whitespace = must(`[ \t\r]+`)

	rules = []rule{
		{must(`\(`), PAREN_OPEN},
		{must(`\)`), PAREN_CLOSE},
		{must(`\{`), BRACE_OPEN},
		{must(`\}`), BRACE_CLOSE},
		{must(`,`), COMMA},
		{must(`==|!=|<=|>=|<|>`), COMPARISON},
		{must(`&&|\|\|`), LOGICAL},
		{must(`[A-Za-z_][A-Za-z0-9_]*`), IDENTIFIER},
		{must(`[0-9]+`), NUMBER},
		{must(`"(?:[^"\\]|\\.)*"`), STRING},
		{must(`[+\-*/=!]`), OPERATOR},
		{must(`\n`), END_OF_LINE},
	}
}

func init() {
	compilePatterns()
}

// Lexer scans a source buffer and yields Tokens one at a time. It is a
// thin cursor over the original string; no copy of the source is made
// beyond the lexemes extracted into Tokens.
type Lexer struct {
	src    string
	pos    int
	line   int
	column int
}

// New creates a Lexer positioned at the start of src, line 1 column 1.
func New(src string) *Lexer {
	return &Lexer{src: src, pos: 0, line: 1, column: 1}
}

// advance moves the cursor forward by n bytes, updating line/column.
// Column resets to 1 on every '\n' crossed, matching the contract in
// spec.md §4.1.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.src[l.pos+i] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
	l.pos += n
}

// Next returns the next token in the stream, or an EOF token once the
// buffer is exhausted. Lexing never fails: a byte matching no rule is
// returned as a single-character UNKNOWN token.
func (l *Lexer) Next() Token {
	if m := whitespace.FindStringIndex(l.src[l.pos:]); m != nil {
		l.advance(m[1])
	}

	if l.pos >= len(l.src) {
		return NewTokenAt(EOF, "", l.line, l.column)
	}

	line, column := l.line, l.column
	rest := l.src[l.pos:]

	for _, r := range rules {
		loc := r.re.FindStringIndex(rest)
		if loc == nil {
			continue
		}
		lexeme := rest[:loc[1]]
		kind := r.kind
		if kind == IDENTIFIER {
			kind = classifyIdentifier(lexeme)
		}
		l.advance(len(lexeme))
		return NewTokenAt(kind, lexeme, line, column)
	}

	unknown := rest[:1]
	l.advance(1)
	return NewTokenAt(UNKNOWN, unknown, line, column)
}

// All drains the lexer into a slice, including the trailing EOF. Handy
// for tests and for the CLI driver's token dump.
func (l *Lexer) All() []Token {
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}
