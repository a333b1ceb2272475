/*
File    : tacc/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "github.com/fatih/color"

// tokenColor maps a TokenType to the color its lexeme is printed in by
// StringColored. Keywords are bold cyan, identifiers white, literals
// green, operators yellow, punctuation and END_OF_LINE grey, and EOF
// and UNKNOWN bold red.
var tokenColor = map[TokenType]*color.Color{
	DEFINE:      color.New(color.FgCyan, color.Bold),
	FUNCTION:    color.New(color.FgCyan, color.Bold),
	IF:          color.New(color.FgCyan, color.Bold),
	ELSE:        color.New(color.FgCyan, color.Bold),
	WHILE:       color.New(color.FgCyan, color.Bold),
	RETURN:      color.New(color.FgCyan, color.Bold),
	IDENTIFIER:  color.New(color.FgWhite),
	NUMBER:      color.New(color.FgGreen),
	STRING:      color.New(color.FgGreen),
	OPERATOR:    color.New(color.FgYellow),
	COMPARISON:  color.New(color.FgYellow),
	LOGICAL:     color.New(color.FgYellow),
	PAREN_OPEN:  color.New(color.FgHiBlack),
	PAREN_CLOSE: color.New(color.FgHiBlack),
	BRACE_OPEN:  color.New(color.FgHiBlack),
	BRACE_CLOSE: color.New(color.FgHiBlack),
	COMMA:       color.New(color.FgHiBlack),
	END_OF_LINE: color.New(color.FgHiBlack),
	EOF:         color.New(color.FgRed, color.Bold),
	UNKNOWN:     color.New(color.FgRed, color.Bold),
}

// StringColored renders a token the same way the original driver's
// print_token_colored colorized its dump: the lexeme in a kind-specific
// color, followed by the faint kind name. Since their lexeme is a
// newline or empty, END_OF_LINE renders as "EOL" followed by its faint
// line number, and EOF as "EOF" alone.
func (t Token) StringColored() string {
	c, ok := tokenColor[t.Type]
	if !ok {
		c = color.New(color.Reset)
	}
	faint := color.New(color.Faint)
	switch t.Type {
	case END_OF_LINE:
		return c.Sprint("EOL") + faint.Sprintf(" (line %d)", t.Line)
	case EOF:
		return c.Sprint("EOF")
	default:
		return c.Sprint(t.Lexeme) + faint.Sprintf(" (%s)", t.Type)
	}
}
