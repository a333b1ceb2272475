/*
File    : tacc/perr/perr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package perr reports parse errors with a source-line excerpt and a
// caret pointing at the offending column, colored the way the
// reference driver colors its own diagnostics.
package perr

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	headColor     = color.New(color.FgRed, color.Bold)
	expectedColor = color.New(color.FgYellow)
)

// ParseError is a single fatal parse failure: this language has no
// error recovery, so the parser stops at the first one.
type ParseError struct {
	Line     int
	Column   int
	Filename string
	Message  string
	Expected string
	Found    string
	Fatal    bool
}

// New builds a ParseError with Fatal set to true (the field stays so
// tests can clear it to construct a reporting-only value).
func New(line, column int, filename, message string) *ParseError {
	return &ParseError{Line: line, Column: column, Filename: filename, Message: message, Fatal: true}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
}

// sourceLine reads line n (1-indexed) out of filename, returning ""
// if the file can't be opened or doesn't have that many lines.
func sourceLine(filename string, n int) string {
	f, err := os.Open(filename)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 1; scanner.Scan(); i++ {
		if i == n {
			return scanner.Text()
		}
	}
	return ""
}

// caret renders the "^" marker under column, preserving tabs in the
// source line so the caret lines up under a proportional or tab-aware
// terminal the same way.
func caret(line string, column int) string {
	var b strings.Builder
	for i := 1; i < column; i++ {
		if i-1 < len(line) && line[i-1] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	return b.String()
}

// Report writes e to stderr in the reference parser's parse_error
// shape: a bold-red "file:line:col: parse error:" head line, the
// offending source line and a caret under the column (both indented
// four spaces), then yellow "Expected token:"/"Actual token  :" lines
// when present. e.Message is not printed here — it exists for Error()
// and for callers that log independently of this format.
func Report(e *ParseError) {
	headColor.Fprintf(os.Stderr, "%s:%d:%d: parse error:\n", e.Filename, e.Line, e.Column)

	line := sourceLine(e.Filename, e.Line)
	fmt.Fprintf(os.Stderr, "    %s\n", line)
	fmt.Fprintf(os.Stderr, "    %s\n", caret(line, e.Column))

	if e.Expected != "" {
		expectedColor.Fprint(os.Stderr, "    Expected token: ")
		fmt.Fprintln(os.Stderr, e.Expected)
	}
	if e.Found != "" {
		expectedColor.Fprint(os.Stderr, "    Actual token  : ")
		fmt.Fprintln(os.Stderr, e.Found)
	}
}
