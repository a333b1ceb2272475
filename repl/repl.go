/*
File    : tacc/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements an interactive Read-Eval-Print Loop for tacc.
Unlike a language interpreter's REPL, there is nothing to evaluate
here: each line is lexed, parsed, and lowered to TAC, and every stage's
output is printed — this is a manual-testing surface for the pipeline,
not a calculator.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/tacc/ast"
	"github.com/akashmaji946/tacc/lexer"
	"github.com/akashmaji946/tacc/parser"
	"github.com/akashmaji946/tacc/perr"
	"github.com/akashmaji946/tacc/tac"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a one-line-at-a-time front end: it lexes, parses, and emits
// TAC for each line the user enters, printing each stage's output,
// and never accumulates state across lines (there is no evaluator
// environment to carry forward).
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner, version, author, line
// separator, license, and prompt.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to tacc!")
	cyanColor.Fprintf(writer, "%s\n", "Type a line of source and press enter to see its tokens, AST, and TAC.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop, reading lines via readline (history and
// line editing) until '.exit' or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.execute(writer, line)
	}
}

// execute lexes, parses, and emits TAC for a single line, printing
// each stage or the first fatal error, then returning control to the
// prompt — there is no panic recovery here because nothing in this
// pipeline panics on malformed input; every failure path returns an
// error value instead.
func (r *Repl) execute(writer io.Writer, line string) {
	tokens := lexer.New(line + "\n").All()
	for _, t := range tokens {
		if t.Type == lexer.EOF {
			continue
		}
		blueColor.Fprintf(writer, "%s\n", t.StringColored())
	}

	root, err := parser.Parse(tokens, "<repl>")
	if err != nil {
		if pe, ok := err.(*perr.ParseError); ok {
			perr.Report(pe)
		} else {
			redColor.Fprintf(writer, "%v\n", err)
		}
		return
	}

	ast.Print(writer, root)

	emitter := tac.NewEmitter()
	head := emitter.Emit(root)
	for _, instr := range tac.List(head) {
		yellowColor.Fprintf(writer, "%s\n", instr)
	}
}
