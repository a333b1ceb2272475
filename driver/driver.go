/*
File    : tacc/driver/driver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package driver runs the batch compiler-front-end pipeline over a
// source file: lex, parse, emit TAC, build the extracted-functions CFG
// view, and write
// or print each stage's output — the Go counterpart of the reference
// driver's main() (lex the whole file, dump tokens.json, print the
// colored token stream, parse, print the AST, then the CFG).
package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/tacc/ast"
	"github.com/akashmaji946/tacc/cfg"
	"github.com/akashmaji946/tacc/lexer"
	"github.com/akashmaji946/tacc/parser"
	"github.com/akashmaji946/tacc/perr"
	"github.com/akashmaji946/tacc/tac"
	"github.com/fatih/color"
)

var (
	stageColor = color.New(color.FgCyan, color.Bold)
	lineColor  = color.New(color.FgBlue)
)

const separator = "----------------------------------------------------------------"

// Options controls where each stage's output is written. The zero value
// skips both JSON dumps and writes everything else to os.Stdout; unlike
// the reference driver's fixed "./compiler-steps/" layout, the JSON
// paths are chosen by the caller.
type Options struct {
	Stdout        io.Writer
	TokensJSONOut string // path to write tokens.json; "" skips the file, "-" means Stdout
	ASTJSONOut    string // path to write ast.json; "" skips the file, "-" means Stdout
	Verbose       bool   // also print the colored token stream and indented AST tree
}

// Run executes the full pipeline against filename's contents, writing
// diagnostics to opts.Stdout (or os.Stdout if nil) and returning a
// non-nil error — a *perr.ParseError for a syntax failure, a plain
// error for anything else (file I/O, a malformed CFG) — for the
// caller to report and map to an exit code.
func Run(filename string, opts Options) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	w := opts.Stdout

	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("driver: could not read %s: %w", filename, err)
	}

	stageColor.Fprintln(w, "== lexing ==")
	tokens := lexer.New(string(src)).All()
	if opts.Verbose {
		for _, t := range tokens {
			fmt.Fprintln(w, t.StringColored())
		}
	}
	if err := writeTokensJSON(w, tokens, opts.TokensJSONOut); err != nil {
		return err
	}
	lineColor.Fprintln(w, separator)

	stageColor.Fprintln(w, "== parsing ==")
	root, err := parser.Parse(tokens, filename)
	if err != nil {
		if pe, ok := err.(*perr.ParseError); ok {
			perr.Report(pe)
		}
		return err
	}
	if opts.Verbose {
		ast.Print(w, root)
	}
	if err := writeASTJSON(w, root, opts.ASTJSONOut); err != nil {
		return err
	}
	lineColor.Fprintln(w, separator)

	stageColor.Fprintln(w, "== emitting three-address code ==")
	emitter := tac.NewEmitter()
	head := emitter.Emit(root)
	for _, instr := range tac.List(head) {
		fmt.Fprintln(w, instr)
	}
	lineColor.Fprintln(w, separator)

	stageColor.Fprintln(w, "== control-flow graph (extracted functions) ==")
	graph, err := cfg.ExtractFunctions(head)
	if err != nil {
		return fmt.Errorf("driver: %w", err)
	}
	printCFG(w, graph)

	return nil
}

// writeJSONOutput writes data to path, or to w if path is "-" —
// mirroring dump_tokens_json_file's filename-or-stdout convention.
func writeJSONOutput(w io.Writer, data []byte, path string) error {
	if path == "-" {
		_, err := fmt.Fprintln(w, string(data))
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func writeTokensJSON(w io.Writer, tokens []lexer.Token, path string) error {
	if path == "" {
		return nil
	}
	data, err := lexer.DumpTokensJSON(tokens)
	if err != nil {
		return fmt.Errorf("driver: encoding tokens.json: %w", err)
	}
	return writeJSONOutput(w, data, path)
}

func writeASTJSON(w io.Writer, root *ast.Block, path string) error {
	if path == "" {
		return nil
	}
	data, err := ast.ToJSON(root)
	if err != nil {
		return fmt.Errorf("driver: encoding ast.json: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err == nil {
		data = buf.Bytes()
	}
	return writeJSONOutput(w, data, path)
}

// printCFG mirrors the reference driver's print_cfg: a header with
// the block count, then each block's id/entry/exit flags followed by
// its instruction listing.
func printCFG(w io.Writer, graph *cfg.CFG) {
	fmt.Fprintf(w, "CFG with %d blocks:\n", len(graph.Blocks))
	for _, b := range graph.Blocks {
		fmt.Fprintf(w, "Block ID: %d, Entry: %t, Exit: %t\n", b.ID, b.IsEntry, b.IsExit)
		for _, instr := range b.Instructions {
			fmt.Fprintln(w, instr)
		}
		fmt.Fprintln(w)
	}
}
