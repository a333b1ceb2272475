/*
File    : tacc/cmd/tacc/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for tacc, the toy-language compiler
front end.

Usage:

	tacc                 Start the interactive REPL
	tacc <path>          Run the batch pipeline over a source file
	tacc --help          Display help
	tacc --version       Display version information
*/
package main

import (
	"os"

	"github.com/akashmaji946/tacc/driver"
	"github.com/akashmaji946/tacc/perr"
	"github.com/akashmaji946/tacc/repl"
	"github.com/fatih/color"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LICENCE = "MIT"
	PROMPT  = "tacc >>> "
	LINE    = "----------------------------------------------------------------"
)

var BANNER = `
 ▄▄▄▄▄▄   ▄▄▄       ▄████▄   ▄████▄
  █  ▀  ▒████▄    ▒██▀ ▀█  ▒██▀ ▀█
  █    ▒██  ▀█▄  ▒▓█    ▄ ▒▓█    ▄
▓ █    ░██▄▄▄▄██ ▒▓▓▄ ▄██▒▒▓▓▄ ▄██▒
▒▒█▒   ▓█   ▓██▒▒ ▓███▀ ░▒ ▓███▀ ░
░▒ ▒▓ ▒ ▒▒   ▓▒█░░ ░▒ ▒  ░░ ░▒ ▒  ░
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		default:
			runFile(arg)
		}
		return
	}

	repler := repl.New(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("tacc - a toy-language compiler front end")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  tacc                 Start the interactive REPL")
	yellowColor.Println("  tacc <path-to-file>  Run the batch pipeline over a source file")
	yellowColor.Println("  tacc --help          Display this help message")
	yellowColor.Println("  tacc --version       Display version information")
	cyanColor.Println("")
	cyanColor.Println("PIPELINE STAGES:")
	yellowColor.Println("  lexing -> parsing -> three-address code -> control-flow graph")
}

func showVersion() {
	cyanColor.Println("tacc - a toy-language compiler front end")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile executes the batch pipeline over filename, writing tokens.json
// and ast.json into the current working directory and every stage's
// output to stdout.
func runFile(filename string) {
	opts := driver.Options{
		Stdout:        os.Stdout,
		TokensJSONOut: "tokens.json",
		ASTJSONOut:    "ast.json",
		Verbose:       true,
	}

	if err := driver.Run(filename, opts); err != nil {
		if _, ok := err.(*perr.ParseError); ok {
			// already reported to stderr by driver.Run via perr.Report
			os.Exit(1)
		}
		redColor.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}
