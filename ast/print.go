/*
File    : tacc/ast/print.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Print writes an indented tree dump of n to w, two spaces per level —
// the same shape as the reference driver's verbose tree printer, kept
// here as a supplemental debug view alongside the required JSON dump.
func Print(w io.Writer, n Node) {
	printIndent(w, n, 0)
}

func printIndent(w io.Writer, n Node, level int) {
	if n == nil {
		return
	}
	pad := strings.Repeat("  ", level)
	switch node := n.(type) {
	case *Block:
		fmt.Fprintf(w, "%sBlock:\n", pad)
		for _, stmt := range node.Statements {
			printIndent(w, stmt, level+1)
		}
	case *Variable:
		fmt.Fprintf(w, "%sVariable: %s\n", pad, node.Name)
	case *Literal:
		fmt.Fprintf(w, "%sIntLiteral: %d\n", pad, node.Value)
	case *BinaryOp:
		fmt.Fprintf(w, "%sBinaryOp: %s\n", pad, node.Op)
		printIndent(w, node.Left, level+1)
		printIndent(w, node.Right, level+1)
	case *UnaryOp:
		fmt.Fprintf(w, "%sUnaryOp: %s\n", pad, node.Op)
		printIndent(w, node.Operand, level+1)
	case *Declaration:
		fmt.Fprintf(w, "%sDeclaration: %s\n", pad, node.Name)
		printIndent(w, node.Value, level+1)
	case *Assignment:
		fmt.Fprintf(w, "%sAssignment: %s\n", pad, node.Name)
		printIndent(w, node.Value, level+1)
	case *Call:
		fmt.Fprintf(w, "%sCall: %s\n", pad, node.Callee)
		fmt.Fprintf(w, "%s  Arguments:\n", pad)
		for _, arg := range node.Args.Args {
			printIndent(w, arg, level+2)
		}
	case *If:
		fmt.Fprintf(w, "%sIfStatement:\n", pad)
		fmt.Fprintf(w, "%s  Condition:\n", pad)
		printIndent(w, node.Condition, level+2)
		fmt.Fprintf(w, "%s  ThenBlock:\n", pad)
		printIndent(w, node.Then, level+2)
		if node.Else != nil {
			fmt.Fprintf(w, "%s  ElseBlock:\n", pad)
			printIndent(w, node.Else, level+2)
		}
	case *While:
		fmt.Fprintf(w, "%sWhileLoop:\n", pad)
		fmt.Fprintf(w, "%s  Condition:\n", pad)
		printIndent(w, node.Condition, level+2)
		fmt.Fprintf(w, "%s  Body:\n", pad)
		printIndent(w, node.Body, level+2)
	case *Return:
		fmt.Fprintf(w, "%sReturnStatement:\n", pad)
		printIndent(w, node.Expr, level+1)
	case *Function:
		fmt.Fprintf(w, "%sFunction: %s\n", pad, node.Name)
		fmt.Fprintf(w, "%s  Parameters:\n", pad)
		for _, p := range node.Params.Params {
			printIndent(w, p, level+2)
		}
		fmt.Fprintf(w, "%s  Body:\n", pad)
		printIndent(w, node.Body, level+2)
	default:
		fmt.Fprintf(w, "%s<unknown node %T>\n", pad, n)
	}
}

// PrintColored is Print's colored counterpart, coloring node labels the
// way the reference driver's print_token_colored colorizes its own
// debug dumps. Only Block, Variable, IntLiteral and BinaryOp labels are
// colored; other nodes fall back to Print's plain output. The driver's
// verbose mode uses Print, not this function.
func PrintColored(w io.Writer, n Node) {
	kw := color.New(color.FgCyan, color.Bold)
	printColoredIndent(w, n, 0, kw)
}

func printColoredIndent(w io.Writer, n Node, level int, kw *color.Color) {
	if n == nil {
		return
	}
	pad := strings.Repeat("  ", level)
	label := func(name string) string { return pad + kw.Sprint(name) }
	switch node := n.(type) {
	case *Block:
		fmt.Fprintf(w, "%s:\n", label("Block"))
		for _, stmt := range node.Statements {
			printColoredIndent(w, stmt, level+1, kw)
		}
	case *Variable:
		fmt.Fprintf(w, "%s: %s\n", label("Variable"), node.Name)
	case *Literal:
		fmt.Fprintf(w, "%s: %d\n", label("IntLiteral"), node.Value)
	case *BinaryOp:
		fmt.Fprintf(w, "%s: %s\n", label("BinaryOp"), node.Op)
		printColoredIndent(w, node.Left, level+1, kw)
		printColoredIndent(w, node.Right, level+1, kw)
	default:
		printIndent(w, n, level)
	}
}

// Every node struct implements json.Marshaler, since its fields don't
// map directly onto json.Marshal's struct-tag reflection (they hold
// other Nodes behind an interface, or their JSON key differs from the
// Go field name, or a "type" key has to be added).
//
// Each MarshalJSON below builds the exact shape the reference driver's
// print_json_fp emits: {"type": "<Kind>", ...fields}.

func (n *Literal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value int    `json:"value"`
	}{"IntLiteral", n.Value})
}

func (n *Variable) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{"Variable", n.Name})
}

func (n *UnaryOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Op      UnOp   `json:"op"`
		Operand Node   `json:"operand"`
	}{"UnaryOp", n.Op, n.Operand})
}

func (n *BinaryOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Op    BinOp  `json:"op"`
		Left  Node   `json:"left"`
		Right Node   `json:"right"`
	}{"BinaryOp", n.Op, n.Left, n.Right})
}

func (n *Block) MarshalJSON() ([]byte, error) {
	stmts := n.Statements
	if stmts == nil {
		stmts = []Node{}
	}
	return json.Marshal(struct {
		Type  string `json:"type"`
		Stmts []Node `json:"stmts"`
	}{"Block", stmts})
}

func (n *If) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Cond Node   `json:"cond"`
		Then *Block `json:"then"`
		Else *Block `json:"else,omitempty"`
	}{"If", n.Condition, n.Then, n.Else})
}

func (n *While) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Cond Node   `json:"cond"`
		Body *Block `json:"body"`
	}{"While", n.Condition, n.Body})
}

func (n *Declaration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Var   string `json:"var"`
		Value Node   `json:"value"`
	}{"Declaration", n.Name, n.Value})
}

func (n *Assignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Var   string `json:"var"`
		Value Node   `json:"value"`
	}{"Assignment", n.Name, n.Value})
}

func (n *Return) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Expr Node   `json:"expr"`
	}{"Return", n.Expr})
}

func (n *Call) MarshalJSON() ([]byte, error) {
	args := n.Args.Args
	if args == nil {
		args = []Node{}
	}
	return json.Marshal(struct {
		Type   string `json:"type"`
		Callee string `json:"callee"`
		Args   []Node `json:"args"`
	}{"Call", n.Callee, args})
}

func (n *ParamList) MarshalJSON() ([]byte, error) {
	params := make([]Node, len(n.Params))
	for i, p := range n.Params {
		params[i] = p
	}
	return json.Marshal(params)
}

func (n *ArgList) MarshalJSON() ([]byte, error) {
	args := n.Args
	if args == nil {
		args = []Node{}
	}
	return json.Marshal(args)
}

func (n *Function) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string      `json:"type"`
		Name   string      `json:"name"`
		Params []*Variable `json:"params"`
		Body   *Block      `json:"body"`
	}{"Function", n.Name, n.Params.Params, n.Body})
}

// ToJSON renders n as the exact JSON document spec.md's external
// interface requires.
func ToJSON(n Node) ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n)
}
