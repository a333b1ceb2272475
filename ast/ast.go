/*
File    : tacc/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the abstract syntax tree produced by the parser.
// Each node kind is its own Go struct implementing the Node interface;
// there is no single tagged-union node type the way the C original
// represents a node as one struct with a type tag and a union of
// payloads. A Block's statements, an If's branches, a Function's body
// — all are held directly as typed fields, never behind a void*-style
// escape hatch, so a misused node kind is a compile error here instead
// of a runtime union-read-the-wrong-field bug.
package ast

import "github.com/akashmaji946/tacc/lexer"

// BinOp identifies the operator of a BinaryOp node.
type BinOp string

const (
	OpAdd BinOp = "+"
	OpSub BinOp = "-"
	OpMul BinOp = "*"
	OpDiv BinOp = "/"
	OpLt  BinOp = "<"
	OpGt  BinOp = ">"
	OpLeq BinOp = "<="
	OpGeq BinOp = ">="
	OpEq  BinOp = "=="
	OpNeq BinOp = "!="
	OpAnd BinOp = "&&"
	OpOr  BinOp = "||"
)

// UnOp identifies the operator of a UnaryOp node.
type UnOp string

const (
	OpNeg UnOp = "-"
	OpNot UnOp = "!"
)

// Node is implemented by every AST node. Pos reports the token that
// introduced the node, used for error messages and debug dumps.
type Node interface {
	Pos() lexer.Token
	node()
}

// base carries the introducing token and gives every concrete node
// type its node() marker via embedding, the same way every expression
// node in the teacher embeds a shared token field.
type base struct {
	Token lexer.Token
}

func (b base) Pos() lexer.Token { return b.Token }
func (base) node()              {}

// Literal is an integer constant: 42, 0, -15 (the unary minus is its
// own UnaryOp node; Literal itself never holds a sign).
type Literal struct {
	base
	Value int
}

// Variable is a bare identifier used as an expression: x, count.
type Variable struct {
	base
	Name string
}

// UnaryOp is a prefix operator applied to a single operand: -x, !done.
type UnaryOp struct {
	base
	Op      UnOp
	Operand Node
}

// BinaryOp is an infix operator applied to two operands: a + b, x <= y.
type BinaryOp struct {
	base
	Op    BinOp
	Left  Node
	Right Node
}

// Block is an ordered sequence of statements sharing a lexical scope:
// the body of a function, an if-branch, or a while-loop.
type Block struct {
	base
	Statements []Node
}

// If is a conditional with a required then-branch and an optional
// else-branch (nil when absent).
type If struct {
	base
	Condition Node
	Then      *Block
	Else      *Block
}

// While is a pre-tested loop.
type While struct {
	base
	Condition Node
	Body      *Block
}

// ParamList is the formal parameter list of a Function definition.
type ParamList struct {
	base
	Params []*Variable
}

// ArgList is the actual argument list of a Call.
type ArgList struct {
	base
	Args []Node
}

// Function is a named function definition: fn name(params) { body }.
type Function struct {
	base
	Name   string
	Params *ParamList
	Body   *Block
}

// Declaration introduces a new variable with its initial value:
// def x = expr. Unlike Assignment, a Declaration's emitted TAC never
// retargets a prior instruction's destination — it always produces a
// binding for a name seen here for the first time.
type Declaration struct {
	base
	Name  string
	Value Node
}

// Assignment rebinds an existing variable: x = expr.
type Assignment struct {
	base
	Name  string
	Value Node
}

// Return is a function return statement. Expr is nil for a bare
// `return` with no value.
type Return struct {
	base
	Expr Node
}

// Call is a function invocation: callee(args).
type Call struct {
	base
	Callee string
	Args   *ArgList
}

var (
	_ Node = (*Literal)(nil)
	_ Node = (*Variable)(nil)
	_ Node = (*UnaryOp)(nil)
	_ Node = (*BinaryOp)(nil)
	_ Node = (*Block)(nil)
	_ Node = (*If)(nil)
	_ Node = (*While)(nil)
	_ Node = (*ParamList)(nil)
	_ Node = (*ArgList)(nil)
	_ Node = (*Function)(nil)
	_ Node = (*Declaration)(nil)
	_ Node = (*Assignment)(nil)
	_ Node = (*Return)(nil)
	_ Node = (*Call)(nil)
)
