/*
File    : tacc/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/tacc/ast"
	"github.com/akashmaji946/tacc/lexer"
	"github.com/akashmaji946/tacc/perr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *ast.Block {
	t.Helper()
	toks := lexer.New(src).All()
	block, err := Parse(toks, "test.tc")
	require.NoError(t, err)
	require.NotNil(t, block)
	return block
}

func TestParse_DeclarationWithBinaryExpression(t *testing.T) {
	block := parse(t, "def x = 1 + 2\n")
	require.Len(t, block.Statements, 1)

	decl, ok := block.Statements[0].(*ast.Declaration)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)

	bin, ok := decl.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
}

func TestParse_MultiplicationBindsTighterThanAddition(t *testing.T) {
	block := parse(t, "def x = 1 + 2 * 3\n")
	decl := block.Statements[0].(*ast.Declaration)

	top, ok := decl.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, top.Op)

	_, leftIsLit := top.Left.(*ast.Literal)
	assert.True(t, leftIsLit, "left of + should be the bare literal 1")

	right, ok := top.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, right.Op)
}

func TestParse_AdditionIsLeftAssociative(t *testing.T) {
	block := parse(t, "def x = 1 - 2 - 3\n")
	decl := block.Statements[0].(*ast.Declaration)

	top := decl.Value.(*ast.BinaryOp)
	assert.Equal(t, ast.OpSub, top.Op)

	left, ok := top.Left.(*ast.BinaryOp)
	require.True(t, ok, "(1-2)-3: left side should itself be a subtraction")
	assert.Equal(t, ast.OpSub, left.Op)

	_, rightIsLit := top.Right.(*ast.Literal)
	assert.True(t, rightIsLit)
}

func TestParse_ComparisonBindsLooserThanAdditionButTighterThanLogical(t *testing.T) {
	block := parse(t, "def ok = 1 + 2 < 3 && 4 == 4\n")
	decl := block.Statements[0].(*ast.Declaration)

	top, ok := decl.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpAnd, top.Op, "&& is the loosest-binding operator here, so it must be the root")

	left, ok := top.Left.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpLt, left.Op)

	sum, ok := left.Left.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, sum.Op, "1 + 2 must group before < since + binds tighter")

	right, ok := top.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpEq, right.Op)
}

func TestParse_UnaryMinusAndNot(t *testing.T) {
	block := parse(t, "def a = -x\ndef b = !done\n")
	require.Len(t, block.Statements, 2)

	a := block.Statements[0].(*ast.Declaration)
	u, ok := a.Value.(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpNeg, u.Op)

	b := block.Statements[1].(*ast.Declaration)
	u2, ok := b.Value.(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpNot, u2.Op)
}

func TestParse_UnaryMinusBindsTighterThanComparison(t *testing.T) {
	block := parse(t, "def ok = -a < b\n")
	decl := block.Statements[0].(*ast.Declaration)

	top, ok := decl.Value.(*ast.BinaryOp)
	require.True(t, ok, "< must be the root: -a < b, not -(a < b)")
	assert.Equal(t, ast.OpLt, top.Op)

	left, ok := top.Left.(*ast.UnaryOp)
	require.True(t, ok, "left of < should be the unary negation (-a)")
	assert.Equal(t, ast.OpNeg, left.Op)

	_, rightIsVar := top.Right.(*ast.Variable)
	assert.True(t, rightIsVar)
}

func TestParse_UnaryMinusBindsTighterThanEquality(t *testing.T) {
	block := parse(t, "def ok = -a == b\n")
	decl := block.Statements[0].(*ast.Declaration)

	top, ok := decl.Value.(*ast.BinaryOp)
	require.True(t, ok, "== must be the root: -a == b, not -(a == b)")
	assert.Equal(t, ast.OpEq, top.Op)

	left, ok := top.Left.(*ast.UnaryOp)
	require.True(t, ok, "left of == should be the unary negation (-a)")
	assert.Equal(t, ast.OpNeg, left.Op)
}

func TestParse_ParenthesesOverrideBindingPower(t *testing.T) {
	block := parse(t, "def x = (1 + 2) * 3\n")
	decl := block.Statements[0].(*ast.Declaration)

	top := decl.Value.(*ast.BinaryOp)
	assert.Equal(t, ast.OpMul, top.Op)

	left, ok := top.Left.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, left.Op)
}

func TestParse_AssignmentToExistingVariable(t *testing.T) {
	block := parse(t, "x = x + 1\n")
	require.Len(t, block.Statements, 1)

	assign, ok := block.Statements[0].(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParse_IfWithoutElse(t *testing.T) {
	block := parse(t, "if (x < 1) {\ndef y = 2\n}\n")
	stmt, ok := block.Statements[0].(*ast.If)
	require.True(t, ok)
	assert.Nil(t, stmt.Else)
	require.Len(t, stmt.Then.Statements, 1)
}

func TestParse_IfWithElse(t *testing.T) {
	block := parse(t, "if (x < 1) {\nreturn 1\n} else {\nreturn 2\n}\n")
	stmt, ok := block.Statements[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, stmt.Else)
	require.Len(t, stmt.Then.Statements, 1)
	require.Len(t, stmt.Else.Statements, 1)
}

func TestParse_WhileLoop(t *testing.T) {
	block := parse(t, "while (x < 10) {\nx = x + 1\n}\n")
	loop, ok := block.Statements[0].(*ast.While)
	require.True(t, ok)
	require.Len(t, loop.Body.Statements, 1)
}

func TestParse_NestedBlocksShareTheSameTokenArray(t *testing.T) {
	// Regression check for the sub-parser slicing technique: the
	// inner "if" body must parse correctly even though it is a
	// borrowed view over the outer parser's own token slice.
	block := parse(t, "while (x < 10) {\nif (x == 5) {\nreturn x\n}\nx = x + 1\n}\n")
	loop := block.Statements[0].(*ast.While)
	require.Len(t, loop.Body.Statements, 2)

	inner, ok := loop.Body.Statements[0].(*ast.If)
	require.True(t, ok)
	require.Len(t, inner.Then.Statements, 1)
}

func TestParse_FunctionDefinitionWithParametersAndCall(t *testing.T) {
	block := parse(t, "fn add(a, b) {\nreturn a + b\n}\ndef r = add(1, 2)\n")
	require.Len(t, block.Statements, 2)

	fn, ok := block.Statements[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params.Params, 2)
	assert.Equal(t, "a", fn.Params.Params[0].Name)
	assert.Equal(t, "b", fn.Params.Params[1].Name)

	decl := block.Statements[1].(*ast.Declaration)
	call, ok := decl.Value.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "add", call.Callee)
	require.Len(t, call.Args.Args, 2)
}

func TestParse_ReturnWithoutExpression(t *testing.T) {
	block := parse(t, "fn noop() {\nreturn\n}\n")
	fn := block.Statements[0].(*ast.Function)
	ret, ok := fn.Body.Statements[0].(*ast.Return)
	require.True(t, ok)
	assert.Nil(t, ret.Expr)
}

func TestParse_BlankLinesProduceNoStatements(t *testing.T) {
	block := parse(t, "\n\ndef x = 1\n\n\n")
	require.Len(t, block.Statements, 1)
}

func TestParse_BareBlockStatement(t *testing.T) {
	block := parse(t, "{\ndef x = 1\n}\n")
	inner, ok := block.Statements[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, inner.Statements, 1)
}

func TestParse_UnterminatedBlockIsFatal(t *testing.T) {
	toks := lexer.New("if (x < 1) {\ndef y = 2\n").All()
	_, err := Parse(toks, "test.tc")
	assert.Error(t, err)
}

func TestParse_UnexpectedTokenAtStatementStartIsFatal(t *testing.T) {
	toks := lexer.New(")\n").All()
	_, err := Parse(toks, "test.tc")
	assert.Error(t, err)
}

func TestParse_MissingClosingParenIsFatal(t *testing.T) {
	toks := lexer.New("def x = (1 + 2\n").All()
	_, err := Parse(toks, "test.tc")
	assert.Error(t, err)
}

func TestParse_ErrorReportsLineAndColumn(t *testing.T) {
	toks := lexer.New("def x = 1\n)\n").All()
	_, err := Parse(toks, "test.tc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.tc:2:1")
}

func TestParse_ErrorFoundFieldUsesKindAndLexemeShape(t *testing.T) {
	toks := lexer.New("def = 5\n").All()
	_, err := Parse(toks, "test.tc")
	require.Error(t, err)

	pe, ok := err.(*perr.ParseError)
	require.True(t, ok)
	assert.Equal(t, "OPERATOR ('=')", pe.Found, `Found must render as "<KIND> ('<lexeme>')"`)
}
