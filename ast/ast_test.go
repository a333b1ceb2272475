/*
File    : tacc/ast/ast_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON_BinaryOpShape(t *testing.T) {
	expr := &BinaryOp{
		Op:    OpAdd,
		Left:  &Variable{Name: "x"},
		Right: &Literal{Value: 2},
	}

	out, err := ToJSON(expr)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"BinaryOp","op":"+","left":{"type":"Variable","name":"x"},"right":{"type":"IntLiteral","value":2}}`,
		string(out),
	)
}

func TestToJSON_IfOmitsAbsentElse(t *testing.T) {
	stmt := &If{
		Condition: &Variable{Name: "flag"},
		Then:      &Block{Statements: []Node{&Return{}}},
	}

	out, err := ToJSON(stmt)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"else"`)
}

func TestToJSON_NilNodeIsJSONNull(t *testing.T) {
	out, err := ToJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestPrint_IndentsNestedBlocks(t *testing.T) {
	block := &Block{Statements: []Node{
		&Declaration{Name: "x", Value: &Literal{Value: 1}},
	}}

	var buf bytes.Buffer
	Print(&buf, block)

	out := buf.String()
	assert.Contains(t, out, "Block:\n")
	assert.Contains(t, out, "  Declaration: x\n")
	assert.Contains(t, out, "    IntLiteral: 1\n")
}

func TestFunctionJSON_IncludesParamsAndBody(t *testing.T) {
	fn := &Function{
		Name:   "add",
		Params: &ParamList{Params: []*Variable{{Name: "a"}, {Name: "b"}}},
		Body: &Block{Statements: []Node{
			&Return{Expr: &BinaryOp{Op: OpAdd, Left: &Variable{Name: "a"}, Right: &Variable{Name: "b"}}},
		}},
	}

	out, err := ToJSON(fn)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"name":"add"`)
	assert.Contains(t, string(out), `"params":[{"type":"Variable","name":"a"},{"type":"Variable","name":"b"}]`)
}
