/*
File    : tacc/driver/driver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/akashmaji946/tacc/perr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.tc")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRun_WellFormedProgramProducesEveryStage(t *testing.T) {
	path := writeTempSource(t, "def x = 1\nwhile (x < 3) {\nx = x + 1\n}\nreturn x\n")
	var buf bytes.Buffer

	err := Run(path, Options{Stdout: &buf})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "lexing")
	assert.Contains(t, out, "parsing")
	assert.Contains(t, out, "three-address code")
	assert.Contains(t, out, "CFG with")
}

func TestRun_ParseFailureReturnsParseError(t *testing.T) {
	path := writeTempSource(t, "def x = (1 + 2\n")
	var buf bytes.Buffer

	err := Run(path, Options{Stdout: &buf})
	require.Error(t, err)
	assert.IsType(t, &perr.ParseError{}, err)
}

func TestRun_MissingFileReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := Run(filepath.Join(t.TempDir(), "nope.tc"), Options{Stdout: &buf})
	assert.Error(t, err)
}

func TestRun_WritesTokensAndASTJSONToRequestedPaths(t *testing.T) {
	path := writeTempSource(t, "def x = 1\n")
	dir := filepath.Dir(path)
	tokensOut := filepath.Join(dir, "tokens.json")
	astOut := filepath.Join(dir, "ast.json")
	var buf bytes.Buffer

	err := Run(path, Options{Stdout: &buf, TokensJSONOut: tokensOut, ASTJSONOut: astOut})
	require.NoError(t, err)

	tokensData, err := os.ReadFile(tokensOut)
	require.NoError(t, err)
	assert.Contains(t, string(tokensData), `"type"`)

	astData, err := os.ReadFile(astOut)
	require.NoError(t, err)
	assert.Contains(t, string(astData), `"type"`)
}
