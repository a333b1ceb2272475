/*
File    : tacc/perr/perr_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package perr

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaret_PreservesTabsAndPositionsAtColumn(t *testing.T) {
	assert.Equal(t, "^", caret("x = 1", 1))
	assert.Equal(t, "    ^", caret("x = 1", 5))
	assert.Equal(t, "\t^", caret("\tx = 1", 2))
}

func TestParseError_ErrorStringHasLocation(t *testing.T) {
	err := New(3, 7, "prog.tc", "unexpected token")
	assert.Equal(t, "prog.tc:3:7: unexpected token", err.Error())
	assert.True(t, err.Fatal)
}

func TestSourceLine_MissingFileReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", sourceLine("/nonexistent/path/does-not-exist.tc", 1))
}

func TestReport_MatchesReferenceFormat(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = restore }()

	dir := t.TempDir()
	path := dir + "/prog.tc"
	require.NoError(t, os.WriteFile(path, []byte("def = 5\n"), 0o644))

	e := New(1, 5, path, "unexpected token")
	e.Expected = "IDENTIFIER"
	e.Found = "OPERATOR ('=')"

	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stderr
	os.Stderr = w
	Report(e)
	w.Close()
	os.Stderr = old

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, path+":1:5: parse error:", lines[0])
	assert.Equal(t, "    def = 5", lines[1])
	assert.Equal(t, "        ^", lines[2], "caret must land under column 5 ('=') once Report's own 4-space indent stacks with caret()'s own")
	assert.Equal(t, "    Expected token: IDENTIFIER", lines[3])
	assert.Equal(t, "    Actual token  : OPERATOR ('=')", lines[4])
}
