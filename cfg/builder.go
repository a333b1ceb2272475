/*
File    : tacc/cfg/builder.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cfg

import (
	"fmt"

	"github.com/akashmaji946/tacc/tac"
)

// BuildFromTAC partitions a TAC instruction stream into basic blocks
// using the leader rule: a new block starts right after a terminator
// (GOTO, IFZ, RETURN, END_FUNCTION) and right before a LABEL. Per the
// leader-rule Open Question, a split point that would produce a block
// with zero instructions — two terminators back to back, or a
// terminator immediately followed by a label — is skipped rather than
// recorded as an empty block.
func BuildFromTAC(head *tac.Instr) *CFG {
	instrs := tac.List(head)
	out := &CFG{}

	id := 0
	blockStart := 0
	flush := func(endIdx int) {
		if endIdx < blockStart {
			return // empty range: skip per the leader-rule Open Question
		}
		last := instrs[endIdx]
		blk := newBlock(id, instrs[blockStart:endIdx+1])
		blk.IsExit = last.Kind == tac.Return || last.Kind == tac.EndFunction
		out.addBlock(blk)
		id++
	}

	for i, cur := range instrs {
		var next *tac.Instr
		if i+1 < len(instrs) {
			next = instrs[i+1]
		}
		switch {
		case next != nil && next.Kind == tac.LabelInstr:
			flush(i)
			blockStart = i + 1
		case isTerminator(cur):
			flush(i)
			blockStart = i + 1
		}
	}
	if blockStart < len(instrs) {
		flush(len(instrs) - 1)
	}

	if len(out.Blocks) > 0 {
		out.Blocks[0].IsEntry = true
	}
	wireEdges(out.Blocks)
	return out
}

// ExtractFunctions segments a TAC instruction stream by FUNCTION /
// END_FUNCTION nesting depth: global code between (or outside) function
// bodies is its own segment, and each top-level function body (depth
// returning to zero) becomes one segment spanning its FUNCTION through
// its END_FUNCTION. Nested FUNCTION/END_FUNCTION pairs (this language
// has no nested function definitions today, but the depth counter
// costs nothing to keep general) stay folded into their enclosing
// segment. An END_FUNCTION with no matching FUNCTION is a fatal error,
// mirroring the reference builder's depth<0 check.
func ExtractFunctions(head *tac.Instr) (*CFG, error) {
	instrs := tac.List(head)
	out := &CFG{}

	id := 0
	segStart := 0
	depth := 0

	for i, cur := range instrs {
		switch cur.Kind {
		case tac.Function:
			if depth == 0 {
				if segStart != i {
					out.addBlock(newBlock(id, instrs[segStart:i]))
					id++
				}
				segStart = i
			}
			depth++
		case tac.EndFunction:
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("cfg: END_FUNCTION without matching FUNCTION")
			}
			if depth == 0 {
				out.addBlock(newBlock(id, instrs[segStart:i+1]))
				id++
				segStart = i + 1
			}
		}
	}
	if segStart < len(instrs) {
		out.addBlock(newBlock(id, instrs[segStart:]))
	}

	return out, nil
}
