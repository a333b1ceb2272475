/*
File    : tacc/cfg/cfg.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package cfg builds control-flow graphs of basic blocks from a TAC
// instruction stream, two ways: leader-based partitioning of the
// whole stream (BuildFromTAC) and function-nesting segmentation
// (ExtractFunctions).
package cfg

import "github.com/akashmaji946/tacc/tac"

// Block is a maximal straight-line run of instructions: control enters
// only at the first instruction and leaves only after the last.
type Block struct {
	ID           int
	IsEntry      bool
	IsExit       bool
	Instructions []*tac.Instr
	Successors   []*Block
	Predecessors []*Block
}

// CFG is an ordered collection of basic blocks, in the order they were
// discovered in the instruction stream.
type CFG struct {
	Blocks []*Block
}

func newBlock(id int, instrs []*tac.Instr) *Block {
	return &Block{ID: id, Instructions: instrs}
}

func (c *CFG) addBlock(b *Block) {
	c.Blocks = append(c.Blocks, b)
}

func addEdge(from, to *Block) {
	from.Successors = append(from.Successors, to)
	to.Predecessors = append(to.Predecessors, from)
}

func isTerminator(i *tac.Instr) bool {
	switch i.Kind {
	case tac.Goto, tac.Ifz, tac.Return, tac.EndFunction:
		return true
	default:
		return false
	}
}

// labelIndex maps a LABEL operand's numeric id to the index of the
// block it leads, used to resolve GOTO/IFZ targets into block edges.
func labelIndex(blocks []*Block) map[int]int {
	idx := map[int]int{}
	for i, b := range blocks {
		if len(b.Instructions) == 0 {
			continue
		}
		first := b.Instructions[0]
		if first.Kind == tac.LabelInstr && first.Dst != nil {
			idx[first.Dst.Value] = i
		}
	}
	return idx
}

// wireEdges connects each block to its successors by inspecting its
// final instruction: GOTO/IFZ resolve to the block led by their target
// label (reserved by spec as an allowed enrichment — tests must not
// assume they are populated unless an implementation fills them, which
// this one does); IFZ additionally falls through to the next block for
// its not-taken branch; RETURN/END_FUNCTION blocks stay exits; any
// other terminator-less split falls through to the next block.
func wireEdges(blocks []*Block) {
	labels := labelIndex(blocks)
	for i, b := range blocks {
		if len(b.Instructions) == 0 {
			continue
		}
		last := b.Instructions[len(b.Instructions)-1]
		switch last.Kind {
		case tac.Goto:
			if target, ok := labels[last.Arg1.Value]; ok {
				addEdge(b, blocks[target])
			}
		case tac.Ifz:
			if target, ok := labels[last.Arg2.Value]; ok {
				addEdge(b, blocks[target])
			}
			if i+1 < len(blocks) {
				addEdge(b, blocks[i+1])
			}
		case tac.Return, tac.EndFunction:
			b.IsExit = true
		default:
			if i+1 < len(blocks) {
				addEdge(b, blocks[i+1])
			}
		}
	}
}
