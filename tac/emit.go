/*
File    : tacc/tac/emit.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package tac

import "github.com/akashmaji946/tacc/ast"

// Emitter lowers an AST into three-address code. Temps and labels
// share one monotonic counter (distinguished only by the operand kind
// tag, never by numeric range), matching the reference emitter's
// single int *temp_counter threaded through every lowering function.
type Emitter struct {
	counter int
}

// NewEmitter returns an Emitter with its counter at zero.
func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) next() int {
	n := e.counter
	e.counter++
	return n
}

// chain is an instruction sequence with an O(1)-reachable tail, so
// repeated concatenation during lowering is O(1) amortized per join
// rather than the reference tac_concat's walk-to-tail O(n) per call.
type chain struct {
	head *Instr
	tail *Instr
}

func single(i *Instr) chain {
	return chain{head: i, tail: i}
}

func (c chain) append(other chain) chain {
	if c.head == nil {
		return other
	}
	if other.head == nil {
		return c
	}
	c.tail.Next = other.head
	return chain{head: c.head, tail: other.tail}
}

// Emit lowers n (typically a top-level Block of statements, or a
// Function) into a single TAC instruction list and returns its head.
func (e *Emitter) Emit(n ast.Node) *Instr {
	return e.lower(n).head
}

// getOperand mirrors tac_get_operand: a bare literal or variable
// contributes no instructions and resolves directly to an Operand; any
// other node is lowered in full and its last instruction's Dst is the
// resulting operand.
func (e *Emitter) getOperand(n ast.Node) (chain, Operand) {
	switch v := n.(type) {
	case *ast.Literal:
		return chain{}, Lit(v.Value)
	case *ast.Variable:
		return chain{}, Var(v.Name)
	default:
		c := e.lower(n)
		if c.tail == nil || c.tail.Dst == nil {
			return c, Operand{}
		}
		return c, *c.tail.Dst
	}
}

func (e *Emitter) lower(n ast.Node) chain {
	switch v := n.(type) {
	case *ast.Literal:
		dst := Temp(e.next())
		return single(CopyInstr(dst, Lit(v.Value)))

	case *ast.Variable:
		dst := Temp(e.next())
		return single(CopyInstr(dst, Var(v.Name)))

	case *ast.BinaryOp:
		codeL, lhs := e.getOperand(v.Left)
		codeR, rhs := e.getOperand(v.Right)
		dst := Temp(e.next())
		op := BinaryInstr(mapBinOp(v.Op), dst, lhs, rhs)
		return codeL.append(codeR).append(single(op))

	case *ast.UnaryOp:
		code, src := e.getOperand(v.Operand)
		dst := Temp(e.next())
		op := UnaryInstr(mapUnOp(v.Op), dst, src)
		return code.append(single(op))

	case *ast.Block:
		c := chain{}
		for _, stmt := range v.Statements {
			c = c.append(e.lower(stmt))
		}
		return c

	case *ast.If:
		return e.lowerIf(v)

	case *ast.While:
		return e.lowerWhile(v)

	case *ast.Declaration:
		return e.lowerDeclaration(v)

	case *ast.Assignment:
		return e.lowerAssignment(v)

	case *ast.Return:
		return e.lowerReturn(v)

	case *ast.Call:
		return e.lowerCall(v)

	case *ast.Function:
		return e.lowerFunction(v)

	case *ast.ParamList:
		c := chain{}
		for _, p := range v.Params {
			c = c.append(single(ParamInstr(Var(p.Name))))
		}
		return c

	default:
		return chain{}
	}
}

func (e *Emitter) lowerIf(n *ast.If) chain {
	condCode, cond := e.getOperand(n.Condition)

	labelThen := Label(e.next())
	var labelEnd Operand
	hasElse := n.Else != nil
	if hasElse {
		labelEnd = Label(e.next())
	}

	branch := IfzInstr(cond, labelThen)
	thenLabel := LabelDef(labelThen)
	thenCode := e.lower(n.Then)

	seq := condCode.append(single(branch)).append(thenCode)
	if hasElse {
		seq = seq.append(single(GotoInstr(labelEnd)))
	}
	seq = seq.append(single(thenLabel))
	if hasElse {
		elseCode := e.lower(n.Else)
		seq = seq.append(elseCode).append(single(LabelDef(labelEnd)))
	}
	return seq
}

func (e *Emitter) lowerWhile(n *ast.While) chain {
	labelStart := Label(e.next())
	startLabel := LabelDef(labelStart)

	condCode, cond := e.getOperand(n.Condition)

	labelEnd := Label(e.next())
	branch := IfzInstr(cond, labelEnd)

	bodyCode := e.lower(n.Body)
	jumpBack := GotoInstr(labelStart)
	endLabel := LabelDef(labelEnd)

	return single(startLabel).
		append(condCode).
		append(single(branch)).
		append(bodyCode).
		append(single(jumpBack)).
		append(single(endLabel))
}

// lowerDeclaration always emits a DEFINE instruction, never retargets:
// a Declaration introduces a symbol that did not previously exist, so
// there is no prior instruction it would be meaningful to retarget.
func (e *Emitter) lowerDeclaration(n *ast.Declaration) chain {
	v := Var(n.Name)
	if n.Value == nil {
		return single(DefineInstr(v, nil))
	}
	initCode, initVal := e.getOperand(n.Value)
	def := DefineInstr(v, &initVal)
	return initCode.append(single(def))
}

// lowerAssignment resolves the Open Question on bare-operand RHS: if
// the RHS is a bare literal/variable (getOperand returns no code), a
// direct COPY is emitted; otherwise the final instruction computing
// the RHS has its Dst retargeted to the assigned variable, fusing the
// last computation into the assignment instead of adding a copy.
func (e *Emitter) lowerAssignment(n *ast.Assignment) chain {
	v := Var(n.Name)
	rhsCode, rhsVal := e.getOperand(n.Value)
	if rhsCode.head == nil {
		return single(CopyInstr(v, rhsVal))
	}
	rhsCode.tail.Dst = &v
	return rhsCode
}

func (e *Emitter) lowerReturn(n *ast.Return) chain {
	if n.Expr == nil {
		return single(ReturnInstr(nil))
	}
	code := e.lower(n.Expr)
	var retOp *Operand
	if code.tail != nil {
		retOp = code.tail.Dst
	}
	return code.append(single(ReturnInstr(retOp)))
}

func (e *Emitter) lowerCall(n *ast.Call) chain {
	args := chain{}
	for _, a := range n.Args.Args {
		code, op := e.getOperand(a)
		args = args.append(code).append(single(ParamInstr(op)))
	}
	dst := Temp(e.next())
	callInstr := CallInstr(dst, Var(n.Callee), len(n.Args.Args))
	return args.append(single(callInstr))
}

func (e *Emitter) lowerFunction(n *ast.Function) chain {
	fnInstr := FunctionInstr(Var(n.Name))
	params := chain{}
	for _, p := range n.Params.Params {
		params = params.append(single(ParamInstr(Var(p.Name))))
	}
	body := e.lower(n.Body)
	return single(fnInstr).append(params).append(body).append(single(EndFunctionInstr()))
}

func mapBinOp(op ast.BinOp) BinOp {
	switch op {
	case ast.OpAdd:
		return Add
	case ast.OpSub:
		return Sub
	case ast.OpMul:
		return Mul
	case ast.OpDiv:
		return Div
	case ast.OpLt:
		return Lt
	case ast.OpGt:
		return Gt
	case ast.OpLeq:
		return Lte
	case ast.OpGeq:
		return Gte
	case ast.OpEq:
		return Eq
	case ast.OpNeq:
		return Neq
	case ast.OpAnd:
		return And
	case ast.OpOr:
		return Or
	default:
		return Add
	}
}

func mapUnOp(op ast.UnOp) UnOp {
	switch op {
	case ast.OpNeg:
		return Neg
	case ast.OpNot:
		return Not
	default:
		return Neg
	}
}
