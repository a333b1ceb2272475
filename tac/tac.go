/*
File    : tacc/tac/tac.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package tac lowers an AST into three-address code: a singly linked
// list of Instr values operating on Operand values (temporaries,
// variables, integer literals, and jump labels).
package tac

import "fmt"

// OperandKind identifies what an Operand refers to.
type OperandKind string

const (
	OpTemp    OperandKind = "TEMP"
	OpVar     OperandKind = "VAR"
	OpLiteral OperandKind = "LITERAL"
	OpLabel   OperandKind = "LABEL"
)

// Operand is a value an instruction reads or writes. Name holds the
// symbol for VAR; Value holds the numeric id for TEMP/LABEL or the
// constant for LITERAL.
type Operand struct {
	Kind  OperandKind
	Name  string
	Value int
}

// Var builds a VAR operand.
func Var(name string) Operand { return Operand{Kind: OpVar, Name: name} }

// Temp builds a TEMP operand from a counter value.
func Temp(n int) Operand { return Operand{Kind: OpTemp, Value: n} }

// Label builds a LABEL operand from a counter value.
func Label(n int) Operand { return Operand{Kind: OpLabel, Value: n} }

// Lit builds a LITERAL operand.
func Lit(v int) Operand { return Operand{Kind: OpLiteral, Value: v} }

// String renders an operand the way the TAC listing prints it: "t3"
// for a temp, "L2" for a label, a bare name for a variable, and the
// decimal value for a literal.
func (o Operand) String() string {
	switch o.Kind {
	case OpTemp:
		return fmt.Sprintf("t%d", o.Value)
	case OpLabel:
		return fmt.Sprintf("L%d", o.Value)
	case OpVar:
		return o.Name
	case OpLiteral:
		return fmt.Sprintf("%d", o.Value)
	default:
		return "?"
	}
}

// InstrKind identifies the opcode of an Instr.
type InstrKind string

const (
	BinaryOp    InstrKind = "BINARY_OP"
	UnaryOp     InstrKind = "UNARY_OP"
	Copy        InstrKind = "COPY"
	LabelInstr  InstrKind = "LABEL"
	Goto        InstrKind = "GOTO"
	Ifz         InstrKind = "IFZ"
	Param       InstrKind = "PARAM"
	Call        InstrKind = "CALL"
	Return      InstrKind = "RETURN"
	Function    InstrKind = "FUNCTION"
	EndFunction InstrKind = "END_FUNCTION"
	Define      InstrKind = "DEFINE"
)

// BinOp identifies the operator of a BINARY_OP instruction.
type BinOp string

const (
	Add BinOp = "ADD"
	Sub BinOp = "SUB"
	Mul BinOp = "MUL"
	Div BinOp = "DIV"
	Mod BinOp = "MOD"
	Eq  BinOp = "EQ"
	Neq BinOp = "NEQ"
	Lt  BinOp = "LT"
	Lte BinOp = "LTE"
	Gt  BinOp = "GT"
	Gte BinOp = "GTE"
	And BinOp = "AND"
	Or  BinOp = "OR"
)

// UnOp identifies the operator of a UNARY_OP instruction.
type UnOp string

const (
	Neg UnOp = "NEG"
	Not UnOp = "NOT"
)

// Instr is one three-address-code instruction. Dst/Arg1/Arg2 are nil
// when the opcode has no use for that slot (e.g. GOTO has no Dst).
// Next links to the following instruction; a nil Next marks the tail.
type Instr struct {
	Kind InstrKind

	Dst  *Operand
	Arg1 *Operand
	Arg2 *Operand

	BinOp BinOp
	UnOp  UnOp

	Next *Instr
}

func operand(o Operand) *Operand { return &o }

func BinaryInstr(op BinOp, dst, a1, a2 Operand) *Instr {
	return &Instr{Kind: BinaryOp, BinOp: op, Dst: operand(dst), Arg1: operand(a1), Arg2: operand(a2)}
}

func UnaryInstr(op UnOp, dst, src Operand) *Instr {
	return &Instr{Kind: UnaryOp, UnOp: op, Dst: operand(dst), Arg1: operand(src)}
}

func CopyInstr(dst, src Operand) *Instr {
	return &Instr{Kind: Copy, Dst: operand(dst), Arg1: operand(src)}
}

func LabelDef(l Operand) *Instr {
	return &Instr{Kind: LabelInstr, Dst: operand(l)}
}

func GotoInstr(l Operand) *Instr {
	return &Instr{Kind: Goto, Arg1: operand(l)}
}

func IfzInstr(cond, l Operand) *Instr {
	return &Instr{Kind: Ifz, Arg1: operand(cond), Arg2: operand(l)}
}

func ParamInstr(v Operand) *Instr {
	return &Instr{Kind: Param, Arg1: operand(v)}
}

func CallInstr(dst, callee Operand, nArgs int) *Instr {
	n := Lit(nArgs)
	return &Instr{Kind: Call, Dst: operand(dst), Arg1: operand(callee), Arg2: &n}
}

// ReturnInstr builds a RETURN instruction. val is nil for a bare
// `return` with no value.
func ReturnInstr(val *Operand) *Instr {
	return &Instr{Kind: Return, Arg1: val}
}

func FunctionInstr(name Operand) *Instr {
	return &Instr{Kind: Function, Dst: operand(name)}
}

func EndFunctionInstr() *Instr {
	return &Instr{Kind: EndFunction}
}

// DefineInstr binds a freshly declared variable to an optional initial
// value. val is nil for a declaration with no initializer.
func DefineInstr(v Operand, val *Operand) *Instr {
	return &Instr{Kind: Define, Dst: operand(v), Arg1: val}
}

// String renders an instruction the way the reference TAC listing
// does: "dst = arg1 OP arg2" for binary ops, "label:" for labels, and
// so on.
func (i *Instr) String() string {
	switch i.Kind {
	case BinaryOp:
		return fmt.Sprintf("%s = %s %s %s", i.Dst, i.Arg1, i.BinOp, i.Arg2)
	case UnaryOp:
		return fmt.Sprintf("%s = %s %s", i.Dst, i.UnOp, i.Arg1)
	case Copy:
		return fmt.Sprintf("%s = %s", i.Dst, i.Arg1)
	case LabelInstr:
		return fmt.Sprintf("%s:", i.Dst)
	case Goto:
		return fmt.Sprintf("goto %s", i.Arg1)
	case Ifz:
		return fmt.Sprintf("ifz %s goto %s", i.Arg1, i.Arg2)
	case Param:
		return fmt.Sprintf("param %s", i.Arg1)
	case Call:
		return fmt.Sprintf("%s = call %s, %s", i.Dst, i.Arg1, i.Arg2)
	case Return:
		if i.Arg1 == nil {
			return "return"
		}
		return fmt.Sprintf("return %s", i.Arg1)
	case Function:
		return fmt.Sprintf("function %s", i.Dst)
	case EndFunction:
		return "end_function"
	case Define:
		if i.Arg1 == nil {
			return fmt.Sprintf("define %s", i.Dst)
		}
		return fmt.Sprintf("define %s = %s", i.Dst, i.Arg1)
	default:
		return fmt.Sprintf("<unknown instr %s>", i.Kind)
	}
}

// List flattens the linked instruction chain starting at head into a
// slice, in program order. A nil head yields an empty (non-nil) slice.
func List(head *Instr) []*Instr {
	out := []*Instr{}
	for i := head; i != nil; i = i.Next {
		out = append(out, i)
	}
	return out
}
