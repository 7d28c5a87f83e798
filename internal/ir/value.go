// Package ir implements the textual SSA intermediate representation of
// spec.md §3/§6 (C9): Value/Instruction/BasicBlock/Function/Module, plus a
// printer rendering the LLVM-like grammar of §6. Structurally grounded on
// internal/bytecode's Compiler (scope/counter bookkeeping in
// compiler_core.go) and Disassembler (per-kind dispatch in disasm.go), but
// the value/instruction shapes here are the module's own — the teacher
// targets a binary stack machine, this package a textual SSA module.
package ir

import (
	"fmt"

	"github.com/FyVoid/blang/internal/types"
)

// ValueKind tags the sum-type shape of a Value (spec.md §3).
type ValueKind int

const (
	ConstVal ValueKind = iota
	RegVal
	PtrVal
	ArrayVal
)

// Value is an operand: a typed immediate, an SSA register reference, a
// global/local pointer reference, or an array-literal aggregate.
type Value struct {
	Kind     ValueKind
	Type     *types.Type
	Imm      int64   // ConstVal
	Reg      string   // RegVal, e.g. "%3"
	Name     string   // PtrVal: the global/local identifier
	IsGlobal bool     // PtrVal
	Elems    []Value  // ArrayVal
}

// ConstInt returns an i32 immediate.
func ConstInt(v int32) Value { return Value{Kind: ConstVal, Type: types.IntType(), Imm: int64(v)} }

// ConstChar returns an i8 immediate.
func ConstChar(v byte) Value { return Value{Kind: ConstVal, Type: types.CharType(), Imm: int64(v)} }

// ConstBool returns an i1 immediate.
func ConstBool(b bool) Value {
	v := int64(0)
	if b {
		v = 1
	}
	return Value{Kind: ConstVal, Type: types.BoolType(), Imm: v}
}

// Register returns a reference to an already-emitted SSA destination.
func Register(name string, t *types.Type) Value {
	return Value{Kind: RegVal, Type: t, Reg: name}
}

// GlobalPtr returns a reference to a module-level global by name. t is the
// global's own type; the reference is typed as a pointer to it (t*).
func GlobalPtr(name string, t *types.Type) Value {
	return Value{Kind: PtrVal, Type: types.NewPointer(t), Name: name, IsGlobal: true}
}

// LocalPtr returns a by-name reference to a function-local identifier.
// internal/irgen does not call it: named parameters are referenced as
// registers and allocas through their destination register.
func LocalPtr(name string, t *types.Type) Value {
	return Value{Kind: PtrVal, Type: t, Name: name}
}

// Array returns an array-literal aggregate value.
func Array(elemType *types.Type, elems []Value) Value {
	return Value{Kind: ArrayVal, Type: types.NewArray(elemType, len(elems)), Elems: elems}
}

// irType renders t using the LLVM textual spelling required by spec.md §6
// (i32/i8/i1/void/T*/[N x T]), distinct from types.Type.String()'s
// source-level spelling used by diagnostics and --dump-symbols.
func irType(t *types.Type) string {
	switch t.Kind() {
	case types.Int:
		return "i32"
	case types.Char:
		return "i8"
	case types.Bool:
		return "i1"
	case types.Void:
		return "void"
	case types.Array:
		return fmt.Sprintf("[%d x %s]", t.N, irType(t.Elem))
	case types.Pointer:
		return fmt.Sprintf("%s*", irType(t.Elem))
	default:
		return "?"
	}
}

// operand renders v as `<type> <value>`.
func (v Value) operand() string {
	return fmt.Sprintf("%s %s", irType(v.Type), v.bare())
}

// bare renders v without its type prefix, as used where the instruction
// text already states the type (the second operand of a binop or icmp,
// GEP indices, global initializer elements).
func (v Value) bare() string {
	switch v.Kind {
	case ConstVal:
		return fmt.Sprintf("%d", v.Imm)
	case RegVal:
		return v.Reg
	case PtrVal:
		if v.IsGlobal {
			return "@" + v.Name
		}
		return "%" + v.Name
	case ArrayVal:
		return v.aggregateLiteral()
	default:
		return "?"
	}
}

func (v Value) aggregateLiteral() string {
	s := "["
	for i, e := range v.Elems {
		if i > 0 {
			s += ", "
		}
		s += e.operand()
	}
	return s + "]"
}
