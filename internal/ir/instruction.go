package ir

import "github.com/FyVoid/blang/internal/types"

// Op tags an Instruction's operation (spec.md §3).
type Op int

const (
	OpAlloca Op = iota
	OpLoad
	OpStore
	OpGEP
	OpAdd
	OpSub
	OpMul
	OpSDiv
	OpSRem
	OpAnd
	OpOr
	OpICmp
	OpSExt
	OpZExt
	OpTrunc
	OpBr     // unconditional: Labels[0]
	OpCondBr // conditional: Cond, Labels[0]=true, Labels[1]=false
	OpRet    // Operands[0] if non-void, else none
	OpCall
	OpGlobalDef // module-level only; never appears in a block
)

// ICmp condition codes (spec.md §4.10's icmp {eq,ne,sge,sgt,sle,slt}).
const (
	CondEq  = "eq"
	CondNe  = "ne"
	CondSge = "sge"
	CondSgt = "sgt"
	CondSle = "sle"
	CondSlt = "slt"
)

// Instruction is one SSA instruction. Not every field is meaningful for
// every Op; see the per-constructor doc comments.
type Instruction struct {
	Op       Op
	Dest     string      // destination register name, without "%"; "" if none
	Type     *types.Type // Dest's type (alloca: the pointee type)
	Operands []Value
	Cond     string   // OpICmp condition code
	Callee   string   // OpCall target name
	External bool     // OpCall: true for getint/getchar/putint/putchar/putstr
	Labels   []string // OpBr/OpCondBr targets
}

// Alloca emits `%d = alloca T` and returns a pointer(T) value referencing it.
func (b *BasicBlock) Alloca(dest string, elem *types.Type) Value {
	b.push(Instruction{Op: OpAlloca, Dest: dest, Type: elem})
	return Register("%"+dest, types.NewPointer(elem))
}

// Load emits `%d = load T, T* ptr`.
func (b *BasicBlock) Load(dest string, elem *types.Type, ptr Value) Value {
	b.push(Instruction{Op: OpLoad, Dest: dest, Type: elem, Operands: []Value{ptr}})
	return Register("%"+dest, elem)
}

// Store emits `store T val, T* ptr`.
func (b *BasicBlock) Store(val, ptr Value) {
	b.push(Instruction{Op: OpStore, Operands: []Value{val, ptr}})
}

// GEP emits `%d = getelementptr <aggType>, <aggType>* ptr, i32 idx...` and
// returns a pointer to the indexed element type.
func (b *BasicBlock) GEP(dest string, aggType *types.Type, ptr Value, indices []Value, result *types.Type) Value {
	operands := append([]Value{ptr}, indices...)
	b.push(Instruction{Op: OpGEP, Dest: dest, Type: aggType, Operands: operands})
	return Register("%"+dest, types.NewPointer(result))
}

// BinOp emits an arithmetic/bitwise binary instruction over i32 operands.
func (b *BasicBlock) BinOp(op Op, dest string, l, r Value) Value {
	b.push(Instruction{Op: op, Dest: dest, Type: l.Type, Operands: []Value{l, r}})
	return Register("%"+dest, l.Type)
}

// ICmp emits `%d = icmp cond i32 l, r` producing an i1.
func (b *BasicBlock) ICmp(dest, cond string, l, r Value) Value {
	b.push(Instruction{Op: OpICmp, Dest: dest, Type: types.BoolType(), Cond: cond, Operands: []Value{l, r}})
	return Register("%"+dest, types.BoolType())
}

// Cast emits a sext/zext/trunc instruction converting v to to.
func (b *BasicBlock) Cast(op Op, dest string, v Value, to *types.Type) Value {
	b.push(Instruction{Op: op, Dest: dest, Type: to, Operands: []Value{v}})
	return Register("%"+dest, to)
}

// Br emits an unconditional branch and terminates the block.
func (b *BasicBlock) Br(label string) {
	if b.push(Instruction{Op: OpBr, Labels: []string{label}}) {
		b.Succs = append(b.Succs, label)
	}
}

// CondBr emits a conditional branch and terminates the block.
func (b *BasicBlock) CondBr(cond Value, trueLabel, falseLabel string) {
	if b.push(Instruction{Op: OpCondBr, Operands: []Value{cond}, Labels: []string{trueLabel, falseLabel}}) {
		b.Succs = append(b.Succs, trueLabel, falseLabel)
	}
}

// Ret emits a return and terminates the block. Pass nil for `ret void`.
func (b *BasicBlock) Ret(v *Value) {
	if v == nil {
		b.push(Instruction{Op: OpRet, Type: types.VoidType()})
		return
	}
	b.push(Instruction{Op: OpRet, Type: v.Type, Operands: []Value{*v}})
}

// Call emits a call. dest is "" for a void call.
func (b *BasicBlock) Call(dest string, retType *types.Type, callee string, external bool, args []Value) Value {
	b.push(Instruction{Op: OpCall, Dest: dest, Type: retType, Callee: callee, External: external, Operands: args})
	if dest == "" {
		return Value{}
	}
	return Register("%"+dest, retType)
}

// push appends i unless the block is already terminated (spec.md §4.10's
// "first terminator wins, later pushes are silently ignored" rule), and
// reports whether it did.
func (b *BasicBlock) push(i Instruction) bool {
	if b.Terminated {
		return false
	}
	b.Insts = append(b.Insts, i)
	if i.Op == OpBr || i.Op == OpCondBr || i.Op == OpRet {
		b.Terminated = true
	}
	return true
}
