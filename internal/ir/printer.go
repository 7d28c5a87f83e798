package ir

import (
	"fmt"
	"io"
	"strings"
)

// externalDecls is the fixed module header of spec.md §6: the linker
// contract every emitted module depends on.
var externalDecls = []string{
	"declare i32 @getint()",
	"declare i32 @getchar()",
	"declare void @putint(i32)",
	"declare void @putchar(i32)",
	"declare void @putstr(i8*)",
}

// String renders the module to the textual grammar of spec.md §6.
func (m *Module) String() string {
	var b strings.Builder
	m.WriteTo(&b)
	return b.String()
}

// WriteTo renders m to w, matching disasm.go's preference for direct
// fmt.Fprintf calls over a templating library.
func (m *Module) WriteTo(w io.Writer) {
	for _, d := range externalDecls {
		fmt.Fprintln(w, d)
	}
	for _, g := range m.Globals {
		writeGlobal(w, g)
	}
	for _, fn := range m.Functions {
		writeFunction(w, fn)
	}
}

func writeGlobal(w io.Writer, g *GlobalDef) {
	kind := "global"
	if g.Const {
		kind = "constant"
	}
	fmt.Fprintf(w, "@%s = %s %s %s\n", g.Name, kind, irType(g.Type), g.Init.bare())
}

func writeFunction(w io.Writer, fn *Function) {
	fmt.Fprintf(w, "define %s @%s(%s) {\n", irType(fn.Ret), fn.Name, paramList(fn.Params))
	for _, b := range fn.Blocks {
		writeBlock(w, b)
	}
	fmt.Fprintln(w, "}")
}

func paramList(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s %%%s", irType(p.Type), p.Name)
	}
	return strings.Join(parts, ", ")
}

func writeBlock(w io.Writer, b *BasicBlock) {
	fmt.Fprintf(w, "%s:\n", b.Label)
	for _, inst := range b.Insts {
		fmt.Fprintf(w, "    %s\n", renderInst(inst))
	}
}

func renderInst(i Instruction) string {
	switch i.Op {
	case OpAlloca:
		return fmt.Sprintf("%%%s = alloca %s", i.Dest, irType(i.Type))
	case OpLoad:
		return fmt.Sprintf("%%%s = load %s, %s", i.Dest, irType(i.Type), i.Operands[0].operand())
	case OpStore:
		return fmt.Sprintf("store %s, %s", i.Operands[0].operand(), i.Operands[1].operand())
	case OpGEP:
		return renderGEP(i)
	case OpAdd:
		return renderBin(i, "add")
	case OpSub:
		return renderBin(i, "sub")
	case OpMul:
		return renderBin(i, "mul")
	case OpSDiv:
		return renderBin(i, "sdiv")
	case OpSRem:
		return renderBin(i, "srem")
	case OpAnd:
		return renderBin(i, "and")
	case OpOr:
		return renderBin(i, "or")
	case OpICmp:
		return fmt.Sprintf("%%%s = icmp %s %s, %s", i.Dest, i.Cond, i.Operands[0].operand(), i.Operands[1].bare())
	case OpSExt:
		return renderCast(i, "sext")
	case OpZExt:
		return renderCast(i, "zext")
	case OpTrunc:
		return renderCast(i, "trunc")
	case OpBr:
		return fmt.Sprintf("br label %%%s", i.Labels[0])
	case OpCondBr:
		return fmt.Sprintf("br %s, label %%%s, label %%%s", i.Operands[0].operand(), i.Labels[0], i.Labels[1])
	case OpRet:
		return renderRet(i)
	case OpCall:
		return renderCall(i)
	default:
		return "; unknown instruction"
	}
}

func renderGEP(i Instruction) string {
	ptr := i.Operands[0]
	idx := make([]string, 0, len(i.Operands)-1)
	for _, v := range i.Operands[1:] {
		idx = append(idx, "i32 "+v.bare())
	}
	return fmt.Sprintf("%%%s = getelementptr %s, %s, %s", i.Dest, irType(i.Type), ptr.operand(), strings.Join(idx, ", "))
}

func renderBin(i Instruction, mnemonic string) string {
	return fmt.Sprintf("%%%s = %s %s", i.Dest, mnemonic, i.Operands[0].operand()+", "+i.Operands[1].bare())
}

func renderCast(i Instruction, mnemonic string) string {
	src := i.Operands[0]
	return fmt.Sprintf("%%%s = %s %s to %s", i.Dest, mnemonic, src.operand(), irType(i.Type))
}

func renderRet(i Instruction) string {
	if len(i.Operands) == 0 {
		return "ret void"
	}
	return "ret " + i.Operands[0].operand()
}

func renderCall(i Instruction) string {
	args := make([]string, len(i.Operands))
	for j, a := range i.Operands {
		args[j] = a.operand()
	}
	call := fmt.Sprintf("call %s @%s(%s)", irType(i.Type), i.Callee, strings.Join(args, ", "))
	if i.Dest == "" {
		return call
	}
	return fmt.Sprintf("%%%s = %s", i.Dest, call)
}
