// Package irpass implements the empty-block coalescing pass of spec.md
// §4.11 (C11). There is no teacher analog: internal/bytecode/optimizer.go
// folds constants over bytecode, a different target and a different
// transform; this pass is grounded directly in spec.md's own description
// (see DESIGN.md).
package irpass

import "github.com/FyVoid/blang/internal/ir"

// Coalesce removes every block in fn other than the entry block
// (fn.Blocks[0]) that contains exactly one instruction, an unconditional
// branch to some label L, rewriting every other block's branch targets
// that pointed at the removed block to L instead. The entry block is
// always kept. It is a single, fixpoint-free pass in insertion order: a chain
// of more than one empty block in a row is only partially collapsed,
// matching spec.md §4.11's documented limitation verbatim.
func Coalesce(fn *ir.Function) {
	removed := map[string]string{} // removed label -> its replacement L
	kept := fn.Blocks[:0]

	for i, b := range fn.Blocks {
		if target, ok := emptyBranchTarget(b); ok && i > 0 {
			removed[b.Label] = target
			continue
		}
		kept = append(kept, b)
	}
	fn.Blocks = kept

	for _, b := range fn.Blocks {
		for i, s := range b.Succs {
			if target, ok := removed[s]; ok {
				b.Succs[i] = target
			}
		}
		rewriteBranchLabels(b, removed)
	}
}

// emptyBranchTarget reports whether b is exactly one unconditional branch,
// returning its target label.
func emptyBranchTarget(b *ir.BasicBlock) (string, bool) {
	if len(b.Insts) != 1 {
		return "", false
	}
	inst := b.Insts[0]
	if inst.Op != ir.OpBr {
		return "", false
	}
	return inst.Labels[0], true
}

// rewriteBranchLabels patches a block's own terminator label operands so
// the printed IR matches the rewritten Succs list.
func rewriteBranchLabels(b *ir.BasicBlock, removed map[string]string) {
	if len(b.Insts) == 0 {
		return
	}
	last := &b.Insts[len(b.Insts)-1]
	for i, l := range last.Labels {
		if target, ok := removed[l]; ok {
			last.Labels[i] = target
		}
	}
}
