package irpass

import (
	"testing"

	"github.com/FyVoid/blang/internal/ir"
	"github.com/FyVoid/blang/internal/types"
)

func labelsOf(fn *ir.Function) []string {
	out := make([]string, len(fn.Blocks))
	for i, b := range fn.Blocks {
		out[i] = b.Label
	}
	return out
}

func TestCoalesce_RemovesSingleEmptyForward(t *testing.T) {
	m := ir.NewModule()
	fn := m.NewFunction("f", types.VoidType(), nil)

	entry := m.NewBlock(fn, "entry")
	empty := m.NewBlock(fn, "empty")
	end := m.NewBlock(fn, "end")

	entry.Br(empty.Label)
	empty.Br(end.Label)
	end.Ret(nil)

	Coalesce(fn)

	if len(fn.Blocks) != 2 {
		t.Fatalf("expected 2 blocks after coalescing, got %d: %v", len(fn.Blocks), labelsOf(fn))
	}
	if fn.Blocks[0].Succs[0] != end.Label {
		t.Errorf("expected entry's successor rewritten to %q, got %q", end.Label, fn.Blocks[0].Succs[0])
	}
	if fn.Blocks[0].Insts[0].Labels[0] != end.Label {
		t.Errorf("expected entry's branch-target text rewritten to %q, got %q", end.Label, fn.Blocks[0].Insts[0].Labels[0])
	}
}

func TestCoalesce_RewritesCondBrTargets(t *testing.T) {
	m := ir.NewModule()
	fn := m.NewFunction("f", types.VoidType(), nil)

	entry := m.NewBlock(fn, "entry")
	emptyT := m.NewBlock(fn, "emptyT")
	emptyF := m.NewBlock(fn, "emptyF")
	end := m.NewBlock(fn, "end")

	entry.CondBr(ir.ConstBool(true), emptyT.Label, emptyF.Label)
	emptyT.Br(end.Label)
	emptyF.Br(end.Label)
	end.Ret(nil)

	Coalesce(fn)

	if len(fn.Blocks) != 2 {
		t.Fatalf("expected 2 blocks (entry, end), got %d: %v", len(fn.Blocks), labelsOf(fn))
	}
	entryBlock := fn.Blocks[0]
	if entryBlock.Succs[0] != end.Label || entryBlock.Succs[1] != end.Label {
		t.Errorf("expected both successors rewritten to %q, got %v", end.Label, entryBlock.Succs)
	}
	if entryBlock.Insts[0].Labels[0] != end.Label || entryBlock.Insts[0].Labels[1] != end.Label {
		t.Errorf("expected both branch-target texts rewritten, got %v", entryBlock.Insts[0].Labels)
	}
}

func TestCoalesce_NonEmptyBlockSurvives(t *testing.T) {
	m := ir.NewModule()
	fn := m.NewFunction("f", types.VoidType(), nil)

	entry := m.NewBlock(fn, "entry")
	body := m.NewBlock(fn, "body")

	entry.Br(body.Label)
	body.Alloca(fn.FreshReg(), types.IntType())
	body.Ret(nil)

	Coalesce(fn)

	if len(fn.Blocks) != 2 {
		t.Fatalf("expected both blocks to survive (body has more than one instruction), got %d", len(fn.Blocks))
	}
}

func TestCoalesce_ChainOfTwoEmptyBlocksOnlyPartiallyCollapses(t *testing.T) {
	// entry -> e1 -> e2 -> end, e1 and e2 both single-instruction forwards.
	// The pass does a single, non-chasing label rewrite (spec.md §4.11's
	// documented limitation): entry ends up pointing at e1's original
	// target e2, not all the way through to end, even though e2 itself was
	// also removed.
	m := ir.NewModule()
	fn := m.NewFunction("f", types.VoidType(), nil)

	entry := m.NewBlock(fn, "entry")
	e1 := m.NewBlock(fn, "e1")
	e2 := m.NewBlock(fn, "e2")
	end := m.NewBlock(fn, "end")

	entry.Br(e1.Label)
	e1.Br(e2.Label)
	e2.Br(end.Label)
	end.Ret(nil)

	Coalesce(fn)

	if len(fn.Blocks) != 2 {
		t.Fatalf("expected entry and end to survive, got %d: %v", len(fn.Blocks), labelsOf(fn))
	}
	if fn.Blocks[0].Succs[0] != e2.Label {
		t.Errorf("expected the documented one-hop rewrite to leave entry pointing at %q, got %q", e2.Label, fn.Blocks[0].Succs[0])
	}
}
