package ir

// BasicBlock owns a label, its ordered instructions, and its successor
// labels (spec.md §3). Succs may list the same label twice for a
// conditional branch whose arms coincide.
type BasicBlock struct {
	Label      string
	Insts      []Instruction
	Succs      []string
	Terminated bool
}

func newBlock(label string) *BasicBlock {
	return &BasicBlock{Label: label}
}
