package ir

import (
	"fmt"

	"github.com/FyVoid/blang/internal/types"
)

// Param is one function-signature parameter.
type Param struct {
	Name string
	Type *types.Type
}

// Function owns its blocks in insertion order, its parameter list, a
// per-function register counter, and a current-block pointer (spec.md §3).
// Block labels are numbered module-globally, not per function; see
// Module.NewBlock.
type Function struct {
	Name    string
	Ret     *types.Type
	Params  []Param
	Blocks  []*BasicBlock
	nextReg int
	cur     *BasicBlock
}

// FreshReg returns the next monotonic register name for this function,
// dense and strictly increasing from 0 (spec.md §8's register invariant).
func (f *Function) FreshReg() string {
	n := f.nextReg
	f.nextReg++
	return fmt.Sprintf("%d", n)
}

// Current returns the function's current insertion block.
func (f *Function) Current() *BasicBlock { return f.cur }

// SetCurrent redirects subsequent emission to b (used after opening a new
// block, or to resume an earlier one for a join point).
func (f *Function) SetCurrent(b *BasicBlock) { f.cur = b }

// FindBlock returns the block with the given label, or nil.
func (f *Function) FindBlock(label string) *BasicBlock {
	for _, b := range f.Blocks {
		if b.Label == label {
			return b
		}
	}
	return nil
}
