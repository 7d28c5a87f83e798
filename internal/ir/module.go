package ir

import (
	"fmt"

	"github.com/FyVoid/blang/internal/types"
)

// GlobalDef is one module-level `@name = (global|constant) T init`
// definition (spec.md §3/§6).
type GlobalDef struct {
	Name  string
	Type  *types.Type
	Const bool
	Init  Value
}

// Module owns the compilation's globals (interleaved constant/variable
// defs, in declaration order) and its functions, plus the current-function
// pointer the generator is appending to (spec.md §3).
type Module struct {
	Globals     []*GlobalDef
	Functions   []*Function
	nextBlockID int
	cur         *Function
}

// NewModule returns an empty module.
func NewModule() *Module { return &Module{} }

// AddGlobal appends g to the module's global list.
func (m *Module) AddGlobal(g *GlobalDef) { m.Globals = append(m.Globals, g) }

// NewFunction opens a new function, appends it to the module, and makes it
// current.
func (m *Module) NewFunction(name string, ret *types.Type, params []Param) *Function {
	fn := &Function{Name: name, Ret: ret, Params: params}
	m.Functions = append(m.Functions, fn)
	m.cur = fn
	return fn
}

// Current returns the function currently being built.
func (m *Module) Current() *Function { return m.cur }

// NewBlock opens a block labeled "<prefix><id>" with a module-global
// monotonic id (spec.md §4.10: "basic-block numbering is module-global"),
// appends it to fn, and makes it fn's current block.
func (m *Module) NewBlock(fn *Function, prefix string) *BasicBlock {
	id := m.nextBlockID
	m.nextBlockID++
	label := blockLabel(prefix, id)
	b := newBlock(label)
	fn.Blocks = append(fn.Blocks, b)
	fn.cur = b
	return b
}

func blockLabel(prefix string, id int) string {
	if prefix == "" {
		prefix = "bb"
	}
	return fmt.Sprintf("%s%d", prefix, id)
}
