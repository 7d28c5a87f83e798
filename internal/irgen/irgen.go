// Package irgen lowers a checked AST into the textual SSA module of
// package ir (spec.md §4.10, C10). It rebuilds its own symbol environment
// by replaying the same registration order internal/semantic uses,
// rather than reusing the analyzer's — mirrored on the teacher's
// Compiler (internal/bytecode/compiler_core.go, compiler_statements.go,
// compiler_expressions.go), which likewise resolves names on its own
// single pass with no separate semantic stage. Diagnostics are assumed
// already reported; a failed lookup here degrades best-effort rather
// than panicking (spec.md §7).
package irgen

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/ir"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/types"
)

// loopLabels is one nesting level's break/continue targets.
type loopLabels struct {
	Step string
	End  string
}

// Generator walks a Program and builds an ir.Module.
type Generator struct {
	mod    *ir.Module
	env    *symbols.Env
	fn     *ir.Function
	curRet *types.Type
	loops  []loopLabels
}

// New returns a Generator with a fresh module and symbol environment.
func New() *Generator {
	return &Generator{mod: ir.NewModule(), env: symbols.NewEnv()}
}

// Generate lowers prog and returns the completed module.
func (g *Generator) Generate(prog *ast.Program) *ir.Module {
	global := g.env.Global()
	for _, item := range prog.Items {
		switch it := item.(type) {
		case *ast.Decl:
			g.genGlobalDecl(it, global)
		case *ast.FuncDef:
			g.genFuncDef(it)
		}
	}
	if prog.Main != nil {
		g.genMain(prog.Main)
	}
	return g.mod
}

func paramType(p *ast.Param) *types.Type {
	t := ast.ResolveKeyword(p.Keyword)
	if p.IsArray {
		return types.NewPointer(t)
	}
	return t
}

func (g *Generator) genFuncDef(fn *ast.FuncDef) {
	global := g.env.Global()
	ret := ast.ResolveKeyword(fn.Keyword)

	params := make([]symbols.Param, len(fn.Params))
	irParams := make([]ir.Param, len(fn.Params))
	for i, p := range fn.Params {
		t := paramType(p)
		params[i] = symbols.Param{Name: p.Name, Type: t}
		irParams[i] = ir.Param{Name: p.Name, Type: t}
	}
	global.DefineFunc(&symbols.Function{Name: fn.Name, Ret: ret, Params: params, IRName: fn.Name})

	g.fn = g.mod.NewFunction(fn.Name, ret, irParams)
	g.curRet = ret
	g.mod.NewBlock(g.fn, "entry")

	body := g.env.NewChild(global)
	g.bindParams(fn.Params, params, body)

	g.genBlock(fn.Body, body)
	g.genImplicitReturn(ret)
}

func (g *Generator) genMain(fn *ast.FuncDef) {
	global := g.env.Global()
	ret := ast.ResolveKeyword(fn.Keyword)
	global.DefineFunc(&symbols.Function{Name: "main", Ret: ret, IRName: "main", IsMain: true})

	g.fn = g.mod.NewFunction("main", ret, nil)
	g.curRet = ret
	g.mod.NewBlock(g.fn, "entry")

	body := g.env.NewChild(global)
	g.genBlock(fn.Body, body)
	g.genImplicitReturn(ret)
}

// bindParams allocas a local slot per parameter and stores the incoming
// named SSA value into it, so the body can address parameters the same
// way as any other local variable.
func (g *Generator) bindParams(astParams []*ast.Param, params []symbols.Param, scope *symbols.Scope) {
	for i, p := range astParams {
		v := &symbols.Variable{Name: p.Name, Type: params[i].Type}
		dest := g.fn.FreshReg()
		ptr := g.fn.Current().Alloca(dest, v.Type)
		g.fn.Current().Store(ir.Register("%"+p.Name, v.Type), ptr)
		v.IRPtr = "%" + dest
		scope.DefineVar(v)
	}
}

// genImplicitReturn appends the function's fallback terminator if its
// current block is not already terminated: an unconditional `ret void`
// for void functions (spec.md §4.10, unconditional), or a zero-valued
// return for non-void functions as a best-effort guard against an
// unterminated block on a malformed program (rule g already flags the
// missing trailing return; this only prevents invalid IR text).
func (g *Generator) genImplicitReturn(ret *types.Type) {
	cur := g.fn.Current()
	if cur.Terminated {
		return
	}
	if ret.Kind() == types.Void {
		cur.Ret(nil)
		return
	}
	zero := ir.ConstInt(0)
	if ret.Kind() == types.Char {
		zero = ir.ConstChar(0)
	}
	cur.Ret(&zero)
}

// varPtrValue returns the Value referencing v's storage location: a
// global reference by name, or a register holding the local alloca's
// pointer.
func (g *Generator) varPtrValue(v *symbols.Variable) ir.Value {
	if v.IsGlobal {
		return ir.GlobalPtr(v.IRPtr, v.Type)
	}
	return ir.Register(v.IRPtr, types.NewPointer(v.Type))
}
