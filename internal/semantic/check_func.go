package semantic

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/token"
	"github.com/FyVoid/blang/internal/types"
)

// checkFuncDef registers fn's signature in the global scope (rule b on a
// duplicate name), opens its parameter scope, and checks its body.
// Functions are registered and checked strictly in source order — a call
// to a function defined later in the file resolves as undefined, per
// the single left-to-right pass the grounding source performs.
func (a *Analyzer) checkFuncDef(fn *ast.FuncDef) {
	global := a.env.Global()
	ret := ast.ResolveKeyword(fn.Keyword)

	params := make([]symbols.Param, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = symbols.Param{Name: p.Name, Type: paramType(p)}
	}
	if !global.DefineFunc(&symbols.Function{Name: fn.Name, Ret: ret, Params: params}) {
		a.diags.Add(fn.Line(), token.DiagIdentRedef)
	}

	body := a.env.NewChild(global)
	for i, p := range fn.Params {
		if !body.DefineVar(&symbols.Variable{Name: p.Name, Type: params[i].Type}) {
			a.diags.Add(p.Line(), token.DiagIdentRedef)
		}
	}

	a.checkBlock(fn.Body, body)
	a.checkLoopMisuse(fn.Body)
	a.checkReturnCoverage(fn.Body, ret)
}

// checkMain registers `main` (never callable — the grammar keeps MAIN a
// distinct token from IDENT) and checks its body. Unlike an ordinary
// function, main's trailing-return requirement does not depend on its
// declared type (ReturnChecker::visit(MainNode), grounding source).
func (a *Analyzer) checkMain(fn *ast.FuncDef) {
	global := a.env.Global()
	global.DefineFunc(&symbols.Function{Name: "main", Ret: ast.ResolveKeyword(fn.Keyword), IsMain: true})

	body := a.env.NewChild(global)
	a.checkBlock(fn.Body, body)
	a.checkLoopMisuse(fn.Body)
	a.checkTrailingReturn(fn.Body)
}

func paramType(p *ast.Param) *types.Type {
	t := ast.ResolveKeyword(p.Keyword)
	if p.IsArray {
		return types.NewPointer(t)
	}
	return t
}
