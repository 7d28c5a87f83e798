package semantic

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/consteval"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/token"
	"github.com/FyVoid/blang/internal/types"
)

// checkDecl registers every Def in d and checks the identifier/call
// references inside their array-length and initializer expressions.
// Grounded on DefChecker::visit(DefNode) + SyntaxChecker::visit(DeclNode):
// registration happens before the sub-expression walk, so a def is
// visible to its own initializer (a quirk carried over faithfully).
func (a *Analyzer) checkDecl(d *ast.Decl, scope *symbols.Scope) {
	base := ast.ResolveKeyword(d.Keyword)
	for _, def := range d.Defs {
		a.defineVar(def, base, d.Const, scope)
		if def.ArrLen != nil {
			a.checkExpr(def.ArrLen, scope)
		}
		a.checkInit(def.Init, scope)
	}
}

func (a *Analyzer) checkInit(init ast.Init, scope *symbols.Scope) {
	switch x := init.(type) {
	case *ast.SingleInit:
		a.checkExpr(x.Value, scope)
	case *ast.ListInit:
		for _, v := range x.Values {
			a.checkExpr(v, scope)
		}
	}
}

// defineVar builds the Variable symbol for def (folding its compile-time
// value when const, per DefChecker::getInitVal) and registers it,
// reporting rule (b) on a duplicate name.
func (a *Analyzer) defineVar(def *ast.Def, base *types.Type, isConst bool, scope *symbols.Scope) {
	v := &symbols.Variable{Name: def.Name, Const: isConst, IsGlobal: scope.IsGlobal()}

	if def.ArrLen != nil {
		length, ok := consteval.Eval(def.ArrLen, scope)
		if !ok {
			length = -1
		}
		v.Type = types.NewArray(base, int(length))
		if isConst {
			v.HasValue = true
			v.Array = a.foldArrayInit(def.Init, int(length), scope)
		}
	} else {
		v.Type = base
		if isConst {
			v.HasValue = true
			v.Scalar = a.foldScalarInit(def.Init, scope)
		}
	}

	if !scope.DefineVar(v) {
		a.diags.Add(def.Line(), token.DiagIdentRedef)
	}
}

func (a *Analyzer) foldScalarInit(init ast.Init, scope *symbols.Scope) int32 {
	s, ok := init.(*ast.SingleInit)
	if !ok {
		return 0
	}
	v, ok := consteval.Eval(s.Value, scope)
	if !ok {
		return -1
	}
	return v
}

// foldArrayInit evaluates each element of a brace-list or string
// initializer into a fixed-size int32 slice, zero-padded past the
// supplied values (DefChecker copies only min(length, values), leaving
// the remainder at its zero value).
func (a *Analyzer) foldArrayInit(init ast.Init, length int, scope *symbols.Scope) []int32 {
	out := make([]int32, max0(length))
	switch x := init.(type) {
	case *ast.ListInit:
		for i, e := range x.Values {
			if i >= length {
				break
			}
			v, ok := consteval.Eval(e, scope)
			if !ok {
				v = -1
			}
			out[i] = v
		}
	case *ast.StringInit:
		for i := 0; i < len(x.Value) && i < length; i++ {
			out[i] = int32(x.Value[i])
		}
	}
	return out
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
