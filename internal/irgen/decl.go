package irgen

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/consteval"
	"github.com/FyVoid/blang/internal/ir"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/types"
)

// genGlobalDecl lowers a top-level Decl into one interleaved global per
// Def (spec.md §3: "globals (interleaved constant/variable defs)").
func (g *Generator) genGlobalDecl(d *ast.Decl, scope *symbols.Scope) {
	base := ast.ResolveKeyword(d.Keyword)
	for _, def := range d.Defs {
		v := &symbols.Variable{Name: def.Name, Const: d.Const, IsGlobal: true, IRPtr: def.Name}

		if def.ArrLen != nil {
			n := constLength(def.ArrLen, scope)
			v.Type = types.NewArray(base, n)
			scope.DefineVar(v)
			elems := foldArrayElems(def.Init, n, scope, base)
			if d.Const {
				v.HasValue = true
				v.Array = make([]int32, n)
				for i, e := range elems {
					v.Array[i] = int32(e.Imm)
				}
			}
			g.mod.AddGlobal(&ir.GlobalDef{
				Name: def.Name, Type: v.Type, Const: d.Const,
				Init: ir.Array(base, elems),
			})
			continue
		}

		v.Type = base
		scope.DefineVar(v)
		val := foldScalarElem(def.Init, scope)
		if d.Const {
			v.HasValue = true
			v.Scalar = val
		}
		g.mod.AddGlobal(&ir.GlobalDef{
			Name: def.Name, Type: base, Const: d.Const,
			Init: scalarConst(base, val),
		})
	}
}

// genLocalDecl lowers a block-scoped Decl: one alloca per Def, followed by
// its initializer stores (evaluated at runtime, unlike a global's
// compile-time-folded value).
func (g *Generator) genLocalDecl(d *ast.Decl, scope *symbols.Scope) {
	base := ast.ResolveKeyword(d.Keyword)
	for _, def := range d.Defs {
		v := &symbols.Variable{Name: def.Name, Const: d.Const}

		var elemType *types.Type
		if def.ArrLen != nil {
			n := constLength(def.ArrLen, scope)
			v.Type = types.NewArray(base, n)
			elemType = base
			if d.Const {
				v.HasValue = true
				v.Array = make([]int32, n)
				for i, e := range foldArrayElems(def.Init, n, scope, base) {
					v.Array[i] = int32(e.Imm)
				}
			}
		} else {
			v.Type = base
			if d.Const {
				v.HasValue = true
				v.Scalar = foldScalarElem(def.Init, scope)
			}
		}

		dest := g.fn.FreshReg()
		ptr := g.fn.Current().Alloca(dest, v.Type)
		v.IRPtr = "%" + dest
		scope.DefineVar(v)

		g.storeLocalInit(def.Init, ptr, v.Type, elemType, scope)
	}
}

func (g *Generator) storeLocalInit(init ast.Init, ptr ir.Value, declType, elemType *types.Type, scope *symbols.Scope) {
	switch x := init.(type) {
	case nil:
	case *ast.SingleInit:
		val := g.convertTo(g.lowerExpr(x.Value, scope), declType)
		g.fn.Current().Store(val, ptr)
	case *ast.ListInit:
		for i, e := range x.Values {
			if i >= declType.N {
				break
			}
			val := g.convertTo(g.lowerExpr(e, scope), elemType)
			g.storeElement(ptr, declType, elemType, i, val)
		}
	case *ast.StringInit:
		for i := 0; i < len(x.Value) && i < declType.N; i++ {
			g.storeElement(ptr, declType, elemType, i, ir.ConstChar(x.Value[i]))
		}
	}
}

func (g *Generator) storeElement(ptr ir.Value, aggType, elemType *types.Type, index int, val ir.Value) {
	dest := g.fn.FreshReg()
	addr := g.fn.Current().GEP(dest, aggType, ptr, []ir.Value{ir.ConstInt(0), ir.ConstInt(int32(index))}, elemType)
	g.fn.Current().Store(val, addr)
}

func constLength(e ast.Expr, scope *symbols.Scope) int {
	length, ok := consteval.Eval(e, scope)
	if !ok {
		length = -1
	}
	if length < 0 {
		return 0
	}
	return int(length)
}

func scalarConst(base *types.Type, v int32) ir.Value {
	if base.Kind() == types.Char {
		return ir.ConstChar(byte(v))
	}
	return ir.ConstInt(v)
}

func foldScalarElem(init ast.Init, scope *symbols.Scope) int32 {
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

func foldArrayElems(init ast.Init, length int, scope *symbols.Scope, base *types.Type) []ir.Value {
	out := make([]ir.Value, length)
	for i := range out {
		out[i] = scalarConst(base, 0)
	}
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
			out[i] = scalarConst(base, v)
		}
	case *ast.StringInit:
		for i := 0; i < len(x.Value) && i < length; i++ {
			out[i] = scalarConst(base, int32(x.Value[i]))
		}
	}
	return out
}
