package irgen

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/ir"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/types"
)

// lowerExpr emits e into the current block and returns its result value.
func (g *Generator) lowerExpr(e ast.Expr, scope *symbols.Scope) ir.Value {
	switch x := e.(type) {
	case *ast.IntLit:
		return ir.ConstInt(x.Value)
	case *ast.CharLit:
		return ir.ConstChar(x.Value)
	case *ast.ParenExpr:
		return g.lowerExpr(x.Inner, scope)
	case *ast.LValue:
		return g.loadLValue(x, scope)
	case *ast.UnaryExpr:
		if x.IsCall() {
			return g.lowerCall(x, scope)
		}
		return g.lowerUnary(x, scope)
	case *ast.BinaryExpr:
		return g.lowerBinary(x, scope)
	default:
		return ir.Value{}
	}
}

// loadLValue resolves an lvalue to its runtime value. An array identifier
// used without a subscript decays to a pointer to its first element
// (spec.md §4.10's lvalue rules) instead of being loaded.
func (g *Generator) loadLValue(lv *ast.LValue, scope *symbols.Scope) ir.Value {
	v, ok := scope.GetVar(lv.Name)
	if !ok {
		return ir.ConstInt(0)
	}
	if v.Type.Kind() == types.Array && lv.Index == nil {
		addr, _ := g.lvalueAddr(lv, scope)
		return addr
	}
	addr, elem := g.lvalueAddr(lv, scope)
	dest := g.fn.FreshReg()
	return g.fn.Current().Load(dest, elem, addr)
}

// lvalueAddr returns the address of lv's storage and the type stored
// there. Arrays GEP [0, idx] (or [0, 0] when undecayed); pointer
// parameters load the pointer first, then GEP [idx]; scalars return their
// own alloca/global pointer directly.
func (g *Generator) lvalueAddr(lv *ast.LValue, scope *symbols.Scope) (ir.Value, *types.Type) {
	v, ok := scope.GetVar(lv.Name)
	if !ok {
		return ir.Value{}, types.IntType()
	}
	ptr := g.varPtrValue(v)

	switch v.Type.Kind() {
	case types.Array:
		elem := types.ElementType(v.Type)
		idx := ir.ConstInt(0)
		if lv.Index != nil {
			idx = g.toI32(g.lowerExpr(lv.Index, scope))
		}
		dest := g.fn.FreshReg()
		addr := g.fn.Current().GEP(dest, v.Type, ptr, []ir.Value{ir.ConstInt(0), idx}, elem)
		return addr, elem
	case types.Pointer:
		if lv.Index == nil {
			return ptr, v.Type
		}
		elem := types.ElementType(v.Type)
		loadDest := g.fn.FreshReg()
		loaded := g.fn.Current().Load(loadDest, v.Type, ptr)
		idx := g.toI32(g.lowerExpr(lv.Index, scope))
		dest := g.fn.FreshReg()
		addr := g.fn.Current().GEP(dest, elem, loaded, []ir.Value{idx}, elem)
		return addr, elem
	default:
		return ptr, v.Type
	}
}

func (g *Generator) lowerUnary(x *ast.UnaryExpr, scope *symbols.Scope) ir.Value {
	v := g.lowerExpr(x.Operand, scope)
	switch x.Op {
	case "", "+":
		return v
	case "-":
		v32 := g.toI32(v)
		dest := g.fn.FreshReg()
		return g.fn.Current().BinOp(ir.OpSub, dest, ir.ConstInt(0), v32)
	case "!":
		b := g.toBool(v)
		dest := g.fn.FreshReg()
		return g.fn.Current().ICmp(dest, ir.CondEq, b, ir.ConstBool(false))
	default:
		return v
	}
}

func (g *Generator) lowerBinary(x *ast.BinaryExpr, scope *symbols.Scope) ir.Value {
	switch x.Op {
	case "&&":
		return g.lowerLogicalAnd(x, scope)
	case "||":
		return g.lowerLogicalOr(x, scope)
	}

	l := g.toI32(g.lowerExpr(x.Left, scope))
	r := g.toI32(g.lowerExpr(x.Right, scope))
	dest := g.fn.FreshReg()
	switch x.Op {
	case "+":
		return g.fn.Current().BinOp(ir.OpAdd, dest, l, r)
	case "-":
		return g.fn.Current().BinOp(ir.OpSub, dest, l, r)
	case "*":
		return g.fn.Current().BinOp(ir.OpMul, dest, l, r)
	case "/":
		return g.fn.Current().BinOp(ir.OpSDiv, dest, l, r)
	case "%":
		return g.fn.Current().BinOp(ir.OpSRem, dest, l, r)
	case "<":
		return g.fn.Current().ICmp(dest, ir.CondSlt, l, r)
	case ">":
		return g.fn.Current().ICmp(dest, ir.CondSgt, l, r)
	case "<=":
		return g.fn.Current().ICmp(dest, ir.CondSle, l, r)
	case ">=":
		return g.fn.Current().ICmp(dest, ir.CondSge, l, r)
	case "==":
		return g.fn.Current().ICmp(dest, ir.CondEq, l, r)
	case "!=":
		return g.fn.Current().ICmp(dest, ir.CondNe, l, r)
	default:
		return ir.Value{}
	}
}

// lowerLogicalAnd implements spec.md §4.10's short-circuit lowering for
// `&&`: materializes the result through an i1 alloca rather than a phi.
func (g *Generator) lowerLogicalAnd(x *ast.BinaryExpr, scope *symbols.Scope) ir.Value {
	entry := g.fn.Current()
	slotDest := g.fn.FreshReg()
	slot := entry.Alloca(slotDest, types.BoolType())

	lv := g.toBool(g.lowerExpr(x.Left, scope))

	rightBlock := g.mod.NewBlock(g.fn, "land_rhs")
	trueBlock := g.mod.NewBlock(g.fn, "land_true")
	falseBlock := g.mod.NewBlock(g.fn, "land_false")
	endBlock := g.mod.NewBlock(g.fn, "land_end")

	entry.CondBr(lv, rightBlock.Label, falseBlock.Label)

	g.fn.SetCurrent(rightBlock)
	rv := g.toBool(g.lowerExpr(x.Right, scope))
	g.fn.Current().CondBr(rv, trueBlock.Label, falseBlock.Label)

	trueBlock.Store(ir.ConstBool(true), slot)
	trueBlock.Br(endBlock.Label)

	falseBlock.Store(ir.ConstBool(false), slot)
	falseBlock.Br(endBlock.Label)

	g.fn.SetCurrent(endBlock)
	dest := g.fn.FreshReg()
	return endBlock.Load(dest, types.BoolType(), slot)
}

// lowerLogicalOr is the `||` symmetric counterpart: short-circuits to true
// instead of to false.
func (g *Generator) lowerLogicalOr(x *ast.BinaryExpr, scope *symbols.Scope) ir.Value {
	entry := g.fn.Current()
	slotDest := g.fn.FreshReg()
	slot := entry.Alloca(slotDest, types.BoolType())

	lv := g.toBool(g.lowerExpr(x.Left, scope))

	rightBlock := g.mod.NewBlock(g.fn, "lor_rhs")
	trueBlock := g.mod.NewBlock(g.fn, "lor_true")
	falseBlock := g.mod.NewBlock(g.fn, "lor_false")
	endBlock := g.mod.NewBlock(g.fn, "lor_end")

	entry.CondBr(lv, trueBlock.Label, rightBlock.Label)

	g.fn.SetCurrent(rightBlock)
	rv := g.toBool(g.lowerExpr(x.Right, scope))
	g.fn.Current().CondBr(rv, trueBlock.Label, falseBlock.Label)

	trueBlock.Store(ir.ConstBool(true), slot)
	trueBlock.Br(endBlock.Label)

	falseBlock.Store(ir.ConstBool(false), slot)
	falseBlock.Br(endBlock.Label)

	g.fn.SetCurrent(endBlock)
	dest := g.fn.FreshReg()
	return endBlock.Load(dest, types.BoolType(), slot)
}

// toI32 promotes v to i32: i8 sign-extends, i1 zero-extends, i32 passes
// through (spec.md §4.10).
func (g *Generator) toI32(v ir.Value) ir.Value {
	switch v.Type.Kind() {
	case types.Int:
		return v
	case types.Char:
		dest := g.fn.FreshReg()
		return g.fn.Current().Cast(ir.OpSExt, dest, v, types.IntType())
	case types.Bool:
		dest := g.fn.FreshReg()
		return g.fn.Current().Cast(ir.OpZExt, dest, v, types.IntType())
	default:
		return v
	}
}

// toBool reduces v to i1: already-i1 values pass through; others compare
// `!= 0` at their own width.
func (g *Generator) toBool(v ir.Value) ir.Value {
	if v.Type.Kind() == types.Bool {
		return v
	}
	zero := ir.ConstInt(0)
	if v.Type.Kind() == types.Char {
		zero = ir.ConstChar(0)
	}
	dest := g.fn.FreshReg()
	return g.fn.Current().ICmp(dest, ir.CondNe, v, zero)
}

// convertTo converts v to target per spec.md §4.10's assignment/return
// rule: sext i8->i32, trunc i32->i8, zext i1->i32/i8 for a boolean result
// stored into a scalar variable.
func (g *Generator) convertTo(v ir.Value, target *types.Type) ir.Value {
	if v.Type == target {
		return v
	}
	switch target.Kind() {
	case types.Int:
		return g.toI32(v)
	case types.Char:
		if v.Type.Kind() == types.Int {
			dest := g.fn.FreshReg()
			return g.fn.Current().Cast(ir.OpTrunc, dest, v, types.CharType())
		}
		if v.Type.Kind() == types.Bool {
			dest := g.fn.FreshReg()
			return g.fn.Current().Cast(ir.OpZExt, dest, v, types.CharType())
		}
		return v
	default:
		return v
	}
}
