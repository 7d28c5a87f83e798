// Package consteval folds constant expressions over the symbol
// environment (spec.md §4.9 "Constant evaluation", C7). Grounded on
// _examples/original_source/include/evaluator.hpp: an internal failure
// (non-constant operand) is caught at the call boundary and degraded to a
// sentinel, never propagated further.
package consteval

import (
	"fmt"

	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/symbols"
)

// errNotConstant is an internal precondition-violation sentinel (spec.md
// §7 class 2): it never escapes Eval.
var errNotConstant = fmt.Errorf("not a constant expression")

// Eval attempts to fold expr to a compile-time int32 value using scope for
// symbol lookups. ok is false iff expr (or one of its subexpressions) is
// not constant-evaluable; callers that need a length-like value should
// substitute -1, per spec.md's documented sentinel behavior.
func Eval(expr ast.Expr, scope *symbols.Scope) (value int32, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if r == errNotConstant {
				value, ok = -1, false
				return
			}
			panic(r)
		}
	}()
	return eval(expr, scope), true
}

func eval(expr ast.Expr, scope *symbols.Scope) int32 {
	switch e := expr.(type) {
	case *ast.IntLit:
		return e.Value
	case *ast.CharLit:
		return int32(e.Value)
	case *ast.ParenExpr:
		return eval(e.Inner, scope)
	case *ast.UnaryExpr:
		return evalUnary(e, scope)
	case *ast.BinaryExpr:
		return evalBinary(e, scope)
	case *ast.LValue:
		return evalLValue(e, scope)
	default:
		panic(errNotConstant)
	}
}

func evalUnary(e *ast.UnaryExpr, scope *symbols.Scope) int32 {
	if e.IsCall() {
		panic(errNotConstant) // function results are never constant
	}
	v := eval(e.Operand, scope)
	switch e.Op {
	case "", "+":
		return v
	case "-":
		return -v
	case "!":
		if v == 0 {
			return 1
		}
		return 0
	default:
		panic(errNotConstant)
	}
}

func evalBinary(e *ast.BinaryExpr, scope *symbols.Scope) int32 {
	l := eval(e.Left, scope)
	r := eval(e.Right, scope)
	switch e.Op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		if r == 0 {
			panic(errNotConstant)
		}
		return truncDiv(l, r)
	case "%":
		if r == 0 {
			panic(errNotConstant)
		}
		return truncMod(l, r)
	case "<":
		return boolInt(l < r)
	case ">":
		return boolInt(l > r)
	case "<=":
		return boolInt(l <= r)
	case ">=":
		return boolInt(l >= r)
	case "==":
		return boolInt(l == r)
	case "!=":
		return boolInt(l != r)
	case "&&":
		return boolInt(l != 0 && r != 0)
	case "||":
		return boolInt(l != 0 || r != 0)
	default:
		panic(errNotConstant)
	}
}

func evalLValue(e *ast.LValue, scope *symbols.Scope) int32 {
	v, ok := scope.GetVar(e.Name)
	if !ok || !v.Const || !v.HasValue {
		panic(errNotConstant)
	}
	if e.Index == nil {
		if v.Array != nil {
			panic(errNotConstant) // whole-array reference is not a scalar constant
		}
		return v.Scalar
	}
	idx := eval(e.Index, scope)
	if idx < 0 || int(idx) >= len(v.Array) {
		panic(errNotConstant)
	}
	return v.Array[idx]
}

// truncDiv implements two's-complement 32-bit division truncating toward
// zero (Go's / already does this for int32, but the function documents
// the spec law explicitly).
func truncDiv(a, b int32) int32 { return a / b }

// truncMod takes the sign of the dividend, matching Go's % for int32.
func truncMod(a, b int32) int32 { return a % b }

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
