package semantic

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/token"
	"github.com/FyVoid/blang/internal/types"
)

// checkCall resolves a call's function identifier (rule c), then its
// argument count (rule d) and, per argument, its type (rule e).
// Grounded on IdentChecker::visit(UnaryExpNode) + ParamChecker.
func (a *Analyzer) checkCall(call *ast.UnaryExpr, scope *symbols.Scope) {
	fn, ok := scope.GetFunc(call.Callee)
	if !ok {
		a.diags.Add(call.Line(), token.DiagIdentUndef)
	} else if len(fn.Params) != len(call.Args) {
		a.diags.Add(call.Line(), token.DiagFuncParamCountNotMatch)
	} else {
		for i, param := range fn.Params {
			if !a.paramTypeMatches(param, call.Args[i], scope) {
				a.diags.Add(call.Line(), token.DiagFuncParamTypeNotMatch)
			}
		}
	}

	for _, arg := range call.Args {
		a.checkExpr(arg, scope)
	}
}

func (a *Analyzer) paramTypeMatches(param symbols.Param, arg ast.Expr, scope *symbols.Scope) bool {
	if param.Type.Kind() == types.Pointer {
		return assertPointerArg(arg, param.Type, scope)
	}
	return assertValueArg(arg, scope)
}

// assertValueArg mirrors ValueAssertChecker: an argument is valid for a
// scalar parameter unless it is a bare array identifier used without a
// subscript.
func assertValueArg(e ast.Expr, scope *symbols.Scope) bool {
	switch x := e.(type) {
	case *ast.LValue:
		v, ok := scope.GetVar(x.Name)
		if !ok {
			return true // already reported by rule c; don't cascade
		}
		if v.Type.Kind() == types.Array && x.Index == nil {
			return false
		}
		return true
	case *ast.ParenExpr:
		return assertValueArg(x.Inner, scope)
	case *ast.UnaryExpr:
		if x.IsCall() {
			return true // a call always yields a scalar value
		}
		return assertValueArg(x.Operand, scope)
	case *ast.BinaryExpr:
		return assertValueArg(x.Left, scope) && assertValueArg(x.Right, scope)
	default:
		return true
	}
}

// assertPointerArg mirrors PtrAssertChecker: an argument is valid for a
// pointer (array-decayed) parameter only if it resolves to a bare array
// identifier whose element type matches.
func assertPointerArg(e ast.Expr, paramType *types.Type, scope *symbols.Scope) bool {
	elem := types.ElementType(paramType)
	switch x := e.(type) {
	case *ast.LValue:
		v, ok := scope.GetVar(x.Name)
		if !ok {
			return true
		}
		if v.Type.Kind() != types.Array {
			return false
		}
		if x.Index != nil {
			return false
		}
		return types.Same(types.ElementType(v.Type), elem)
	case *ast.ParenExpr:
		return assertPointerArg(x.Inner, paramType, scope)
	case *ast.UnaryExpr:
		if x.IsCall() {
			return false // a call result is a value, never an array
		}
		return assertPointerArg(x.Operand, paramType, scope)
	case *ast.BinaryExpr:
		return assertPointerArg(x.Left, paramType, scope) && assertPointerArg(x.Right, paramType, scope)
	default:
		return false
	}
}
