package irgen

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/ir"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/types"
)

// isInputRead reports whether e is the getint()/getchar() pseudo-call,
// which bypasses ordinary function-symbol resolution (internal/semantic
// has the same special case for the same reason).
func isInputRead(e ast.Expr) bool {
	u, ok := e.(*ast.UnaryExpr)
	return ok && u.IsCall() && (u.Callee == "getint" || u.Callee == "getchar")
}

func (g *Generator) lowerInputRead(u *ast.UnaryExpr) ir.Value {
	dest := g.fn.FreshReg()
	return g.fn.Current().Call(dest, types.IntType(), u.Callee, true, nil)
}

// lowerCall lowers a user function call or an input-read pseudo-call.
// Pointer-shaped parameters receive the argument's value unconverted (an
// array-without-index lvalue already decays to the right pointer type);
// scalar parameters get the usual implicit conversion.
func (g *Generator) lowerCall(call *ast.UnaryExpr, scope *symbols.Scope) ir.Value {
	if call.Callee == "getint" || call.Callee == "getchar" {
		return g.lowerInputRead(call)
	}

	fn, ok := scope.GetFunc(call.Callee)
	if !ok {
		return ir.ConstInt(0)
	}

	args := make([]ir.Value, len(call.Args))
	for i, a := range call.Args {
		v := g.lowerExpr(a, scope)
		if i < len(fn.Params) && fn.Params[i].Type.Kind() != types.Pointer {
			v = g.convertTo(v, fn.Params[i].Type)
		}
		args[i] = v
	}

	if fn.Ret.Kind() == types.Void {
		g.fn.Current().Call("", types.VoidType(), fn.IRName, false, args)
		return ir.Value{}
	}
	dest := g.fn.FreshReg()
	return g.fn.Current().Call(dest, fn.Ret, fn.IRName, false, args)
}
