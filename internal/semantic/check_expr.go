package semantic

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/token"
)

// checkExpr walks every expression subtree the program can contain,
// resolving identifiers (rule c) and, for calls, parameter count/type
// (rules d/e). Grounded on SyntaxChecker's dispatch across
// BinaryExpNode/UnaryExpNode/PrimaryExpNode/LValNode.
func (a *Analyzer) checkExpr(e ast.Expr, scope *symbols.Scope) {
	switch x := e.(type) {
	case *ast.BinaryExpr:
		a.checkExpr(x.Left, scope)
		a.checkExpr(x.Right, scope)
	case *ast.UnaryExpr:
		if x.IsCall() {
			a.checkCall(x, scope)
			return
		}
		a.checkExpr(x.Operand, scope)
	case *ast.ParenExpr:
		a.checkExpr(x.Inner, scope)
	case *ast.LValue:
		a.checkLValue(x, scope)
	}
}

// checkLValue resolves an lvalue's identifier (rule c) and, if
// subscripted, its index expression.
func (a *Analyzer) checkLValue(lv *ast.LValue, scope *symbols.Scope) {
	if _, ok := scope.GetVar(lv.Name); !ok {
		a.diags.Add(lv.Line(), token.DiagIdentUndef)
	}
	if lv.Index != nil {
		a.checkExpr(lv.Index, scope)
	}
}

// isInputRead reports whether e is the pseudo-call getint()/getchar(),
// which resolves outside the function symbol table (it is lowered
// directly by the IR generator, not looked up as a user function).
func isInputRead(e ast.Expr) bool {
	u, ok := e.(*ast.UnaryExpr)
	return ok && u.IsCall() && (u.Callee == "getint" || u.Callee == "getchar")
}
