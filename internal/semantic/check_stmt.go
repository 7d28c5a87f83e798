package semantic

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/token"
)

// checkBlock checks every item of b in scope.
func (a *Analyzer) checkBlock(b *ast.Block, scope *symbols.Scope) {
	for _, item := range b.Items {
		a.checkStmt(item, scope)
	}
}

// checkStmt dispatches a single block item. A nested `{...}` opens a new
// child scope (BlockStmtNode in the grounding source); a bare function or
// main body does not get an extra scope layer beyond its parameter scope.
func (a *Analyzer) checkStmt(s ast.Stmt, scope *symbols.Scope) {
	switch x := s.(type) {
	case *ast.Decl:
		a.checkDecl(x, scope)
	case *ast.AssignStmt:
		a.checkAssign(x, scope)
	case *ast.ExprStmt:
		a.checkExpr(x.X, scope)
	case *ast.BlockStmt:
		child := a.env.NewChild(scope)
		a.checkBlock(x.Body, child)
	case *ast.IfStmt:
		a.checkExpr(x.Cond, scope)
		a.checkStmt(x.Then, scope)
		if x.Else != nil {
			a.checkStmt(x.Else, scope)
		}
	case *ast.ForStmt:
		if x.Init != nil {
			a.checkStmt(x.Init, scope)
		}
		if x.Cond != nil {
			a.checkExpr(x.Cond, scope)
		}
		if x.Step != nil {
			a.checkStmt(x.Step, scope)
		}
		a.checkStmt(x.Body, scope)
	case *ast.ReturnStmt:
		if x.Value != nil {
			a.checkExpr(x.Value, scope)
		}
	case *ast.PrintfStmt:
		a.checkPrintf(x)
		for _, arg := range x.Args {
			a.checkExpr(arg, scope)
		}
	}
}

// checkAssign reports const-modification (rule h) and resolves both
// sides, skipping the pseudo-calls getint()/getchar() which are not real
// function symbols.
func (a *Analyzer) checkAssign(s *ast.AssignStmt, scope *symbols.Scope) {
	if v, ok := scope.GetVar(s.Target.Name); ok && v.Const {
		a.diags.Add(s.Target.Line(), token.DiagConstModify)
	}
	a.checkLValue(s.Target, scope)
	if !isInputRead(s.Rhs) {
		a.checkExpr(s.Rhs, scope)
	}
}
