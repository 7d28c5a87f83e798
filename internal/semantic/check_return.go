package semantic

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/token"
	"github.com/FyVoid/blang/internal/types"
)

// checkReturnCoverage implements rules (f)/(g). A void function is
// scanned recursively for any `return <exp>;` (rule f); a non-void
// function is never scanned recursively for rule f — only its last block
// item is checked for a trailing `return <exp>;` (rule g). Grounded on
// ReturnChecker::visit(FuncDefNode), which branches the same way.
func (a *Analyzer) checkReturnCoverage(body *ast.Block, ret *types.Type) {
	if ret.Kind() == types.Void {
		a.checkVoidReturnsBlock(body)
		return
	}
	a.checkTrailingReturn(body)
}

// checkTrailingReturn reports rule (g) unless body's last item is a
// `return` carrying a value.
func (a *Analyzer) checkTrailingReturn(body *ast.Block) {
	if len(body.Items) == 0 {
		a.diags.Add(body.Line(), token.DiagFuncNoReturn)
		return
	}
	last := body.Items[len(body.Items)-1]
	ret, ok := last.(*ast.ReturnStmt)
	if !ok || ret.Value == nil {
		a.diags.Add(body.Line(), token.DiagFuncNoReturn)
	}
}

func (a *Analyzer) checkVoidReturnsBlock(b *ast.Block) {
	for _, item := range b.Items {
		a.checkVoidReturnsStmt(item)
	}
}

func (a *Analyzer) checkVoidReturnsStmt(s ast.Stmt) {
	switch x := s.(type) {
	case *ast.ReturnStmt:
		if x.Value != nil {
			a.diags.Add(x.Line(), token.DiagVoidFuncReturn)
		}
	case *ast.IfStmt:
		a.checkVoidReturnsStmt(x.Then)
		if x.Else != nil {
			a.checkVoidReturnsStmt(x.Else)
		}
	case *ast.ForStmt:
		a.checkVoidReturnsStmt(x.Body)
	case *ast.BlockStmt:
		a.checkVoidReturnsBlock(x.Body)
	}
}
