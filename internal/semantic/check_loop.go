package semantic

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/token"
)

// checkLoopMisuse reports rule (m): a break/continue reachable from body
// without passing through a for-loop. A for-loop's own body is
// deliberately never descended into here — break/continue there are
// ordinary loop control, not misuse — mirroring BlockChecker's lack of a
// ForStmtNode override in the grounding source.
func (a *Analyzer) checkLoopMisuse(body *ast.Block) {
	for _, item := range body.Items {
		a.checkLoopMisuseStmt(item)
	}
}

func (a *Analyzer) checkLoopMisuseStmt(s ast.Stmt) {
	switch x := s.(type) {
	case *ast.BreakStmt:
		a.diags.Add(x.Line(), token.DiagIterIdentMisuse)
	case *ast.ContinueStmt:
		a.diags.Add(x.Line(), token.DiagIterIdentMisuse)
	case *ast.IfStmt:
		a.checkLoopMisuseStmt(x.Then)
		if x.Else != nil {
			a.checkLoopMisuseStmt(x.Else)
		}
	case *ast.BlockStmt:
		a.checkLoopMisuse(x.Body)
	}
}
