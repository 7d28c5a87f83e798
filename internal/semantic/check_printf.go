package semantic

import (
	"strings"

	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/token"
)

// checkPrintf reports rule (l): the format string's %d/%c count must
// equal the argument count.
func (a *Analyzer) checkPrintf(p *ast.PrintfStmt) {
	count := strings.Count(p.Format, "%d") + strings.Count(p.Format, "%c")
	if count != len(p.Args) {
		a.diags.Add(p.Line(), token.DiagPrintfParamCountNoMatch)
	}
}
