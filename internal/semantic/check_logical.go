package semantic

import (
	"github.com/FyVoid/blang/internal/lexer"
	"github.com/FyVoid/blang/internal/token"
)

// checkMalformedLogicalOps turns the lexer's recorded lone &/| occurrences
// into rule-(a) diagnostics.
func (a *Analyzer) checkMalformedLogicalOps(ops []lexer.MalformedOp) {
	for _, op := range ops {
		switch op.Op {
		case '&':
			a.diags.Add(op.Line, token.DiagLogicalAnd)
		case '|':
			a.diags.Add(op.Line, token.DiagLogicalOr)
		}
	}
}
