// Package semantic implements blang's semantic analysis (spec.md §4.8,
// C8): scope-building, identifier resolution, and the per-rule
// diagnostics a–m. There is no visitor; Analyzer type-switches over the
// concrete ast nodes directly, one file per rule group, mirroring
// _examples/original_source/include/syntax_checker.hpp's
// DefChecker/IdentChecker/ParamChecker/ReturnChecker/AssignChecker/
// PrintfChecker/BlockChecker split.
package semantic

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/lexer"
	"github.com/FyVoid/blang/internal/symbols"
	"github.com/FyVoid/blang/internal/token"
)

// Analyzer walks a parsed Program, building the symbol environment and
// accumulating diagnostics.
type Analyzer struct {
	env   *symbols.Env
	diags *token.Collector
}

// New returns an Analyzer with a fresh symbol environment.
func New() *Analyzer {
	return &Analyzer{env: symbols.NewEnv(), diags: token.NewCollector()}
}

// Env returns the built symbol environment (valid after Check returns).
func (a *Analyzer) Env() *symbols.Env { return a.env }

// Diagnostics returns the rule a/b/c/d/e/f/g/h/l/m findings.
func (a *Analyzer) Diagnostics() *token.Collector { return a.diags }

// Check analyzes prog, using malformed to source rule-(a) diagnostics
// (the lexer records malformed &/| occurrences; the semantic layer is
// where they become diagnostics, per spec.md §4.8).
func (a *Analyzer) Check(prog *ast.Program, malformed []lexer.MalformedOp) {
	a.checkMalformedLogicalOps(malformed)

	global := a.env.Global()
	for _, item := range prog.Items {
		switch it := item.(type) {
		case *ast.Decl:
			a.checkDecl(it, global)
		case *ast.FuncDef:
			a.checkFuncDef(it)
		}
	}
	if prog.Main != nil {
		a.checkMain(prog.Main)
	}
}
