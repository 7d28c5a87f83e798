// Package parser implements the blang recursive-descent parser (spec.md
// §4.5, C5): tokens to AST, with bounded speculative backtracking and
// parse-trace events.
//
// Structurally grounded on the teacher's internal/parser package: an
// immutable TokenCursor for lookahead/backtracking (cursor.go) and a
// heavyweight state snapshot with its save/restore pair for
// whole-production speculation (below). Unlike the teacher, which
// drives expression parsing through a generic Pratt prefix/infix table,
// this parser writes one function per spec.md precedence level
// (LOr/LAnd/Eq/Rel/Add/Mul/Unary/Primary) — the grammar is small and
// fixed, so the generic machinery buys nothing and obscures the ladder
// (see DESIGN.md, "Open Question resolutions").
package parser

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/lexer"
	"github.com/FyVoid/blang/internal/token"
)

// Parser turns a token stream into a Program, accumulating
// diagnostic-with-recovery findings (rules i/j/k) and parse-trace events
// along the way.
type Parser struct {
	cursor   *TokenCursor
	diags    *token.Collector
	trace    *Trace
	lastLine int // line of the most recently consumed token
}

// New constructs a Parser over l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{
		cursor: NewTokenCursor(l),
		diags:  token.NewCollector(),
		trace:  NewTrace(),
	}
}

// Diagnostics returns the i/j/k diagnostics recorded during parsing.
func (p *Parser) Diagnostics() *token.Collector { return p.diags }

// Trace returns the committed parse-trace events.
func (p *Parser) Trace() *Trace { return p.trace }

// state is a heavyweight snapshot used for whole-production speculation:
// cursor position, trace length, and diagnostics length all roll back
// together on failure.
type state struct {
	cursor   *TokenCursor
	traceLen int
	diagsLen int
	lastLine int
}

func (p *Parser) save() state {
	return state{cursor: p.cursor, traceLen: p.trace.Mark(), diagsLen: p.diags.Len(), lastLine: p.lastLine}
}

func (p *Parser) restore(s state) {
	p.cursor = s.cursor
	p.trace.Discard(s.traceLen)
	p.diags.Truncate(s.diagsLen)
	p.lastLine = s.lastLine
}

func (p *Parser) cur() token.Token  { return p.cursor.Current() }
func (p *Parser) peek() token.Token { return p.cursor.Peek(1) }
func (p *Parser) is(t token.Type) bool {
	return p.cursor.Is(t)
}

func (p *Parser) advance() {
	p.lastLine = p.cursor.Current().Pos.Line
	p.cursor = p.cursor.Advance()
}

// accept consumes the current token if it has type t, returning (literal,
// line, true); otherwise returns (_, _, false) without consuming.
func (p *Parser) accept(t token.Type) (string, int, bool) {
	if p.is(t) {
		tok := p.cur()
		p.advance()
		return tok.Literal, tok.Pos.Line, true
	}
	return "", 0, false
}

// expectSemicolon implements the `;` diagnostic-with-recovery point
// (rule i): consumes `;` if present; otherwise records MISSING_SEMICOLON
// at the line of the previously consumed token (spec.md §4.5) and
// continues without consuming anything.
func (p *Parser) expectSemicolon() {
	if _, _, ok := p.accept(token.SEMI); ok {
		return
	}
	p.diags.Add(p.lastLine, token.DiagMissingSemicolon)
}

// expectRParen implements the `)` diagnostic-with-recovery point
// (rule j, "MISSING_BRACE" — historical naming per spec.md §4.5).
func (p *Parser) expectRParen() {
	if _, _, ok := p.accept(token.RPAREN); ok {
		return
	}
	p.diags.Add(p.lastLine, token.DiagMissingBrace)
}

// expectRBracket implements the `]` diagnostic-with-recovery point
// (rule k).
func (p *Parser) expectRBracket() {
	if _, _, ok := p.accept(token.RBRACKET); ok {
		return
	}
	p.diags.Add(p.lastLine, token.DiagMissingSquare)
}

// emit records a committed non-terminal completion into the trace.
func (p *Parser) emit(name string, line int, from int, to int) {
	p.trace.Emit(Event{Name: name, Line: line, FromToken: from, ToToken: to})
}

// ParseProgram parses the whole input as a CompUnit: `(Decl | FuncDef)*
// Main`.
func (p *Parser) ParseProgram() *ast.Program {
	var items []ast.Item
	var main *ast.FuncDef
	line := p.cur().Pos.Line

	for !p.is(token.EOF) {
		if p.isMainAhead() {
			main = p.parseMainDef()
			continue
		}
		item := p.parseTopLevelItem()
		if item == nil {
			// Could not make progress (malformed input past recovery);
			// skip one token to guarantee termination.
			if !p.is(token.EOF) {
				p.advance()
			}
			continue
		}
		items = append(items, item)
	}

	return ast.NewProgram(line, items, main)
}

// isMainAhead reports whether the upcoming tokens are `Type 'main' '('`,
// the only production that can follow a type keyword besides Decl/FuncDef
// (disambiguated by the `main` keyword occupying the identifier slot).
func (p *Parser) isMainAhead() bool {
	if !isTypeKeyword(p.cur().Type) {
		return false
	}
	return p.peek().Type == token.MAIN
}

// parseTopLevelItem speculatively tries FuncDef, falling back to Decl —
// both begin with the same `Type Ident` prefix, so the choice is made by
// whether `(` follows the identifier (spec.md §4.5 "Speculative
// parsing").
func (p *Parser) parseTopLevelItem() ast.Item {
	if fn := p.tryParseFuncDef(); fn != nil {
		return fn
	}
	return p.parseDecl()
}
