package parser

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/token"
)

// parseBlock parses `'{' Stmt* '}'`. The caller has already confirmed
// `{` is current.
func (p *Parser) parseBlock() *ast.Block {
	line := p.cur().Pos.Line
	from := p.cursor.Mark()
	p.advance() // consume '{'

	var items []ast.Stmt
	for !p.is(token.RBRACE) && !p.is(token.EOF) {
		stmt := p.parseStmt()
		if stmt == nil {
			p.advance() // force progress on unrecognized input
			continue
		}
		items = append(items, stmt)
	}
	p.expectRBraceLiteral()

	block := ast.NewBlock(line, items)
	p.emit("Block", line, from.index, p.cursor.Mark().index)
	return block
}

// parseStmt dispatches on the lead token per `Stmt → Assign | ExpStmt |
// Block | If | For | 'break' ';' | 'continue' ';' | Return | Printf`.
// Declarations are also valid block items (spec.md §4.8).
func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur().Type {
	case token.LBRACE:
		return ast.NewBlockStmt(p.cur().Pos.Line, p.parseBlock())
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.BREAK:
		line := p.cur().Pos.Line
		p.advance()
		p.expectSemicolon()
		return ast.NewBreakStmt(line)
	case token.CONTINUE:
		line := p.cur().Pos.Line
		p.advance()
		p.expectSemicolon()
		return ast.NewContinueStmt(line)
	case token.RETURN:
		return p.parseReturn()
	case token.PRINTF:
		return p.parsePrintf()
	case token.CONST:
		return p.parseDeclStmt()
	}
	if isTypeKeyword(p.cur().Type) {
		return p.parseDeclStmt()
	}
	return p.parseAssignOrExprStmt()
}

func (p *Parser) parseDeclStmt() ast.Stmt {
	d := p.parseDecl()
	if d == nil {
		return nil
	}
	return d
}

// parseIf parses `'if' '(' Cond ')' Stmt ['else' Stmt]`.
func (p *Parser) parseIf() ast.Stmt {
	line := p.cur().Pos.Line
	p.advance() // 'if'
	p.accept(token.LPAREN)
	cond := p.parseCond()
	p.expectRParen()
	then := p.parseStmt()
	var els ast.Stmt
	if _, _, ok := p.accept(token.ELSE); ok {
		els = p.parseStmt()
	}
	stmt := ast.NewIfStmt(line, cond, then, els)
	p.emit("If", line, 0, 0)
	return stmt
}

// parseFor parses `'for' '(' [Stmt] ';' [Cond] ';' [Stmt] ')' Stmt`.
func (p *Parser) parseFor() ast.Stmt {
	line := p.cur().Pos.Line
	p.advance() // 'for'
	p.accept(token.LPAREN)

	var init ast.Stmt
	if !p.is(token.SEMI) {
		init = p.parseAssignOrExprStmtNoSemi()
	}
	p.expectSemicolon()

	var cond ast.Expr
	if !p.is(token.SEMI) {
		cond = p.parseCond()
	}
	p.expectSemicolon()

	var step ast.Stmt
	if !p.is(token.RPAREN) {
		step = p.parseAssignOrExprStmtNoSemi()
	}
	p.expectRParen()

	body := p.parseStmt()
	stmt := ast.NewForStmt(line, init, cond, step, body)
	p.emit("For", line, 0, 0)
	return stmt
}

// parseReturn parses `'return' [Exp] ';'`.
func (p *Parser) parseReturn() ast.Stmt {
	line := p.cur().Pos.Line
	p.advance() // 'return'
	var value ast.Expr
	if !p.is(token.SEMI) {
		value = p.parseExp()
	}
	p.expectSemicolon()
	stmt := ast.NewReturnStmt(line, value)
	p.emit("Return", line, 0, 0)
	return stmt
}

// parsePrintf parses `'printf' '(' StringLiteral (',' Exp)* ')' ';'`.
func (p *Parser) parsePrintf() ast.Stmt {
	line := p.cur().Pos.Line
	p.advance() // 'printf'
	p.accept(token.LPAREN)
	format := ""
	if lit, _, ok := p.accept(token.STRING); ok {
		format = string(decodeEscapes(lit))
	}
	var args []ast.Expr
	for {
		if _, _, ok := p.accept(token.COMMA); !ok {
			break
		}
		args = append(args, p.parseExp())
	}
	p.expectRParen()
	p.expectSemicolon()
	stmt := ast.NewPrintfStmt(line, format, args)
	p.emit("Printf", line, 0, 0)
	return stmt
}

// parseAssignOrExprStmt implements the speculative choice between `LValue
// '=' (Exp | 'getint' '(' ')' | 'getchar' '(' ')') ';'` and a bare
// expression statement — both share the `LValue`/primary-expression
// prefix, so Assign is tried first and backtracks on failure.
func (p *Parser) parseAssignOrExprStmt() ast.Stmt {
	stmt := p.parseAssignOrExprStmtNoSemi()
	if stmt == nil {
		return nil
	}
	p.expectSemicolon()
	return stmt
}

// parseAssignOrExprStmtNoSemi is the shared core used both by ordinary
// statement parsing and by the for-header's init/step clauses, which do
// not consume a trailing `;` themselves.
func (p *Parser) parseAssignOrExprStmtNoSemi() ast.Stmt {
	saved := p.save()
	line := p.cur().Pos.Line

	if lv := p.tryParseLValue(); lv != nil {
		if _, _, ok := p.accept(token.ASSIGN); ok {
			rhs := p.parseAssignRhs()
			stmt := ast.NewAssignStmt(line, lv, rhs)
			p.emit("Assign", line, 0, 0)
			return stmt
		}
	}
	p.restore(saved)

	expr := p.parseExp()
	stmt := ast.NewExprStmt(line, expr)
	p.emit("ExpStmt", line, 0, 0)
	return stmt
}

// parseAssignRhs parses the right-hand side of an assignment: a plain
// expression, or the embedded input-read forms `getint()`/`getchar()`
// (spec.md §3's "input-read" statement variant).
func (p *Parser) parseAssignRhs() ast.Expr {
	line := p.cur().Pos.Line
	switch p.cur().Type {
	case token.GETINT:
		p.advance()
		p.accept(token.LPAREN)
		p.expectRParen()
		return ast.NewCallExpr(line, "getint", nil)
	case token.GETCHAR:
		p.advance()
		p.accept(token.LPAREN)
		p.expectRParen()
		return ast.NewCallExpr(line, "getchar", nil)
	}
	return p.parseExp()
}

// tryParseLValue speculatively parses `Ident ['[' Exp ']']`, restoring
// state and returning nil if the current token isn't an identifier.
func (p *Parser) tryParseLValue() *ast.LValue {
	saved := p.save()
	name, line, ok := p.accept(token.IDENT)
	if !ok {
		p.restore(saved)
		return nil
	}
	var index ast.Expr
	if _, _, ok := p.accept(token.LBRACKET); ok {
		index = p.parseExp()
		p.expectRBracket()
	}
	return ast.NewLValue(line, name, index)
}
