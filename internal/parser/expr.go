package parser

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/token"
)

// parseExp parses `Exp → AddExp` (spec.md §4.5): plain expressions used
// for array lengths, assignment right-hand sides, return values, printf
// arguments, and call arguments admit only arithmetic, not comparisons or
// logical operators.
func (p *Parser) parseExp() ast.Expr { return p.parseAddExp() }

// parseCond parses `Cond → LOrExp`, the only context (`if`/`for` headers)
// where comparison and logical operators are admitted.
func (p *Parser) parseCond() ast.Expr { return p.parseLOrExp() }

func (p *Parser) parseLOrExp() ast.Expr {
	left := p.parseLAndExp()
	for p.is(token.LOR) {
		line := p.cur().Pos.Line
		p.advance()
		right := p.parseLAndExp()
		left = ast.NewBinaryExpr(line, "||", left, right)
	}
	return left
}

func (p *Parser) parseLAndExp() ast.Expr {
	left := p.parseEqExp()
	for p.is(token.LAND) {
		line := p.cur().Pos.Line
		p.advance()
		right := p.parseEqExp()
		left = ast.NewBinaryExpr(line, "&&", left, right)
	}
	return left
}

func (p *Parser) parseEqExp() ast.Expr {
	left := p.parseRelExp()
	for p.is(token.EQ) || p.is(token.NE) {
		op, line := p.opToken()
		right := p.parseRelExp()
		left = ast.NewBinaryExpr(line, op, left, right)
	}
	return left
}

func (p *Parser) parseRelExp() ast.Expr {
	left := p.parseAddExp()
	for p.is(token.LT) || p.is(token.GT) || p.is(token.LE) || p.is(token.GE) {
		op, line := p.opToken()
		right := p.parseAddExp()
		left = ast.NewBinaryExpr(line, op, left, right)
	}
	return left
}

func (p *Parser) parseAddExp() ast.Expr {
	left := p.parseMulExp()
	for p.is(token.PLUS) || p.is(token.MINUS) {
		op, line := p.opToken()
		right := p.parseMulExp()
		left = ast.NewBinaryExpr(line, op, left, right)
	}
	return left
}

func (p *Parser) parseMulExp() ast.Expr {
	left := p.parseUnaryExp()
	for p.is(token.STAR) || p.is(token.SLASH) || p.is(token.PCT) {
		op, line := p.opToken()
		right := p.parseUnaryExp()
		left = ast.NewBinaryExpr(line, op, left, right)
	}
	return left
}

// opToken consumes the current operator token and returns its literal
// spelling and source line.
func (p *Parser) opToken() (string, int) {
	tok := p.cur()
	p.advance()
	return tok.Literal, tok.Pos.Line
}

// parseUnaryExp parses a prefixed unary operator, a function call, or
// falls through to Primary: `Unary → ('+'|'-'|'!') Unary | Ident '('
// [RParams] ')' | Primary`.
func (p *Parser) parseUnaryExp() ast.Expr {
	switch p.cur().Type {
	case token.PLUS, token.MINUS, token.NOT:
		op, line := p.opToken()
		operand := p.parseUnaryExp()
		return ast.NewUnaryOp(line, op, operand)
	}
	if p.is(token.IDENT) && p.peek().Type == token.LPAREN {
		return p.parseCallExpr()
	}
	return p.parsePrimary()
}

func (p *Parser) parseCallExpr() ast.Expr {
	name, line, _ := p.accept(token.IDENT)
	p.accept(token.LPAREN)
	var args []ast.Expr
	if !p.is(token.RPAREN) {
		args = append(args, p.parseExp())
		for {
			if _, _, ok := p.accept(token.COMMA); !ok {
				break
			}
			args = append(args, p.parseExp())
		}
	}
	p.expectRParen()
	return ast.NewCallExpr(line, name, args)
}

// parsePrimary parses `'(' Exp ')' | LValue | IntLit | CharLit`.
func (p *Parser) parsePrimary() ast.Expr {
	line := p.cur().Pos.Line
	switch {
	case p.is(token.LPAREN):
		p.advance()
		inner := p.parseExp()
		p.expectRParen()
		return ast.NewParenExpr(line, inner)
	case p.is(token.INT):
		lit, l, _ := p.accept(token.INT)
		return ast.NewIntLit(l, parseInt32(lit))
	case p.is(token.CHAR):
		lit, l, _ := p.accept(token.CHAR)
		return ast.NewCharLit(l, decodeChar(lit))
	case p.is(token.IDENT):
		lv := p.tryParseLValue()
		if lv != nil {
			return lv
		}
	}
	// Unrecoverable at this position: consume one token to guarantee
	// progress and return a zero literal placeholder.
	p.advance()
	return ast.NewIntLit(line, 0)
}

// parseInt32 converts a decimal digit run to its int32 value, wrapping on
// overflow per two's-complement semantics (spec.md §8 agrees with
// wraparound 32-bit arithmetic elsewhere).
func parseInt32(s string) int32 {
	var v int32
	for _, c := range s {
		v = v*10 + int32(c-'0')
	}
	return v
}
