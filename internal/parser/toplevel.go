package parser

import (
	"github.com/FyVoid/blang/internal/ast"
	"github.com/FyVoid/blang/internal/token"
)

func isTypeKeyword(t token.Type) bool {
	return t == token.INT_KW || t == token.CHAR_KW || t == token.VOID
}

func typeKeyword(t token.Type) ast.TypeKeyword {
	switch t {
	case token.CHAR_KW:
		return ast.TypeChar
	case token.VOID:
		return ast.TypeVoid
	default:
		return ast.TypeInt
	}
}

// parseDecl parses `[const] Type Def (',' Def)* ';'`.
func (p *Parser) parseDecl() *ast.Decl {
	line := p.cur().Pos.Line
	from := p.cursor.Mark()

	isConst := false
	if _, _, ok := p.accept(token.CONST); ok {
		isConst = true
	}

	if !isTypeKeyword(p.cur().Type) {
		return nil
	}
	kwTok := p.cur()
	p.advance()
	kw := typeKeyword(kwTok.Type)

	var defs []*ast.Def
	for {
		def := p.parseDef(kw)
		if def == nil {
			break
		}
		defs = append(defs, def)
		if _, _, ok := p.accept(token.COMMA); !ok {
			break
		}
	}
	if len(defs) == 0 {
		return nil
	}

	p.expectSemicolon()
	decl := ast.NewDecl(line, kw, isConst, defs)
	p.emit("Decl", line, from.index, p.cursor.Mark().index)
	return decl
}

// parseDef parses one `Ident ['[' Exp ']'] ['=' Init]`.
func (p *Parser) parseDef(kw ast.TypeKeyword) *ast.Def {
	lit, line, ok := p.accept(token.IDENT)
	if !ok {
		return nil
	}

	var arrLen ast.Expr
	if _, _, ok := p.accept(token.LBRACKET); ok {
		arrLen = p.parseExp()
		p.expectRBracket()
	}

	var init ast.Init
	if _, _, ok := p.accept(token.ASSIGN); ok {
		init = p.parseInit(kw, arrLen != nil)
	}

	return ast.NewDef(line, lit, arrLen, init)
}

// parseInit parses `Exp | '{' [Exp (',' Exp)*] '}' | StringLiteral`.
func (p *Parser) parseInit(kw ast.TypeKeyword, isArray bool) ast.Init {
	line := p.cur().Pos.Line
	if isArray && kw == ast.TypeChar {
		if lit, sline, ok := p.accept(token.STRING); ok {
			return ast.NewStringInit(sline, string(decodeEscapes(lit)))
		}
	}
	if _, braceLine, ok := p.accept(token.LBRACE); ok {
		var values []ast.Expr
		if !p.is(token.RBRACE) {
			values = append(values, p.parseExp())
			for {
				if _, _, ok := p.accept(token.COMMA); !ok {
					break
				}
				values = append(values, p.parseExp())
			}
		}
		p.expectRBraceLiteral()
		return ast.NewListInit(braceLine, values)
	}
	return ast.NewSingleInit(line, p.parseExp())
}

// expectRBraceLiteral closes a brace-list initializer. The spec routes
// `}` omissions through the same historical MISSING_BRACE code as `)`
// (spec.md §4.5: "`}` (in specific rules — see below)").
func (p *Parser) expectRBraceLiteral() {
	if _, _, ok := p.accept(token.RBRACE); ok {
		return
	}
	p.diags.Add(p.lastLine, token.DiagMissingBrace)
}

// tryParseFuncDef speculatively parses `Type Ident '(' [FParams] ')'
// Block`, restoring all state on failure so parseDecl can be tried
// instead (spec.md §4.5 "Speculative parsing").
func (p *Parser) tryParseFuncDef() *ast.FuncDef {
	saved := p.save()

	line := p.cur().Pos.Line
	if !isTypeKeyword(p.cur().Type) {
		p.restore(saved)
		return nil
	}
	kw := typeKeyword(p.cur().Type)
	p.advance()

	name, _, ok := p.accept(token.IDENT)
	if !ok {
		p.restore(saved)
		return nil
	}

	if _, _, ok := p.accept(token.LPAREN); !ok {
		p.restore(saved)
		return nil
	}

	params := p.parseFParams()
	p.expectRParen()

	if !p.is(token.LBRACE) {
		p.restore(saved)
		return nil
	}
	body := p.parseBlock()

	fn := ast.NewFuncDef(line, kw, name, params, body)
	p.emit("FuncDef", line, saved.cursor.Mark().index, p.cursor.Mark().index)
	return fn
}

// parseMainDef parses `Type 'main' '(' ')' Block`.
func (p *Parser) parseMainDef() *ast.FuncDef {
	line := p.cur().Pos.Line
	kw := typeKeyword(p.cur().Type)
	p.advance()
	p.advance() // 'main'
	p.accept(token.LPAREN)
	p.expectRParen()
	body := p.parseBlock()
	fn := ast.NewFuncDef(line, kw, "main", nil, body)
	p.emit("Main", line, 0, 0)
	return fn
}

// parseFParams parses `Type Ident ['[' ']'] (',' Type Ident ['[' ']'])*`.
func (p *Parser) parseFParams() []*ast.Param {
	if p.is(token.RPAREN) {
		return nil
	}
	var params []*ast.Param
	for {
		param := p.parseFParam()
		if param == nil {
			break
		}
		params = append(params, param)
		if _, _, ok := p.accept(token.COMMA); !ok {
			break
		}
	}
	return params
}

func (p *Parser) parseFParam() *ast.Param {
	if !isTypeKeyword(p.cur().Type) {
		return nil
	}
	kw := typeKeyword(p.cur().Type)
	line := p.cur().Pos.Line
	p.advance()
	name, _, ok := p.accept(token.IDENT)
	if !ok {
		return nil
	}
	isArray := false
	if _, _, ok := p.accept(token.LBRACKET); ok {
		isArray = true
		p.expectRBracket()
	}
	return ast.NewParam(line, kw, isArray, name)
}
