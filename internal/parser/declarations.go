package parser

import (
	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/token"
)

// declaration := letDecl | fnDecl | statement
//
// On a parse error inside any of the three alternatives, synchronize()
// discards tokens up to a plausible resumption point so one bad declaration
// doesn't cascade into spurious errors for the rest of the file.
func (p *Parser) declaration() ast.Declaration {
	var decl ast.Declaration
	switch {
	case p.check(token.Let):
		decl = p.letDecl()
	case p.check(token.Fn):
		decl = p.fnDecl()
	default:
		decl = &ast.StmtDecl{Stmt: p.statement()}
	}
	if p.hadNewError {
		p.hadNewError = false
		p.synchronize()
	}
	return decl
}

// letDecl := "let" IDENT ("=" expression)? ";"
func (p *Parser) letDecl() ast.Declaration {
	p.advance() // 'let'
	name, ok := p.expectErr(token.Identifier, "Expected variable name")
	if !ok {
		return &ast.LetDecl{Name: name}
	}
	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.expectErr(token.Semicolon, "Expected ';' after let declaration")
	return &ast.LetDecl{Name: name, Init: init}
}

// fnDecl := "fn" IDENT "(" params? ")" statement
//
// The body must be a block; a bare statement body is a parse error, since
// the language requires braces around a function's body.
func (p *Parser) fnDecl() ast.Declaration {
	p.advance() // 'fn'
	name, ok := p.expectErr(token.Identifier, "Expected function name")
	if !ok {
		return &ast.FnDecl{Name: name}
	}
	p.expectErr(token.LeftParen, "Expected '(' after function name")
	params := p.params()
	p.expectErr(token.RightParen, "Expected ')' after parameters")
	if !p.check(token.LeftBrace) {
		p.errors.Add(p.currLine(), "Expected '{' before function body")
		p.hadNewError = true
		return &ast.FnDecl{Name: name, Params: params, Body: &ast.Block{}}
	}
	body := p.block()
	return &ast.FnDecl{Name: name, Params: params, Body: body}
}

// params := IDENT ("," IDENT)*
func (p *Parser) params() []token.Token {
	params := make([]token.Token, 0)
	if p.check(token.RightParen) {
		return params
	}
	for {
		name, ok := p.expectErr(token.Identifier, "Expected parameter name")
		if ok {
			params = append(params, name)
		}
		if !p.match(token.Comma) {
			break
		}
	}
	return params
}

// expectErr is like expect but also marks hadNewError so declaration() knows
// to synchronize.
func (p *Parser) expectErr(kind token.Kind, format string, args ...interface{}) (token.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.errors.Add(p.currLine(), format, args...)
	p.hadNewError = true
	return token.Token{}, false
}
