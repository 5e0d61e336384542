package parser

import (
	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/token"
)

// statement := block | ifStmt | whileStmt | forStmt | returnStmt | exprStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.check(token.LeftBrace):
		return p.block()
	case p.check(token.If):
		return p.ifStmt()
	case p.check(token.While):
		return p.whileStmt()
	case p.check(token.For):
		return p.forStmt()
	case p.check(token.Return):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

// block := "{" declaration* "}"
func (p *Parser) block() *ast.Block {
	p.advance() // '{'
	decls := make([]ast.Declaration, 0)
	for !p.check(token.RightBrace) && !p.atEnd() {
		decls = append(decls, p.declaration())
	}
	p.expectErr(token.RightBrace, "Expected '}' after block")
	return &ast.Block{Decls: decls}
}

// ifStmt := "if" expression statement ("else" statement)?
func (p *Parser) ifStmt() ast.Stmt {
	p.advance() // 'if'
	cond := p.expression()
	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Cond: cond, Then: then, Else: elseBranch}
}

// whileStmt := "while" expression statement
func (p *Parser) whileStmt() ast.Stmt {
	p.advance() // 'while'
	cond := p.expression()
	body := p.statement()
	return &ast.While{Cond: cond, Body: body}
}

// forStmt desugars "for IDENT in a..b { body }" at parse time into:
//
//	{ let IDENT = a; while IDENT < b { body; IDENT = IDENT + 1; } }
//
// wrapped in its own block so the loop variable does not leak into the
// enclosing scope. There is no first-class Range value; here `a..b` is
// desugared away. A range written anywhere else still parses, but
// evaluating it is a runtime error.
func (p *Parser) forStmt() ast.Stmt {
	keyword := p.advance() // 'for'
	name, ok := p.expectErr(token.Identifier, "Expected loop variable name after 'for'")
	if !ok {
		return &ast.Block{}
	}
	p.expectErr(token.In, "Expected 'in' after for-loop variable")
	rangeExpr := p.expression()
	bounds, isRange := rangeExpr.(*ast.Range)
	if !isRange {
		p.errors.Add(keyword.Line, "Expected a range expression ('a..b') after 'in'")
		p.hadNewError = true
		bounds = &ast.Range{
			Left:  &ast.Literal{Value: ast.LitValue{Kind: ast.LitNumber, Number: 0}},
			Right: &ast.Literal{Value: ast.LitValue{Kind: ast.LitNumber, Number: 0}},
		}
	}
	start, end := bounds.Left, bounds.Right
	var body ast.Stmt
	if p.check(token.LeftBrace) {
		body = p.block()
	} else {
		body = p.statement()
	}

	increment := &ast.ExprStmt{
		Expr: &ast.Assignment{
			Name: name,
			Value: &ast.Binary{
				Left:  &ast.Variable{Name: name},
				Op:    token.New(token.Plus, "+", keyword.Line),
				Right: &ast.Literal{Value: ast.LitValue{Kind: ast.LitNumber, Number: 1}},
			},
		},
	}
	loopBody := &ast.Block{Decls: []ast.Declaration{
		&ast.StmtDecl{Stmt: body},
		&ast.StmtDecl{Stmt: increment},
	}}
	whileLoop := &ast.While{
		Cond: &ast.Binary{Left: &ast.Variable{Name: name}, Op: token.New(token.Less, "<", keyword.Line), Right: end},
		Body: loopBody,
	}
	return &ast.Block{Decls: []ast.Declaration{
		&ast.LetDecl{Name: name, Init: start},
		&ast.StmtDecl{Stmt: whileLoop},
	}}
}

// returnStmt := "return" expression? ";"
func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.advance() // 'return'
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.expectErr(token.Semicolon, "Expected ';' after return value")
	return &ast.Return{Keyword: keyword, Value: value}
}

// exprStmt := expression ";"
func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.expectErr(token.Semicolon, "Expected ';' after expression")
	return &ast.ExprStmt{Expr: expr}
}
