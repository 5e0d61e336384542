package parser

import (
	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/token"
)

// expression := assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment := range ("=" assignment)?   // right-associative
//
// After parsing the left side, if the next token is '=', the RHS is parsed
// recursively and the LHS is checked to be a bare Variable. An invalid
// target is reported at the '=' token's line without consuming further;
// recovery happens via synchronization at the declaration/statement level.
func (p *Parser) assignment() ast.Expr {
	left := p.rangeExpr()

	if p.check(token.Equal) {
		eq := p.advance()
		value := p.assignment()
		if variable, ok := left.(*ast.Variable); ok {
			return &ast.Assignment{Name: variable.Name, Value: value}
		}
		p.errors.Add(eq.Line, "Invalid assignment target")
		p.hadNewError = true
		return left
	}
	return left
}

// range := or (".." or)?   // non-associative
func (p *Parser) rangeExpr() ast.Expr {
	left := p.or()
	if p.match(token.DotDot) {
		right := p.or()
		return &ast.Range{Left: left, Right: right}
	}
	return left
}

// or := and ("or" and)*   // left-assoc, short-circuit
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.check(token.Or) {
		op := p.advance()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// and := equality ("and" equality)*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.check(token.And) {
		op := p.advance()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality := comparison (("==" | "!=") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.check(token.EqualEqual) || p.check(token.BangEqual) {
		op := p.advance()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison := term (("<"|"<="|">"|">=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.check(token.Less) || p.check(token.LessEqual) || p.check(token.Greater) || p.check(token.GreaterEqual) {
		op := p.advance()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term := factor (("+"|"-") factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.check(token.Plus) || p.check(token.Minus) {
		op := p.advance()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor := unary (("*"|"/") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.check(token.Star) || p.check(token.Slash) {
		op := p.advance()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary := ("-"|"!") primary | call
func (p *Parser) unary() ast.Expr {
	if p.check(token.Minus) || p.check(token.Bang) {
		op := p.advance()
		operand := p.unary()
		return &ast.Unary{Op: op, Operand: operand}
	}
	return p.call()
}

// call := primary ("(" args? ")")*   // left-assoc, multiple call chains allowed
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.check(token.LeftParen) {
		paren := p.advance()
		args := p.args()
		p.expectErr(token.RightParen, "Expected ')' after arguments")
		expr = &ast.Call{Callee: expr, Paren: paren, Args: args}
	}
	return expr
}

// args := expression ("," expression)*   // trailing comma tolerated
func (p *Parser) args() []ast.Expr {
	args := make([]ast.Expr, 0)
	if p.check(token.RightParen) {
		return args
	}
	args = append(args, p.expression())
	for p.match(token.Comma) {
		if p.check(token.RightParen) {
			break // trailing comma
		}
		args = append(args, p.expression())
	}
	return args
}

// primary := NUMBER | STRING | "true" | "false" | "null"
//
//	|  IDENT | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.check(token.Number):
		tok := p.advance()
		return &ast.Literal{Value: ast.LitValue{Kind: ast.LitNumber, Number: tok.NumberValue}}
	case p.check(token.String):
		tok := p.advance()
		return &ast.Literal{Value: ast.LitValue{Kind: ast.LitString, Str: tok.StringValue}}
	case p.check(token.True):
		p.advance()
		return &ast.Literal{Value: ast.LitValue{Kind: ast.LitBool, Bool: true}}
	case p.check(token.False):
		p.advance()
		return &ast.Literal{Value: ast.LitValue{Kind: ast.LitBool, Bool: false}}
	case p.check(token.Null):
		p.advance()
		return &ast.Literal{Value: ast.LitValue{Kind: ast.LitNull}}
	case p.check(token.Identifier):
		tok := p.advance()
		return &ast.Variable{Name: tok}
	case p.check(token.LeftParen):
		p.advance()
		inner := p.expression()
		p.expectErr(token.RightParen, "Expected ')' after expression")
		return &ast.Grouping{Inner: inner}
	default:
		p.errors.Add(p.currLine(), "Expected expression, got '%s'", p.curr.Lexeme)
		p.hadNewError = true
		// Consume the offending token so callers make forward progress even
		// without an enclosing declaration/statement to trigger
		// synchronize().
		if !p.atEnd() {
			p.advance()
		}
		return &ast.Literal{Value: ast.LitValue{Kind: ast.LitNull}}
	}
}
