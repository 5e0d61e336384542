// Package parser implements a recursive-descent parser with Pratt-style
// precedence climbing for expressions, producing the AST defined in
// internal/ast.
//
// The parser keeps one token of lookahead (curr/next) and accumulates
// diagnostics rather than stopping at the first syntax error: on failure it
// enters panic-mode synchronization and keeps parsing, so a single Parse()
// call can report every syntax error in the source in one pass.
package parser

import (
	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/diag"
	"github.com/akashmaji946/loxgo/internal/lexer"
	"github.com/akashmaji946/loxgo/internal/token"
)

// eofSentinelKind is the Kind of the sentinel token returned once the cursor
// passes the last real token. It never matches any grammar rule's FIRST set,
// so expectErr() against end-of-stream reports a diagnostic instead of
// panicking.
var eofSentinelKind = token.EOF

// Parser turns a token stream into a list of top-level declarations.
type Parser struct {
	tokens   []token.Token
	pos      int
	prev     token.Token
	curr     token.Token
	next     token.Token
	lastLine int
	errors   *diag.Diagnostics

	// hadNewError is set by expectErr when it records a diagnostic, and
	// cleared by declaration() after triggering synchronize(). It lets
	// declaration() know a fresh error occurred in the rule it just ran,
	// without re-synchronizing for errors reported by earlier declarations.
	hadNewError bool
}

// New creates a Parser over an already-tokenized source.
func New(tokens []token.Token) *Parser {
	p := &Parser{
		tokens: tokens,
		errors: diag.New(diag.Syntax),
	}
	if len(tokens) > 0 {
		p.lastLine = tokens[len(tokens)-1].Line
	}
	p.advance()
	p.advance()
	return p
}

// Parse tokenizes are assumed done; Parse consumes tokens and returns a
// Diagnostics-wrapped error if parsing failed.
func Parse(tokens []token.Token) ([]ast.Declaration, error) {
	p := New(tokens)
	decls := p.parseProgram()
	if p.errors.HasErrors() {
		return nil, p.errors
	}
	return decls, nil
}

// ParseSource tokenizes src and parses it in one call. If tokenizing fails it
// returns the lexical diagnostics without parsing; otherwise it returns the
// syntax diagnostics, if any.
func ParseSource(src string) ([]ast.Declaration, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *Parser) parseProgram() []ast.Declaration {
	decls := make([]ast.Declaration, 0)
	for !p.atEnd() {
		decls = append(decls, p.declaration())
	}
	return decls
}

// --- token stream plumbing ---

func (p *Parser) peekToken() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.eof()
}

func (p *Parser) eof() token.Token {
	return token.New(eofSentinelKind, "", p.lastLine)
}

func (p *Parser) advance() token.Token {
	consumed := p.curr
	p.prev = p.curr
	p.curr = p.next
	p.next = p.peekToken()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return consumed
}

func (p *Parser) atEnd() bool {
	return p.curr.Kind == token.EOF
}

func (p *Parser) check(kind token.Kind) bool {
	return p.curr.Kind == kind
}

func (p *Parser) checkNext(kind token.Kind) bool {
	return p.next.Kind == kind
}

// match advances and returns true if the current token's kind is one of
// kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) currLine() int {
	if p.curr.Kind == token.EOF {
		return p.lastLine
	}
	return p.curr.Line
}

// synchronize implements panic-mode error recovery: discard tokens until the
// upcoming one begins a new declaration/statement or the previously consumed
// one was ';'. A declaration-starting token that the failed rule did not
// consume (as in "let x = 1 let y = 2;") is kept, so the next declaration
// still parses. This bounds error cascades to one reported diagnostic per
// genuine mistake.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		switch p.curr.Kind {
		case token.Class, token.Let, token.Fn, token.For, token.While, token.If, token.Return:
			return
		}
		p.advance()
		if p.prev.Kind == token.Semicolon {
			return
		}
	}
}
