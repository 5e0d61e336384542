// Package lexer turns source text into a token stream for the language.
//
// Scanning is a single left-to-right pass with one character of lookahead
// (two for the "." vs ".." vs a trailing fractional-digit distinction).
// Lexical errors are accumulated rather than raised immediately, so a single
// tokenize() call reports every offending character in the source, not just
// the first.
package lexer

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/loxgo/internal/diag"
	"github.com/akashmaji946/loxgo/internal/token"
)

// Lexer scans source text into tokens.
type Lexer struct {
	src      string
	position int
	length   int
	line     int
	errors   *diag.Diagnostics
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{
		src:    src,
		length: len(src),
		line:   1,
		errors: diag.New(diag.Syntax),
	}
}

// Tokenize consumes the entire source and returns its tokens. If any
// character could not be classified, or a string literal was left
// unterminated, it returns a *diag.Diagnostics joining every accumulated
// error instead of failing on the first one.
func Tokenize(src string) ([]token.Token, error) {
	lx := New(src)
	tokens := lx.scanAll()
	if lx.errors.HasErrors() {
		return nil, lx.errors
	}
	return tokens, nil
}

func (lx *Lexer) scanAll() []token.Token {
	tokens := make([]token.Token, 0)
	for {
		lx.skipWhitespaceAndComments()
		if lx.atEnd() {
			break
		}
		tok, ok := lx.nextToken()
		if ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func (lx *Lexer) atEnd() bool {
	return lx.position >= lx.length
}

func (lx *Lexer) peek() byte {
	if lx.atEnd() {
		return 0
	}
	return lx.src[lx.position]
}

func (lx *Lexer) peekNext() byte {
	if lx.position+1 >= lx.length {
		return 0
	}
	return lx.src[lx.position+1]
}

func (lx *Lexer) advance() byte {
	c := lx.src[lx.position]
	lx.position++
	return c
}

// match consumes the current character if it equals want, returning whether
// it did. Used for maximal-munch two-char operators.
func (lx *Lexer) match(want byte) bool {
	if lx.atEnd() || lx.src[lx.position] != want {
		return false
	}
	lx.position++
	return true
}

func (lx *Lexer) skipWhitespaceAndComments() {
	for !lx.atEnd() {
		c := lx.peek()
		switch {
		case c == '\n':
			lx.line++
			lx.position++
		case c == ' ' || c == '\t' || c == '\r':
			lx.position++
		case c == '/' && lx.peekNext() == '/':
			for !lx.atEnd() && lx.peek() != '\n' {
				lx.position++
			}
		case c == '/' && lx.peekNext() == '*':
			lx.position += 2
			for !lx.atEnd() && !(lx.peek() == '*' && lx.peekNext() == '/') {
				if lx.peek() == '\n' {
					lx.line++
				}
				lx.position++
			}
			if !lx.atEnd() {
				lx.position += 2
			}
		default:
			return
		}
	}
}

func (lx *Lexer) nextToken() (token.Token, bool) {
	line := lx.line
	c := lx.advance()

	switch c {
	case '(':
		return token.New(token.LeftParen, "(", line), true
	case ')':
		return token.New(token.RightParen, ")", line), true
	case '{':
		return token.New(token.LeftBrace, "{", line), true
	case '}':
		return token.New(token.RightBrace, "}", line), true
	case ',':
		return token.New(token.Comma, ",", line), true
	case ';':
		return token.New(token.Semicolon, ";", line), true
	case '-':
		return token.New(token.Minus, "-", line), true
	case '+':
		return token.New(token.Plus, "+", line), true
	case '*':
		return token.New(token.Star, "*", line), true
	case '/':
		return token.New(token.Slash, "/", line), true
	case '!':
		if lx.match('=') {
			return token.New(token.BangEqual, "!=", line), true
		}
		return token.New(token.Bang, "!", line), true
	case '=':
		if lx.match('=') {
			return token.New(token.EqualEqual, "==", line), true
		}
		return token.New(token.Equal, "=", line), true
	case '>':
		if lx.match('=') {
			return token.New(token.GreaterEqual, ">=", line), true
		}
		return token.New(token.Greater, ">", line), true
	case '<':
		if lx.match('=') {
			return token.New(token.LessEqual, "<=", line), true
		}
		return token.New(token.Less, "<", line), true
	case '.':
		if lx.match('.') {
			return token.New(token.DotDot, "..", line), true
		}
		return token.New(token.Dot, ".", line), true
	case '"':
		return lx.readString(line)
	}

	switch {
	case isDigit(c):
		return lx.readNumber(c, line), true
	case isAlpha(c):
		return lx.readIdentifier(c, line), true
	default:
		lx.errorf(line, "Unexpected Token '%c'", c)
		return token.Token{}, false
	}
}

func (lx *Lexer) readString(line int) (token.Token, bool) {
	var sb strings.Builder
	for !lx.atEnd() && lx.peek() != '"' {
		if lx.peek() == '\n' {
			lx.line++
		}
		sb.WriteByte(lx.advance())
	}
	if lx.atEnd() {
		lx.errorf(line, "Unterminated string")
		return token.Token{}, false
	}
	lx.advance() // closing quote
	value := sb.String()
	return token.NewString(`"`+value+`"`, value, line), true
}

func (lx *Lexer) readNumber(first byte, line int) token.Token {
	var sb strings.Builder
	sb.WriteByte(first)
	for isDigit(lx.peek()) {
		sb.WriteByte(lx.advance())
	}
	// A trailing '.' is only consumed into the number when followed by a
	// digit; otherwise it's left for the next token (preserving ".." for
	// ranges).
	if lx.peek() == '.' && isDigit(lx.peekNext()) {
		sb.WriteByte(lx.advance()) // '.'
		for isDigit(lx.peek()) {
			sb.WriteByte(lx.advance())
		}
	}
	lexeme := sb.String()
	value, _ := strconv.ParseFloat(lexeme, 64)
	return token.NewNumber(lexeme, value, line)
}

func (lx *Lexer) readIdentifier(first byte, line int) token.Token {
	var sb strings.Builder
	sb.WriteByte(first)
	for isAlphaNumeric(lx.peek()) {
		sb.WriteByte(lx.advance())
	}
	lexeme := sb.String()
	return token.New(token.Lookup(lexeme), lexeme, line)
}

func (lx *Lexer) errorf(line int, format string, args ...interface{}) {
	lx.errors.Add(line, format, args...)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
