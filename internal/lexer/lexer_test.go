package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/internal/token"
)

type tokenizeCase struct {
	Name     string
	Input    string
	Expected []token.Token
}

func TestTokenize_Punctuation(t *testing.T) {
	tests := []tokenizeCase{
		{
			Name:  "arithmetic",
			Input: "1 + 2 * 3",
			Expected: []token.Token{
				token.NewNumber("1", 1, 1),
				token.New(token.Plus, "+", 1),
				token.NewNumber("2", 2, 1),
				token.New(token.Star, "*", 1),
				token.NewNumber("3", 3, 1),
			},
		},
		{
			Name:  "two char operators maximal munch",
			Input: "!= = == > >= < <=",
			Expected: []token.Token{
				token.New(token.BangEqual, "!=", 1),
				token.New(token.Equal, "=", 1),
				token.New(token.EqualEqual, "==", 1),
				token.New(token.Greater, ">", 1),
				token.New(token.GreaterEqual, ">=", 1),
				token.New(token.Less, "<", 1),
				token.New(token.LessEqual, "<=", 1),
			},
		},
		{
			Name:  "range vs dot",
			Input: "1..2 . ..",
			Expected: []token.Token{
				token.NewNumber("1", 1, 1),
				token.New(token.DotDot, "..", 1),
				token.NewNumber("2", 2, 1),
				token.New(token.Dot, ".", 1),
				token.New(token.DotDot, "..", 1),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			tokens, err := Tokenize(tc.Input)
			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, tokens)
		})
	}
}

func TestTokenize_KeywordsAndIdentifiers(t *testing.T) {
	tokens, err := Tokenize("let x = fn_name and or this_one")
	assert.NoError(t, err)
	kinds := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.Let, token.Identifier, token.Equal, token.Identifier,
		token.And, token.Or, token.Identifier,
	}, kinds)
}

func TestTokenize_StringLiteral(t *testing.T) {
	tokens, err := Tokenize(`"hello there"`)
	assert.NoError(t, err)
	assert.Len(t, tokens, 1)
	assert.Equal(t, "hello there", tokens[0].StringValue)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, err := Tokenize(`"hello`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated string")
}

func TestTokenize_UnexpectedCharacterAccumulates(t *testing.T) {
	_, err := Tokenize("1 @ 2 # 3")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected Token '@'")
	assert.Contains(t, err.Error(), "Unexpected Token '#'")
}

func TestTokenize_Comments(t *testing.T) {
	tokens, err := Tokenize("let x = 1; // a comment\n/* block\ncomment */let y = 2;")
	assert.NoError(t, err)
	assert.Len(t, tokens, 10)
	assert.Equal(t, 3, tokens[len(tokens)-1].Line)
}

func TestTokenize_LineTracking(t *testing.T) {
	tokens, err := Tokenize("1\n2\n3")
	assert.NoError(t, err)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}
