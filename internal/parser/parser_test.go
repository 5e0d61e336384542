package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/lexer"
)

func parse(t *testing.T, src string) []ast.Declaration {
	t.Helper()
	decls, err := ParseSource(src)
	require.NoError(t, err)
	return decls
}

func TestParse_LetDeclaration(t *testing.T) {
	decls := parse(t, `let x = 1 + 2;`)
	require.Len(t, decls, 1)
	let, ok := decls[0].(*ast.LetDecl)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name.Lexeme)
	_, isBinary := let.Init.(*ast.Binary)
	assert.True(t, isBinary)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	decls := parse(t, `let r = 1 + 2 * 3;`)
	let := decls[0].(*ast.LetDecl)
	bin := let.Init.(*ast.Binary)
	assert.Equal(t, "+", bin.Op.Lexeme)
	_, rightIsMul := bin.Right.(*ast.Binary)
	assert.True(t, rightIsMul)
}

func TestParse_FunctionDeclarationAndClosureShape(t *testing.T) {
	decls := parse(t, `
		fn mk(x) {
			fn inner() {
				return x;
			}
			return inner;
		}
	`)
	require.Len(t, decls, 1)
	fn, ok := decls[0].(*ast.FnDecl)
	require.True(t, ok)
	assert.Equal(t, "mk", fn.Name.Lexeme)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "x", fn.Params[0].Lexeme)
	require.Len(t, fn.Body.Decls, 2)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	decls := parse(t, `for i in 0..3 { println(i); }`)
	require.Len(t, decls, 1)
	outer, ok := decls[0].(*ast.StmtDecl)
	require.True(t, ok)
	block, ok := outer.Stmt.(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Decls, 2)
	_, isLet := block.Decls[0].(*ast.LetDecl)
	assert.True(t, isLet)
	whileStmtDecl := block.Decls[1].(*ast.StmtDecl)
	whileStmt, ok := whileStmtDecl.Stmt.(*ast.While)
	require.True(t, ok)
	cmp := whileStmt.Cond.(*ast.Binary)
	assert.Equal(t, "<", cmp.Op.Lexeme)
}

func TestParse_AssignmentMustTargetVariable(t *testing.T) {
	_, err := ParseSource(`1 = 2;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target")
}

func TestParse_SynchronizationRecoversFollowingDeclaration(t *testing.T) {
	decls, err := ParseSource(`let x = 1 let y = 2;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected ';' after let declaration")
	// synchronization should still let `y` parse, even though the whole
	// Parse() call reports an error.
	require.Len(t, decls, 0) // Parse returns nil decls alongside the error
	tokens, lexErr := lexer.Tokenize(`let x = 1 let y = 2;`)
	require.NoError(t, lexErr)
	p := New(tokens)
	got := p.parseProgram()
	require.Len(t, got, 2)
	_, secondIsLet := got[1].(*ast.LetDecl)
	assert.True(t, secondIsLet)
}
