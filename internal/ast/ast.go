// Package ast defines the abstract syntax tree produced by the parser.
//
// Declarations, statements, and expressions are three parallel sum types,
// each represented as a Go interface with an unexported marker method so
// only this package can add new variants. The tree is built once by the
// parser and is read-only afterward; the evaluator walks it without
// mutating any node.
package ast

import "github.com/akashmaji946/loxgo/internal/token"

// Declaration is a top-level construct: a let/fn declaration, or a plain
// statement lifted to declaration position so blocks can mix the two freely.
type Declaration interface {
	declNode()
}

// Stmt is an executable construct that produces no value of its own.
type Stmt interface {
	stmtNode()
}

// Expr is a construct that evaluates to a Value.
type Expr interface {
	exprNode()
}

// --- Declarations ---

// LetDecl binds Name to the result of Init (or Null if Init is absent) in
// the current environment.
type LetDecl struct {
	Name Token
	Init Expr // nil if absent
}

// FnDecl declares a named function, capturing the defining environment as
// its closure.
type FnDecl struct {
	Name   Token
	Params []Token
	Body   *Block
}

// StmtDecl wraps a Stmt so it can appear wherever a Declaration is expected.
type StmtDecl struct {
	Stmt Stmt
}

func (*LetDecl) declNode()  {}
func (*FnDecl) declNode()   {}
func (*StmtDecl) declNode() {}

// --- Statements ---

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr Expr
}

// Block creates a new nested environment and executes Decls in order within
// it.
type Block struct {
	Decls []Declaration
}

// If executes Then when Cond is truthy, else Else (which may be nil).
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

// While repeatedly executes Body while Cond evaluates truthy.
type While struct {
	Cond Expr
	Body Stmt
}

// Return raises a non-local return signal carrying Value's evaluation (or
// Null if Value is absent).
type Return struct {
	Keyword Token
	Value   Expr // nil if absent
}

func (*ExprStmt) stmtNode() {}
func (*Block) stmtNode()    {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*Return) stmtNode()   {}

// --- Expressions ---

// Literal is a bool, number, string, or null constant.
type Literal struct {
	Value LitValue
}

// Variable reads the value bound to Name in the current environment chain.
type Variable struct {
	Name Token
}

// Assignment evaluates Value and stores it into the existing binding named
// Name (assignment never creates a binding).
type Assignment struct {
	Name  Token
	Value Expr
}

// Unary applies Op (either "-" or "!") to Operand.
type Unary struct {
	Op      Token
	Operand Expr
}

// Binary applies a non-short-circuiting operator Op to Left and Right.
type Binary struct {
	Left  Expr
	Op    Token
	Right Expr
}

// Logical implements short-circuit "and"/"or": Right is only evaluated when
// Left's truthiness doesn't already decide the result.
type Logical struct {
	Left  Expr
	Op    Token
	Right Expr
}

// Range is the ".." expression. It has no standalone runtime value: as the
// bound of a for-loop it is desugared away by the parser (see
// parser.forStmt), and evaluating a Range anywhere else is a runtime error.
type Range struct {
	Left  Expr
	Right Expr
}

// Grouping is a parenthesized sub-expression, kept distinct from its inner
// Expr so printers and tooling can tell "(a)" from "a".
type Grouping struct {
	Inner Expr
}

// Call invokes Callee with Args. Paren is the token of the call's opening
// parenthesis, used to attribute "not callable" and arity errors.
type Call struct {
	Callee Expr
	Paren  Token
	Args   []Expr
}

func (*Literal) exprNode()    {}
func (*Variable) exprNode()   {}
func (*Assignment) exprNode() {}
func (*Unary) exprNode()      {}
func (*Binary) exprNode()     {}
func (*Logical) exprNode()    {}
func (*Range) exprNode()      {}
func (*Grouping) exprNode()   {}
func (*Call) exprNode()       {}

// LitKind distinguishes the payload carried by a Literal.
type LitKind int

const (
	LitBool LitKind = iota
	LitNumber
	LitString
	LitNull
)

// LitValue is the payload of a Literal expression.
type LitValue struct {
	Kind   LitKind
	Bool   bool
	Number float64
	Str    string
}

// Token aliases token.Token so callers of this package don't need to import
// the token package just to read a Name/Op/Keyword field.
type Token = token.Token
