// Package interp walks the AST against a chain of lexical environments,
// producing values and enforcing the runtime semantics defined by the
// value package. It carries a global environment and an active "current"
// environment, so declarations bind into whichever scope is active rather
// than always into the global one.
package interp

import (
	"io"
	"os"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/environment"
	"github.com/akashmaji946/loxgo/internal/value"
)

// Evaluator holds the interpretation state: the root environment, the
// currently active environment, and the writer builtins print to.
type Evaluator struct {
	global  *environment.Environment
	current *environment.Environment
	Writer  io.Writer
}

// New creates an Evaluator with a fresh global environment, the built-in
// functions registered, and output directed to os.Stdout.
func New() *Evaluator {
	ev := &Evaluator{
		global: environment.NewRoot(),
		Writer: os.Stdout,
	}
	ev.current = ev.global
	RegisterBuiltins(ev)
	return ev
}

// SetWriter redirects builtin output (e.g. println), primarily for tests
// and for the REPL wiring its own writer.
func (ev *Evaluator) SetWriter(w io.Writer) {
	ev.Writer = w
}

// Global returns the root environment, so builtins can be registered into
// it directly.
func (ev *Evaluator) Global() *environment.Environment {
	return ev.global
}

// signal distinguishes normal statement completion from a non-local return
// unwinding toward the nearest enclosing function call. Modeling it as a
// result variant rather than a host-language exception keeps the boundary
// where a return is caught explicit in the execution code below.
type signal int

const (
	signalNone signal = iota
	signalReturn
)

type execResult struct {
	signal signal
	value  value.Value
}

var normalResult = execResult{signal: signalNone, value: value.Null}

// Run executes a parsed program's declarations against the evaluator's
// global environment in order. It returns the first runtime error
// encountered, if any; evaluation aborts immediately (no recovery), per the
// language's error-handling design.
func (ev *Evaluator) Run(decls []ast.Declaration) error {
	for _, decl := range decls {
		result, err := ev.execDecl(decl)
		if err != nil {
			return err
		}
		if result.signal == signalReturn {
			return runtimeErrorf(0, "return outside function")
		}
	}
	return nil
}

// --- declarations ---

func (ev *Evaluator) execDecl(decl ast.Declaration) (execResult, error) {
	switch d := decl.(type) {
	case *ast.LetDecl:
		return ev.execLetDecl(d)
	case *ast.FnDecl:
		return ev.execFnDecl(d)
	case *ast.StmtDecl:
		return ev.execStmt(d.Stmt)
	default:
		return normalResult, runtimeErrorf(0, "unknown declaration node")
	}
}

func (ev *Evaluator) execLetDecl(d *ast.LetDecl) (execResult, error) {
	val := value.Null
	if d.Init != nil {
		v, err := ev.eval(d.Init)
		if err != nil {
			return normalResult, err
		}
		val = v
	}
	ev.current.Define(d.Name.Lexeme, val)
	return normalResult, nil
}

func (ev *Evaluator) execFnDecl(d *ast.FnDecl) (execResult, error) {
	fn := &UserFunction{
		Name:    d.Name.Lexeme,
		Params:  d.Params,
		Body:    d.Body,
		Closure: ev.current,
	}
	ev.current.Define(d.Name.Lexeme, value.FromCallable(fn))
	return normalResult, nil
}

// --- statements ---

func (ev *Evaluator) execStmt(stmt ast.Stmt) (execResult, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := ev.eval(s.Expr)
		return normalResult, err
	case *ast.Block:
		return ev.execBlockIn(s, environment.NewChild(ev.current))
	case *ast.If:
		return ev.execIf(s)
	case *ast.While:
		return ev.execWhile(s)
	case *ast.Return:
		return ev.execReturn(s)
	default:
		return normalResult, runtimeErrorf(0, "unknown statement node")
	}
}

// execBlockIn makes env (created by the caller) the current environment,
// executes every declaration of block in it, and restores the previous "current" environment even if an
// error propagates out.
func (ev *Evaluator) execBlockIn(block *ast.Block, env *environment.Environment) (execResult, error) {
	previous := ev.current
	ev.current = env
	defer func() { ev.current = previous }()

	for _, decl := range block.Decls {
		result, err := ev.execDecl(decl)
		if err != nil {
			return normalResult, err
		}
		if result.signal == signalReturn {
			return result, nil
		}
	}
	return normalResult, nil
}

func (ev *Evaluator) execIf(s *ast.If) (execResult, error) {
	cond, err := ev.eval(s.Cond)
	if err != nil {
		return normalResult, err
	}
	if cond.Truthy() {
		return ev.execStmt(s.Then)
	}
	if s.Else != nil {
		return ev.execStmt(s.Else)
	}
	return normalResult, nil
}

func (ev *Evaluator) execWhile(s *ast.While) (execResult, error) {
	for {
		cond, err := ev.eval(s.Cond)
		if err != nil {
			return normalResult, err
		}
		if !cond.Truthy() {
			return normalResult, nil
		}
		result, err := ev.execStmt(s.Body)
		if err != nil {
			return normalResult, err
		}
		if result.signal == signalReturn {
			return result, nil
		}
	}
}

func (ev *Evaluator) execReturn(s *ast.Return) (execResult, error) {
	val := value.Null
	if s.Value != nil {
		v, err := ev.eval(s.Value)
		if err != nil {
			return normalResult, err
		}
		val = v
	}
	return execResult{signal: signalReturn, value: val}, nil
}
