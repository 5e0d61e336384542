package interp

import (
	"fmt"

	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/environment"
	"github.com/akashmaji946/loxgo/internal/value"
)

// Callable is implemented by both user-defined functions and host builtins,
// as a small closed interface rather than runtime dynamic dispatch trait
// objects.
type Callable interface {
	Arity() int
	Call(ev *Evaluator, args []value.Value) (value.Value, error)
	String() string
}

// UserFunction is a function declared in the interpreted program. It
// captures the environment active at its definition site (NOT the caller's
// environment), which is what gives the language lexical scope and closures.
type UserFunction struct {
	Name    string
	Params  []ast.Token
	Body    *ast.Block
	Closure *environment.Environment
}

// Arity returns the number of declared parameters.
func (f *UserFunction) Arity() int { return len(f.Params) }

// Call runs the function body in a fresh environment parented on the
// closure, binds each parameter to its argument, and unwraps a returned
// value out of the non-local return signal. A body that completes without
// hitting return yields Null.
func (f *UserFunction) Call(ev *Evaluator, args []value.Value) (value.Value, error) {
	callEnv := environment.NewChild(f.Closure)
	for i, param := range f.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	result, err := ev.execBlockIn(f.Body, callEnv)
	if err != nil {
		return value.Null, err
	}
	if result.signal == signalReturn {
		return result.value, nil
	}
	return value.Null, nil
}

func (f *UserFunction) String() string {
	return fmt.Sprintf("<user fn %s>", f.Name)
}

// BuiltinFunc is the Go function signature backing a host-provided builtin.
type BuiltinFunc func(ev *Evaluator, args []value.Value) (value.Value, error)

// Builtin wraps a host function as a Callable, so the host can register
// additional functions into the global environment through the same
// calling convention as a user-defined function.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
	Arg  int
}

func (b *Builtin) Arity() int { return b.Arg }

func (b *Builtin) Call(ev *Evaluator, args []value.Value) (value.Value, error) {
	return b.Fn(ev, args)
}

func (b *Builtin) String() string {
	return fmt.Sprintf("<builtin fn %s>", b.Name)
}

// asCallable adapts the narrow value.Callable interface embedded in a
// value.Value back into this package's richer Callable, so Call() can be
// invoked. Every Callable this package produces also satisfies
// value.Callable, so the assertion never fails for values constructed by
// this interpreter.
func asCallable(v value.Value) (Callable, bool) {
	if v.Kind() != value.KindCallable {
		return nil, false
	}
	c, ok := v.AsCallable().(Callable)
	return c, ok
}
