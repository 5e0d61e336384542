// Expression evaluation: dispatches each ast.Expr variant to a value.Value,
// per the language's expression grammar (literal, variable, assignment,
// unary, binary, logical, grouping, call).
package interp

import (
	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/environment"
	"github.com/akashmaji946/loxgo/internal/value"
)

func (ev *Evaluator) eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return evalLiteral(e), nil
	case *ast.Variable:
		return ev.evalVariable(e)
	case *ast.Assignment:
		return ev.evalAssignment(e)
	case *ast.Unary:
		return ev.evalUnaryExpr(e)
	case *ast.Binary:
		return ev.evalBinaryExpr(e)
	case *ast.Logical:
		return ev.evalLogical(e)
	case *ast.Grouping:
		return ev.eval(e.Inner)
	case *ast.Call:
		return ev.evalCall(e)
	case *ast.Range:
		return value.Null, runtimeErrorf(0, "range expressions only appear as a for-loop bound and cannot be evaluated directly")
	default:
		return value.Null, runtimeErrorf(0, "unknown expression node")
	}
}

func evalLiteral(e *ast.Literal) value.Value {
	switch e.Value.Kind {
	case ast.LitBool:
		return value.Bool(e.Value.Bool)
	case ast.LitNumber:
		return value.Number(e.Value.Number)
	case ast.LitString:
		return value.String(e.Value.Str)
	default:
		return value.Null
	}
}

func (ev *Evaluator) evalVariable(e *ast.Variable) (value.Value, error) {
	v, err := ev.current.Get(e.Name.Lexeme, e.Name.Line)
	if err != nil {
		return value.Null, translateEnvError(err, e.Name.Line)
	}
	return v, nil
}

// evalAssignment assigns into whichever environment already defines Name, up
// the chain from "current" — never global directly, and assignment never
// creates a new binding (per the language's let-vs-assignment distinction).
func (ev *Evaluator) evalAssignment(e *ast.Assignment) (value.Value, error) {
	val, err := ev.eval(e.Value)
	if err != nil {
		return value.Null, err
	}
	if err := ev.current.Assign(e.Name.Lexeme, val, e.Name.Line); err != nil {
		return value.Null, translateEnvError(err, e.Name.Line)
	}
	return val, nil
}

func (ev *Evaluator) evalUnaryExpr(e *ast.Unary) (value.Value, error) {
	operand, err := ev.eval(e.Operand)
	if err != nil {
		return value.Null, err
	}
	return evalUnary(e.Op, operand)
}

func (ev *Evaluator) evalBinaryExpr(e *ast.Binary) (value.Value, error) {
	left, err := ev.eval(e.Left)
	if err != nil {
		return value.Null, err
	}
	right, err := ev.eval(e.Right)
	if err != nil {
		return value.Null, err
	}
	return evalBinary(left, e.Op, right)
}

// evalLogical implements short-circuiting "and"/"or": Right is only
// evaluated when Left's truthiness doesn't already decide the result.
func (ev *Evaluator) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := ev.eval(e.Left)
	if err != nil {
		return value.Null, err
	}
	if e.Op.Lexeme == "or" {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return ev.eval(e.Right)
}

func (ev *Evaluator) evalCall(e *ast.Call) (value.Value, error) {
	callee, err := ev.eval(e.Callee)
	if err != nil {
		return value.Null, err
	}
	fn, ok := asCallable(callee)
	if !ok {
		return value.Null, runtimeErrorf(e.Paren.Line, "Expected callable object")
	}

	args := make([]value.Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg, err := ev.eval(argExpr)
		if err != nil {
			return value.Null, err
		}
		args = append(args, arg)
	}

	// Arity() == -1 marks a variadic builtin (print, println, printf), which
	// accepts any number of arguments including zero.
	if fn.Arity() >= 0 && len(args) != fn.Arity() {
		return value.Null, runtimeErrorf(e.Paren.Line, "Expected %d argument(s), but %d were found", fn.Arity(), len(args))
	}
	return fn.Call(ev, args)
}

// translateEnvError wraps an environment lookup/assignment failure into the
// interpreter's RuntimeError, so every failure surfaces through the same
// "RuntimeError [line N]: ..." diagnostic shape regardless of which package
// detected it.
func translateEnvError(err error, line int) error {
	switch e := err.(type) {
	case *environment.UndefinedError:
		return runtimeErrorf(line, "%s", e.Error())
	case *environment.UnboundError:
		return runtimeErrorf(line, "%s", e.Error())
	default:
		return runtimeErrorf(line, "%s", err.Error())
	}
}
