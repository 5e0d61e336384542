// Builtin functions available to every program: print, println, printf,
// length, tostring, and typeof.
package interp

import (
	"fmt"

	"github.com/akashmaji946/loxgo/internal/value"
)

// RegisterBuiltins defines the standard builtin functions into ev's global
// environment. Called once by New.
func RegisterBuiltins(ev *Evaluator) {
	builtins := []*Builtin{
		{Name: "print", Arg: -1, Fn: builtinPrint},
		{Name: "println", Arg: -1, Fn: builtinPrintln},
		{Name: "printf", Arg: -1, Fn: builtinPrintf},
		{Name: "length", Arg: 1, Fn: builtinLength},
		{Name: "tostring", Arg: 1, Fn: builtinToString},
		{Name: "typeof", Arg: 1, Fn: builtinTypeOf},
	}
	for _, b := range builtins {
		ev.global.Define(b.Name, value.FromCallable(b))
	}
}

// joinArgs renders args space-separated using each value's display form.
func joinArgs(args []value.Value) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += " "
		}
		out += a.String()
	}
	return out
}

func builtinPrint(ev *Evaluator, args []value.Value) (value.Value, error) {
	fmt.Fprint(ev.Writer, joinArgs(args))
	return value.Null, nil
}

func builtinPrintln(ev *Evaluator, args []value.Value) (value.Value, error) {
	fmt.Fprintln(ev.Writer, joinArgs(args))
	return value.Null, nil
}

// builtinPrintf requires a string first argument used as the Go fmt.Fprintf
// format; remaining numbers, bools and strings are passed through as Go
// float64/bool/string values, and any other value as its display form.
func builtinPrintf(ev *Evaluator, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Null, runtimeErrorf(0, "'printf' requires at least a format string argument")
	}
	if args[0].Kind() != value.KindString {
		return value.Null, runtimeErrorf(0, "'printf' requires its first argument to be a string, got '%s'", args[0].TypeName())
	}
	rest := make([]interface{}, len(args)-1)
	for i, a := range args[1:] {
		rest[i] = formatArg(a)
	}
	fmt.Fprintf(ev.Writer, args[0].AsString(), rest...)
	return value.Null, nil
}

func formatArg(v value.Value) interface{} {
	switch v.Kind() {
	case value.KindNumber:
		return v.AsNumber()
	case value.KindBool:
		return v.AsBool()
	case value.KindString:
		return v.AsString()
	default:
		return v.String()
	}
}

// builtinLength returns the rune length of a string argument.
func builtinLength(ev *Evaluator, args []value.Value) (value.Value, error) {
	if args[0].Kind() != value.KindString {
		return value.Null, runtimeErrorf(0, "'length' requires a string argument, got '%s'", args[0].TypeName())
	}
	return value.Number(float64(len([]rune(args[0].AsString())))), nil
}

// builtinToString renders any value's display form as a string.
func builtinToString(ev *Evaluator, args []value.Value) (value.Value, error) {
	return value.String(args[0].String()), nil
}

// builtinTypeOf returns the lowercase type name of its argument.
func builtinTypeOf(ev *Evaluator, args []value.Value) (value.Value, error) {
	return value.String(args[0].TypeName()), nil
}
