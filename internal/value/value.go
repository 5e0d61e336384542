// Package value implements the runtime value model: a small tagged variant
// with arithmetic, ordering, equality, truthiness, and display, per the
// language's operator-overloading rules for "+" on strings and numbers.
package value

import (
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindCallable
)

// Callable is implemented by both user-defined functions and host builtins.
// Kept as a narrow interface here (rather than importing the interpreter
// package, which would create an import cycle) so value.Value can embed a
// callable without value depending on interp.
type Callable interface {
	Arity() int
	String() string
}

// Value is the tagged variant every expression evaluates to. The zero Value
// is Null.
type Value struct {
	kind     Kind
	boolean  bool
	number   float64
	str      string
	callable Callable
}

// Null is the singleton null value.
var Null = Value{kind: KindNull}

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number wraps a float64.
func Number(n float64) Value { return Value{kind: KindNumber, number: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// FromCallable wraps a Callable.
func FromCallable(c Callable) Value { return Value{kind: KindCallable, callable: c} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns v's boolean payload; only meaningful when Kind() == KindBool.
func (v Value) AsBool() bool { return v.boolean }

// AsNumber returns v's number payload; only meaningful when Kind() == KindNumber.
func (v Value) AsNumber() float64 { return v.number }

// AsString returns v's string payload; only meaningful when Kind() == KindString.
func (v Value) AsString() string { return v.str }

// AsCallable returns v's callable payload; only meaningful when
// Kind() == KindCallable.
func (v Value) AsCallable() Callable { return v.callable }

// Truthy implements the language's truthiness rule: Null is false, Bool is
// itself, everything else is true. Used by if/while/!/and/or.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.boolean
	default:
		return true
	}
}

// Equal implements "==". Same-kind payloads compare structurally; different
// kinds are never equal; Null equals Null; callables are never equal to
// anything, including themselves (a callable has no stable identity to
// compare against here, since closures captured from the same declaration
// are distinct environments).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindNumber:
		return v.number == other.number
	case KindString:
		return v.str == other.str
	case KindCallable:
		return false
	default:
		return false
	}
}

// String renders v for display: numbers use Go's default float formatting,
// null prints "null", bools print "true"/"false", strings print their
// contents unquoted, callables print their own descriptor.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.boolean {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.number, 'g', -1, 64)
	case KindString:
		return v.str
	case KindCallable:
		return v.callable.String()
	default:
		return ""
	}
}

// TypeName returns the short lowercase name used in runtime error messages
// ("string", "number", "bool", "null", "func").
func (v Value) TypeName() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindCallable:
		return "func"
	default:
		return "unknown"
	}
}
