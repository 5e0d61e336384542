// Operator semantics: arithmetic, ordering, equality, and unary operators on
// runtime values, with errors attributed to the operator token's line.
package interp

import (
	"github.com/akashmaji946/loxgo/internal/ast"
	"github.com/akashmaji946/loxgo/internal/value"
)

func evalUnary(op ast.Token, operand value.Value) (value.Value, error) {
	switch op.Lexeme {
	case "-":
		if operand.Kind() != value.KindNumber {
			return value.Null, runtimeErrorf(op.Line, "Unary '-' requires a number operand")
		}
		return value.Number(-operand.AsNumber()), nil
	case "!":
		return value.Bool(!operand.Truthy()), nil
	default:
		return value.Null, runtimeErrorf(op.Line, "Unknown unary operator '%s'", op.Lexeme)
	}
}

func evalBinary(left value.Value, op ast.Token, right value.Value) (value.Value, error) {
	switch op.Lexeme {
	case "+":
		return evalAdd(left, op, right)
	case "-":
		return evalArithmetic(left, op, right, func(a, b float64) float64 { return a - b })
	case "*":
		return evalArithmetic(left, op, right, func(a, b float64) float64 { return a * b })
	case "/":
		return evalDivide(left, op, right)
	case "==":
		return value.Bool(left.Equal(right)), nil
	case "!=":
		return value.Bool(!left.Equal(right)), nil
	case "<", "<=", ">", ">=":
		return evalOrdering(left, op, right)
	default:
		return value.Null, runtimeErrorf(op.Line, "Unknown binary operator '%s'", op.Lexeme)
	}
}

func evalAdd(left value.Value, op ast.Token, right value.Value) (value.Value, error) {
	isNum := func(v value.Value) bool { return v.Kind() == value.KindNumber }
	isStr := func(v value.Value) bool { return v.Kind() == value.KindString }

	switch {
	case isNum(left) && isNum(right):
		return value.Number(left.AsNumber() + right.AsNumber()), nil
	case isStr(left) && isStr(right):
		return value.String(left.AsString() + right.AsString()), nil
	case (isStr(left) && isNum(right)) || (isNum(left) && isStr(right)):
		return value.Null, runtimeErrorf(op.Line, "Expected both operands to be of the same type")
	default:
		return value.Null, runtimeErrorf(op.Line, "Unsupported operand types for addition")
	}
}

func evalArithmetic(left value.Value, op ast.Token, right value.Value, fn func(a, b float64) float64) (value.Value, error) {
	if left.Kind() != value.KindNumber || right.Kind() != value.KindNumber {
		return value.Null, runtimeErrorf(op.Line, "Operator '%s' requires both operands to be numbers", op.Lexeme)
	}
	return value.Number(fn(left.AsNumber(), right.AsNumber())), nil
}

func evalDivide(left value.Value, op ast.Token, right value.Value) (value.Value, error) {
	if left.Kind() != value.KindNumber || right.Kind() != value.KindNumber {
		return value.Null, runtimeErrorf(op.Line, "Operator '/' requires both operands to be numbers")
	}
	if right.AsNumber() == 0 {
		return value.Null, runtimeErrorf(op.Line, "Division by zero is not allowed")
	}
	return value.Number(left.AsNumber() / right.AsNumber()), nil
}

func evalOrdering(left value.Value, op ast.Token, right value.Value) (value.Value, error) {
	switch {
	case left.Kind() == value.KindNumber && right.Kind() == value.KindNumber:
		return value.Bool(compareNumbers(left.AsNumber(), right.AsNumber(), op.Lexeme)), nil
	case left.Kind() == value.KindString && right.Kind() == value.KindString:
		return value.Bool(compareStrings(left.AsString(), right.AsString(), op.Lexeme)), nil
	default:
		return value.Null, runtimeErrorf(op.Line, "Ordering operators can only be used when both operands are 'string' or 'number'")
	}
}

func compareNumbers(a, b float64, op string) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	default:
		return a >= b
	}
}

func compareStrings(a, b string, op string) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	default:
		return a >= b
	}
}
