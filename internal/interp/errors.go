package interp

import "fmt"

// RuntimeError is the first-and-only runtime diagnostic raised by a given
// Eval pass: unlike lexical and parse errors, evaluation aborts on the first
// one instead of accumulating (per the language's error-handling design,
// runtime errors have no recovery).
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RuntimeError [line %d]: %s.", e.Line, e.Message)
}

func runtimeErrorf(line int, format string, args ...interface{}) error {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}
