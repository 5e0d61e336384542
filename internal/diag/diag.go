// Package diag formats and accumulates the diagnostics the lexer and parser
// report, per the two tagged families in the language's diagnostic
// convention: "SyntaxError [line N]: <msg>." and
// "RuntimeError [line N]: <msg>." The evaluator does not use this package;
// its interp.RuntimeError renders the RuntimeError form itself.
package diag

import (
	"fmt"
	"strings"
)

// Kind distinguishes the two diagnostic families.
type Kind string

const (
	Syntax  Kind = "SyntaxError"
	Runtime Kind = "RuntimeError"
)

// Diagnostic is a single reported problem, attributed to a source line.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Message string
}

// String renders a Diagnostic in the canonical "<Kind> [line N]: <msg>."
// form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [line %d]: %s.", d.Kind, d.Line, d.Message)
}

// Diagnostics accumulates diagnostics of one kind across a lexing or parsing
// pass, rather than failing on the first one, carrying line and kind
// alongside the message so callers can format or filter uniformly.
type Diagnostics struct {
	kind    Kind
	entries []Diagnostic
}

// New creates an empty accumulator for diagnostics of the given kind.
func New(kind Kind) *Diagnostics {
	return &Diagnostics{kind: kind}
}

// Add records a new diagnostic at line, formatted with fmt.Sprintf.
func (d *Diagnostics) Add(line int, format string, args ...interface{}) {
	d.entries = append(d.entries, Diagnostic{
		Kind:    d.kind,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.entries) > 0
}

// Entries returns the recorded diagnostics in recording order.
func (d *Diagnostics) Entries() []Diagnostic {
	return d.entries
}

// Error implements the error interface, joining every recorded diagnostic
// with a newline. Diagnostics is usually returned as an error from
// tokenize()/parse() once HasErrors() is true.
func (d *Diagnostics) Error() string {
	lines := make([]string, len(d.entries))
	for i, e := range d.entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
