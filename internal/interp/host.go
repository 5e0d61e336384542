package interp

import (
	"io"

	"github.com/akashmaji946/loxgo/internal/parser"
	"github.com/fatih/color"
)

// Interpret parses and evaluates source as a complete program. Program
// output (println and friends) goes to out; diagnostics go to errOut in
// bold red. Returns the process exit code: 65 on lexical or parse failure,
// nonzero on runtime failure, 0 on success.
func Interpret(source string, out, errOut io.Writer) int {
	redColor := color.New(color.FgRed, color.Bold)

	decls, err := parser.ParseSource(source)
	if err != nil {
		redColor.Fprintln(errOut, err.Error())
		return 65
	}

	ev := New()
	ev.SetWriter(out)
	if err := ev.Run(decls); err != nil {
		redColor.Fprintln(errOut, err.Error())
		return 1
	}
	return 0
}
