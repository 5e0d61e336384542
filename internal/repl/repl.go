// Package repl implements the Read-Eval-Print Loop for the interpreter.
//
// A Repl struct carries banner/version/prompt strings, chzyer/readline for
// line editing and history, and fatih/color for tagging diagnostics and
// results. Unlike file mode, the REPL keeps a single Evaluator alive across
// lines so declarations from earlier lines stay visible, and it never exits
// on a parse or runtime error — it reports the diagnostic and waits for the
// next line.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/loxgo/internal/interp"
	"github.com/akashmaji946/loxgo/internal/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed, color.Bold)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner/version/author/separator/prompt.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// printBanner writes the startup banner and usage hints to writer.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against writer, reading lines via readline
// until '.exit' or EOF. A single Evaluator persists across lines so
// `let`/`fn` declarations from earlier input remain visible to later lines.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "Could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	ev := interp.New()
	ev.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, ev)
	}
}

// evalLine parses and evaluates one line of input against ev, printing any
// SyntaxError/RuntimeError diagnostic in red. Like file mode, a bare
// expression statement produces no automatic echo; println is how a line
// produces visible output.
func (r *Repl) evalLine(writer io.Writer, line string, ev *interp.Evaluator) {
	decls, err := parser.ParseSource(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	if err := ev.Run(decls); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
