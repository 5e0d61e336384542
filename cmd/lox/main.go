// Command lox is the interpreter's entry point: no arguments starts a REPL,
// one argument runs that path as a source file, and --help/--version print
// a short banner and exit.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/loxgo/internal/interp"
	"github.com/akashmaji946/loxgo/internal/repl"
	"github.com/akashmaji946/loxgo/internal/source"
	"github.com/fatih/color"
)

var (
	version = "v0.1.0"
	author  = "loxgo"
	license = "MIT"
	prompt  = "lox >>> "
	banner  = `
  _
 | | _____  __ _  ___
 | |/ _ \ \/ _\ |/ _ \
 | | (_) >  <| | (_) |
 |_|\___/_/\_\_|\___/
`
	separator = "----------------------------------------------------------------"
)

var (
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		default:
			os.Exit(runFile(arg))
		}
		return
	}

	r := repl.New(banner, version, author, separator, license, prompt)
	r.Start(os.Stdout)
}

// runFile loads path from disk and interprets it, returning the process
// exit code (65 on lex/parse failure, nonzero on runtime failure, 0 on
// success), per the host entry point contract.
func runFile(path string) int {
	src, err := source.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return interp.Interpret(src, os.Stdout, os.Stderr)
}

func showHelp() {
	cyanColor.Println("lox - a tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lox                    Start interactive REPL mode")
	yellowColor.Println("  lox <path-to-file>     Execute a .lox file")
	yellowColor.Println("  lox --help             Display this help message")
	yellowColor.Println("  lox --version          Display version information")
}

func showVersion() {
	cyanColor.Println("lox - a tree-walking interpreter")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
}
