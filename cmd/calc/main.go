/*
Command calc is the arithmetic-expression demonstration CLI: it reads
lines from standard input (or, interactively, from a readline prompt),
parses each with the calculator grammar, and prints the resulting
float64 or a generic error indicator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/tobyp/earley-go"
	"github.com/tobyp/earley-go/lr/scanner"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	tracer().SetTraceLevel(tracing.LevelError)

	g := earleygo.NewGrammar(buildMathRules(), "expression")
	lex := mathLexicon()

	if interactive := isTerminal(os.Stdin); interactive {
		runInteractive(lex, g)
		return
	}
	runBatch(os.Stdin, lex, g)
}

// runInteractive drives a readline prompt, pterm-formatted per line,
// exiting cleanly on ^D.
func runInteractive(lex scanner.Lexicon, g *earleygo.Grammar) {
	pterm.Info.Println("calc — enter an expression, ^D to quit")
	repl, err := readline.New("calc> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF on ^D
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		printResult(evaluate(lex, g, line))
	}
	pterm.Info.Println("Good bye!")
}

// runBatch reads every line of r, per spec: "Reads lines from standard
// input; for each line, invokes the calculator grammar and prints the
// evaluated value or a generic error indicator. Exit code zero on
// normal end-of-input."
func runBatch(r io.Reader, lex scanner.Lexicon, g *earleygo.Grammar) {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Println(evaluate(lex, g, line))
	}
}

// evaluate parses line against the calculator grammar, recovering from
// a reducer panic (calcenv.Resolve/Call report undefined identifiers
// this way) the same as any other parse-stage error.
func evaluate(lex scanner.Lexicon, g *earleygo.Grammar, line string) string {
	v, err := safeParse(lex, g, line)
	if err != nil {
		return "Error"
	}
	return fmt.Sprintf("%v", v)
}

func safeParse(lex scanner.Lexicon, g *earleygo.Grammar, line string) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("calc: %v", r)
		}
	}()
	return earleygo.Parse(lex, g, g.Start(), line)
}

func printResult(s string) {
	if s == "Error" {
		pterm.Error.Println(s)
		return
	}
	pterm.Info.Println(s)
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
