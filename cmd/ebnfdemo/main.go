/*
Command ebnfdemo reproduces the EBNF desugarer's reference example: a
recursive "item" grammar over parenthesized or braced, optionally
comma-separated lists of items, compiled from an EBNF right-hand side
rather than plain productions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/tobyp/earley-go"
	"github.com/tobyp/earley-go/internal/nodeprint"
	"github.com/tobyp/earley-go/lr/ebnf"
	"github.com/tobyp/earley-go/lr/scanner"
)

func itemLexicon() scanner.Lexicon {
	toInt := func(m string) interface{} {
		n := 0
		for _, c := range m {
			n = n*10 + int(c-'0')
		}
		return n
	}
	return scanner.Lexicon{
		scanner.NewEntry("LPAREN", `\(`, scanner.Skip),
		scanner.NewEntry("RPAREN", `\)`, scanner.Skip),
		scanner.NewEntry("LBRACE", `\{`, scanner.Skip),
		scanner.NewEntry("RBRACE", `\}`, scanner.Skip),
		scanner.NewEntry("NUMBER", `[0-9]+`, toInt),
		scanner.NewEntry("COMMA", `,`, scanner.Skip),
		scanner.NewEntry("", `\s+`, scanner.Skip),
	}
}

// itemRule lowers the inner optional's truthy-coalescing idiom from the
// source ("i and i[0] or []"): if the [{item:COMMA}] optional matched,
// unwrap its 1-tuple to the inner list; otherwise an empty list.
func itemRule(args ...interface{}) interface{} {
	i := args[1]
	tuple, ok := i.([]interface{})
	if !ok || len(tuple) == 0 {
		return []interface{}{}
	}
	return tuple[0]
}

func buildItemGrammar() (*earleygo.Grammar, error) {
	return earleygo.NewEBNFGrammar([]ebnf.Rule{
		{LHS: "item", RHS: "NUMBER", Reducer: func(args ...interface{}) interface{} { return args[0] }},
		{LHS: "item", RHS: "(LPAREN|LBRACE) [{item:COMMA}] (RPAREN|RBRACE)", Reducer: itemRule},
	}, "item")
}

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	tracer := gtrace.SyntaxTracer
	tracer.SetTraceLevel(tracing.LevelError)

	input := "({5, 3}, ((1, 2), (4, 7, {)}))"
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	g, err := buildItemGrammar()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	v, err := earleygo.Parse(itemLexicon(), g, g.Start(), input)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}
	pterm.Info.Printfln("input:  %s", input)
	pterm.Info.Printfln("result: %v", v)
	root := nodeprint.Tree("item", v)
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		fmt.Println(v)
	}
}
