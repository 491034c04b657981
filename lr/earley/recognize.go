/*
Package earley implements Earley's algorithm: a chart-based recognizer
for arbitrary context-free grammars plus a derivation builder that
reduces a recognized parse into a semantic value.

The chart holds one ItemSet per position 0..len(tokens). Recognize
seeds set 0 with a synthetic accept item and closes each set under
predict, scan and complete until no further item can be added, exactly
as in the textbook algorithm; grammars fed to it are expected to
already be free of nullable (epsilon) productions, which lr/nullable
provides.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package earley

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/tobyp/earley-go/grammar"
	"github.com/tobyp/earley-go/lr/scanner"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// Recognize runs Earley's algorithm over tokens against g, parsing
// from start (which need not be g.Start(): any nonterminal of g may
// be used to recognize a sub-language of the grammar). It returns the
// completed chart, or a *ParseFailure the first time some chart set
// ends up empty.
func Recognize(g *grammar.Grammar, start grammar.Symbol, tokens []scanner.Token) (*Chart, error) {
	n := len(tokens)
	chart := newChart(n)

	accept := grammar.Rule{LHS: acceptSymbol, RHS: []grammar.Symbol{start}, Reducer: grammar.Identity, Serial: -1}
	chart.Sets[0].Add(newItem(accept, 0, 0))

	for i := 0; i <= n; i++ {
		set := chart.Sets[i]
		if set.Size() == 0 {
			return nil, &ParseFailure{TokenIndex: i, Token: tokenBefore(tokens, i)}
		}
		for idx := 0; idx < set.Size(); idx++ {
			item := set.At(idx)
			sym, ok := item.PeekSymbol()
			if !ok {
				completeStep(chart, item, i)
				continue
			}
			if g.IsNonterminal(sym) {
				predictStep(g, set, sym, i)
			} else {
				scanStep(chart, item, sym, tokens, i)
			}
		}
		if gconf.GetBool("earleygo.trace-states") {
			dumpSet(i, set)
		}
	}
	return chart, nil
}

// predictStep adds one item at dot 0 for every production of B, all
// originating at the current position i. Declaration order is
// preserved by iterating g.Productions(B) in order, which is what
// later makes "earlier-declared production wins" true of ambiguous
// completions.
func predictStep(g *grammar.Grammar, set *ItemSet, B grammar.Symbol, i int) {
	for _, rule := range g.Productions(B) {
		set.Add(newItem(rule, 0, i))
	}
}

// scanStep advances item past a into set i+1 if the token at position
// i is in fact an a.
func scanStep(chart *Chart, item *Item, a grammar.Symbol, tokens []scanner.Token, i int) {
	if i >= len(tokens) || tokens[i].Name != a {
		return
	}
	tok := tokens[i]
	chart.Sets[i+1].Add(item.Advance(&tok))
}

// completeStep advances every item in item's origin set that was
// expecting item.Rule.LHS, inserting the advanced items into the
// current set i. When item.Origin == i (a production that matched
// zero tokens at this position), the source and destination are the
// same ItemSet; the outer loop in Recognize re-checks Size() on every
// iteration, so items appended here are still visited.
func completeStep(chart *Chart, item *Item, i int) {
	A := item.Rule.LHS
	source := chart.Sets[item.Origin]
	for idx := 0; idx < source.Size(); idx++ {
		cand := source.At(idx)
		sym, ok := cand.PeekSymbol()
		if ok && sym == A {
			chart.Sets[i].Add(cand.Advance(item))
		}
	}
}

func tokenBefore(tokens []scanner.Token, i int) *scanner.Token {
	if i == 0 {
		return nil
	}
	return &tokens[i-1]
}

func dumpSet(i int, set *ItemSet) {
	tracer().Debugf("earley: chart[%d] (%d items)", i, set.Size())
	for idx := 0; idx < set.Size(); idx++ {
		tracer().Debugf("earley:   %s", set.At(idx))
	}
}
