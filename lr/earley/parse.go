package earley

import (
	"github.com/tobyp/earley-go/grammar"
	"github.com/tobyp/earley-go/lr/scanner"
)

// Parse recognizes tokens against g starting from start and reduces
// the result to a semantic value. It is Recognize followed by
// BuildDerivation, the combination the root package's Parse entry
// point drives after scanning raw input into tokens.
func Parse(g *grammar.Grammar, start grammar.Symbol, tokens []scanner.Token) (interface{}, error) {
	chart, err := Recognize(g, start, tokens)
	if err != nil {
		return nil, err
	}
	return BuildDerivation(chart)
}
