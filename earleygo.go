package earleygo

import (
	"github.com/tobyp/earley-go/grammar"
	"github.com/tobyp/earley-go/lr/earley"
	"github.com/tobyp/earley-go/lr/ebnf"
	"github.com/tobyp/earley-go/lr/nullable"
	"github.com/tobyp/earley-go/lr/scanner"
)

// Grammar is a recognizer-ready grammar: its productions are
// guaranteed free of empty right-hand sides, with the nullability
// analysis that made that rewrite kept alongside it so Parse can
// still answer an empty input against a nullable start symbol
// directly, without the recognizer's involvement.
type Grammar struct {
	flat        *grammar.Grammar
	nullability *nullable.Nullability
}

// NewGrammar builds a Grammar from plain productions (which may
// include empty right-hand sides) and a start symbol, eliminating any
// nullable productions before the grammar is ever handed to the
// recognizer.
func NewGrammar(rules []grammar.Rule, start grammar.Symbol) *Grammar {
	flat, n := nullable.Transform(grammar.NewGrammar(rules, start))
	return &Grammar{flat: flat, nullability: n}
}

// NewEBNFGrammar builds a Grammar from productions written in the
// extended EBNF right-hand-side syntax (see package ebnf), then
// eliminates any nullable productions the desugaring introduced
// (every `[optional]` construct lowers to one).
func NewEBNFGrammar(rules []ebnf.Rule, start grammar.Symbol) (*Grammar, error) {
	compiled, err := ebnf.Compile(rules, start)
	if err != nil {
		return nil, err
	}
	flat, n := nullable.Transform(compiled)
	return &Grammar{flat: flat, nullability: n}, nil
}

// Start returns the grammar's default start symbol, as declared at
// construction.
func (g *Grammar) Start() grammar.Symbol {
	return g.flat.Start()
}

// Parse scans input with lex, then recognizes and reduces it against
// g starting from start — which need not be g.Start(): any nonterminal
// of g may be used to parse a sub-language of it.
//
// An input that scans to zero tokens is handled specially: the
// recognizer's chart can only ever accept a non-empty span once its
// grammar has had all epsilon productions eliminated, so an empty
// input against a nullable start symbol is answered directly from the
// nullability analysis rather than by running the recognizer at all.
func Parse(lex scanner.Lexicon, g *Grammar, start grammar.Symbol, input string) (interface{}, error) {
	tokens, err := lex.Scan(input)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		if v, ok := g.nullability.Value(start); ok {
			return v, nil
		}
	}
	return earley.Parse(g.flat, start, tokens)
}
