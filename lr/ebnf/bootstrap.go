package ebnf

import (
	"github.com/tobyp/earley-go/grammar"
	"github.com/tobyp/earley-go/lr/earley"
	"github.com/tobyp/earley-go/lr/scanner"
)

// bootstrapLexicon tokenizes the EBNF mini-language itself. "rule"
// (::= or :==) is carried over from the fuller whole-grammar-file
// syntax this mini-language is a fragment of; it never appears in a
// single rule's right-hand side and so is never matched by any
// bootstrap production, but a lexicon entry for it costs nothing and
// keeps the token set aligned with the wider dialect.
func bootstrapLexicon() scanner.Lexicon {
	noValue := func(string) interface{} { return nil }
	return scanner.Lexicon{
		scanner.NewEntry("rule", `::=|:==`, noValue),
		scanner.NewEntry("alt", `\|`, noValue),
		scanner.NewEntry("lbrack", `\[`, noValue),
		scanner.NewEntry("rbrack", `\]`, noValue),
		scanner.NewEntry("lbrace", `\{`, noValue),
		scanner.NewEntry("rbrace", `\}`, noValue),
		scanner.NewEntry("detail", `:`, noValue),
		scanner.NewEntry("lgroup", `\(`, noValue),
		scanner.NewEntry("rgroup", `\)`, noValue),
		scanner.NewEntry("token", `[A-Za-z_][A-Za-z_0-9]*`, func(m string) interface{} { return m }),
		scanner.NewEntry("", `\s+`, scanner.Skip),
	}
}

// bootstrapGrammar recognizes the mini-language:
//
//	term   -> term term1 | term1                         (concatenation, left-assoc)
//	term1  -> term1 alt term2 | term2                    (alternation, left-assoc)
//	term2  -> lbrack term rbrack                         ([optional])
//	       |  lbrace term rbrace                         ({one-or-more})
//	       |  lbrace term detail token rbrace            ({one-or-more:separator})
//	       |  lgroup term rgroup                         ((grouping))
//	       |  token                                      (plain symbol reference)
func bootstrapGrammar() *grammar.Grammar {
	asTerm := func(v interface{}) *term { return v.(*term) }
	return grammar.NewGrammar([]grammar.Rule{
		grammar.NewRule("term", "term term1", func(args ...interface{}) interface{} {
			return &term{kind: kindConcat, left: asTerm(args[0]), right: asTerm(args[1])}
		}),
		grammar.NewRule("term", "term1", grammar.Identity),
		grammar.NewRule("term1", "term1 alt term2", func(args ...interface{}) interface{} {
			return &term{kind: kindAlt, left: asTerm(args[0]), right: asTerm(args[2])}
		}),
		grammar.NewRule("term1", "term2", grammar.Identity),
		grammar.NewRule("term2", "lbrack term rbrack", func(args ...interface{}) interface{} {
			return &term{kind: kindOptional, inner: asTerm(args[1])}
		}),
		grammar.NewRule("term2", "lbrace term rbrace", func(args ...interface{}) interface{} {
			return &term{kind: kindMany, inner: asTerm(args[1])}
		}),
		grammar.NewRule("term2", "lbrace term detail token rbrace", func(args ...interface{}) interface{} {
			return &term{kind: kindManySep, inner: asTerm(args[1]), sep: grammar.Symbol(args[3].(string))}
		}),
		grammar.NewRule("term2", "lgroup term rgroup", func(args ...interface{}) interface{} {
			return &term{kind: kindGroup, inner: asTerm(args[1])}
		}),
		grammar.NewRule("term2", "token", func(args ...interface{}) interface{} {
			return &term{kind: kindToken, token: grammar.Symbol(args[0].(string))}
		}),
	}, "term")
}

// parseTerm scans and recognizes one rule's right-hand side against
// the bootstrap grammar, returning its term tree.
func parseTerm(rhs string) (*term, error) {
	lex := bootstrapLexicon()
	g := bootstrapGrammar()
	tokens, err := lex.Scan(rhs)
	if err != nil {
		return nil, err
	}
	v, err := earley.Parse(g, g.Start(), tokens)
	if err != nil {
		return nil, err
	}
	return v.(*term), nil
}
