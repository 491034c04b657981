/*
Package ebnf lowers an extended right-hand-side mini-language —
grouping, optional, repetition, separated repetition and alternation
layered over plain concatenation — into the flat productions the
recognizer in package earley understands.

The mini-language is parsed by a small bootstrap grammar, itself run
through the very same recognizer: term/term1/term2 encode the usual
precedence climb (concatenation loosest, alternation next, grouping
forms tightest). The resulting *term tree is then lowered
construct-by-construct: each compound construct allocates a synthetic
nonterminal and contributes one or two productions for it, named
<parent>_<kind><n>, where <parent> is the enclosing nonterminal (the
user's own rule LHS, or another synthetic name for nested constructs)
and <n> is a counter scoped to the Compile call.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package ebnf

import (
	"github.com/tobyp/earley-go/grammar"
)

type termKind int

const (
	kindConcat termKind = iota
	kindAlt
	kindOptional
	kindMany
	kindManySep
	kindGroup
	kindToken
)

// term is the parse tree of one rule's EBNF right-hand side.
type term struct {
	kind        termKind
	left, right *term          // concat, alt
	inner       *term          // optional, many, manySep, group
	sep         grammar.Symbol // manySep
	token       grammar.Symbol // leaf
}
