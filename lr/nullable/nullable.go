/*
Package nullable rewrites a grammar that permits empty right-hand
sides into an equivalent grammar that does not, so it can be fed to
the recognizer in package earley, which requires every production to
consume at least one symbol.

The rewrite is two steps. First, nullability is a fixed point: a
nonterminal is nullable iff some production of it has every
right-hand-side symbol nullable (vacuously true of an empty
right-hand side). This is computed by memoized recursion, recording
"not nullable" before descending into a nonterminal's own productions
to break cycles, then letting a later production revise that to
nullable if it turns out to qualify — the same shape as the
mark-then-revise fixed point epsilon_grammar.py computes. The whole
pass is repeated until it finds no new nullable symbol, so a symbol
marked "not nullable" while a cycle was still open is re-examined.

Second, every production with at least one right-hand-side symbol is
expanded into one variant per subset of its nullable positions, each
variant's reducer reconstructing the full original argument list by
substituting the recorded null value at every elided position.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package nullable

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/tobyp/earley-go/grammar"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// Nullability is the result of analyzing which nonterminals of a
// grammar can derive the empty string, and what semantic value that
// empty derivation produces.
type Nullability struct {
	nullable map[grammar.Symbol]bool
	value    map[grammar.Symbol]func() interface{}
}

// IsNullable reports whether sym can derive the empty string.
func (n *Nullability) IsNullable(sym grammar.Symbol) bool {
	return n.nullable[sym]
}

// Value returns the semantic value of sym's empty derivation, using
// the representative production recorded for it (the earliest
// nullable-qualifying production, in declaration order). ok is false
// if sym is not nullable.
func (n *Nullability) Value(sym grammar.Symbol) (value interface{}, ok bool) {
	f, found := n.value[sym]
	if !found {
		return nil, false
	}
	return f(), true
}

// Analyze computes nullability for every nonterminal of g.
func Analyze(g *grammar.Grammar) *Nullability {
	n := &Nullability{
		nullable: make(map[grammar.Symbol]bool),
		value:    make(map[grammar.Symbol]func() interface{}),
	}
	// A symbol resolved while one of its dependencies was still in
	// progress can be memoized as "not nullable" too early, so the pass
	// is repeated, with every "not nullable" verdict cleared, until no
	// further symbol becomes nullable.
	prev := -1
	for {
		for _, sym := range g.Nonterminals() {
			n.resolve(g, sym)
		}
		count := len(n.value)
		if count == prev {
			break
		}
		prev = count
		for sym, v := range n.nullable {
			if !v {
				delete(n.nullable, sym)
			}
		}
	}
	return n
}

// resolve computes (and memoizes) whether sym is nullable, visiting
// its own productions. Already-memoized symbols return immediately;
// a symbol currently being resolved reads back as "not nullable",
// which is what breaks recursive cycles (A -> B, B -> A never
// converges to "nullable" through this path alone — some production
// must bottom out in terminals or an explicit empty right-hand side).
func (n *Nullability) resolve(g *grammar.Grammar, sym grammar.Symbol) bool {
	if v, ok := n.nullable[sym]; ok {
		return v
	}
	if !g.IsNonterminal(sym) {
		n.nullable[sym] = false
		return false
	}
	n.nullable[sym] = false
	for _, rule := range g.Productions(sym) {
		if !n.allNullable(g, rule.RHS) {
			continue
		}
		n.nullable[sym] = true
		if _, have := n.value[sym]; !have {
			n.value[sym] = n.witness(g, rule)
			tracer().Debugf("nullable: %s is nullable via %s", sym, rule)
		}
	}
	return n.nullable[sym]
}

func (n *Nullability) allNullable(g *grammar.Grammar, rhs []grammar.Symbol) bool {
	for _, s := range rhs {
		if !n.resolve(g, s) {
			return false
		}
	}
	return true
}

// witness builds the zero-argument thunk that reproduces rule's
// reduction when every one of its right-hand-side symbols (all
// nullable, by construction) is itself elided. Evaluation of nested
// nullValue thunks is deferred to call time, since at the moment this
// closure is built some of those symbols' own thunks may not yet be
// recorded — analysis over the whole grammar always finishes before
// any thunk is ever invoked (by Value, or by a variant reducer), so
// that deferral is safe.
func (n *Nullability) witness(g *grammar.Grammar, rule grammar.Rule) func() interface{} {
	return func() interface{} {
		args := make([]interface{}, len(rule.RHS))
		for i, s := range rule.RHS {
			v, _ := n.Value(s)
			args[i] = v
		}
		return rule.Reducer(args...)
	}
}

// Transform returns an equivalent grammar with no empty right-hand
// sides, plus the Nullability analysis that produced it — callers
// need the latter to handle empty input against a nullable start
// symbol, which BuildDerivation alone can no longer do once the
// grammar it reduces against has had its own empty productions
// stripped out.
func Transform(g *grammar.Grammar) (*grammar.Grammar, *Nullability) {
	n := Analyze(g)
	var out []grammar.Rule
	for _, rule := range g.Rules() {
		if len(rule.RHS) == 0 {
			// A literal A -> ε rule contributes only to n.value[A];
			// it has no place in an epsilon-free grammar.
			continue
		}
		out = append(out, expand(n, rule)...)
	}
	return grammar.NewGrammar(out, g.Start()), n
}

// expand emits one production per subset of rule's nullable
// right-hand-side positions, dropping the all-elided subset (handled
// by the caller treating rule.LHS itself as nullable, via
// Nullability.Value).
func expand(n *Nullability, rule grammar.Rule) []grammar.Rule {
	k := len(rule.RHS)
	var nullablePositions []int
	for i, s := range rule.RHS {
		if n.IsNullable(s) {
			nullablePositions = append(nullablePositions, i)
		}
	}
	m := len(nullablePositions)
	var variants []grammar.Rule
	for mask := 0; mask < (1 << uint(m)); mask++ {
		elided := make(map[int]bool, m)
		for b := 0; b < m; b++ {
			if mask&(1<<uint(b)) != 0 {
				elided[nullablePositions[b]] = true
			}
		}
		var rhs []grammar.Symbol
		for i, s := range rule.RHS {
			if !elided[i] {
				rhs = append(rhs, s)
			}
		}
		if len(rhs) == 0 {
			continue
		}
		variants = append(variants, grammar.Rule{
			LHS:     rule.LHS,
			RHS:     rhs,
			Reducer: reconstructingReducer(n, rule, elided, k),
		})
	}
	return variants
}

// reconstructingReducer wraps rule.Reducer so it still receives
// exactly k arguments — one per original right-hand-side position —
// substituting each elided position's recorded null value and
// shifting the caller's actual (kept-position) arguments into the
// rest.
func reconstructingReducer(n *Nullability, rule grammar.Rule, elided map[int]bool, k int) grammar.Reducer {
	rhs := rule.RHS
	return func(args ...interface{}) interface{} {
		full := make([]interface{}, k)
		next := 0
		for i := 0; i < k; i++ {
			if elided[i] {
				v, _ := n.Value(rhs[i])
				full[i] = v
			} else {
				full[i] = args[next]
				next++
			}
		}
		return rule.Reducer(full...)
	}
}
