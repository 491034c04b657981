/*
Package grammar models context-free productions: symbols, rules and the
grammar they belong to.

A Symbol is an opaque textual identifier. Symbols are partitioned at
Grammar-construction time into nonterminals (symbols appearing as some
rule's LHS) and terminals (every other symbol occurring on a RHS,
matched against token names produced by a lexer).
*/
package grammar

import (
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// Symbol is an opaque grammar symbol name.
type Symbol string

// Reducer computes the semantic value of a rule's LHS from the semantic
// values of its RHS symbols, left to right. The argument count always
// equals len(Rule.RHS).
type Reducer func(args ...interface{}) interface{}

// Identity is the lambda reducer: value(args[0]). Used for synthetic
// single-symbol productions (e.g. alternation arms emitted by the EBNF
// desugarer).
func Identity(args ...interface{}) interface{} {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// Rule is a production (lhs, rhs, reducer). Two rules are structurally
// equal iff their LHS and RHS match; the reducer is not part of
// identity, matching spec: productions are compared by structural
// equality of (lhs, rhs) only.
type Rule struct {
	LHS     Symbol
	RHS     []Symbol
	Reducer Reducer

	// Serial is the rule's declaration order across the whole grammar,
	// assigned by NewGrammar. It is informational only: the recognizer
	// does not read it. Ambiguous completions are decided by the order
	// of Productions, in which the earlier-declared production comes
	// first.
	Serial int
}

// NewRule builds a Rule. rhs is either []Symbol, a []string, or a single
// space-separated string (split on whitespace, per spec: "Rule(lhs, rhs,
// reducer) where rhs is ... a space-separated string").
func NewRule(lhs Symbol, rhs interface{}, reducer Reducer) Rule {
	return Rule{LHS: lhs, RHS: toSymbols(rhs), Reducer: reducer}
}

func toSymbols(rhs interface{}) []Symbol {
	switch v := rhs.(type) {
	case []Symbol:
		out := make([]Symbol, len(v))
		copy(out, v)
		return out
	case []string:
		out := make([]Symbol, len(v))
		for i, s := range v {
			out[i] = Symbol(s)
		}
		return out
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return nil
		}
		fields := strings.Fields(v)
		out := make([]Symbol, len(fields))
		for i, s := range fields {
			out[i] = Symbol(s)
		}
		return out
	case nil:
		return nil
	default:
		panic("grammar: NewRule: rhs must be []Symbol, []string, string or nil")
	}
}

// Key returns a string uniquely determined by (LHS, RHS), i.e. the
// rule's structural identity, ignoring the reducer. Used by the Earley
// chart for item deduplication.
func (r Rule) Key() string {
	var b strings.Builder
	b.WriteString(string(r.LHS))
	b.WriteString("\x00")
	for _, s := range r.RHS {
		b.WriteString(string(s))
		b.WriteByte('\x00')
	}
	return b.String()
}

// Equal reports structural equality of (LHS, RHS); the reducer is not
// considered, per spec.
func (r Rule) Equal(other Rule) bool {
	return r.Key() == other.Key()
}

func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(string(r.LHS))
	b.WriteString(" →")
	for _, s := range r.RHS {
		b.WriteByte(' ')
		b.WriteString(string(s))
	}
	return b.String()
}

// Grammar is an immutable collection of productions plus a start
// symbol. It indexes productions by LHS, preserving declaration order.
type Grammar struct {
	start            Symbol
	rules            []Rule            // flat, in declaration order
	byLHS            map[Symbol][]Rule // productions per nonterminal, declaration order preserved
	nonterminals     map[Symbol]bool
	nonterminalOrder []Symbol // first-seen order, for deterministic analysis passes
}

// NewGrammar constructs a Grammar from a list of productions and a start
// symbol. No condition is rejected at construction: unreachable or
// undefined symbols are permitted, they simply never match.
func NewGrammar(rules []Rule, start Symbol) *Grammar {
	g := &Grammar{
		start:        start,
		rules:        make([]Rule, len(rules)),
		byLHS:        make(map[Symbol][]Rule),
		nonterminals: make(map[Symbol]bool),
	}
	for _, r := range rules {
		if !g.nonterminals[r.LHS] {
			g.nonterminals[r.LHS] = true
			g.nonterminalOrder = append(g.nonterminalOrder, r.LHS)
		}
	}
	for i, r := range rules {
		r.Serial = i
		g.rules[i] = r
		g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
	}
	tracer().Debugf("grammar: %d rules, %d nonterminals, start=%s", len(g.rules), len(g.nonterminals), start)
	return g
}

// Start returns the grammar's designated start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Productions returns the productions for a nonterminal, in declaration
// order. Returns nil for a terminal or an undefined nonterminal.
func (g *Grammar) Productions(lhs Symbol) []Rule {
	return g.byLHS[lhs]
}

// Rules returns every rule in the grammar, in declaration order.
func (g *Grammar) Rules() []Rule {
	return g.rules
}

// IsNonterminal reports whether sym occurs as the LHS of some rule.
func (g *Grammar) IsNonterminal(sym Symbol) bool {
	return g.nonterminals[sym]
}

// Nonterminals returns every symbol that occurs as some rule's LHS, in
// the order each was first declared.
func (g *Grammar) Nonterminals() []Symbol {
	return g.nonterminalOrder
}
