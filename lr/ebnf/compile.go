package ebnf

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/tobyp/earley-go/grammar"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// Rule is one user-declared production whose right-hand side is
// written in the EBNF mini-language, rather than as a plain sequence
// of symbols.
type Rule struct {
	LHS     grammar.Symbol
	RHS     string
	Reducer grammar.Reducer
}

// Compile lowers rules into a flat grammar.Grammar rooted at start.
// Each Rule's right-hand side is parsed against the bootstrap grammar
// and lowered into zero or more synthetic productions (appended ahead
// of the user's own, flattened top-level production, matching the
// order in which the lowering discovers them) plus the user's rule
// itself, reduced to a plain production over the flattened top-level
// symbols.
func Compile(rules []Rule, start grammar.Symbol) (*grammar.Grammar, error) {
	counters := make(map[string]int)
	var out []grammar.Rule
	for _, r := range rules {
		t, err := parseTerm(r.RHS)
		if err != nil {
			return nil, fmt.Errorf("ebnf: rule %s: %w", r.LHS, err)
		}
		rhs := simplify(string(r.LHS), t, &out, counters)
		tracer().Debugf("ebnf: %s -> %s (from %q)", r.LHS, rhs, r.RHS)
		out = append(out, grammar.Rule{LHS: r.LHS, RHS: rhs, Reducer: r.Reducer})
	}
	return grammar.NewGrammar(out, start), nil
}

func genName(parent, kind string, counters map[string]int) grammar.Symbol {
	key := parent + "_" + kind
	n := counters[key]
	counters[key] = n + 1
	return grammar.Symbol(fmt.Sprintf("%s%d", key, n))
}

// collapse packs a repetition or separated-repetition body's matched
// values into a single element: bare value for a single-symbol body
// (matching the common case — a body that is itself a single token,
// group or nested construct, already collapsed to one value by its
// own production), a slice of values for a multi-symbol body written
// without an explicit group.
func collapse(args []interface{}) interface{} {
	if len(args) == 1 {
		return args[0]
	}
	tuple := make([]interface{}, len(args))
	copy(tuple, args)
	return tuple
}

// simplify lowers t into zero or more flat productions appended to
// *out, returning the symbol sequence that stands in for t at its use
// site (the caller's own right-hand side).
func simplify(parent string, t *term, out *[]grammar.Rule, counters map[string]int) []grammar.Symbol {
	switch t.kind {
	case kindConcat:
		left := simplify(parent, t.left, out, counters)
		right := simplify(parent, t.right, out, counters)
		return append(left, right...)

	case kindAlt:
		name := genName(parent, "alt", counters)
		leftRHS := simplify(string(name), t.left, out, counters)
		*out = append(*out, grammar.Rule{LHS: name, RHS: leftRHS, Reducer: grammar.Identity})
		rightRHS := simplify(string(name), t.right, out, counters)
		*out = append(*out, grammar.Rule{LHS: name, RHS: rightRHS, Reducer: grammar.Identity})
		return []grammar.Symbol{name}

	case kindOptional:
		name := genName(parent, "opt", counters)
		*out = append(*out, grammar.Rule{LHS: name, RHS: nil, Reducer: func(args ...interface{}) interface{} {
			return nil
		}})
		bodyRHS := simplify(string(name), t.inner, out, counters)
		*out = append(*out, grammar.Rule{LHS: name, RHS: bodyRHS, Reducer: func(args ...interface{}) interface{} {
			tuple := make([]interface{}, len(args))
			copy(tuple, args)
			return tuple
		}})
		return []grammar.Symbol{name}

	case kindMany:
		name := genName(parent, "many", counters)
		bodyRHS := simplify(string(name), t.inner, out, counters)
		n := len(bodyRHS)
		*out = append(*out, grammar.Rule{LHS: name, RHS: bodyRHS, Reducer: func(args ...interface{}) interface{} {
			return []interface{}{collapse(args)}
		}})
		recRHS := append(append([]grammar.Symbol{}, bodyRHS...), name)
		*out = append(*out, grammar.Rule{LHS: name, RHS: recRHS, Reducer: func(args ...interface{}) interface{} {
			head := collapse(args[:n])
			tail := args[n].([]interface{})
			return append([]interface{}{head}, tail...)
		}})
		return []grammar.Symbol{name}

	case kindManySep:
		name := genName(parent, "sep", counters)
		bodyRHS := simplify(string(name), t.inner, out, counters)
		n := len(bodyRHS)
		*out = append(*out, grammar.Rule{LHS: name, RHS: bodyRHS, Reducer: func(args ...interface{}) interface{} {
			return []interface{}{collapse(args)}
		}})
		recRHS := append(append([]grammar.Symbol{}, bodyRHS...), t.sep, name)
		*out = append(*out, grammar.Rule{LHS: name, RHS: recRHS, Reducer: func(args ...interface{}) interface{} {
			head := collapse(args[:n])
			tail := args[n+1].([]interface{})
			return append([]interface{}{head}, tail...)
		}})
		return []grammar.Symbol{name}

	case kindGroup:
		name := genName(parent, "grp", counters)
		bodyRHS := simplify(string(name), t.inner, out, counters)
		*out = append(*out, grammar.Rule{LHS: name, RHS: bodyRHS, Reducer: func(args ...interface{}) interface{} {
			tuple := make([]interface{}, len(args))
			copy(tuple, args)
			return tuple
		}})
		return []grammar.Symbol{name}

	case kindToken:
		return []grammar.Symbol{t.token}
	}
	return nil
}
