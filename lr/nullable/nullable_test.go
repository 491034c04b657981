package nullable

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/tobyp/earley-go/grammar"
	"github.com/tobyp/earley-go/lr/earley"
	"github.com/tobyp/earley-go/lr/scanner"
)

func TestAnalyzeDirectEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleygo.nullable")
	defer teardown()
	//
	g := grammar.NewGrammar([]grammar.Rule{
		grammar.NewRule("A", nil, func(args ...interface{}) interface{} { return "empty-A" }),
		grammar.NewRule("A", "a", grammar.Identity),
	}, "A")
	n := Analyze(g)
	if !n.IsNullable("A") {
		t.Fatal("A should be nullable")
	}
	v, ok := n.Value("A")
	if !ok || v != "empty-A" {
		t.Errorf("expected A's null value to be \"empty-A\", got %v (ok=%v)", v, ok)
	}
	if n.IsNullable("a") {
		t.Error("terminal a should never be nullable")
	}
}

func TestAnalyzeCompositeNullability(t *testing.T) {
	// S is nullable only because both A and B are, with no epsilon
	// production of its own.
	g := grammar.NewGrammar([]grammar.Rule{
		grammar.NewRule("S", "A B", func(args ...interface{}) interface{} { return "S-empty" }),
		grammar.NewRule("A", nil, func(args ...interface{}) interface{} { return "A-empty" }),
		grammar.NewRule("B", nil, func(args ...interface{}) interface{} { return "B-empty" }),
	}, "S")
	n := Analyze(g)
	if !n.IsNullable("S") {
		t.Fatal("S should be nullable via composition")
	}
	v, ok := n.Value("S")
	if !ok || v != "S-empty" {
		t.Errorf("expected S's null value to be \"S-empty\", got %v (ok=%v)", v, ok)
	}
}

func TestAnalyzeFirstEpsilonProductionWins(t *testing.T) {
	g := grammar.NewGrammar([]grammar.Rule{
		grammar.NewRule("A", nil, func(args ...interface{}) interface{} { return "first" }),
		grammar.NewRule("A", nil, func(args ...interface{}) interface{} { return "second" }),
	}, "A")
	n := Analyze(g)
	v, _ := n.Value("A")
	if v != "first" {
		t.Errorf("expected the first-declared empty production to win, got %v", v)
	}
}

func TestTransformDropsEmptyProductions(t *testing.T) {
	g := grammar.NewGrammar([]grammar.Rule{
		grammar.NewRule("A", nil, func(args ...interface{}) interface{} { return nil }),
		grammar.NewRule("A", "a", grammar.Identity),
	}, "A")
	out, _ := Transform(g)
	for _, r := range out.Rules() {
		if len(r.RHS) == 0 {
			t.Errorf("transformed grammar must have no empty right-hand sides, found %s", r)
		}
	}
}

// TestEpsilonGrammarEndToEnd reproduces spec scenario 5: productions
// S -> A B, A -> ε, A -> 'a', B -> 'b' against token sequence [b] must
// succeed, reducing through the variant where A was elided.
func TestEpsilonGrammarEndToEnd(t *testing.T) {
	type pair struct{ a, b interface{} }
	g := grammar.NewGrammar([]grammar.Rule{
		grammar.NewRule("S", "A B", func(args ...interface{}) interface{} { return pair{args[0], args[1]} }),
		grammar.NewRule("A", nil, func(args ...interface{}) interface{} { return "ε" }),
		grammar.NewRule("A", "a", grammar.Identity),
		grammar.NewRule("B", "b", grammar.Identity),
	}, "S")
	flat, _ := Transform(g)
	tokens := []scanner.Token{{Name: "b", Text: "b", Value: "b"}}
	v, err := earley.Parse(flat, flat.Start(), tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := v.(pair)
	if !ok {
		t.Fatalf("expected a pair, got %T", v)
	}
	if p.a != "ε" || p.b != "b" {
		t.Errorf("expected the A-elided variant (ε, b), got %+v", p)
	}
}
