package ebnf

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/tobyp/earley-go/grammar"
	"github.com/tobyp/earley-go/lr/earley"
	"github.com/tobyp/earley-go/lr/scanner"
)

func TestCompileSingleToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleygo.ebnf")
	defer teardown()
	//
	g, err := Compile([]Rule{
		{LHS: "greeting", RHS: "HELLO", Reducer: grammar.Identity},
	}, "greeting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tokens := []scanner.Token{{Name: "HELLO", Text: "hi", Value: "hi"}}
	v, err := earley.Parse(g, g.Start(), tokens)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if v.(string) != "hi" {
		t.Errorf("expected \"hi\", got %v", v)
	}
}

func TestCompileAlternation(t *testing.T) {
	g, err := Compile([]Rule{
		{LHS: "paren", RHS: "LPAREN|LBRACE", Reducer: grammar.Identity},
	}, "paren")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []grammar.Symbol{"LPAREN", "LBRACE"} {
		tokens := []scanner.Token{{Name: name, Text: string(name), Value: string(name)}}
		if _, err := earley.Parse(g, g.Start(), tokens); err != nil {
			t.Errorf("expected %s to be accepted, got error: %v", name, err)
		}
	}
}

func TestCompileOptionalAbsent(t *testing.T) {
	g, err := Compile([]Rule{
		{LHS: "maybe", RHS: "A [B]", Reducer: func(args ...interface{}) interface{} { return args[1] }},
	}, "maybe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tokens := []scanner.Token{{Name: "A", Text: "a", Value: "a"}}
	v, err := earley.Parse(g, g.Start(), tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("expected a nil (absent) optional, got %v", v)
	}
}

func TestCompileOptionalPresent(t *testing.T) {
	g, err := Compile([]Rule{
		{LHS: "maybe", RHS: "A [B]", Reducer: func(args ...interface{}) interface{} { return args[1] }},
	}, "maybe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tokens := []scanner.Token{
		{Name: "A", Text: "a", Value: "a"},
		{Name: "B", Text: "b", Value: "b"},
	}
	v, err := earley.Parse(g, g.Start(), tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tuple, ok := v.([]interface{})
	if !ok || len(tuple) != 1 || tuple[0] != "b" {
		t.Errorf("expected a 1-tuple (\"b\",), got %v", v)
	}
}

func TestCompileRepetition(t *testing.T) {
	g, err := Compile([]Rule{
		{LHS: "list", RHS: "{NUM}", Reducer: func(args ...interface{}) interface{} { return args[0] }},
	}, "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tokens := []scanner.Token{
		{Name: "NUM", Text: "1", Value: 1},
		{Name: "NUM", Text: "2", Value: 2},
		{Name: "NUM", Text: "3", Value: 3},
	}
	v, err := earley.Parse(g, g.Start(), tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v, []interface{}{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", v)
	}
}

func TestCompileSeparatedRepetition(t *testing.T) {
	g, err := Compile([]Rule{
		{LHS: "list", RHS: "{NUM:COMMA}", Reducer: func(args ...interface{}) interface{} { return args[0] }},
	}, "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tokens := []scanner.Token{
		{Name: "NUM", Text: "1", Value: 1},
		{Name: "COMMA", Text: ",", Value: nil},
		{Name: "NUM", Text: "2", Value: 2},
		{Name: "COMMA", Text: ",", Value: nil},
		{Name: "NUM", Text: "3", Value: 3},
	}
	v, err := earley.Parse(g, g.Start(), tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v, []interface{}{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", v)
	}
}

func TestCompileGrouping(t *testing.T) {
	g, err := Compile([]Rule{
		{LHS: "pair", RHS: "(A B)", Reducer: func(args ...interface{}) interface{} { return args[0] }},
	}, "pair")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tokens := []scanner.Token{
		{Name: "A", Text: "a", Value: "a"},
		{Name: "B", Text: "b", Value: "b"},
	}
	v, err := earley.Parse(g, g.Start(), tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v, []interface{}{"a", "b"}) {
		t.Errorf("expected (a, b), got %v", v)
	}
}

// TestNestedListScenario reproduces spec scenario 4 end to end: a
// recursive grammar over parens/braces and optionally-separated items
// nests into the documented list structure.
func TestNestedListScenario(t *testing.T) {
	lex := scanner.Lexicon{
		scanner.NewEntry("LPAREN", `\(`, scanner.Skip),
		scanner.NewEntry("RPAREN", `\)`, scanner.Skip),
		scanner.NewEntry("LBRACE", `\{`, scanner.Skip),
		scanner.NewEntry("RBRACE", `\}`, scanner.Skip),
		scanner.NewEntry("NUMBER", `[0-9]+`, func(m string) interface{} {
			n := 0
			for _, c := range m {
				n = n*10 + int(c-'0')
			}
			return n
		}),
		scanner.NewEntry("COMMA", `,`, scanner.Skip),
		scanner.NewEntry("", `\s+`, scanner.Skip),
	}

	itemReducer := func(args ...interface{}) interface{} {
		i := args[1]
		tup, ok := i.([]interface{})
		if !ok || len(tup) == 0 {
			return []interface{}{}
		}
		return tup[0]
	}

	g, err := Compile([]Rule{
		{LHS: "item", RHS: "NUMBER", Reducer: func(args ...interface{}) interface{} { return args[0] }},
		{LHS: "item", RHS: "(LPAREN|LBRACE) [{item:COMMA}] (RPAREN|RBRACE)", Reducer: itemReducer},
	}, "item")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tokens, err := lex.Scan("({5, 3}, ((1, 2), (4, 7, {)}))")
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	v, err := earley.Parse(g, g.Start(), tokens)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	want := []interface{}{
		[]interface{}{5, 3},
		[]interface{}{
			[]interface{}{1, 2},
			[]interface{}{4, 7, []interface{}{}},
		},
	}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("expected %v, got %v", want, v)
	}
}
