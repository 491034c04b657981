package earley

import (
	"github.com/tobyp/earley-go/lr/scanner"
)

// BuildDerivation walks the back-pointers of a completed chart,
// reduces each rule's children bottom-up through its Reducer, and
// returns the semantic value of the accept item spanning the whole
// input.
//
// Because ItemSet.Add keeps only the first-inserted item for any
// (rule, dot, origin), every item in the chart already has exactly one
// fixed pair of back-pointers — there is nothing left to disambiguate
// at walk time, unlike a parser that keeps all derivations and
// resolves ambiguity during extraction.
func BuildDerivation(chart *Chart) (interface{}, error) {
	final := chart.Sets[len(chart.Sets)-1]
	for idx := 0; idx < final.Size(); idx++ {
		it := final.At(idx)
		if it.Rule.LHS == acceptSymbol && it.Origin == 0 && it.Complete() {
			return value(it.Completing), nil
		}
	}
	return nil, &NoCompleteParse{}
}

// children collects the semantic values of it's completed RHS symbols,
// left to right, by walking Previous back to the dot-0 item.
func children(it *Item) []interface{} {
	if it.Previous == nil {
		if it.Completing == nil {
			return nil
		}
		return []interface{}{value(it.Completing)}
	}
	return append(children(it.Previous), value(it.Completing))
}

// value computes the semantic value of whatever completed a dot
// advance: a scanned token contributes the value its lexicon entry
// produced, a completed item contributes its rule's reduction.
func value(completing interface{}) interface{} {
	switch v := completing.(type) {
	case *scanner.Token:
		return v.Value
	case *Item:
		return v.Rule.Reducer(children(v)...)
	default:
		panic("earley: derivation node is neither a token nor an item")
	}
}
