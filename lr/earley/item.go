package earley

import (
	"fmt"

	"github.com/cnf/structhash"

	"github.com/tobyp/earley-go/grammar"
)

// acceptSymbol is the LHS of the synthetic top-level production the
// recognizer seeds every chart with. It can never collide with a
// grammar-declared symbol because user productions never spell it.
const acceptSymbol grammar.Symbol = "⟨ACCEPT⟩"

// Item is an Earley item: a production with a dot position and the
// chart set the item originated in, plus the back-pointers needed to
// reconstruct a derivation once the item completes.
//
// Previous is the item one dot position behind this one (same rule,
// same origin); Completing is whichever symbol's match advanced the
// dot — a *scanner.Token for a scan step, an *Item for a complete
// step. Both are nil for an item freshly predicted at dot 0.
type Item struct {
	Rule       grammar.Rule
	Dot        int
	Origin     int
	Previous   *Item
	Completing interface{}

	key string
}

type itemKey struct {
	RuleKey string
	Dot     int
	Origin  int
}

func newItem(rule grammar.Rule, dot, origin int) *Item {
	it := &Item{Rule: rule, Dot: dot, Origin: origin}
	h, err := structhash.Hash(itemKey{RuleKey: rule.Key(), Dot: dot, Origin: origin}, 1)
	if err != nil {
		// itemKey is a plain struct of strings and ints; structhash
		// cannot fail to hash it.
		panic(err)
	}
	it.key = h
	return it
}

// PeekSymbol returns the symbol immediately right of the dot, if any.
func (it *Item) PeekSymbol() (grammar.Symbol, bool) {
	if it.Dot >= len(it.Rule.RHS) {
		return "", false
	}
	return it.Rule.RHS[it.Dot], true
}

// Complete reports whether the dot has reached the end of the RHS.
func (it *Item) Complete() bool {
	return it.Dot >= len(it.Rule.RHS)
}

// Advance returns the item one dot position ahead of it, recording
// completing (a *scanner.Token or *Item) as the back-pointer to
// whatever justified the advance.
func (it *Item) Advance(completing interface{}) *Item {
	n := newItem(it.Rule, it.Dot+1, it.Origin)
	n.Previous = it
	n.Completing = completing
	return n
}

func (it *Item) String() string {
	var dotted string
	for i, s := range it.Rule.RHS {
		if i == it.Dot {
			dotted += "• "
		}
		dotted += string(s) + " "
	}
	if it.Dot == len(it.Rule.RHS) {
		dotted += "•"
	}
	return fmt.Sprintf("%s → %s[%d]", it.Rule.LHS, dotted, it.Origin)
}
