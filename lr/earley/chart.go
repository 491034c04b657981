package earley

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// ItemSet is one position's set of Earley items: an ordered sequence
// that rejects structural duplicates (same rule, dot and origin). The
// first item inserted for a given key keeps its back-pointers; later
// duplicates are dropped, which is how ambiguous derivations are
// resolved — the earlier-discovered completion wins, and because
// productions are predicted in declaration order, "earlier-discovered"
// means "earlier-declared".
//
// The recognizer iterates an ItemSet by index while items are still
// being appended to it (predict and complete both add to the set
// currently being scanned); arraylist's Get/Size make that safe since
// Size reflects additions made mid-loop.
type ItemSet struct {
	items *arraylist.List
	index map[string]bool
}

func newItemSet() *ItemSet {
	return &ItemSet{items: arraylist.New(), index: make(map[string]bool)}
}

// Add inserts it unless an item with the same (rule, dot, origin) is
// already present. Returns true if it was newly inserted.
func (s *ItemSet) Add(it *Item) bool {
	if s.index[it.key] {
		return false
	}
	s.index[it.key] = true
	s.items.Add(it)
	return true
}

// Size returns the number of items currently in the set.
func (s *ItemSet) Size() int {
	return s.items.Size()
}

// At returns the item at index i. Panics if i is out of range (the
// underlying arraylist reports that as found == false).
func (s *ItemSet) At(i int) *Item {
	v, found := s.items.Get(i)
	if !found {
		panic("earley: ItemSet index out of range")
	}
	return v.(*Item)
}

// Chart is the sequence of item sets built while recognizing a token
// stream: one set per position, 0 through len(tokens) inclusive.
type Chart struct {
	Sets []*ItemSet
}

func newChart(n int) *Chart {
	c := &Chart{Sets: make([]*ItemSet, n+1)}
	for i := range c.Sets {
		c.Sets[i] = newItemSet()
	}
	return c
}
