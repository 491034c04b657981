package grammar

import "fmt"

// Span captures a half-open range [From, To) of positions in an input
// stream. Every token produced by a Lexicon carries one.
type Span [2]int

// From returns the start position of a span.
func (s Span) From() int { return s[0] }

// To returns the position just behind the end of a span.
func (s Span) To() int { return s[1] }

// Len returns the length of the span.
func (s Span) Len() int { return s[1] - s[0] }

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
