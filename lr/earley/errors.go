package earley

import (
	"fmt"

	"github.com/tobyp/earley-go/lr/scanner"
)

// ParseFailure is raised by Recognize when some chart set comes up
// empty: the recognizer has no item left expecting anything, meaning
// the input diverged from the grammar at TokenIndex. Token is the
// offending token, or nil if the failure is at position 0 (nothing
// was expected of an empty input).
type ParseFailure struct {
	TokenIndex int
	Token      *scanner.Token
}

func (e *ParseFailure) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("parse failure at token index %d (input exhausted)", e.TokenIndex)
	}
	return fmt.Sprintf("parse failure at token index %d: unexpected %s %q", e.TokenIndex, e.Token.Name, e.Token.Text)
}

// NoCompleteParse is raised by BuildDerivation when the recognizer
// finished with a non-empty final chart set, but no item in it is a
// completed accept item spanning the whole input. This happens when
// every token was consumed but the tokens form only a proper prefix of
// a sentence of the start symbol — e.g. input that ends too early.
type NoCompleteParse struct{}

func (e *NoCompleteParse) Error() string {
	return "no complete parse: the input ends before the start symbol is derived"
}
