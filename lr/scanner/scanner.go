/*
Package scanner implements a priority-ordered, regex-driven lexer.

A Lexicon is an ordered sequence of Entry values. Scanning an input
string maintains a cursor; at each position the entries are tried in
declaration order and the first one whose pattern matches anchored at
the cursor wins — even if a later entry would match a longer span. This
is deliberately not the "longest match" discipline of a DFA-based lexer
such as lexmachine: priority order is how an ambiguous lexicon (say, a
keyword entry declared before a generic identifier entry) is meant to be
resolved here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scanner

import (
	"fmt"
	"regexp"

	"github.com/tobyp/earley-go/grammar"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the global syntax tracer, gtrace.SyntaxTracer.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// UnrecognizedInput is raised by Lexicon.Scan when no entry matches the
// input at the given position.
type UnrecognizedInput struct {
	Position int
}

func (e *UnrecognizedInput) Error() string {
	return fmt.Sprintf("no lexicon entry matched input at position %d", e.Position)
}

// Token is a lexed token: the name of the matching lexicon entry, the
// exact input slice it matched, and the semantic value produced by the
// entry's value function.
type Token struct {
	Name  grammar.Symbol
	Text  string
	Value interface{}
	Span  grammar.Span
}

// Entry is one rule of a Lexicon: match Pattern anchored against the
// remaining input. If Name is empty, the match is consumed but no token
// is emitted (used for whitespace, comments). Value computes the
// token's semantic value from the matched text.
type Entry struct {
	Name    grammar.Symbol // empty means "skip entry"
	Pattern *regexp.Regexp
	Value   func(match string) interface{}
}

// NewEntry compiles pattern. The scanner always matches a pattern
// against input[pos:], which already anchors it at the cursor; patterns
// should not additionally prepend "^" unless they mean that literally
// within the remaining input.
func NewEntry(name grammar.Symbol, pattern string, value func(string) interface{}) Entry {
	return Entry{Name: name, Pattern: regexp.MustCompile(pattern), Value: value}
}

// Skip is a convenience Value function for skip entries.
func Skip(string) interface{} { return nil }

// Lexicon is an ordered, priority-resolved set of lexer entries.
type Lexicon []Entry

// Scan tokenizes input in full, or fails with *UnrecognizedInput at the
// first position no entry matches.
//
// Scanning is eager, not lazy: Parse always needs the complete token
// sequence before the recognizer can run, so there is no benefit to an
// iterator form here.
func (lex Lexicon) Scan(input string) ([]Token, error) {
	var toks []Token
	pos := 0
	for pos < len(input) {
		matched := false
		for _, e := range lex {
			loc := e.Pattern.FindStringIndex(input[pos:])
			if loc == nil || loc[0] != 0 {
				continue
			}
			if loc[1] == 0 {
				// Zero-width matches are disallowed: they would never
				// advance the cursor and so would loop forever.
				continue
			}
			text := input[pos : pos+loc[1]]
			if e.Name != "" {
				tok := Token{
					Name:  e.Name,
					Text:  text,
					Value: e.Value(text),
					Span:  grammar.Span{pos, pos + loc[1]},
				}
				tracer().Debugf("scanner: emit %s %q @ %v", tok.Name, tok.Text, tok.Span)
				toks = append(toks, tok)
			} else {
				tracer().Debugf("scanner: skip %q @ %d", text, pos)
			}
			pos += loc[1]
			matched = true
			break
		}
		if !matched {
			return nil, &UnrecognizedInput{Position: pos}
		}
	}
	return toks, nil
}
