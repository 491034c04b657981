/*
Package earleygo is a general context-free parsing engine built on
Earley's recognition algorithm, paired with a priority-ordered regex
lexer, a nullable-production elimination transform, and an EBNF
desugarer for an extended right-hand-side syntax.

It is composed of five layers:

■ grammar: productions, terminal/nonterminal classification, lookup by LHS.

■ lr/scanner: a priority-ordered, regex-driven tokenizer.

■ lr/earley: the Earley chart recognizer and the derivation walk that
invokes per-rule reducers to produce a semantic value. It requires
every production's right-hand side to be non-empty.

■ lr/nullable: a grammar transform admitting epsilon (empty)
productions, rewriting them away before the recognizer ever sees them.

■ lr/ebnf: a surface syntax compiling alternation/optional/repetition/
grouping right-hand sides down to plain (possibly nullable) productions.

This package composes the five: NewGrammar and NewEBNFGrammar both run
the nullable transform at construction time, and Parse drives the
scanner and the recognizer over the result.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package earleygo
