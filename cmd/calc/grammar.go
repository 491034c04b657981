package main

import (
	"strconv"

	"github.com/tobyp/earley-go/grammar"
	"github.com/tobyp/earley-go/internal/calcenv"
	"github.com/tobyp/earley-go/lr/scanner"
)

// mathLexicon tokenizes arithmetic expressions: parens, comma, numbers,
// the three operator-priority tiers, identifiers (constants and function
// names), and whitespace.
func mathLexicon() scanner.Lexicon {
	toFloat := func(m string) interface{} {
		f, _ := strconv.ParseFloat(m, 64)
		return f
	}
	ident := func(m string) interface{} { return m }
	opText := func(m string) interface{} { return m }
	return scanner.Lexicon{
		scanner.NewEntry("(", `\(`, scanner.Skip),
		scanner.NewEntry(")", `\)`, scanner.Skip),
		scanner.NewEntry(",", `,`, scanner.Skip),
		scanner.NewEntry("number", `[0-9]+(\.[0-9]+)?`, toFloat),
		scanner.NewEntry("op0", `[+-]`, opText),
		scanner.NewEntry("op1", `\*|/{1,2}|%`, opText),
		scanner.NewEntry("op2", `\^`, opText),
		scanner.NewEntry("ident", `[a-zA-Z_][a-zA-Z_0-9]*`, ident),
		scanner.NewEntry("", `\s+`, scanner.Skip),
	}
}

func asFloat(v interface{}) float64 { return v.(float64) }
func asString(v interface{}) string { return v.(string) }

// buildMathRules mirrors the calculator's five-tier precedence chain,
// tightest to loosest: expression0 (atoms: numbers, constants, calls,
// parenthesized groups), expression1 (unary +/-, binding tighter than
// any binary operator), expression2 (^, binding tighter than */,% and
// +/-), expression3 (*, /, //, %), expression4 (+/-, loosest — the
// outer tier "expression" itself falls back to).
//
// Each tier falls back to the next-tighter one on its right-hand
// operand, so "1+2*3" parses as expression4(1) op0(+) expression3(2*3)
// = 7, not (1+2)*3. The ^ tier is written right-recursive (expression2
// → expression1 op2 expression2), not left-recursive like the other
// two binary tiers: a left-recursive shape here would make "2^3^2"
// group as (2^3)^2 = 64, but exponentiation is conventionally
// right-associative, and the right-recursive shape groups it as
// 2^(3^2) = 512.
func buildMathRules() []grammar.Rule {
	return []grammar.Rule{
		grammar.NewRule("expression0", "number", grammar.Identity),
		grammar.NewRule("expression0", "ident", func(args ...interface{}) interface{} {
			v, err := calcenv.Resolve(asString(args[0]))
			if err != nil {
				panic(err)
			}
			return v
		}),
		grammar.NewRule("expression0", "ident ( )", func(args ...interface{}) interface{} {
			v, err := calcenv.Call(asString(args[0]))
			if err != nil {
				panic(err)
			}
			return v
		}),
		grammar.NewRule("expression0", "ident ( arglist )", func(args ...interface{}) interface{} {
			al := args[2].([]float64)
			v, err := calcenv.Call(asString(args[0]), al...)
			if err != nil {
				panic(err)
			}
			return v
		}),
		grammar.NewRule("expression0", "( expression4 )", func(args ...interface{}) interface{} {
			return args[1]
		}),

		grammar.NewRule("arglist", "expression4", func(args ...interface{}) interface{} {
			return []float64{asFloat(args[0])}
		}),
		grammar.NewRule("arglist", "arglist , expression4", func(args ...interface{}) interface{} {
			al := args[0].([]float64)
			return append(append([]float64{}, al...), asFloat(args[2]))
		}),

		grammar.NewRule("expression1", "expression0", grammar.Identity),
		grammar.NewRule("expression1", "op0 expression0", func(args ...interface{}) interface{} {
			v := asFloat(args[1])
			if asString(args[0]) == "-" {
				return -v
			}
			return v
		}),

		grammar.NewRule("expression2", "expression1 op2 expression2", func(args ...interface{}) interface{} {
			v, err := calcenv.Op(asString(args[1]), asFloat(args[0]), asFloat(args[2]))
			if err != nil {
				panic(err)
			}
			return v
		}),
		grammar.NewRule("expression2", "expression1", grammar.Identity),

		grammar.NewRule("expression3", "expression3 op1 expression2", func(args ...interface{}) interface{} {
			v, err := calcenv.Op(asString(args[1]), asFloat(args[0]), asFloat(args[2]))
			if err != nil {
				panic(err)
			}
			return v
		}),
		grammar.NewRule("expression3", "expression2", grammar.Identity),

		grammar.NewRule("expression4", "expression4 op0 expression3", func(args ...interface{}) interface{} {
			v, err := calcenv.Op(asString(args[1]), asFloat(args[0]), asFloat(args[2]))
			if err != nil {
				panic(err)
			}
			return v
		}),
		grammar.NewRule("expression4", "expression3", grammar.Identity),

		grammar.NewRule("expression", "expression4", grammar.Identity),
	}
}

