// File: doc.go
// Title: Bot Command Parser Package Documentation
// Description: Package documentation for the combinator-based command line
//              parser used by the botcmd engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-02
// Modified: 2026-02-02
//
// Change History:
// - 2026-02-02 v0.1.0: Initial documentation

/*
Package parser turns a single line of free-form text into typed values.

A grammar is built once from a handful of primitive parsers and a small set
of combinators, and can then be run against any number of input lines:

	repeat := parser.Seq3(parser.Literal("/repeat"), parser.Word, parser.Integer)

	rest, value, err := repeat.Parse("/repeat hello 3")
	// rest == "", value == Tuple3{"/repeat", "hello", 3}

Every parser consumes a prefix of its input and returns the unconsumed
remainder together with its value. Leading whitespace is stripped before a
primitive matches and again from the remainder it returns, so callers never
strip between steps. Trailing whitespace of the final remainder is kept.

# Primitives

	Integer        signed decimal integer ("42", "-7", "+3")
	Word           run of non-space characters
	Rest           everything that is left, untouched
	Nothing        matches without consuming anything
	Literal(v)     a word that must equal v
	Symbol(s)      an exact prefix s (punctuation such as "(" or ",")
	Pure(x)        consumes nothing and yields x

# Combinators

	Map(p, f)      transform the value of p
	FlatMap(p, f)  run p, then the parser f(value) on the remainder
	Flatten(pp)    run a parser that yields a parser, then run that one
	After(p, q)    run both, keep q's value
	Before(p, q)   run both, keep p's value
	Apply(pf, pa)  applicative application of a parsed function
	Seq / Then     greedy left-to-right sequencing into []any
	Seq2 .. Seq6   typed fixed-arity sequences
	Do / Bind      linear do-notation over FlatMap

# Errors

Failures are ParseError values: a SimpleError carries a message, a
NestedError carries the positional path the sequencing combinator added on
the way out. Describe renders both as

	at 2: Expected an integer
	at <root>: Expected at least one non-space character

# Descriptions

Every parser exposes a Description tree (Opaque, Union, Tuple, Annotated,
Empty) that is never consulted while parsing. Render turns it into a usage
fragment for help output.

Parsers hold no mutable state. A grammar value can be shared between
goroutines and invoked concurrently without synchronization.
*/
package parser
