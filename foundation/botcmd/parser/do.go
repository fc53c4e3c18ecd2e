// File: do.go
// Title: Do-Notation Sequencing
// Description: Lets a grammar be written as a linear list of dependent steps
//              instead of nested FlatMap continuations. Each Bind runs one
//              parser against the current remainder; the first failure ends
//              the whole Do block with that failure.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-04
// Modified: 2026-02-04
//
// Change History:
// - 2026-02-04 v0.1.0: Initial implementation

package parser

// Scope threads the remainder through the steps of a Do block. A Scope is
// only valid inside the body it was passed to.
type Scope struct {
	rest string
}

// Remainder returns the input not yet consumed by the block
func (s *Scope) Remainder() string {
	return s.rest
}

// bindFailure carries a step failure out of the body to Do's recover
type bindFailure struct {
	err error
}

// Bind runs p against the scope's remainder and returns its value. On
// failure it abandons the enclosing Do body, which then fails with p's error.
func Bind[T any](s *Scope, p Parser[T]) T {
	rest, value, err := p.Parse(s.rest)
	if err != nil {
		panic(bindFailure{err: err})
	}
	s.rest = rest
	return value
}

// Do returns a parser that runs body with a fresh Scope over the input.
// It is equivalent to the chain of FlatMap calls the Bind steps spell out:
//
//	point := parser.Do(func(s *parser.Scope) Point {
//		parser.Bind(s, parser.Symbol("("))
//		x := parser.Bind(s, parser.Integer)
//		parser.Bind(s, parser.Symbol(","))
//		y := parser.Bind(s, parser.Integer)
//		parser.Bind(s, parser.Symbol(")"))
//		return Point{x, y}
//	})
//
// The steps are not known ahead of running the body, so the description is
// Empty. Wrap the result in Described to document it.
func Do[T any](body func(*Scope) T) Parser[T] {
	return doParser[T]{body: body}
}

type doParser[T any] struct {
	body func(*Scope) T
}

func (doParser[T]) Description() Description {
	return Empty{}
}

func (p doParser[T]) Parse(source string) (rest string, value T, err error) {
	scope := &Scope{rest: source}
	defer func() {
		if r := recover(); r != nil {
			failure, ok := r.(bindFailure)
			if !ok {
				panic(r)
			}
			var zero T
			rest, value, err = source, zero, failure.err
		}
	}()
	value = p.body(scope)
	return scope.rest, value, nil
}
