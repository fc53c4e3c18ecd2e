// File: combinators.go
// Title: Parser Combinators
// Description: Implements value transformation (Map), flattening (Flatten),
//              dependent chaining (FlatMap) and the applicative helpers
//              After, Before and Apply built on top of them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-03
// Modified: 2026-02-03
//
// Change History:
// - 2026-02-03 v0.1.0: Initial implementation

package parser

// Map returns a parser that yields fn(value) when p succeeds. Failures and
// the description of p pass through unchanged.
func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return mapParser[A, B]{wrapped: p, mapper: fn}
}

type mapParser[A, B any] struct {
	wrapped Parser[A]
	mapper  func(A) B
}

func (p mapParser[A, B]) Description() Description {
	return p.wrapped.Description()
}

func (p mapParser[A, B]) Parse(source string) (string, B, error) {
	rest, value, err := p.wrapped.Parse(source)
	if err != nil {
		var zero B
		return source, zero, err
	}
	return rest, p.mapper(value), nil
}

// Flatten runs a parser that yields a parser, then runs the yielded parser
// against the remainder. The description is that of the outer parser.
func Flatten[T any](p Parser[Parser[T]]) Parser[T] {
	return flattenParser[T]{wrapped: p}
}

type flattenParser[T any] struct {
	wrapped Parser[Parser[T]]
}

func (p flattenParser[T]) Description() Description {
	return p.wrapped.Description()
}

func (p flattenParser[T]) Parse(source string) (string, T, error) {
	var zero T
	rest, inner, err := p.wrapped.Parse(source)
	if err != nil {
		return source, zero, err
	}
	rest, value, err := inner.Parse(rest)
	if err != nil {
		return source, zero, err
	}
	return rest, value, nil
}

// FlatMap runs p, then runs fn(value) against p's remainder. This is what
// makes dependent grammars possible, e.g. a second word that must repeat the
// first. The continuation is unknown until p has run, so the description is
// that of p.
func FlatMap[A, B any](p Parser[A], fn func(A) Parser[B]) Parser[B] {
	return flatMapParser[A, B]{
		wrapped: p,
		joined:  Flatten(Map(p, fn)),
	}
}

type flatMapParser[A, B any] struct {
	wrapped Parser[A]
	joined  Parser[B]
}

func (p flatMapParser[A, B]) Description() Description {
	return p.wrapped.Description()
}

func (p flatMapParser[A, B]) Parse(source string) (string, B, error) {
	return p.joined.Parse(source)
}

// After runs p then q and keeps q's value
func After[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Described(
		FlatMap(p, func(A) Parser[B] { return q }),
		Tuple{Elements: []Description{p.Description(), q.Description()}},
	)
}

// Before runs p then q and keeps p's value
func Before[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Described(
		FlatMap(p, func(a A) Parser[A] {
			return Map(q, func(B) A { return a })
		}),
		Tuple{Elements: []Description{p.Description(), q.Description()}},
	)
}

// Apply runs pf to obtain a function, then pa to obtain its argument, and
// yields the function applied to the argument. Chaining Apply over a curried
// constructor builds multi-field values step by step.
func Apply[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return Described(
		FlatMap(pf, func(f func(A) B) Parser[B] { return Map(pa, f) }),
		Tuple{Elements: []Description{pf.Description(), pa.Description()}},
	)
}

// Described returns a parser that behaves like p but reports d as its
// description
func Described[T any](p Parser[T], d Description) Parser[T] {
	return describedParser[T]{wrapped: p, description: d}
}

type describedParser[T any] struct {
	wrapped     Parser[T]
	description Description
}

func (p describedParser[T]) Description() Description {
	return p.description
}

func (p describedParser[T]) Parse(source string) (string, T, error) {
	return p.wrapped.Parse(source)
}
