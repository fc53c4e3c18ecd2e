// File: seq.go
// Title: Sequencing Combinator
// Description: Implements the greedy left-to-right sequence builder that
//              collects constituent values into a tuple and tags failures
//              with the 1-based position of the failing constituent. Typed
//              fixed-arity builders Seq2..Seq6 are layered on top.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-03
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-03 v0.1.0: Initial dynamic sequence builder
// - 2026-02-10 v0.1.1: Added typed tuples and Seq2..Seq6

package parser

// Seq is an immutable sequence of parsers. The zero value is the empty
// sequence, which only strips leading whitespace. Use Then to append.
//
// Parsing runs the constituents in append order with no backtracking: input
// consumed by an earlier constituent stays consumed when a later one fails.
// A failure of the constituent at position i (1-based) is returned as
// err.Nest(i).
type Seq struct {
	steps []Parser[any]
}

// Then returns a new sequence with p appended as its last constituent
func Then[T any](s Seq, p Parser[T]) Seq {
	steps := make([]Parser[any], len(s.steps), len(s.steps)+1)
	copy(steps, s.steps)
	return Seq{steps: append(steps, Erase(p))}
}

// Len returns the number of constituents
func (s Seq) Len() int {
	return len(s.steps)
}

// Description implements Parser
func (s Seq) Description() Description {
	elements := make([]Description, len(s.steps))
	for i, step := range s.steps {
		elements[i] = step.Description()
	}
	return Annotated{Wrapped: Tuple{Elements: elements}, Annotation: "greedy"}
}

// Parse implements Parser. The value holds one element per constituent.
func (s Seq) Parse(source string) (string, []any, error) {
	values := make([]any, 0, len(s.steps))
	rest := trimLeft(source)
	for i, step := range s.steps {
		next, value, err := step.Parse(rest)
		if err != nil {
			return source, nil, toParseError(err).Nest(i + 1)
		}
		values = append(values, value)
		rest = next
	}
	return trimLeft(rest), values, nil
}

// Erase adapts a typed parser to Parser[any] without changing its behaviour
// or description
func Erase[T any](p Parser[T]) Parser[any] {
	if erased, ok := any(p).(Parser[any]); ok {
		return erased
	}
	return Map(p, func(v T) any { return v })
}

// Tuple2 is the value of a two-element sequence
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 is the value of a three-element sequence
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 is the value of a four-element sequence
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple5 is the value of a five-element sequence
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Tuple6 is the value of a six-element sequence
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// Seq2 sequences two parsers into a Tuple2
func Seq2[A, B any](a Parser[A], b Parser[B]) Parser[Tuple2[A, B]] {
	s := Then(Then(Seq{}, a), b)
	return Map[[]any](s, func(v []any) Tuple2[A, B] {
		return Tuple2[A, B]{elem[A](v, 0), elem[B](v, 1)}
	})
}

// Seq3 sequences three parsers into a Tuple3
func Seq3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Tuple3[A, B, C]] {
	s := Then(Then(Then(Seq{}, a), b), c)
	return Map[[]any](s, func(v []any) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{elem[A](v, 0), elem[B](v, 1), elem[C](v, 2)}
	})
}

// Seq4 sequences four parsers into a Tuple4
func Seq4[A, B, C, D any](a Parser[A], b Parser[B], c Parser[C], d Parser[D]) Parser[Tuple4[A, B, C, D]] {
	s := Then(Then(Then(Then(Seq{}, a), b), c), d)
	return Map[[]any](s, func(v []any) Tuple4[A, B, C, D] {
		return Tuple4[A, B, C, D]{elem[A](v, 0), elem[B](v, 1), elem[C](v, 2), elem[D](v, 3)}
	})
}

// Seq5 sequences five parsers into a Tuple5
func Seq5[A, B, C, D, E any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], e Parser[E]) Parser[Tuple5[A, B, C, D, E]] {
	s := Then(Then(Then(Then(Then(Seq{}, a), b), c), d), e)
	return Map[[]any](s, func(v []any) Tuple5[A, B, C, D, E] {
		return Tuple5[A, B, C, D, E]{elem[A](v, 0), elem[B](v, 1), elem[C](v, 2), elem[D](v, 3), elem[E](v, 4)}
	})
}

// Seq6 sequences six parsers into a Tuple6
func Seq6[A, B, C, D, E, F any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], e Parser[E], f Parser[F]) Parser[Tuple6[A, B, C, D, E, F]] {
	s := Then(Then(Then(Then(Then(Then(Seq{}, a), b), c), d), e), f)
	return Map[[]any](s, func(v []any) Tuple6[A, B, C, D, E, F] {
		return Tuple6[A, B, C, D, E, F]{elem[A](v, 0), elem[B](v, 1), elem[C](v, 2), elem[D](v, 3), elem[E](v, 4), elem[F](v, 5)}
	})
}

// elem returns v[i] as T. A nil element yields the zero value, which is how
// a nil interface value of T comes back out of the []any.
func elem[T any](v []any, i int) T {
	x, _ := v[i].(T)
	return x
}
