// File: do_test.go
// Title: Do-Notation Unit Tests
// Description: Unit tests for Do/Bind sequencing, failure short-circuiting
//              and equivalence with explicit FlatMap chains.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-04
// Modified: 2026-02-04
//
// Change History:
// - 2026-02-04 v0.1.0: Initial tests

package parser

import (
	"testing"
)

func TestDo_Success(t *testing.T) {
	pair := Do(func(s *Scope) [2]int {
		a := Bind(s, Integer)
		b := Bind(s, Integer)
		return [2]int{a, b}
	})

	rest, value, err := pair.Parse(" 4 5 six")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rest != "six" || value != [2]int{4, 5} {
		t.Errorf("Expected (six, [4 5]), got (%q, %v)", rest, value)
	}
}

func TestDo_FailureStopsBody(t *testing.T) {
	reached := false
	p := Do(func(s *Scope) int {
		Bind(s, Literal("/go"))
		n := Bind(s, Integer)
		reached = true
		return n
	})

	rest, value, err := p.Parse("/go nowhere")
	expectFailure(t, err, SimpleError{Message: "Expected an integer"})
	if rest != "/go nowhere" {
		t.Errorf("Expected input back, got %q", rest)
	}
	if value != 0 {
		t.Errorf("Expected zero value, got %d", value)
	}
	if reached {
		t.Error("Expected body to stop at the failing step")
	}
}

func TestDo_MatchesFlatMapChain(t *testing.T) {
	chained := FlatMap(Word, func(first string) Parser[string] {
		return FlatMap(Literal(first), func(string) Parser[string] {
			return Pure(first)
		})
	})
	linear := Do(func(s *Scope) string {
		first := Bind(s, Word)
		Bind(s, Literal(first))
		return first
	})

	for _, input := range []string{"a a rest", "a b", "", "x x"} {
		r1, v1, e1 := chained.Parse(input)
		r2, v2, e2 := linear.Parse(input)
		if r1 != r2 || v1 != v2 {
			t.Errorf("Results differ on %q: (%q,%q) vs (%q,%q)", input, r1, v1, r2, v2)
		}
		if (e1 == nil) != (e2 == nil) || (e1 != nil && e1.Error() != e2.Error()) {
			t.Errorf("Errors differ on %q: %v vs %v", input, e1, e2)
		}
	}
}

func TestDo_Remainder(t *testing.T) {
	var seen string
	p := Do(func(s *Scope) Unit {
		Bind(s, Word)
		seen = s.Remainder()
		return Unit{}
	})

	if _, _, err := p.Parse("one two"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if seen != "two" {
		t.Errorf("Expected remainder two, got %q", seen)
	}
}

func TestDo_ForeignPanicPropagates(t *testing.T) {
	p := Do(func(s *Scope) int {
		panic("unrelated")
	})

	defer func() {
		if r := recover(); r != "unrelated" {
			t.Errorf("Expected foreign panic to propagate, got %v", r)
		}
	}()
	p.Parse("x")
	t.Error("Expected Parse to panic")
}
