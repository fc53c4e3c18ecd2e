// File: seq_test.go
// Title: Sequencing Combinator Unit Tests
// Description: Unit tests for the greedy sequence builder: value collection,
//              positional failure paths, immutability of builders and the
//              typed Seq2..Seq6 helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-03
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-03 v0.1.0: Initial tests
// - 2026-02-10 v0.1.1: Typed tuple tests

package parser

import (
	"reflect"
	"sync"
	"testing"
)

func TestSeq_Empty(t *testing.T) {
	rest, value, err := Seq{}.Parse("  hello world")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rest != "hello world" {
		t.Errorf("Expected leading whitespace stripped, got %q", rest)
	}
	if !reflect.DeepEqual(value, []any{}) {
		t.Errorf("Expected empty tuple, got %#v", value)
	}
}

func TestSeq_Parse(t *testing.T) {
	s := Then(Then(Then(Seq{}, Integer), Word), Integer)

	rest, value, err := s.Parse(" 1 two 3 four")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rest != "four" {
		t.Errorf("Expected rest four, got %q", rest)
	}
	if want := []any{1, "two", 3}; !reflect.DeepEqual(value, want) {
		t.Errorf("Expected %#v, got %#v", want, value)
	}
}

func TestSeq_FailurePath(t *testing.T) {
	tests := []struct {
		name     string
		seq      Seq
		input    string
		want     ParseError
		describe string
	}{
		{
			name:     "second constituent",
			seq:      Then(Then(Seq{}, Integer), Integer),
			input:    "42",
			want:     NestedError{Path: []any{2}, Err: SimpleError{Message: "Expected an integer"}},
			describe: "at 2: Expected an integer",
		},
		{
			name:     "first constituent",
			seq:      Then(Seq{}, Literal("/quit")),
			input:    "/exit",
			want:     NestedError{Path: []any{1}, Err: SimpleError{Message: "Expected literal: /quit, got: /exit"}},
			describe: "at 1: Expected literal: /quit, got: /exit",
		},
		{
			name:     "nested sequence",
			seq:      Then(Then(Seq{}, Word), Then(Then(Seq{}, Integer), Integer)),
			input:    "pair 1 x",
			want:     NestedError{Path: []any{2, 2}, Err: SimpleError{Message: "Expected an integer"}},
			describe: "at 2.2: Expected an integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, value, err := tt.seq.Parse(tt.input)
			expectFailure(t, err, tt.want)
			if rest != tt.input {
				t.Errorf("Expected input back, got %q", rest)
			}
			if value != nil {
				t.Errorf("Expected nil value on failure, got %#v", value)
			}
			if got := err.(ParseError).Describe(); got != tt.describe {
				t.Errorf("Expected describe %q, got %q", tt.describe, got)
			}
		})
	}
}

func TestSeq_NoBacktracking(t *testing.T) {
	// Word eagerly takes "12" so the trailing Integer never sees it
	s := Then(Then(Seq{}, Word), Integer)
	_, _, err := s.Parse("12")
	expectFailure(t, err, NestedError{Path: []any{2}, Err: SimpleError{Message: "Expected an integer"}})
}

func TestThen_DoesNotMutate(t *testing.T) {
	base := Then(Seq{}, Word)
	withInt := Then(base, Integer)
	withWord := Then(base, Word)

	if base.Len() != 1 || withInt.Len() != 2 || withWord.Len() != 2 {
		t.Fatalf("Unexpected lengths %d, %d, %d", base.Len(), withInt.Len(), withWord.Len())
	}

	_, v1, err := withInt.Parse("a 1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	_, v2, err := withWord.Parse("a b")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v1, []any{"a", 1}) || !reflect.DeepEqual(v2, []any{"a", "b"}) {
		t.Errorf("Builders interfered: %#v, %#v", v1, v2)
	}
}

func TestSeq_Idempotent(t *testing.T) {
	s := Then(Then(Then(Seq{}, Literal("/repeat")), Word), Integer)
	inputs := []string{"/repeat hi 3", "/repeat hi", "/nope", ""}

	for _, input := range inputs {
		r1, v1, e1 := s.Parse(input)
		r2, v2, e2 := s.Parse(input)
		if r1 != r2 || !reflect.DeepEqual(v1, v2) || !reflect.DeepEqual(e1, e2) {
			t.Errorf("Parse of %q is not repeatable", input)
		}
	}
}

func TestSeq_Concurrent(t *testing.T) {
	s := Seq3(Literal("/repeat"), Word, Integer)

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, v, err := s.Parse("/repeat hi 7")
			if err != nil {
				errs <- err
				return
			}
			if v.V3 != 7 {
				errs <- Errorf("unexpected count %d", v.V3)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestSeq2(t *testing.T) {
	p := Seq2(Word, Integer)

	rest, value, err := p.Parse("n 5 x")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if rest != "x" || value != (Tuple2[string, int]{"n", 5}) {
		t.Errorf("Expected (x, {n 5}), got (%q, %+v)", rest, value)
	}

	_, _, err = p.Parse("n five")
	expectFailure(t, err, NestedError{Path: []any{2}, Err: SimpleError{Message: "Expected an integer"}})
}

func TestSeq3to6(t *testing.T) {
	_, v3, err := Seq3(Integer, Integer, Integer).Parse("1 2 3")
	if err != nil || v3 != (Tuple3[int, int, int]{1, 2, 3}) {
		t.Errorf("Seq3: got %+v, %v", v3, err)
	}

	_, v4, err := Seq4(Word, Integer, Word, Integer).Parse("a 1 b 2")
	if err != nil || v4 != (Tuple4[string, int, string, int]{"a", 1, "b", 2}) {
		t.Errorf("Seq4: got %+v, %v", v4, err)
	}

	_, v5, err := Seq5(Integer, Integer, Integer, Integer, Integer).Parse("1 2 3 4 5")
	if err != nil || v5 != (Tuple5[int, int, int, int, int]{1, 2, 3, 4, 5}) {
		t.Errorf("Seq5: got %+v, %v", v5, err)
	}

	p6 := Seq6(Symbol("("), Integer, Symbol(","), Integer, Symbol(")"), Rest)
	_, v6, err := p6.Parse("(3, -51) tail")
	if err != nil {
		t.Fatalf("Seq6: unexpected error %v", err)
	}
	if v6.V2 != 3 || v6.V4 != -51 || v6.V6 != "tail" {
		t.Errorf("Seq6: got %+v", v6)
	}

	_, _, err = p6.Parse("(3; 4)")
	expectFailure(t, err, NestedError{Path: []any{3}, Err: SimpleError{Message: "Expected symbol: ,, got: ;"}})
}

func TestSeq_WithNothing(t *testing.T) {
	// Nothing contributes a Unit element and consumes nothing
	_, value, err := Then(Then(Seq{}, Nothing), Word).Parse("w")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(value, []any{Unit{}, "w"}) {
		t.Errorf("Expected [Unit w], got %#v", value)
	}
}
