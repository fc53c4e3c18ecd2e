// File: description_test.go
// Title: Parser Description Unit Tests
// Description: Unit tests for description shapes of composed parsers and
//              their usage rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial tests

package parser

import (
	"reflect"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		description Description
		plain       string
		annotated   string
	}{
		{"nil", nil, "", ""},
		{"empty", Empty{}, "", ""},
		{"opaque", Opaque{Label: "signed integer"}, "<signed integer>", "<signed integer>"},
		{
			name: "tuple skips empty",
			description: Tuple{Elements: []Description{
				Opaque{Label: "literal '/repeat'"}, Empty{}, Opaque{Label: "signed integer"},
			}},
			plain:     "<literal '/repeat'> <signed integer>",
			annotated: "<literal '/repeat'> <signed integer>",
		},
		{
			name: "union",
			description: Union{Variants: []Description{
				Opaque{Label: "a"}, Opaque{Label: "b"},
			}},
			plain:     "(<a> | <b>)",
			annotated: "(<a> | <b>)",
		},
		{"empty union", Union{}, "", ""},
		{
			name:        "annotation",
			description: Annotated{Wrapped: Opaque{Label: "word"}, Annotation: "greedy"},
			plain:       "<word>",
			annotated:   "<word> [greedy]",
		},
		{
			name:        "annotation of nothing",
			description: Annotated{Wrapped: Tuple{}, Annotation: "greedy"},
			plain:       "",
			annotated:   "[greedy]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.description); got != tt.plain {
				t.Errorf("Render: expected %q, got %q", tt.plain, got)
			}
			got := RenderWith(tt.description, RenderOptions{Annotations: true})
			if got != tt.annotated {
				t.Errorf("RenderWith annotations: expected %q, got %q", tt.annotated, got)
			}
		})
	}
}

func TestSeqDescription(t *testing.T) {
	s := Then(Then(Then(Seq{}, Literal("/repeat")), Word), Integer)

	want := Annotated{
		Wrapped: Tuple{Elements: []Description{
			Opaque{Label: "literal '/repeat'"},
			Opaque{Label: "word (without spaces)"},
			Opaque{Label: "signed integer"},
		}},
		Annotation: "greedy",
	}
	if got := s.Description(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %#v, got %#v", want, got)
	}

	if got := Render(s.Description()); got != "<literal '/repeat'> <word (without spaces)> <signed integer>" {
		t.Errorf("Unexpected usage %q", got)
	}
}

func TestDescriptionPassThrough(t *testing.T) {
	doubled := Map(Integer, func(n int) int { return n * 2 })
	if !reflect.DeepEqual(doubled.Description(), Integer.Description()) {
		t.Error("Expected Map to keep the wrapped description")
	}

	chained := FlatMap(Word, func(w string) Parser[string] { return Literal(w) })
	if !reflect.DeepEqual(chained.Description(), Word.Description()) {
		t.Error("Expected FlatMap to report the first parser's description")
	}

	custom := Described(Rest, Opaque{Label: "message"})
	if got := Render(custom.Description()); got != "<message>" {
		t.Errorf("Expected <message>, got %q", got)
	}
}
