// File: description.go
// Title: Parser Description Model
// Description: Defines the closed set of description variants a parser uses
//              to describe its shape for help and usage output, and renders
//              them to usage strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-02
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-02 v0.1.0: Initial description variants
// - 2026-02-09 v0.1.1: Added Render and RenderOptions

package parser

import (
	"strings"
)

// Description describes the shape of a parser. It is a pure tree and is
// never consulted during parsing.
type Description interface {
	isDescription()
}

// Opaque is a leaf description carrying a human-readable label.
type Opaque struct {
	Label string
}

// Union lists alternative shapes in order.
type Union struct {
	Variants []Description
}

// Tuple lists the shapes of consecutive elements in order.
type Tuple struct {
	Elements []Description
}

// Annotated wraps a description with a free-text annotation such as "greedy".
type Annotated struct {
	Wrapped    Description
	Annotation string
}

// Empty describes a parser that has nothing to show.
type Empty struct{}

func (Opaque) isDescription()    {}
func (Union) isDescription()     {}
func (Tuple) isDescription()     {}
func (Annotated) isDescription() {}
func (Empty) isDescription()     {}

// RenderOptions controls how Render turns a description into text
type RenderOptions struct {
	// Annotations appends annotations in brackets after the annotated element
	Annotations bool
}

// Render renders a description as a single-line usage fragment.
//
//	Opaque{"signed integer"}             -> <signed integer>
//	Tuple{a, b}                          -> a b
//	Union{a, b}                          -> (a | b)
//	Annotated{x, "greedy"}               -> x
//	Empty{}                              -> ""
func Render(d Description) string {
	return RenderWith(d, RenderOptions{})
}

// RenderWith renders a description using the given options.
func RenderWith(d Description, opts RenderOptions) string {
	switch d := d.(type) {
	case nil:
		return ""
	case Opaque:
		return "<" + d.Label + ">"
	case Tuple:
		return joinRendered(d.Elements, " ", opts)
	case Union:
		inner := joinRendered(d.Variants, " | ", opts)
		if inner == "" {
			return ""
		}
		return "(" + inner + ")"
	case Annotated:
		inner := RenderWith(d.Wrapped, opts)
		if !opts.Annotations || d.Annotation == "" {
			return inner
		}
		if inner == "" {
			return "[" + d.Annotation + "]"
		}
		return inner + " [" + d.Annotation + "]"
	case Empty:
		return ""
	default:
		return ""
	}
}

// joinRendered renders each description and joins the non-empty results
func joinRendered(items []Description, sep string, opts RenderOptions) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if rendered := RenderWith(item, opts); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, sep)
}
