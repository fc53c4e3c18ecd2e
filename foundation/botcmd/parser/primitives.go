// File: primitives.go
// Title: Primitive Parsers
// Description: Implements the leaf parsers grammars are built from: integer,
//              word, rest of input, nothing, exact literal, exact symbol and
//              constant values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-02
// Modified: 2026-02-11
//
// Change History:
// - 2026-02-02 v0.1.0: Initial primitives
// - 2026-02-11 v0.1.1: Added Symbol for punctuation-delimited grammars

package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Failure messages of the primitives
const (
	msgExpectedInteger = "Expected an integer"
	msgExpectedWord    = "Expected at least one non-space character"
)

var integerPattern = regexp.MustCompile(`^[+-]?[0-9]+`)

var (
	// Integer parses a signed decimal integer such as "42", "-7" or "+3"
	Integer Parser[int] = integerParser{}

	// Word parses one or more non-space characters
	Word Parser[string] = wordParser{}

	// Rest yields the whole remaining input, unstripped, and never fails
	Rest Parser[string] = restParser{}

	// Nothing consumes nothing and never fails
	Nothing Parser[Unit] = nothingParser{}
)

type integerParser struct{}

func (integerParser) Description() Description {
	return Opaque{Label: "signed integer"}
}

func (integerParser) Parse(source string) (string, int, error) {
	stripped := trimLeft(source)
	loc := integerPattern.FindStringIndex(stripped)
	if loc == nil {
		return source, 0, SimpleError{Message: msgExpectedInteger}
	}
	digits := stripped[:loc[1]]
	n, err := strconv.Atoi(digits)
	if err != nil {
		return source, 0, Errorf("Integer out of range: %s", digits)
	}
	return trimLeft(stripped[loc[1]:]), n, nil
}

type wordParser struct{}

func (wordParser) Description() Description {
	return Opaque{Label: "word (without spaces)"}
}

func (wordParser) Parse(source string) (string, string, error) {
	stripped := trimLeft(source)
	if stripped == "" {
		return source, "", SimpleError{Message: msgExpectedWord}
	}
	word, rest := splitWord(stripped)
	return trimLeft(rest), word, nil
}

type restParser struct{}

func (restParser) Description() Description {
	return Opaque{Label: "rest of the string"}
}

func (restParser) Parse(source string) (string, string, error) {
	return "", source, nil
}

type nothingParser struct{}

func (nothingParser) Description() Description {
	return Empty{}
}

func (nothingParser) Parse(source string) (string, Unit, error) {
	return source, Unit{}, nil
}

// Literal returns a parser for a word that must equal value exactly.
// It panics if value contains whitespace, since such a literal could never
// match a single word.
func Literal(value string) Parser[string] {
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		panic("parser: literal cannot contain spaces: " + strconv.Quote(value))
	}
	return literalParser{value: value}
}

type literalParser struct {
	value string
}

func (p literalParser) Description() Description {
	return Opaque{Label: "literal '" + p.value + "'"}
}

func (p literalParser) Parse(source string) (string, string, error) {
	stripped := trimLeft(source)
	if stripped == "" {
		return source, "", Errorf("Expected literal: %s", p.value)
	}
	word, rest := splitWord(stripped)
	if word != p.value {
		return source, "", Errorf("Expected literal: %s, got: %s", p.value, word)
	}
	return trimLeft(rest), word, nil
}

// Symbol returns a parser for the exact prefix s. Unlike Literal it does not
// need a word boundary, so "(" matches the start of "(3, 4)".
// It panics if s is empty.
func Symbol(s string) Parser[string] {
	if s == "" {
		panic("parser: symbol cannot be empty")
	}
	return symbolParser{symbol: s}
}

type symbolParser struct {
	symbol string
}

func (p symbolParser) Description() Description {
	return Opaque{Label: "symbol '" + p.symbol + "'"}
}

func (p symbolParser) Parse(source string) (string, string, error) {
	stripped := trimLeft(source)
	if strings.HasPrefix(stripped, p.symbol) {
		return trimLeft(stripped[len(p.symbol):]), p.symbol, nil
	}
	if stripped == "" {
		return source, "", Errorf("Expected symbol: %s", p.symbol)
	}
	r, _ := utf8.DecodeRuneInString(stripped)
	return source, "", Errorf("Expected symbol: %s, got: %c", p.symbol, r)
}

// Pure returns a parser that consumes nothing and yields value
func Pure[T any](value T) Parser[T] {
	return pureParser[T]{value: value}
}

// PureNoted is Pure with a note that shows up in the parser's description
func PureNoted[T any](value T, note string) Parser[T] {
	return pureParser[T]{value: value, note: note}
}

type pureParser[T any] struct {
	value T
	note  string
}

func (p pureParser[T]) Description() Description {
	if p.note == "" {
		return Empty{}
	}
	return Opaque{Label: p.note}
}

func (p pureParser[T]) Parse(source string) (string, T, error) {
	return source, p.value, nil
}
