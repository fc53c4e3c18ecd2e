// File: parser.go
// Title: Parser Abstraction
// Description: Defines the Parser capability every primitive and combinator
//              implements, the derived Matches operation and the shared
//              whitespace policy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-02
// Modified: 2026-02-02
//
// Change History:
// - 2026-02-02 v0.1.0: Initial implementation

package parser

import (
	"strings"
	"unicode"
)

// Parser consumes a prefix of its input and yields a value of type T.
//
// On success Parse returns the unconsumed remainder (leading whitespace
// stripped) and the value. On failure it returns the input unchanged, the
// zero value and a ParseError. Implementations must not keep state between
// calls.
type Parser[T any] interface {
	Parse(source string) (rest string, value T, err error)
	Description() Description
}

// Unit is the value of parsers that produce nothing meaningful
type Unit struct{}

// Matches reports whether p accepts a prefix of source. The failure and its
// position are discarded.
func Matches[T any](p Parser[T], source string) bool {
	_, _, err := p.Parse(source)
	return err == nil
}

// MustParse runs p and panics on failure. Intended for tests and for
// grammar self-checks at start-up.
func MustParse[T any](p Parser[T], source string) (string, T) {
	rest, value, err := p.Parse(source)
	if err != nil {
		panic("parser: MustParse(" + source + "): " + err.Error())
	}
	return rest, value
}

// trimLeft strips leading Unicode whitespace
func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// splitWord splits off the leading run of non-space characters of an
// already stripped string
func splitWord(s string) (word, rest string) {
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}
