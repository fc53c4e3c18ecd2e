// File: errors.go
// Title: Parse Error Model
// Description: Defines the two parse failure variants (a terminal message and
//              a path-nested failure), the nesting operation used by the
//              sequencing combinator, and the describe rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-02
// Modified: 2026-02-02
//
// Change History:
// - 2026-02-02 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"fmt"
	"strings"
)

// rootPath is rendered in place of an empty path
const rootPath = "<root>"

// ParseError is the failure returned by every parser. The set of
// implementations is closed: SimpleError and NestedError.
type ParseError interface {
	error

	// Describe renders "at <dotted path>: <message>", using "<root>" for an
	// empty path.
	Describe() string

	// Nest returns a copy of the error with key added as the new outermost
	// path segment.
	Nest(key any) ParseError

	// Location returns the full path from the outermost segment inwards.
	Location() []any

	// Reason returns the innermost terminal message.
	Reason() string

	isParseError()
}

// SimpleError is a terminal failure message.
type SimpleError struct {
	Message string
}

// NestedError is a failure tagged with the positional path at which it
// occurred. Path is ordered outermost segment first.
type NestedError struct {
	Path []any
	Err  ParseError
}

// Errorf creates a SimpleError with a formatted message
func Errorf(format string, args ...any) ParseError {
	return SimpleError{Message: fmt.Sprintf(format, args...)}
}

// Nested creates a NestedError wrapping err under path
func Nested(path []any, err ParseError) ParseError {
	return NestedError{Path: copyPath(path), Err: err}
}

// Error implements the error interface
func (e SimpleError) Error() string {
	return e.Message
}

// Describe implements ParseError
func (e SimpleError) Describe() string {
	return describe(nil, e.Message)
}

// Nest implements ParseError
func (e SimpleError) Nest(key any) ParseError {
	return NestedError{Path: []any{key}, Err: e}
}

// Location implements ParseError
func (e SimpleError) Location() []any {
	return nil
}

// Reason implements ParseError
func (e SimpleError) Reason() string {
	return e.Message
}

func (SimpleError) isParseError() {}

// Error implements the error interface
func (e NestedError) Error() string {
	return e.Describe()
}

// Unwrap gives errors.Is and errors.As access to the wrapped failure
func (e NestedError) Unwrap() error {
	return e.Err
}

// Describe implements ParseError
func (e NestedError) Describe() string {
	return describe(e.Location(), e.Reason())
}

// Nest implements ParseError. Nesting a NestedError extends its path
// instead of adding another layer.
func (e NestedError) Nest(key any) ParseError {
	path := make([]any, 0, len(e.Path)+1)
	path = append(path, key)
	path = append(path, e.Path...)
	return NestedError{Path: path, Err: e.Err}
}

// Location implements ParseError
func (e NestedError) Location() []any {
	path := copyPath(e.Path)
	if e.Err != nil {
		path = append(path, e.Err.Location()...)
	}
	return path
}

// Reason implements ParseError
func (e NestedError) Reason() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Reason()
}

func (NestedError) isParseError() {}

// AsParseError reports whether err carries a ParseError and returns it
func AsParseError(err error) (ParseError, bool) {
	var perr ParseError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

// FormatPath renders a path the way Describe does
func FormatPath(path []any) string {
	if len(path) == 0 {
		return rootPath
	}
	segments := make([]string, len(path))
	for i, key := range path {
		segments[i] = fmt.Sprint(key)
	}
	return strings.Join(segments, ".")
}

// toParseError converts a foreign error returned by a custom parser
func toParseError(err error) ParseError {
	if perr, ok := AsParseError(err); ok {
		return perr
	}
	return SimpleError{Message: err.Error()}
}

func describe(path []any, message string) string {
	return "at " + FormatPath(path) + ": " + message
}

func copyPath(path []any) []any {
	if path == nil {
		return nil
	}
	out := make([]any, len(path))
	copy(out, path)
	return out
}
