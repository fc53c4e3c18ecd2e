// File: command.go
// Title: Command Definition
// Description: Defines Command, the type-erased pairing of a grammar and its
//              handler, and the generic constructor that builds it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-08
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-08 v0.1.0: Initial implementation
// - 2026-02-09 v0.1.1: Summary and examples

package registry

import (
	"context"
	"fmt"
	"io"

	"github.com/msto63/botparse/foundation/botcmd/parser"
)

// Handler receives the value a command's grammar produced and writes its
// output to out
type Handler[T any] func(ctx context.Context, value T, out io.Writer) error

// Command is a named grammar with a handler. Commands are immutable once
// registered; the With* methods return modified copies.
type Command struct {
	name     string
	summary  string
	examples []string
	grammar  parser.Parser[any]
	handler  func(ctx context.Context, value any, out io.Writer) error
}

// NewCommand builds a command from a typed grammar and a handler for its
// value. The name is the word that selects the command, normally the
// grammar's leading literal.
func NewCommand[T any](name string, grammar parser.Parser[T], handler Handler[T]) *Command {
	cmd := &Command{name: name}
	if grammar != nil {
		cmd.grammar = parser.Erase(grammar)
	}
	if handler != nil {
		cmd.handler = func(ctx context.Context, value any, out io.Writer) error {
			typed, ok := value.(T)
			if !ok && value != nil {
				return fmt.Errorf("command %s: unexpected value type %T", name, value)
			}
			return handler(ctx, typed, out)
		}
	}
	return cmd
}

// WithSummary returns a copy of the command with a one-line summary
func (c *Command) WithSummary(summary string) *Command {
	clone := c.clone()
	clone.summary = summary
	return clone
}

// WithExamples returns a copy of the command with example input lines
func (c *Command) WithExamples(examples ...string) *Command {
	clone := c.clone()
	clone.examples = append([]string(nil), examples...)
	return clone
}

// Name returns the selecting word
func (c *Command) Name() string {
	return c.name
}

// Summary returns the one-line summary
func (c *Command) Summary() string {
	return c.summary
}

// Examples returns a copy of the example lines
func (c *Command) Examples() []string {
	return append([]string(nil), c.examples...)
}

// Grammar returns the type-erased grammar
func (c *Command) Grammar() parser.Parser[any] {
	return c.grammar
}

// Description returns the grammar's description
func (c *Command) Description() parser.Description {
	return c.grammar.Description()
}

// Usage renders the grammar's description as a usage line
func (c *Command) Usage(opts parser.RenderOptions) string {
	return parser.RenderWith(c.Description(), opts)
}

// Parse runs the grammar against line
func (c *Command) Parse(line string) (string, any, error) {
	return c.grammar.Parse(line)
}

// Run invokes the handler with a value produced by Parse
func (c *Command) Run(ctx context.Context, value any, out io.Writer) error {
	return c.handler(ctx, value, out)
}

func (c *Command) clone() *Command {
	clone := *c
	clone.examples = append([]string(nil), c.examples...)
	return &clone
}
