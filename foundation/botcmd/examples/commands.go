// File: commands.go
// Title: Example Bot Commands
// Description: Grammars and handlers of the example commands and helpers to
//              register them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-10 v0.1.0: /quit, /repeat, /confirm, /point
// - 2026-02-12 v0.1.1: /echo, repetition limit

package examples

import (
	"context"
	"fmt"
	"io"

	"github.com/msto63/botparse/foundation/botcmd/executor"
	"github.com/msto63/botparse/foundation/botcmd/parser"
	"github.com/msto63/botparse/foundation/botcmd/registry"
	bperror "github.com/msto63/botparse/foundation/core/error"
)

// MaxRepeat caps the count accepted by /repeat
const MaxRepeat = 100

// Grammars of the example commands
var (
	QuitGrammar = parser.Literal("/quit")

	RepeatGrammar = parser.Seq3(parser.Literal("/repeat"), parser.Word, parser.Integer)

	// ConfirmGrammar reads a word, then requires the next word to repeat it
	ConfirmGrammar = parser.Seq2(
		parser.Literal("/confirm"),
		parser.Described(
			parser.FlatMap(parser.Word, parser.Literal),
			parser.Tuple{Elements: []parser.Description{
				parser.Opaque{Label: "password"},
				parser.Opaque{Label: "password again"},
			}},
		),
	)

	PointGrammar = parser.After(parser.Literal("/point"), PointDo)

	EchoGrammar = parser.After(parser.Literal("/echo"), parser.Rest)
)

// Quit ends the session
func Quit() *registry.Command {
	return registry.NewCommand("/quit", QuitGrammar,
		func(context.Context, string, io.Writer) error {
			return executor.ErrQuit
		}).
		WithSummary("Leave the bot").
		WithExamples("/quit")
}

// Repeat prints a word the given number of times
func Repeat() *registry.Command {
	return registry.NewCommand("/repeat", RepeatGrammar,
		func(ctx context.Context, v parser.Tuple3[string, string, int], out io.Writer) error {
			word, times := v.V2, v.V3
			if times > MaxRepeat {
				return bperror.New(fmt.Sprintf("cannot repeat more than %d times", MaxRepeat)).
					WithCode(bperror.CodeInvalidInput).
					WithDetail("times", times)
			}
			for i := 0; i < times; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out, word); err != nil {
					return err
				}
			}
			return nil
		}).
		WithSummary("Print a word several times").
		WithExamples("/repeat hello 3")
}

// Confirm accepts a password typed twice
func Confirm() *registry.Command {
	return registry.NewCommand("/confirm", ConfirmGrammar,
		func(_ context.Context, _ parser.Tuple2[string, string], out io.Writer) error {
			_, err := fmt.Fprintln(out, "Password confirmed")
			return err
		}).
		WithSummary("Type a password twice").
		WithExamples("/confirm p4ssw0rd p4ssw0rd")
}

// PointCommand echoes a parsed point
func PointCommand() *registry.Command {
	return registry.NewCommand("/point", PointGrammar,
		func(_ context.Context, p Point, out io.Writer) error {
			_, err := fmt.Fprintf(out, "x=%d y=%d\n", p.X, p.Y)
			return err
		}).
		WithSummary("Parse a 2-D point").
		WithExamples("/point (3, -51)")
}

// Echo prints the rest of the line
func Echo() *registry.Command {
	return registry.NewCommand("/echo", EchoGrammar,
		func(_ context.Context, text string, out io.Writer) error {
			_, err := fmt.Fprintln(out, text)
			return err
		}).
		WithSummary("Print the rest of the line").
		WithExamples("/echo hello world")
}

// Commands returns every example command
func Commands() []*registry.Command {
	return []*registry.Command{Quit(), Repeat(), Confirm(), PointCommand(), Echo()}
}

// RegisterAll registers every example command with reg
func RegisterAll(reg *registry.Registry) error {
	for _, cmd := range Commands() {
		if err := reg.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}
