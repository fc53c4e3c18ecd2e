// File: doc.go
// Title: Bot Command Registry Package Documentation
// Description: Implements the registry of named bot commands. Each command
//              pairs a grammar with a handler and carries usage metadata.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-08
// Modified: 2026-02-08
//
// Change History:
// - 2026-02-08 v0.1.0: Initial registry implementation

/*
Package registry provides command registration and lookup services for bot
commands.

A Command binds a name such as "/repeat" to a grammar built from the parser
package and to a handler receiving the typed value the grammar produces:

	repeat := registry.NewCommand("/repeat",
		parser.Seq3(parser.Literal("/repeat"), parser.Word, parser.Integer),
		func(ctx context.Context, v parser.Tuple3[string, string, int], out io.Writer) error {
			for i := 0; i < v.V3; i++ {
				fmt.Fprintln(out, v.V2)
			}
			return nil
		},
	).WithSummary("Print a word several times")

	reg := registry.New(registry.Options{})
	if err := reg.Register(repeat); err != nil {
		return err
	}

The registry provides:

  • Registration with duplicate and name checks
  • Alias resolution ("q" for "/quit")
  • Sorted command listings and rendered usage lines
  • A Union description of every registered grammar

All methods are safe for concurrent use.
*/
package registry
