// File: doc.go
// Title: Bot Command Engine Package Documentation
// Description: Package documentation for the high-level bot command engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial documentation

/*
Package botcmd ties the grammar library, the command registry and the
executor together behind one Engine.

	engine, err := botcmd.NewEngine(botcmd.Options{
		Logger:         logger,
		HandlerTimeout: 2 * time.Second,
		Aliases:        map[string]string{"q": "/quit"},
	}, examples.Commands()...)
	if err != nil {
		return err
	}

	result, err := engine.Execute(ctx, "/repeat hello 3")
	switch {
	case errors.Is(err, botcmd.ErrQuit):
		// leave the loop
	case err != nil:
		fmt.Println(botcmd.Explain(err))
	default:
		fmt.Print(result.Output)
	}

Grammars themselves are built with the parser subpackage; see
foundation/botcmd/examples for complete commands.
*/
package botcmd
