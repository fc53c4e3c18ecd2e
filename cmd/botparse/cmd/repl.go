package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/botparse/foundation/botcmd"
	"github.com/msto63/botparse/foundation/utils/stringx"
	"github.com/msto63/botparse/internal/tui/repl"
)

var replTUI bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive command loop",
	Long: `Reads commands line by line and runs them.

Blank lines are ignored. /quit, Ctrl+D or end of input leave the loop.
Rejected input is reported with the position of the failing part, e.g.

  >>> /repeat hello many
  at 3: Expected an integer

Use --tui for the full-screen interface.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replTUI, "tui", false, "run the full-screen terminal UI")
}

func runREPL(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	if replTUI {
		return repl.Run(repl.Config{
			Engine:   engine,
			Prompt:   settings.REPL.Prompt,
			Greeting: settings.REPL.Greeting,
		})
	}

	return lineLoop(cmd.Context(), engine, cmd.InOrStdin(), cmd.OutOrStdout(),
		settings.REPL.Prompt, settings.REPL.Greeting)
}

// lineLoop runs the plain read-eval-print loop until /quit or end of input
func lineLoop(ctx context.Context, engine *botcmd.Engine, in io.Reader, out io.Writer, prompt string, greeting bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if greeting {
		fmt.Fprintln(out, "Commands:")
		for _, c := range engine.Registry().Commands() {
			fmt.Fprintf(out, "    %s\n", c.Usage(parserOptions(false)))
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nBye!")
			return nil
		}

		line := scanner.Text()
		if stringx.IsBlank(line) {
			continue
		}

		result, err := engine.Execute(ctx, line)
		if result != nil {
			fmt.Fprint(out, result.Output)
		}
		switch {
		case errors.Is(err, botcmd.ErrQuit):
			fmt.Fprintln(out, "Bye!")
			return nil
		case err != nil:
			fmt.Fprintln(out, botcmd.Explain(err))
		}
	}
}
