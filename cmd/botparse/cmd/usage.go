package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/botparse/foundation/botcmd/parser"
)

var usageAnnotations bool

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Print the grammar of every command",
	Long: `Renders the description of every registered grammar.

  botparse usage                 # plain usage lines
  botparse usage --annotations   # include notes such as [greedy]`,
	Args: cobra.NoArgs,
	RunE: runUsage,
}

func init() {
	rootCmd.AddCommand(usageCmd)

	usageCmd.Flags().BoolVar(&usageAnnotations, "annotations", false, "show description annotations")
}

func runUsage(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range engine.Registry().Commands() {
		fmt.Fprintln(out, c.Usage(parserOptions(usageAnnotations)))
		if c.Summary() != "" {
			fmt.Fprintf(out, "    %s\n", c.Summary())
		}
		for _, example := range c.Examples() {
			fmt.Fprintf(out, "    e.g. %s\n", example)
		}
	}

	aliases := engine.Registry().Aliases()
	if len(aliases) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Aliases:")
		for _, alias := range sortedKeys(aliases) {
			fmt.Fprintf(out, "    %s -> %s\n", alias, aliases[alias])
		}
	}
	return nil
}

func parserOptions(annotations bool) parser.RenderOptions {
	return parser.RenderOptions{Annotations: annotations}
}
