package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/botparse/foundation/botcmd"
	bperror "github.com/msto63/botparse/foundation/core/error"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse <line...>",
	Short: "Run a single command line",
	Long: `Runs one command and prints the result.

The arguments are joined with single spaces to form the line.

  botparse parse /repeat hello 3
  botparse parse --output json '/point (3, -51)'
  botparse parse --output yaml /confirm secret secret

The exit status is 2 for rejected input and 4 for failed handlers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "text", "output format: text, json or yaml")
}

func runParse(cmd *cobra.Command, args []string) error {
	switch parseOutput {
	case "text", "json", "yaml":
	default:
		return bperror.New(fmt.Sprintf("unknown output format %q", parseOutput)).
			WithCode(bperror.CodeInvalidInput).
			WithOperation("cmd.parse")
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	line := strings.Join(args, " ")
	result, err := engine.Execute(cmd.Context(), line)
	if errors.Is(err, botcmd.ErrQuit) {
		err = nil
	}

	out := cmd.OutOrStdout()
	if err != nil {
		if parseOutput != "text" {
			if encErr := encodeError(out, parseOutput, err); encErr != nil {
				return encErr
			}
		}
		return err
	}
	return encodeResult(out, parseOutput, result)
}

// encodeResult writes result in the requested format
func encodeResult(w io.Writer, format string, result *botcmd.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(result)
	default:
		fmt.Fprintf(w, "command:   %s\n", result.Command)
		fmt.Fprintf(w, "value:     %v\n", result.Value)
		fmt.Fprintf(w, "remainder: %q\n", result.Remainder)
		if result.Output != "" {
			fmt.Fprintf(w, "output:\n%s", result.Output)
		}
		return nil
	}
}

// encodeError writes a structured error as JSON or YAML. The YAML form is
// derived from the JSON encoding.
func encodeError(w io.Writer, format string, err error) error {
	var structured *bperror.Error
	if !errors.As(err, &structured) {
		structured = bperror.Wrap(err, "command failed")
	}

	raw, mErr := json.Marshal(structured)
	if mErr != nil {
		return mErr
	}
	if format == "json" {
		_, wErr := fmt.Fprintf(w, "%s\n", raw)
		return wErr
	}

	var data map[string]interface{}
	if uErr := json.Unmarshal(raw, &data); uErr != nil {
		return uErr
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(data)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
