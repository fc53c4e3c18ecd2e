package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/botparse/foundation/botcmd"
	"github.com/msto63/botparse/foundation/botcmd/examples"
	bplog "github.com/msto63/botparse/foundation/core/log"
	"github.com/msto63/botparse/foundation/utils/stringx"
	"github.com/msto63/botparse/pkg/core/config"
	"github.com/msto63/botparse/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	// Resolved in PersistentPreRunE
	settings *config.Settings
	logger   *bplog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "botparse",
	Short: "botparse - combinator-based bot command parser",
	Long: `botparse turns single lines of chat input into typed commands.

Grammars are composed from small parsers (words, integers, literals,
symbols) with sequencing and dependent chaining. Every failure reports the
position of the constituent that rejected the input.

Example commands:
  /quit
  /repeat <word> <times>
  /confirm <password> <password again>
  /point (<x>, <y>)
  /echo <text>`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./botparse.toml, $BOTPARSE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json or console")
}

// setup loads the settings and installs the application logger
func setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logCfg := logging.LoggerConfig{
		Name:   "botparse",
		Level:  s.Log.Level,
		Format: stringx.FirstNonBlank(logFormat, s.Log.Format),
		Output: s.Log.Output,
	}
	if verbose {
		logCfg.Level = "debug"
	}

	l, err := logging.NewLogger(logCfg)
	if err != nil {
		return err
	}
	bplog.SetDefault(l)

	settings, logger = s, l
	logger.Debug("Configuration loaded", bplog.Fields{
		"source": s.Source,
		"level":  logCfg.Level,
		"format": logCfg.Format,
	})
	return nil
}

// newEngine builds an engine with the example commands and configured
// aliases
func newEngine() (*botcmd.Engine, error) {
	return botcmd.NewEngine(botcmd.Options{
		Logger:         logger,
		MaxInputLength: settings.Engine.MaxInputLength,
		HandlerTimeout: settings.Engine.HandlerTimeout,
		Aliases:        settings.Aliases,
	}, examples.Commands()...)
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", botcmd.Explain(err))
}
