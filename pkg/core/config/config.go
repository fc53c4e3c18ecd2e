// ============================================================================
// botparse - Bot Command Parser
// ============================================================================
//
// Package:     config
// Description: Application settings for the botparse CLI and REPL, resolved
//              from the discovered configuration file, BOTPARSE_* variables
//              and built-in defaults
// Author:      msto63
// Created:     2026-02-07
// License:     MIT
// ============================================================================

package config

import (
	"time"

	bpconfig "github.com/msto63/botparse/foundation/core/config"
	bperror "github.com/msto63/botparse/foundation/core/error"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "BOTPARSE"

	// EnvConfigPath names the variable holding a configuration file path
	EnvConfigPath = "BOTPARSE_CONFIG"
)

// Settings holds the complete application configuration
type Settings struct {
	Log     LogSettings
	REPL    REPLSettings
	Engine  EngineSettings
	Aliases map[string]string

	// Source is the file the settings were read from, empty for defaults
	Source string
}

// LogSettings holds logger settings
type LogSettings struct {
	Level  string
	Format string
	Output string
}

// REPLSettings holds interactive loop settings
type REPLSettings struct {
	Prompt   string
	Greeting bool
}

// EngineSettings holds command engine limits
type EngineSettings struct {
	MaxInputLength int
	HandlerTimeout time.Duration
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() *Settings {
	return &Settings{
		Log: LogSettings{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		REPL: REPLSettings{
			Prompt:   ">>> ",
			Greeting: true,
		},
		Engine: EngineSettings{
			MaxInputLength: 4096,
			HandlerTimeout: 5 * time.Second,
		},
		Aliases: map[string]string{},
	}
}

// DefaultCandidates are the files tried when neither a flag nor
// BOTPARSE_CONFIG names one
func DefaultCandidates() []string {
	return []string{
		"./botparse.toml",
		"./botparse.yaml",
		"~/.config/botparse/config.toml",
	}
}

// rules are checked against the file contents before they are used
var rules = bpconfig.ValidationRules{
	"log.level":               {Type: "string", Pattern: `^(trace|debug|info|warn|warning|error|fatal)$`},
	"log.format":              {Type: "string", Pattern: `^(json|text|console)$`},
	"log.output":              {Type: "string", Pattern: `^(stderr|stdout)$`},
	"repl.prompt":             {Type: "string", Max: bpconfig.Bound(64)},
	"repl.greeting":           {Type: "bool"},
	"engine.max_input_length": {Type: "int", Min: bpconfig.Bound(1), Max: bpconfig.Bound(1 << 20)},
	"engine.handler_timeout":  {Type: "duration"},
	"aliases":                 {Type: "map"},
}

// Load discovers the configuration file, starting with explicitPath when
// it is set, and resolves the settings
func Load(explicitPath string) (*Settings, error) {
	cfg, err := bpconfig.Discover(bpconfig.DiscoveryOptions{
		ExplicitPath: explicitPath,
		EnvVar:       EnvConfigPath,
		Candidates:   DefaultCandidates(),
		EnvPrefix:    EnvPrefix,
	})
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg)
}

// FromConfig validates cfg and resolves the settings it describes
func FromConfig(cfg *bpconfig.Config) (*Settings, error) {
	if err := cfg.Validate(rules).Err(); err != nil {
		return nil, bperror.Wrap(err, "invalid botparse configuration").
			WithCode(bperror.CodeInvalidConfig).
			WithOperation("config.FromConfig").
			WithDetail("source", cfg.FilePath())
	}

	d := DefaultSettings()
	s := &Settings{
		Log: LogSettings{
			Level:  cfg.GetString("log.level", d.Log.Level),
			Format: cfg.GetString("log.format", d.Log.Format),
			Output: cfg.GetString("log.output", d.Log.Output),
		},
		REPL: REPLSettings{
			Prompt:   cfg.GetString("repl.prompt", d.REPL.Prompt),
			Greeting: cfg.GetBool("repl.greeting", d.REPL.Greeting),
		},
		Engine: EngineSettings{
			MaxInputLength: cfg.GetInt("engine.max_input_length", d.Engine.MaxInputLength),
			HandlerTimeout: cfg.GetDuration("engine.handler_timeout", d.Engine.HandlerTimeout),
		},
		Aliases: cfg.GetStringMap("aliases"),
		Source:  cfg.FilePath(),
	}

	if s.Engine.MaxInputLength <= 0 {
		s.Engine.MaxInputLength = d.Engine.MaxInputLength
	}
	if s.Engine.HandlerTimeout <= 0 {
		s.Engine.HandlerTimeout = d.Engine.HandlerTimeout
	}
	return s, nil
}
