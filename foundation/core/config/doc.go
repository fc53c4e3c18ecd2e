// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads layered configuration for botparse from
//              TOML or YAML files with environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-06
// Modified: 2026-02-06
//
// Change History:
// - 2026-02-06 v0.1.0: Initial implementation

/*
Package config loads configuration from TOML and YAML files and exposes it
through dot-path getters.

# Loading

	cfg, err := bpconfig.Load("botparse.toml")
	if err != nil {
		return err
	}

	prompt := cfg.GetString("repl.prompt", ">>> ")
	timeout := cfg.GetDuration("engine.handler_timeout", 5*time.Second)
	aliases := cfg.GetStringMap("aliases")

# Environment Overrides

With an EnvPrefix of "BOTPARSE" the key "log.level" is overridden by the
environment variable BOTPARSE_LOG_LEVEL.

# Discovery

Discover tries an explicit path, then the variable named by
DiscoveryOptions.EnvVar, then a list of candidate files. When nothing is
found and the file is not required, an empty configuration is returned and
every getter falls back to its default.

# Validation

	result := cfg.Validate(bpconfig.ValidationRules{
		"engine.max_input_length": {Type: "int", Min: bpconfig.Bound(1)},
		"log.format":              {Type: "string", Pattern: `^(json|text|console)$`},
	})
	if err := result.Err(); err != nil {
		return err
	}
*/
package config
