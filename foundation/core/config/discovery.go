// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the configuration file to load from an explicit path,
//              an environment variable or a list of candidate locations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-06
// Modified: 2026-02-06
//
// Change History:
// - 2026-02-06 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	bperror "github.com/msto63/botparse/foundation/core/error"
)

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	// ExplicitPath wins over everything else and must exist
	ExplicitPath string

	// EnvVar names a variable holding a path, consulted after ExplicitPath
	EnvVar string

	// Candidates are tried in order; the first existing file is loaded
	Candidates []string

	// EnvPrefix is passed on to LoadOptions
	EnvPrefix string

	// Defaults are layered under the loaded data
	Defaults map[string]interface{}

	// Required makes Discover fail when no file is found
	Required bool
}

// Discover locates and loads a configuration file
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required || options.ExplicitPath != "" || envPathSet(options.EnvVar) {
			return nil, err
		}
		cfg := Empty(options.EnvPrefix)
		cfg.data = mergeDefaults(nil, options.Defaults)
		return cfg, nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
}

// FindConfigFile returns the path Discover would load, without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	if options.ExplicitPath != "" {
		if !isFile(options.ExplicitPath) {
			return "", bperror.New(fmt.Sprintf("config file not found: %s", options.ExplicitPath)).
				WithCode(bperror.CodeMissingConfig).
				WithOperation("config.FindConfigFile").
				WithDetail("filePath", options.ExplicitPath)
		}
		return options.ExplicitPath, nil
	}

	if options.EnvVar != "" {
		if path := os.Getenv(options.EnvVar); path != "" {
			if !isFile(path) {
				return "", bperror.New(fmt.Sprintf("config file from %s not found: %s", options.EnvVar, path)).
					WithCode(bperror.CodeMissingConfig).
					WithOperation("config.FindConfigFile").
					WithDetail("filePath", path).
					WithDetail("envVar", options.EnvVar)
			}
			return path, nil
		}
	}

	for _, candidate := range options.Candidates {
		path := expandHome(candidate)
		if isFile(path) {
			return path, nil
		}
	}

	return "", bperror.New(fmt.Sprintf("no configuration file found in: %s", strings.Join(options.Candidates, ", "))).
		WithCode(bperror.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("candidates", options.Candidates)
}

// envPathSet reports whether name is set to a non-empty path
func envPathSet(name string) bool {
	return name != "" && os.Getenv(name) != ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// expandHome replaces a leading "~/" with the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
