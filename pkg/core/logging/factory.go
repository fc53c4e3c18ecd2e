// ============================================================================
// botparse - Bot Command Parser
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating application loggers from
//              string-typed settings
// Author:      msto63
// Created:     2026-02-07
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"

	bperror "github.com/msto63/botparse/foundation/core/error"
	bplog "github.com/msto63/botparse/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (text, json, console)
	Format string

	// Output stream: "stderr" (default) or "stdout"
	Output string

	// Additional outputs receive the same entries
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default logger configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}
}

// NewLogger creates a logger from cfg. Unknown levels, formats and outputs
// are reported as INVALID_CONFIG errors.
func NewLogger(cfg LoggerConfig) (*bplog.Logger, error) {
	level, err := bplog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, invalid(err, "log.level", cfg.Level)
	}
	format, err := bplog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, invalid(err, "log.format", cfg.Format)
	}
	output, err := resolveOutput(cfg.Output)
	if err != nil {
		return nil, invalid(err, "log.output", cfg.Output)
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return bplog.NewWithConfig(bplog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}), nil
}

// MustNewLogger is like NewLogger but falls back to a default text logger
// on stderr when cfg is invalid
func MustNewLogger(cfg LoggerConfig) *bplog.Logger {
	logger, err := NewLogger(cfg)
	if err != nil {
		logger = bplog.New().WithName(cfg.Name)
		logger.LogError(err)
	}
	return logger
}

func resolveOutput(name string) (io.Writer, error) {
	switch name {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		return nil, fmt.Errorf("unknown log output %q", name)
	}
}

func invalid(err error, key, value string) error {
	return bperror.Wrap(err, "invalid logger configuration").
		WithCode(bperror.CodeInvalidConfig).
		WithOperation("logging.NewLogger").
		WithDetail("key", key).
		WithDetail("value", value)
}
