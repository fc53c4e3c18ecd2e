// File: engine.go
// Title: Bot Command Engine
// Description: Provides the high-level Engine that owns a registry and an
//              executor and exposes registration, dispatch and usage in one
//              place.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-10 v0.1.0: Initial engine implementation
// - 2026-02-12 v0.1.1: Explain for user-facing error text

package botcmd

import (
	"context"
	"time"

	"github.com/msto63/botparse/foundation/botcmd/executor"
	"github.com/msto63/botparse/foundation/botcmd/parser"
	"github.com/msto63/botparse/foundation/botcmd/registry"
	bperror "github.com/msto63/botparse/foundation/core/error"
	bplog "github.com/msto63/botparse/foundation/core/log"
)

// ErrQuit is returned by Execute when a command ends the session
var ErrQuit = executor.ErrQuit

// Result describes one successful dispatch
type Result = executor.Result

// Engine provides a simplified interface to the command system
type Engine struct {
	registry *registry.Registry
	executor *executor.Executor
	logger   *bplog.Logger
	options  Options
}

// Options configures the engine
type Options struct {
	Logger         *bplog.Logger
	MaxInputLength int
	HandlerTimeout time.Duration

	// Aliases are registered after the initial commands
	Aliases map[string]string
}

// NewEngine creates an engine and registers cmds followed by the aliases
// of opts
func NewEngine(opts Options, cmds ...*registry.Command) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = bplog.GetDefault()
	}
	logger := opts.Logger.WithField("component", "engine")

	reg := registry.New(registry.Options{Logger: opts.Logger})
	for _, cmd := range cmds {
		if err := reg.Register(cmd); err != nil {
			return nil, bperror.Wrap(err, "failed to register command").
				WithOperation("botcmd.NewEngine")
		}
	}
	if err := reg.LoadAliases(opts.Aliases); err != nil {
		return nil, bperror.Wrap(err, "failed to load aliases").
			WithCode(bperror.CodeInvalidConfig).
			WithOperation("botcmd.NewEngine")
	}

	exec := executor.New(reg, executor.Options{
		Logger:         opts.Logger,
		MaxInputLength: opts.MaxInputLength,
		HandlerTimeout: opts.HandlerTimeout,
	})

	engine := &Engine{
		registry: reg,
		executor: exec,
		logger:   logger,
		options:  opts,
	}

	effective := exec.Options()
	logger.Debug("Bot command engine initialized", bplog.Fields{
		"commands":       reg.Len(),
		"aliases":        len(opts.Aliases),
		"maxInputLength": effective.MaxInputLength,
		"handlerTimeout": effective.HandlerTimeout.String(),
	})

	return engine, nil
}

// Register adds a command after construction
func (e *Engine) Register(cmd *registry.Command) error {
	return e.registry.Register(cmd)
}

// Execute dispatches one input line
func (e *Engine) Execute(ctx context.Context, line string) (*Result, error) {
	return e.executor.Execute(ctx, line)
}

// Usage returns one rendered usage line per command
func (e *Engine) Usage(annotations bool) []string {
	return e.registry.Usage(parser.RenderOptions{Annotations: annotations})
}

// Registry returns the command registry
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Explain returns the text shown to a user for err: the Describe text of
// a parse failure, otherwise the error message
func Explain(err error) string {
	if err == nil {
		return ""
	}
	if perr, ok := parser.AsParseError(err); ok {
		return perr.Describe()
	}
	return err.Error()
}
