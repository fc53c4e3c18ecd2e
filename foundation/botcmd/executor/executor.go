// File: executor.go
// Title: Bot Command Execution Engine
// Description: Implements Execute, which selects a command by the first word
//              of a line, parses the line with the command's grammar and runs
//              the handler under a timeout. Every dispatch gets a request id
//              and is timed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation
// - 2026-02-12 v0.1.1: Alias rewriting, panic recovery in handlers

package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/botparse/foundation/botcmd/parser"
	"github.com/msto63/botparse/foundation/botcmd/registry"
	bperror "github.com/msto63/botparse/foundation/core/error"
	bplog "github.com/msto63/botparse/foundation/core/log"
	"github.com/msto63/botparse/foundation/utils/stringx"
)

// ErrQuit is returned by handlers that end the session. Execute passes it
// through unwrapped.
var ErrQuit = errors.New("quit")

const (
	previewLength         = 40
	defaultMaxInputLength = 4096
	defaultHandlerTimeout = 5 * time.Second
)

// Executor dispatches input lines to the commands of a registry
type Executor struct {
	registry *registry.Registry
	logger   *bplog.Logger
	options  Options
}

// Options configures executor behavior
type Options struct {
	Logger         *bplog.Logger
	MaxInputLength int
	HandlerTimeout time.Duration
}

// Result describes one successful dispatch
type Result struct {
	RequestID string        `json:"request_id" yaml:"request_id"`
	Command   string        `json:"command" yaml:"command"`
	Input     string        `json:"input" yaml:"input"`
	Value     interface{}   `json:"value" yaml:"value"`
	Remainder string        `json:"remainder" yaml:"remainder"`
	Output    string        `json:"output" yaml:"output"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

// New creates an executor over reg
func New(reg *registry.Registry, opts Options) *Executor {
	if opts.Logger == nil {
		opts.Logger = bplog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = defaultMaxInputLength
	}
	if opts.HandlerTimeout <= 0 {
		opts.HandlerTimeout = defaultHandlerTimeout
	}

	return &Executor{
		registry: reg,
		logger:   opts.Logger.WithField("component", "executor"),
		options:  opts,
	}
}

// Options returns the effective options
func (e *Executor) Options() Options {
	return e.options
}

// Execute parses line with the command its first word selects and runs the
// command's handler. On ErrQuit the result is returned alongside the error.
func (e *Executor) Execute(ctx context.Context, line string) (*Result, error) {
	requestID := uuid.NewString()
	logger := e.logger.WithRequestID(requestID)

	if len(line) > e.options.MaxInputLength {
		err := bperror.New(fmt.Sprintf("input exceeds %d bytes", e.options.MaxInputLength)).
			WithCode(bperror.CodeInvalidInput).
			WithOperation("executor.Execute").
			WithRequestID(requestID).
			WithDetail("length", len(line)).
			WithDetail("max", e.options.MaxInputLength)
		logger.Debug("Input rejected", bplog.Fields{
			"length":  len(line),
			"preview": stringx.Truncate(line, previewLength, "..."),
		})
		return nil, err
	}

	word, tail := stringx.SplitFirstWord(line)
	if word == "" {
		return nil, bperror.New("empty command").
			WithCode(bperror.CodeInvalidInput).
			WithOperation("executor.Execute").
			WithRequestID(requestID)
	}

	cmd, err := e.registry.Resolve(word)
	if err != nil {
		var structured *bperror.Error
		if errors.As(err, &structured) {
			structured.WithRequestID(requestID)
		}
		logger.Debug("Unknown command", bplog.Fields{"command": word})
		return nil, err
	}

	timer := logger.StartTimer("execute " + cmd.Name()).WithField("command", cmd.Name())

	// An alias selected the command; the grammar expects the real name.
	input := line
	if word != cmd.Name() {
		input = cmd.Name() + tail
		timer.Checkpoint("alias", bplog.Fields{"alias": word})
	}

	rest, value, err := cmd.Parse(input)
	if err != nil {
		perr, _ := parser.AsParseError(err)
		failure := bperror.Wrap(err, "invalid arguments for "+cmd.Name()).
			WithCode(bperror.CodeParseFailed).
			WithOperation("executor.Execute").
			WithRequestID(requestID).
			WithDetail("command", cmd.Name())
		if perr != nil {
			failure.WithDetail("path", parser.FormatPath(perr.Location())).
				WithDetail("reason", perr.Reason())
		}
		logger.Debug("Command rejected", failure.Details())
		return nil, failure
	}
	timer.Checkpoint("parsed")

	output, err := e.run(ctx, cmd, value)

	result := &Result{
		RequestID: requestID,
		Command:   cmd.Name(),
		Input:     line,
		Value:     value,
		Remainder: rest,
		Output:    output,
	}

	if err != nil {
		if errors.Is(err, ErrQuit) {
			result.Duration = timer.Stop()
			return result, ErrQuit
		}
		timer.StopWithError(err)
		return nil, err
	}

	result.Duration = timer.Stop()
	return result, nil
}

// handlerOutcome carries a handler's return value back from its goroutine
type handlerOutcome struct {
	output string
	err    error
}

// run invokes the handler with a deadline. The handler writes into its own
// buffer, which is discarded if the deadline passes first.
func (e *Executor) run(ctx context.Context, cmd *registry.Command, value any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.options.HandlerTimeout)
	defer cancel()

	done := make(chan handlerOutcome, 1)
	go func() {
		var out bytes.Buffer
		defer func() {
			if r := recover(); r != nil {
				done <- handlerOutcome{err: bperror.New(fmt.Sprintf("handler panicked: %v", r)).
					WithCode(bperror.CodeInternal).
					WithOperation("executor.run").
					WithDetail("command", cmd.Name())}
			}
		}()
		err := cmd.Run(ctx, value, &out)
		done <- handlerOutcome{output: out.String(), err: err}
	}()

	select {
	case outcome := <-done:
		if outcome.err == nil || errors.Is(outcome.err, ErrQuit) {
			return outcome.output, outcome.err
		}
		if bperror.HasCode(outcome.err, bperror.CodeInternal) {
			return "", outcome.err
		}
		if errors.Is(outcome.err, context.DeadlineExceeded) {
			return "", timeoutError(cmd, e.options.HandlerTimeout, outcome.err)
		}
		return "", bperror.Wrap(outcome.err, cmd.Name()+" failed").
			WithCode(bperror.CodeHandlerFailed).
			WithOperation("executor.run").
			WithDetail("command", cmd.Name())
	case <-ctx.Done():
		return "", timeoutError(cmd, e.options.HandlerTimeout, ctx.Err())
	}
}

func timeoutError(cmd *registry.Command, limit time.Duration, cause error) error {
	return bperror.Wrap(cause, fmt.Sprintf("%s did not finish within %s", cmd.Name(), limit)).
		WithCode(bperror.CodeTimeout).
		WithOperation("executor.run").
		WithDetail("command", cmd.Name()).
		WithDetail("timeout", limit.String())
}
