// Package log provides structured logging for botparse.
//
// Package: log
// Title: botparse Structured Logging
// Description: Leveled, structured logging with contextual fields, JSON,
//              text and styled console output, and timers for measuring
//              command execution. Structured errors are logged with their
//              code, severity and details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-05
// Modified: 2026-02-05
//
// Change History:
// - 2026-02-05 v0.1.0: Initial implementation
//
// Usage:
//
//	import bplog "github.com/msto63/botparse/foundation/core/log"
//
//	logger := bplog.New().
//		WithLevel(bplog.LevelDebug).
//		WithFormat(bplog.FormatConsole).
//		WithField("component", "executor")
//
//	logger.Info("command executed", bplog.Fields{"command": "/repeat"})
//
//	timer := logger.StartTimer("execute")
//	timer.Checkpoint("parsed")
//	timer.Stop()
package log
