// ============================================================================
// botparse - Bot Command Parser
// ============================================================================
//
// Package:     repl
// Description: Transcript entries and message types for async dispatch
// Author:      msto63
// Created:     2026-02-13
// License:     MIT
// ============================================================================

package repl

import (
	"time"
)

// EntryKind classifies a transcript entry
type EntryKind int

const (
	EntryInput EntryKind = iota
	EntryOutput
	EntryError
	EntrySystem
)

// Entry is one block of the transcript
type Entry struct {
	Kind      EntryKind
	Content   string
	Timestamp time.Time
	Duration  time.Duration
}

// executeResultMsg is sent when a dispatched line has finished
type executeResultMsg struct {
	line     string
	output   string
	err      error
	quit     bool
	duration time.Duration
}
