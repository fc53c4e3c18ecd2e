// File: timer_test.go
// Title: Timer Tests
// Description: Tests for timers and their log output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-05
// Modified: 2026-02-05
//
// Change History:
// - 2026-02-05 v0.1.0: Initial tests

package log

import (
	"errors"
	"testing"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("execute").WithField("command", "/repeat")
	if !timer.IsRunning() {
		t.Fatal("new timer should be running")
	}
	timer.Checkpoint("parsed", Fields{"remainder": ""})
	elapsed := timer.Stop()

	if elapsed < 0 {
		t.Errorf("Stop() = %v, want non-negative duration", elapsed)
	}
	if timer.IsRunning() {
		t.Error("timer should be stopped")
	}
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["message"] != "execute checkpoint: parsed" || lines[0]["checkpoint"] != "parsed" {
		t.Errorf("unexpected checkpoint line %v", lines[0])
	}
	if lines[1]["message"] != "execute completed" || lines[1]["command"] != "/repeat" {
		t.Errorf("unexpected completion line %v", lines[1])
	}
	if _, ok := lines[1]["duration_ms"].(float64); !ok {
		t.Errorf("duration_ms missing in %v", lines[1])
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.StartTimer("execute").StopWithError(errors.New("handler failed"))

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[0]["success"] != false || lines[0]["error"] != "handler failed" {
		t.Errorf("unexpected failure line %v", lines[0])
	}
}

func TestTimerLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	timer := logger.StartTimer("execute")
	timer.Checkpoint("parsed")
	timer.Stop()

	if buf.Len() != 0 {
		t.Errorf("debug-level timer output should be filtered, got %q", buf.String())
	}
}
