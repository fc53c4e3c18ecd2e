// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context fields, level
//              filtering and structured error logging.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-05
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-05 v0.1.0: Initial tests
// - 2026-02-12 v0.1.1: LogError severity mapping tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	bperror "github.com/msto63/botparse/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNew(t *testing.T) {
	logger := New()

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestWithMethodsReturnCopies(t *testing.T) {
	base := New()

	derived := base.WithLevel(LevelDebug).WithName("executor").WithField("component", "executor")
	if derived == base {
		t.Fatal("With* should return a new logger instance")
	}
	if base.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify the original logger")
	}
	if base.name != "" || len(base.contextFields) != 0 {
		t.Error("WithName()/WithField() should not modify the original logger")
	}
	if derived.contextFields["component"] != "executor" {
		t.Error("WithField() should add the context field")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %s", len(lines), buf.String())
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("unexpected levels %v, %v", lines[0]["level"], lines[1]["level"])
	}
	if !logger.IsLevelEnabled(LevelError) || logger.IsLevelEnabled(LevelInfo) {
		t.Error("IsLevelEnabled() disagrees with the configured level")
	}
}

func TestContextAndCallFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger = logger.WithName("engine").WithField("component", "registry").WithRequestID("req-7")

	logger.Info("registered", Fields{"command": "/repeat"}, Field("component", "override"))

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if line["logger"] != "engine" || line["request_id"] != "req-7" {
		t.Errorf("missing context: %v", line)
	}
	if line["command"] != "/repeat" {
		t.Errorf("command = %v", line["command"])
	}
	if line["component"] != "override" {
		t.Errorf("call fields should override context fields, got %v", line["component"])
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{"plain error", errors.New("boom"), "error", nil},
		{"low severity", bperror.New("bad input").WithCode(bperror.CodeParseFailed), "info", "PARSE_FAILED"},
		{"medium severity", bperror.New("handler").WithCode(bperror.CodeHandlerFailed), "warn", "HANDLER_FAILED"},
		{"high severity", bperror.New("dup").WithCode(bperror.CodeDuplicateCommand), "error", "DUPLICATE_COMMAND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			lines := decodeLines(t, buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if lines[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", lines[0]["level"], tt.wantLevel)
			}
			if lines[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", lines[0]["error_code"], tt.wantCode)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not log")
	}
}

func TestLogErrorDetails(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(bperror.New("rejected").
		WithCode(bperror.CodeParseFailed).
		WithOperation("executor.Execute").
		WithDetail("path", "2"))

	line := decodeLines(t, buf)[0]
	if line["error_operation"] != "executor.Execute" || line["error_path"] != "2" {
		t.Errorf("missing structured fields: %v", line)
	}
	if _, ok := line["error_details"].(map[string]interface{}); !ok {
		t.Errorf("error_details should be an object, got %T", line["error_details"])
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("nop logger should not enable any level")
	}
	logger.Error("discarded")
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newBufferLogger(LevelInfo, FormatText)
	SetDefault(logger)
	Info("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger output = %q", buf.String())
	}
}
