// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severities and
//              JSON encoding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-05
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-05 v0.1.0: Initial tests
// - 2026-02-12 v0.1.1: Request ID and JSON tests

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error message")

	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			wantMsg:  "wrapper: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("bad grammar").WithCode(CodeInvalidGrammar),
			wantMsg:  "wrapper: bad grammar",
			wantCode: CodeInvalidGrammar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, "wrapper")
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap(nil) = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is should reach the cause")
			}
		})
	}
}

func TestWrap_CarriesDetails(t *testing.T) {
	inner := New("inner").WithDetail("command", "/repeat").WithRequestID("req-1")
	outer := Wrap(inner, "outer")

	if v, ok := outer.Detail("command"); !ok || v != "/repeat" {
		t.Errorf("Detail(command) = %v, %v", v, ok)
	}
	if outer.RequestID() != "req-1" {
		t.Errorf("RequestID() = %q, want req-1", outer.RequestID())
	}
	if outer.Message() != "outer" {
		t.Errorf("Message() = %q, want outer", outer.Message())
	}
}

type customFailure struct{ reason string }

func (c customFailure) Error() string { return c.reason }

func TestErrorsAsReachesCause(t *testing.T) {
	err := Wrap(customFailure{"Expected an integer"}, "command rejected").WithCode(CodeParseFailed)

	var target customFailure
	if !errors.As(err, &target) {
		t.Fatal("errors.As should find the wrapped cause")
	}
	if target.reason != "Expected an integer" {
		t.Errorf("reason = %q", target.reason)
	}
	if err.RootCause() != (customFailure{"Expected an integer"}) {
		t.Errorf("RootCause() = %v", err.RootCause())
	}
}

func TestWithCode_Severity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeParseFailed, SeverityLow},
		{CodeUnknownCommand, SeverityLow},
		{CodeHandlerFailed, SeverityMedium},
		{CodeDuplicateCommand, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeParseFailed)
	if explicit.Severity() != SeverityCritical {
		t.Error("explicit severity should survive WithCode")
	}
}

func TestHasCode(t *testing.T) {
	inner := New("dup").WithCode(CodeDuplicateCommand)
	outer := fmt.Errorf("register: %w", Wrap(inner, "setup").WithCode(CodeInvalidGrammar))

	if !HasCode(outer, CodeInvalidGrammar) {
		t.Error("HasCode should find the outer code")
	}
	if !HasCode(outer, CodeDuplicateCommand) {
		t.Error("HasCode should find the inner code")
	}
	if HasCode(outer, CodeTimeout) {
		t.Error("HasCode should not find an absent code")
	}
	if GetCode(outer) != CodeInvalidGrammar {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeInvalidGrammar)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode on a plain error should be UNKNOWN")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity on a plain error should be medium")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("boom"), "handler failed").
		WithCode(CodeHandlerFailed).
		WithOperation("executor.Execute").
		WithDetail("command", "/repeat").
		WithDetail("args", "hi 3")

	s := err.String()
	for _, want := range []string{
		"Error: handler failed",
		"Code: HANDLER_FAILED",
		"Operation: executor.Execute",
		"Details: {args=hi 3, command=/repeat}",
		"Cause: boom",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("unknown command").
		WithCode(CodeUnknownCommand).
		WithRequestID("abc").
		WithDetail("command", "/nope")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("json.Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}
	if decoded["code"] != "UNKNOWN_COMMAND" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["request_id"] != "abc" {
		t.Errorf("request_id = %v", decoded["request_id"])
	}
	details, _ := decoded["details"].(map[string]interface{})
	if details["command"] != "/nope" {
		t.Errorf("details = %v", decoded["details"])
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		exit     int
	}{
		{CodeParseFailed, true, "command", 2},
		{CodeHandlerFailed, true, "command", 4},
		{CodeInvalidConfig, true, "configuration", 3},
		{CodeInternal, true, "generic", 1},
		{Code("SOMETHING_ELSE"), false, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if tt.code.IsValid() != tt.valid {
				t.Errorf("IsValid() = %v, want %v", tt.code.IsValid(), tt.valid)
			}
			if tt.code.Category() != tt.category {
				t.Errorf("Category() = %q, want %q", tt.code.Category(), tt.category)
			}
			if tt.code.ExitCode() != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", tt.code.ExitCode(), tt.exit)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for severity, want := range tests {
		if severity.String() != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(severity), severity.String(), want)
		}
	}
}

func TestIs_ByCode(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", New("no such command").WithCode(CodeUnknownCommand))

	if !errors.Is(err, New("").WithCode(CodeUnknownCommand)) {
		t.Error("errors.Is should match an *Error with the same code")
	}
	if errors.Is(err, New("").WithCode(CodeParseFailed)) {
		t.Error("errors.Is should not match a different code")
	}
	if errors.Is(err, errors.New("no such command")) {
		t.Error("errors.Is should not match a plain error")
	}
}
