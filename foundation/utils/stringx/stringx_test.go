// File: stringx_test.go
// Title: Unit Tests for Command-Line Text Helpers
// Description: Table-driven tests covering whitespace handling, Unicode
//              input and edge cases of every helper.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-09 v0.1.0: Initial test implementation

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"no-break space", "\u00a0", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlank(tt.input); result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitFirstWord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		word  string
		tail  string
	}{
		{"command with arguments", "/repeat a 1", "/repeat", " a 1"},
		{"leading whitespace", "  \t/quit", "/quit", ""},
		{"trailing whitespace kept", "/echo  ", "/echo", "  "},
		{"unicode", "grüße welt", "grüße", " welt"},
		{"empty", "", "", ""},
		{"blank", " \n ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, tail := SplitFirstWord(tt.input)
			if word != tt.word || tail != tt.tail {
				t.Errorf("SplitFirstWord(%q) = (%q, %q); want (%q, %q)", tt.input, word, tail, tt.word, tt.tail)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"fits", "hello", 5, "...", "hello"},
		{"truncated", "hello world", 8, "...", "hello..."},
		{"unicode", "こんにちは世界", 4, "…", "こんに…"},
		{"ellipsis too long", "hello", 2, "...", "he"},
		{"zero length", "hello", 0, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Truncate(tt.input, tt.maxLen, tt.ellipsis); result != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.ellipsis, result, tt.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "json", "text"); got != "json" {
		t.Errorf("FirstNonBlank() = %q; want json", got)
	}
	if got := FirstNonBlank(" ", ""); got != "" {
		t.Errorf("FirstNonBlank() = %q; want empty", got)
	}
}
