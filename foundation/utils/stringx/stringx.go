// File: stringx.go
// Title: Command-Line Text Helpers
// Description: Implements the string operations the command layers share.
//              Whitespace is any Unicode space, matching the grammar
//              primitives.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-09 v0.1.0: IsBlank, SplitFirstWord, Truncate
// - 2026-02-12 v0.1.1: FirstNonBlank

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// SplitFirstWord returns the first whitespace-delimited word of s and the
// text after it. Leading whitespace before the word is dropped; the tail
// keeps its leading whitespace.
func SplitFirstWord(s string) (word, tail string) {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(trimmed, unicode.IsSpace)
	if end < 0 {
		return trimmed, ""
	}
	return trimmed[:end], trimmed[end:]
}

// Truncate shortens s to at most maxLen runes, ending in ellipsis when
// something was cut. Multi-byte characters are never split.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// FirstNonBlank returns the first argument that is not blank
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if !IsBlank(s) {
			return s
		}
	}
	return ""
}
