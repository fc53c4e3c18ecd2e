// File: doc.go
// Title: String Utilities Package Documentation
// Description: Package documentation for the command-line text helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial documentation

// Package stringx provides Unicode-aware helpers for handling single lines
// of user input: blank detection, first-word splitting and truncation for
// log previews.
package stringx
