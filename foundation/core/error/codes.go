// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              command engine, its configuration and the CLI around it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-05
// Modified: 2026-02-05
//
// Change History:
// - 2026-02-05 v0.1.0: Initial implementation

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"
	CodeTimeout      Code = "TIMEOUT"

	// Command engine
	CodeParseFailed      Code = "PARSE_FAILED"
	CodeUnknownCommand   Code = "UNKNOWN_COMMAND"
	CodeDuplicateCommand Code = "DUPLICATE_COMMAND"
	CodeInvalidGrammar   Code = "INVALID_GRAMMAR"
	CodeHandlerFailed    Code = "HANDLER_FAILED"

	// Configuration
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeNotFound, CodeTimeout,
		CodeParseFailed, CodeUnknownCommand, CodeDuplicateCommand, CodeInvalidGrammar, CodeHandlerFailed,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeParseFailed, CodeUnknownCommand, CodeDuplicateCommand, CodeInvalidGrammar, CodeHandlerFailed:
		return "command"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeValidationFailed:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c {
	case CodeParseFailed, CodeUnknownCommand, CodeInvalidInput:
		return 2
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeValidationFailed:
		return 3
	case CodeHandlerFailed, CodeTimeout:
		return 4
	default:
		return 1
	}
}
