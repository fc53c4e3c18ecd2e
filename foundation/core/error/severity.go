// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              to log levels when it records an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-05
// Modified: 2026-02-05
//
// Change History:
// - 2026-02-05 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks user mistakes such as a mistyped command
	SeverityLow Severity = iota

	// SeverityMedium marks failures with an obvious workaround
	SeverityMedium

	// SeverityHigh marks failures that stop a command from running at all
	SeverityHigh

	// SeverityCritical marks failures that stop the program
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// SeverityFromCode determines the default severity for an error code
func SeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeDuplicateCommand, CodeInvalidGrammar, CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeHandlerFailed, CodeTimeout:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound, CodeParseFailed, CodeUnknownCommand, CodeValidationFailed:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
