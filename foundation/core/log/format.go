// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages: JSON for machines,
//              plain text for files and a lipgloss-styled console format for
//              interactive terminals.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-05
// Modified: 2026-02-13
//
// Change History:
// - 2026-02-05 v0.1.0: Initial implementation
// - 2026-02-13 v0.1.1: Console formatter styled with lipgloss

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatText outputs human-readable text lines
	FormatText

	// FormatConsole outputs colored text for terminals
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatText, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+5)

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.RequestID != "" {
		data["request_id"] = entry.RequestID
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(strings.Join(textParts(entry, f.TimestampFormat, f.DisableTimestamp), " ") + "\n"), nil
}

// textParts builds the space-separated pieces shared by text and console
// output: time, level, logger, request, message, fields, error
func textParts(entry *Entry, timestampFormat string, noTimestamp bool) []string {
	var parts []string

	if !noTimestamp {
		parts = append(parts, entry.Timestamp.Format(timestampFormat))
	}
	parts = append(parts, "["+entry.Level.ShortString()+"]")
	if entry.Logger != "" {
		parts = append(parts, "{"+entry.Logger+"}")
	}
	if entry.RequestID != "" {
		parts = append(parts, "(req="+entry.RequestID+")")
	}
	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		fieldParts := make([]string, 0, len(entry.Fields))
		for _, k := range entry.Fields.Keys() {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, "["+strings.Join(fieldParts, " ")+"]")
	}
	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}
	return parts
}

var levelStyles = map[Level]lipgloss.Style{
	LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	LevelFatal: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true).Underline(true),
}

var (
	consoleDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	consoleFieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))
	consoleErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// ConsoleFormatter formats log entries for terminals. The level tag, the
// field block and the error are styled separately.
type ConsoleFormatter struct {
	DisableColors   bool
	TimestampFormat string
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TimestampFormat: "15:04:05"}
}

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	if f.DisableColors {
		return []byte(strings.Join(textParts(entry, f.TimestampFormat, false), " ") + "\n"), nil
	}

	var b strings.Builder
	b.WriteString(consoleDimStyle.Render(entry.Timestamp.Format(f.TimestampFormat)))
	b.WriteByte(' ')
	b.WriteString(levelStyles[entry.Level].Render(entry.Level.ShortString()))
	if entry.Logger != "" {
		b.WriteString(consoleDimStyle.Render(" " + entry.Logger))
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	for _, k := range entry.Fields.Keys() {
		b.WriteByte(' ')
		b.WriteString(consoleFieldStyle.Render(k + "="))
		fmt.Fprintf(&b, "%v", entry.Fields[k])
	}
	if entry.RequestID != "" {
		b.WriteByte(' ')
		b.WriteString(consoleDimStyle.Render("req=" + entry.RequestID))
	}
	if entry.Error != nil {
		b.WriteByte(' ')
		b.WriteString(consoleErrorStyle.Render("error=" + entry.Error.Error()))
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewTextFormatter()
	}
}
