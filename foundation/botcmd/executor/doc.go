// File: doc.go
// Title: Bot Command Executor Package Documentation
// Description: Dispatches input lines to registered commands, converting
//              every failure into a coded error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial executor implementation

/*
Package executor runs one input line against a command registry.

Execute takes the first word of the line, resolves it to a command, parses
the whole line with that command's grammar and hands the value to the
command's handler. Each step has its own error code:

  • INVALID_INPUT    blank or over-long lines
  • UNKNOWN_COMMAND  the first word selects nothing
  • PARSE_FAILED     the grammar rejected the line
  • TIMEOUT          the handler outlived HandlerTimeout
  • HANDLER_FAILED   the handler returned an error

A PARSE_FAILED error keeps the underlying parser.ParseError reachable with
errors.As, so callers can still print its Describe text. Handlers that
return ErrQuit have it passed through unchanged.
*/
package executor
