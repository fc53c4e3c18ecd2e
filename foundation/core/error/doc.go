// Package error provides structured error handling for botparse.
//
// Package: error
// Title: botparse Error Handling
// Description: Structured errors with codes, severities, operation context
//              and free-form details. Errors wrap their cause so parse
//              failures and handler errors stay reachable through errors.As
//              and errors.Is.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-05
// Modified: 2026-02-05
//
// Change History:
// - 2026-02-05 v0.1.0: Initial implementation
//
// Usage:
//
//	import bperror "github.com/msto63/botparse/foundation/core/error"
//
//	err := bperror.Wrap(parseErr, "command rejected").
//		WithCode(bperror.CodeParseFailed).
//		WithOperation("executor.Execute").
//		WithDetail("command", "/repeat")
//
//	if bperror.HasCode(err, bperror.CodeParseFailed) {
//		// show usage
//	}
package error
