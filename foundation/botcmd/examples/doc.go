// File: doc.go
// Title: Example Bot Commands Documentation
// Description: Package documentation for the example command grammars.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial documentation

/*
Package examples contains small, complete bot commands that show how grammars
are composed:

	/quit                      literal
	/repeat <word> <times>     fixed-arity sequence
	/confirm <word> <word>     dependent grammar: the second word must repeat the first
	/point (<x>, <y>)          punctuation grammar, written three equivalent ways
	/echo <text>               literal followed by the rest of the line

The point grammar exists as PointChained (nested FlatMap), PointApplicative
(After, Before and Apply over a curried constructor) and PointDo
(do-notation). All three accept the same inputs and yield the same values;
the registered /point command uses PointDo.
*/
package examples
