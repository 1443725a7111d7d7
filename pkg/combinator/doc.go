// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     combinator
// Description: Composable matching primitives over a cursor into a byte buffer
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

// Package combinator implements a small parser-combinator engine.
//
// A Parser is a pure function from a Cursor to an Outcome. Parsers never move
// the caller's cursor themselves: the caller decides, through Consume, whether
// the proposed next position is adopted. Primitives test one byte and always
// propose advancing by exactly one; combinators (Alternative, Sequence,
// ZeroOrMore, OneOrMore) compose parsers into new parsers, and Annotate exposes
// the exact text consumed by a successful match to a callback.
//
// Every Source ends with the Sentinel byte so primitives can inspect the byte
// under the cursor without bounds checks on the caller's side. Nothing matches
// past the sentinel.
//
// Failure carries no payload: an Outcome is a boolean plus the cursor the caller
// may adopt on success. Sequence is transactional, a failed sequence reports
// its starting cursor.
//
// Example:
//
//	ident := combinator.Sequence(
//		combinator.Alternative(combinator.IsAlpha(), combinator.Equals('_')),
//		combinator.ZeroOrMore(combinator.Alternative(combinator.IsAlnum(), combinator.Equals('_'))),
//	)
//	out, text := combinator.Run(ident, combinator.MustSource("abc123 "))
//	// out.OK == true, text == "abc123"
package combinator
