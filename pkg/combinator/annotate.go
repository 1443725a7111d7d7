// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     combinator
// Description: Capture wrapper exposing matched text to a callback
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package combinator

// Annotate wraps p so that onMatch receives the exact text p consumed on a
// successful match. The outcome of p is returned unchanged; onMatch is not
// called on failure and must not touch the cursor or the input.
func Annotate(p Parser, onMatch func(text string)) Parser {
	return func(start Cursor) Outcome {
		out := p(start)
		if out.OK && onMatch != nil {
			onMatch(start.Slice(out.Next))
		}
		return out
	}
}
