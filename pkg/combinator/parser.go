// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     combinator
// Description: Parser type, match outcome and the cursor commit discipline
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package combinator

// Outcome is the result of applying a parser. Next is the position the caller
// may adopt, and only when OK is true.
type Outcome struct {
	OK   bool
	Next Cursor
}

// Parser matches at a cursor. It must not mutate the input and may only close
// over configuration, never over the cursor it is applied to.
type Parser func(Cursor) Outcome

// Consume applies p at *c and commits the proposed position on success.
// On failure *c is left unchanged. This is the only place a cursor is
// committed; combinators route every sub-match through it.
func Consume(p Parser, c *Cursor) bool {
	out := p(*c)
	if out.OK {
		*c = out.Next
	}
	return out.OK
}

// Run applies p at the start of src and returns the outcome together with
// the consumed text, which is empty on failure.
func Run(p Parser, src *Source) (Outcome, string) {
	start := src.Start()
	out := p(start)
	if !out.OK {
		return out, ""
	}
	return out, start.Slice(out.Next)
}
