// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     combinator
// Description: Alternative, sequence and repetition combinators
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package combinator

// Alternative tries each parser in order from the same position and stops at
// the first success. Order matters: the first match wins even if a later
// alternative would consume more. With no parsers it always fails.
func Alternative(parsers ...Parser) Parser {
	return func(start Cursor) Outcome {
		working := start
		for _, p := range parsers {
			if Consume(p, &working) {
				return Outcome{OK: true, Next: working}
			}
		}
		return Outcome{OK: false, Next: working}
	}
}

// Sequence applies every parser in order, each starting where the previous
// one stopped, and stops at the first failure. A failed sequence reports its
// starting cursor: the progress of the parsers that matched before the
// failing one is rolled back. With no parsers it succeeds without consuming.
func Sequence(parsers ...Parser) Parser {
	return func(start Cursor) Outcome {
		working := start
		for _, p := range parsers {
			if !Consume(p, &working) {
				return Outcome{OK: false, Next: start}
			}
		}
		return Outcome{OK: true, Next: working}
	}
}

// ZeroOrMore applies p as often as it matches, like * in a regular
// expression. It always succeeds. Repetition also stops when p matches
// without consuming anything.
func ZeroOrMore(p Parser) Parser {
	return func(start Cursor) Outcome {
		working := start
		for {
			before := working
			if !Consume(p, &working) || !before.Less(working) {
				break
			}
		}
		return Outcome{OK: true, Next: working}
	}
}

// OneOrMore applies p at least once, like + in a regular expression.
// Any parser works, not only single-byte ones.
func OneOrMore(p Parser) Parser {
	return Sequence(p, ZeroOrMore(p))
}

// Optional matches p or nothing, like ? in a regular expression
func Optional(p Parser) Parser {
	return Alternative(p, Sequence())
}

// Literal matches the bytes of s in order
func Literal(s string) Parser {
	parsers := make([]Parser, 0, len(s))
	for i := 0; i < len(s); i++ {
		parsers = append(parsers, Equals(s[i]))
	}
	return Sequence(parsers...)
}

// AnyOf matches one byte out of set
func AnyOf(set string) Parser {
	parsers := make([]Parser, 0, len(set))
	for i := 0; i < len(set); i++ {
		parsers = append(parsers, Equals(set[i]))
	}
	return Alternative(parsers...)
}
