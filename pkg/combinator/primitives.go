// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     combinator
// Description: Single-byte matchers
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package combinator

// satisfy builds a primitive from a byte predicate. The outcome always
// proposes the next byte; only OK tells whether the test passed. Past the
// sentinel nothing matches.
func satisfy(pred func(byte) bool) Parser {
	return func(c Cursor) Outcome {
		return Outcome{
			OK:   c.InBounds() && pred(c.At()),
			Next: c.Advance(1),
		}
	}
}

// Equals matches the byte ch
func Equals(ch byte) Parser {
	return satisfy(func(b byte) bool { return b == ch })
}

// IsAlpha matches an ASCII letter
func IsAlpha() Parser {
	return satisfy(isAlpha)
}

// IsDigit matches an ASCII decimal digit
func IsDigit() Parser {
	return satisfy(isDigit)
}

// IsNonZeroDigit matches '1' through '9'
func IsNonZeroDigit() Parser {
	return satisfy(func(b byte) bool { return isDigit(b) && b != '0' })
}

// IsAlnum matches an ASCII letter or digit
func IsAlnum() Parser {
	return satisfy(func(b byte) bool { return isAlpha(b) || isDigit(b) })
}

// IsSpace matches ' ', '\t', '\n', '\v', '\f' and '\r'
func IsSpace() Parser {
	return satisfy(isSpace)
}

// Locale-independent classification, matching the C locale.

func isAlpha(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
