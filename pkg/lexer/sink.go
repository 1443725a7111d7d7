// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     lexer
// Description: Token sinks receiving the tokens emitted by lexicon rules
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package lexer

// Sink receives tokens in source order
type Sink interface {
	Emit(Token)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(Token)

// Emit calls f(tok)
func (f SinkFunc) Emit(tok Token) {
	f(tok)
}

// TokenList is an append-only token sequence owned by one lex invocation.
// It is not safe for concurrent use.
type TokenList struct {
	tokens []Token
}

// Emit appends tok
func (l *TokenList) Emit(tok Token) {
	l.tokens = append(l.tokens, tok)
}

// Tokens returns the tokens emitted so far
func (l *TokenList) Tokens() []Token {
	return l.tokens
}

// Len returns the number of tokens emitted so far
func (l *TokenList) Len() int {
	return len(l.tokens)
}

// Tee forwards every token to all sinks in order
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(tok Token) {
		for _, s := range sinks {
			s.Emit(tok)
		}
	})
}
