// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     lexer
// Description: Entry points running the program matcher over an input
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package lexer

import (
	mdwerror "github.com/msto63/combilex/foundation/core/error"
	"github.com/msto63/combilex/pkg/combinator"
)

// Result is the outcome of lexing one input
type Result struct {
	// Tokens emitted in source order, also when the input did not match
	Tokens []Token `json:"tokens" yaml:"tokens"`

	// Matched is true when the whole input matched the program grammar
	Matched bool `json:"matched" yaml:"matched"`
}

// Lex lexes text with a fresh sink and lexicon. The error is reserved for
// text that cannot be turned into a source; a grammar mismatch is reported
// through Result.Matched.
func Lex(text string) (*Result, error) {
	src, err := combinator.NewSource(text)
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot lex input").WithOperation("lexer.Lex")
	}

	var list TokenList
	matched := LexInto(src, &list)

	tokens := list.Tokens()
	if tokens == nil {
		tokens = []Token{}
	}
	return &Result{Tokens: tokens, Matched: matched}, nil
}

// LexInto runs the program matcher over src, emitting tokens to sink, and
// reports whether the whole input matched
func LexInto(src *combinator.Source, sink Sink) bool {
	out := NewLexicon(sink).Program()(src.Start())
	return out.OK
}

// MustLex is like Lex but panics on invalid text
func MustLex(text string) *Result {
	res, err := Lex(text)
	if err != nil {
		panic(err)
	}
	return res
}
