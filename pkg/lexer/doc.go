// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     lexer
// Description: Character-level lexer built from combinator rules
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

// Package lexer splits source text of a small C-like language into tokens.
//
// Every token category is a lexicon rule: a combinator grammar wrapped with
// Annotate so that a successful match emits a Token to the Sink the Lexicon
// was built with. The program matcher repeats whitespace or any rule, then
// requires trailing whitespace and the sentinel:
//
//	res, err := lexer.Lex("int main() { return 0; }")
//	// res.Matched == true, res.Tokens[0] == Token{KindIdentifier, "int"}
//
// Rules are tried in a fixed order and the first match wins. Float and
// double literals are tried before int literals since they share the integer
// prefix. There is no error recovery: on a byte no rule accepts, lexing
// stops, Result.Matched is false and the tokens emitted so far are kept.
//
// Independent inputs can be lexed concurrently with LexBatch; every input
// gets its own source, sink and lexicon.
package lexer
