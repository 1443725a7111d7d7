// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     lexer
// Description: Lexicon rules built from the combinator engine
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package lexer

import (
	c "github.com/msto63/combilex/pkg/combinator"
)

// Grammars of the lexicon rules, without token emission.
var (
	// (alpha|'_') (alnum|'_')*
	IdentifierGrammar = c.Sequence(
		c.Alternative(c.IsAlpha(), c.Equals('_')),
		c.ZeroOrMore(c.Alternative(c.IsAlnum(), c.Equals('_'))),
	)

	LParenGrammar = c.Equals('(')
	RParenGrammar = c.Equals(')')
	LBraceGrammar = c.Equals('{')
	RBraceGrammar = c.Equals('}')

	// '0' | nonZeroDigit digit*
	IntGrammar = c.Alternative(
		c.Equals('0'),
		c.Sequence(c.IsNonZeroDigit(), c.ZeroOrMore(c.IsDigit())),
	)

	// int '.' digit* ('f'|'F')
	FloatGrammar = c.Sequence(IntGrammar, c.Equals('.'), c.ZeroOrMore(c.IsDigit()), c.AnyOf("fF"))

	// int '.' digit*
	DoubleGrammar = c.Sequence(IntGrammar, c.Equals('.'), c.ZeroOrMore(c.IsDigit()))

	ArithmeticOperatorGrammar = c.AnyOf("+-/*=")

	SemicolonGrammar = c.Equals(';')
)

// Rule is a named lexicon entry: a grammar whose matches emit tokens of Kind
type Rule struct {
	Kind   Kind
	Parser c.Parser
}

// Lexicon holds the lexicon rules bound to one sink. Each rule emits a token
// carrying the exact matched text whenever it matches.
type Lexicon struct {
	Identifier         c.Parser
	LParen             c.Parser
	RParen             c.Parser
	LBrace             c.Parser
	RBrace             c.Parser
	FloatLiteral       c.Parser
	DoubleLiteral      c.Parser
	IntLiteral         c.Parser
	ArithmeticOperator c.Parser
	Semicolon          c.Parser

	sink Sink
}

// NewLexicon binds the lexicon rules to sink
func NewLexicon(sink Sink) *Lexicon {
	l := &Lexicon{sink: sink}

	l.Identifier = l.emit(KindIdentifier, IdentifierGrammar)
	l.LParen = l.emit(KindLParen, LParenGrammar)
	l.RParen = l.emit(KindRParen, RParenGrammar)
	l.LBrace = l.emit(KindLBrace, LBraceGrammar)
	l.RBrace = l.emit(KindRBrace, RBraceGrammar)
	l.FloatLiteral = l.emit(KindFloatLiteral, FloatGrammar)
	l.DoubleLiteral = l.emit(KindDoubleLiteral, DoubleGrammar)
	l.IntLiteral = l.emit(KindIntLiteral, IntGrammar)
	l.ArithmeticOperator = l.emit(KindArithmeticOperator, ArithmeticOperatorGrammar)
	l.Semicolon = l.emit(KindSemicolon, SemicolonGrammar)

	return l
}

func (l *Lexicon) emit(kind Kind, grammar c.Parser) c.Parser {
	return c.Annotate(grammar, func(text string) {
		l.sink.Emit(Token{Kind: kind, Text: text})
	})
}

// Rules returns the rules in matching priority. Float and double literals
// come before int literals: they share the integer prefix and the first
// matching alternative wins.
func (l *Lexicon) Rules() []Rule {
	return []Rule{
		{KindIdentifier, l.Identifier},
		{KindLParen, l.LParen},
		{KindRParen, l.RParen},
		{KindLBrace, l.LBrace},
		{KindRBrace, l.RBrace},
		{KindFloatLiteral, l.FloatLiteral},
		{KindDoubleLiteral, l.DoubleLiteral},
		{KindIntLiteral, l.IntLiteral},
		{KindArithmeticOperator, l.ArithmeticOperator},
		{KindSemicolon, l.Semicolon},
	}
}

// Token matches whitespace or any single lexicon rule
func (l *Lexicon) Token() c.Parser {
	rules := l.Rules()
	alternatives := make([]c.Parser, 0, len(rules)+1)
	alternatives = append(alternatives, c.IsSpace())
	for _, r := range rules {
		alternatives = append(alternatives, r.Parser)
	}
	return c.Alternative(alternatives...)
}

// Program matches a whole input: any number of lexemes or whitespace, then
// trailing whitespace, then the sentinel. On an unrecognized byte the
// repetition stops there and the program fails; tokens emitted before that
// point stay in the sink.
func (l *Lexicon) Program() c.Parser {
	return c.Sequence(
		c.ZeroOrMore(l.Token()),
		c.ZeroOrMore(c.IsSpace()),
		c.Equals(c.Sentinel),
	)
}
