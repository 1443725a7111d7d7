// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     lexer
// Description: Token kinds and token values
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package lexer

import (
	"fmt"
	"strings"
)

// Kind is the category of a token
type Kind int

const (
	KindIdentifier Kind = iota
	KindLParen
	KindRParen
	KindLBrace
	KindRBrace
	KindIntLiteral
	KindFloatLiteral
	KindDoubleLiteral
	KindStringLiteral // reserved, no rule emits it yet
	KindArithmeticOperator
	KindSemicolon
)

var kindNames = [...]string{
	KindIdentifier:         "IDENTIFIER",
	KindLParen:             "LPAREN",
	KindRParen:             "RPAREN",
	KindLBrace:             "LBRACE",
	KindRBrace:             "RBRACE",
	KindIntLiteral:         "INT_LITERAL",
	KindFloatLiteral:       "FLOAT_LITERAL",
	KindDoubleLiteral:      "DOUBLE_LITERAL",
	KindStringLiteral:      "STRING_LITERAL",
	KindArithmeticOperator: "ARITHMETIC_OPERATOR",
	KindSemicolon:          "SEMICOLON",
}

// String returns the upper-case name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Kinds returns all kinds in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind parses a kind name, case-insensitively
func ParseKind(name string) (Kind, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == upper {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown token kind %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid token kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Token is one lexeme: its kind and the exact text it was matched from
type Token struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
}

// String returns a representation like IDENTIFIER(main)
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

var debugLabels = [...]string{
	KindIdentifier:         "IDENTIFIER",
	KindLParen:             "LPAREN",
	KindRParen:             "RPAREN",
	KindLBrace:             "LBRACK",
	KindRBrace:             "RBRACK",
	KindIntLiteral:         "INT LITERAL",
	KindFloatLiteral:       "FLOAT LITERAL",
	KindDoubleLiteral:      "DOUBLE LITERAL",
	KindStringLiteral:      "STR LITERAL",
	KindArithmeticOperator: "MATH OP",
	KindSemicolon:          "SEMICOLON",
}

// DebugString renders the token as a debug listing line, e.g.
// "TOKEN IDENTIFIER main" or "TOKEN LPAREN". Punctuation omits its text.
func (t Token) DebugString() string {
	label := "UNKNOWN"
	if t.Kind >= 0 && int(t.Kind) < len(debugLabels) {
		label = debugLabels[t.Kind]
	}

	if t.Kind.IsPunctuation() {
		return "TOKEN " + label
	}
	return fmt.Sprintf("TOKEN %s %s", label, t.Text)
}

// IsPunctuation reports whether the kind is a bracket or the semicolon
func (k Kind) IsPunctuation() bool {
	switch k {
	case KindLParen, KindRParen, KindLBrace, KindRBrace, KindSemicolon:
		return true
	}
	return false
}

// IsLiteral reports whether the kind is a numeric or string literal
func (k Kind) IsLiteral() bool {
	switch k {
	case KindIntLiteral, KindFloatLiteral, KindDoubleLiteral, KindStringLiteral:
		return true
	}
	return false
}
