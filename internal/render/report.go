// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     render
// Description: Lex reports and their output formats
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package render

import (
	"time"

	"github.com/google/uuid"

	"github.com/msto63/combilex/pkg/lexer"
)

// InputReport is the lex outcome of one named input
type InputReport struct {
	Name    string        `json:"name" yaml:"name"`
	Matched bool          `json:"matched" yaml:"matched"`
	Tokens  []lexer.Token `json:"tokens" yaml:"tokens"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report collects the outcomes of one combilex run
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	Generated time.Time     `json:"generated" yaml:"generated"`
	Inputs    []InputReport `json:"inputs" yaml:"inputs"`
}

// NewReport creates an empty report with a fresh run ID
func NewReport() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Generated: time.Now().UTC(),
		Inputs:    []InputReport{},
	}
}

// Add records the result of lexing the input called name. A nil result
// with err records an input that could not be lexed at all.
func (r *Report) Add(name string, res *lexer.Result, err error) {
	in := InputReport{Name: name, Tokens: []lexer.Token{}}
	if res != nil {
		in.Matched = res.Matched
		in.Tokens = res.Tokens
	}
	if err != nil {
		in.Error = err.Error()
	}
	r.Inputs = append(r.Inputs, in)
}

// AllMatched reports whether every input matched
func (r *Report) AllMatched() bool {
	for _, in := range r.Inputs {
		if !in.Matched {
			return false
		}
	}
	return true
}

// Summary counts matched and failed inputs
func (r *Report) Summary() (matched, failed int) {
	for _, in := range r.Inputs {
		if in.Matched {
			matched++
		} else {
			failed++
		}
	}
	return matched, failed
}
