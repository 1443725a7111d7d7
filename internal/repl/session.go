// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     repl
// Description: Interactive lexing prompt
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package repl

import (
	"bytes"
	"fmt"
	"strings"

	mdwlog "github.com/msto63/combilex/foundation/core/log"
	"github.com/msto63/combilex/internal/render"
	"github.com/msto63/combilex/pkg/core/config"
	"github.com/msto63/combilex/pkg/lexer"
)

const helpText = `Befehle:
  :help            Diese Hilfe
  :format <name>   Ausgabeformat wechseln (text, json, yaml, debug)
  :sample          Beispielprogramm lexen
  :quit            Beenden
Jede andere Zeile wird gelext.`

// Session holds the state of one interactive session independent of the
// terminal, so it can be driven by tests
type Session struct {
	format string
	color  bool
	logger *mdwlog.Logger
	runID  string
	count  int
}

// NewSession creates a session writing in format
func NewSession(format string, color bool, logger *mdwlog.Logger) *Session {
	if logger == nil {
		logger = mdwlog.Discard()
	}
	report := render.NewReport()
	return &Session{
		format: format,
		color:  color,
		logger: logger.WithRunID(report.RunID),
		runID:  report.RunID,
	}
}

// Format returns the current output format
func (s *Session) Format() string {
	return s.format
}

// Handle processes one input line and returns the text to print. exit is
// true when the session should end.
func (s *Session) Handle(line string) (output string, exit bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}

	if strings.HasPrefix(trimmed, ":") {
		return s.command(trimmed)
	}
	return s.lex(line), false
}

func (s *Session) command(cmd string) (string, bool) {
	fields := strings.Fields(cmd)
	switch strings.ToLower(fields[0]) {
	case ":quit", ":q", ":exit":
		return "", true
	case ":help", ":h":
		return helpText, false
	case ":sample":
		return s.lex(lexer.SampleProgram), false
	case ":format":
		if len(fields) != 2 || !config.IsValidFormat(fields[1]) {
			return "Verwendung: :format text|json|yaml|debug", false
		}
		s.format = fields[1]
		return "Format: " + s.format, false
	default:
		return fmt.Sprintf("Unbekannter Befehl %s. :help zeigt alle Befehle.", fields[0]), false
	}
}

func (s *Session) lex(input string) string {
	s.count++
	res, err := lexer.Lex(input)

	report := render.NewReport()
	report.RunID = s.runID
	report.Add("", res, err)

	if err != nil {
		s.logger.WarnWithErr("input rejected", err, mdwlog.Int("line", s.count))
	} else {
		s.logger.Debug("input lexed", mdwlog.Fields{
			"line":    s.count,
			"tokens":  len(res.Tokens),
			"matched": res.Matched,
		})
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, report, render.Options{Format: s.format, Color: s.color}); err != nil {
		return "Fehler: " + err.Error()
	}
	return strings.TrimRight(buf.String(), "\n")
}
