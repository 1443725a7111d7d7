// Package log provides structured logging for combilex.
//
// Package: log
// Title: combilex Structured Logging
// Description: Leveled, structured logging with immutable contextual loggers,
//              several output formats and operation timers. Integrates with
//              the coded errors of foundation/core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Run IDs instead of request/user IDs, async mode removed
//
// Usage:
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelInfo,
//		Format: mdwlog.FormatText,
//		Output: os.Stderr,
//		Name:   "combilex",
//	}).WithRunID(runID)
//
//	logger.Info("lexing input", mdwlog.Field("source", "main.c"))
//
//	timer := logger.StartTimer("lex")
//	result, err := lexer.Lex(text)
//	timer.WithField("tokens", len(result.Tokens)).Stop()
package log
