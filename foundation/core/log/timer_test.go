// File: timer_test.go
// Title: Timer Tests
// Description: Tests for operation timers and their log output.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2025-01-24
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive timer tests

package log

import (
	"errors"
	"testing"
)

func TestNewTimer(t *testing.T) {
	logger := New()
	timer := NewTimer(logger, "lex")

	if timer.logger != logger {
		t.Error("Timer should reference the provided logger")
	}
	if timer.operation != "lex" {
		t.Errorf("operation = %v, want lex", timer.operation)
	}
	if timer.level != LevelDebug {
		t.Errorf("default level = %v, want %v", timer.level, LevelDebug)
	}
	if !timer.IsRunning() {
		t.Error("new timer should be running")
	}
}

func TestTimer_Stop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("lex").WithField("tokens", 3)
	timer.Stop()

	if timer.IsRunning() {
		t.Error("timer should be stopped")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0]["message"] != "lex completed" {
		t.Errorf("message = %v", lines[0]["message"])
	}
	if lines[0]["operation"] != "lex" {
		t.Errorf("operation = %v", lines[0]["operation"])
	}
	if lines[0]["tokens"] != float64(3) {
		t.Errorf("tokens = %v", lines[0]["tokens"])
	}
}

func TestTimer_StopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.StartTimer("read").StopWithError(errors.New("gone"))

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0]["level"] != "error" || lines[0]["message"] != "read failed" {
		t.Errorf("unexpected entry %v", lines[0])
	}
	if lines[0]["success"] != false {
		t.Errorf("success = %v, want false", lines[0]["success"])
	}
}

func TestTimer_RespectsLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	logger.StartTimer("quiet").Stop()

	if buf.Len() != 0 {
		t.Errorf("debug timer logged at info level: %s", buf.String())
	}
}
