// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across combilex for consistent
//              classification, CLI exit handling and structured logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Lexer specific codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCancelled    Code = "CANCELLED"

	// Lexing
	CodeSentinelInInput Code = "SENTINEL_IN_INPUT"
	CodeUnmatchedInput  Code = "UNMATCHED_INPUT"

	// I/O
	CodeIOError Code = "IO_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCancelled,
		CodeSentinelInInput, CodeUnmatchedInput,
		CodeIOError,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSentinelInInput, CodeUnmatchedInput, CodeInvalidInput:
		return "lexing"
	case CodeIOError, CodeNotFound:
		return "io"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c {
	case CodeUnmatchedInput:
		return 1
	case CodeInvalidInput, CodeSentinelInInput:
		return 2
	case CodeIOError, CodeNotFound:
		return 3
	case CodeConfigError, CodeInvalidConfig:
		return 4
	case CodeCancelled:
		return 130
	default:
		return 10
	}
}
