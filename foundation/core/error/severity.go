// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the logger
//              can choose an appropriate reaction and log level.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2025-01-24
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad user input that the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that aborts one operation
	SeverityMedium

	// SeverityHigh indicates an error that aborts the whole command
	SeverityHigh

	// SeverityCritical indicates a broken installation or program bug
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeIOError:
		return SeverityHigh
	case CodeInvalidInput, CodeSentinelInInput, CodeUnmatchedInput, CodeNotFound, CodeCancelled:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
