// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     version
// Description: Central version management
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Application version
	Version = "1.0.0"

	// Component versions
	Engine = "1.0.0"
	Lexer  = "1.0.0"
)

// Set at build time via -ldflags "-X github.com/msto63/combilex/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "engine", "combinator":
		return Engine
	case "lexer":
		return Lexer
	default:
		return Version
	}
}

// Info returns a one-line description of the build
func Info() string {
	return fmt.Sprintf("combilex %s (commit %s, built %s, %s %s/%s)",
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
