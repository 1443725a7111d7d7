// Package error provides coded, contextual errors for combilex.
//
// Package: error
// Title: combilex Error Handling
// Description: Structured errors with codes, severities, operation names and
//              free-form details. The combinator engine itself only reports a
//              boolean; these errors are raised at the edges (source
//              construction, configuration, file handling, CLI).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced code set to the lexer domain
//
// Usage:
//
//	err := mdwerror.New("source contains the sentinel byte").
//		WithCode(mdwerror.CodeSentinelInInput).
//		WithOperation("combinator.NewSource").
//		WithDetail("offset", 12)
//
//	if mdwerror.HasCode(err, mdwerror.CodeSentinelInInput) {
//		// reject the input
//	}
package error
