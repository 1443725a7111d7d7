// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     lexer
// Description: Concurrent lexing of independent inputs
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package lexer

import (
	"context"
	"runtime"
	"sync"

	mdwerror "github.com/msto63/combilex/foundation/core/error"
)

// BatchResult is the outcome for one input of LexBatch
type BatchResult struct {
	Index  int
	Result *Result
	Err    error
}

// LexBatch lexes independent inputs on up to workers goroutines. Every input
// gets its own source, sink and lexicon; nothing is shared between them.
// Results are returned in input order. When ctx is cancelled, inputs not yet
// started get a CodeCancelled error and LexBatch returns the context error.
func LexBatch(ctx context.Context, texts []string, workers int) ([]BatchResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(texts) {
		workers = len(texts)
	}

	results := make([]BatchResult, len(texts))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := Lex(texts[i])
				results[i] = BatchResult{Index: i, Result: res, Err: err}
			}
		}()
	}

	next := 0
feed:
	for ; next < len(texts); next++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- next:
		}
	}
	close(jobs)
	wg.Wait()

	if next < len(texts) {
		for i := next; i < len(texts); i++ {
			results[i] = BatchResult{
				Index: i,
				Err: mdwerror.Wrap(ctx.Err(), "lexing cancelled").
					WithCode(mdwerror.CodeCancelled).
					WithOperation("lexer.LexBatch"),
			}
		}
		return results, ctx.Err()
	}

	return results, nil
}
