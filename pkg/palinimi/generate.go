// SPDX-License-Identifier: MPL-2.0

package palinimi

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/palinimi/palinimi/pkg/phonotactics"
)

// Generate lists every valid word allowed by opts, sorted alphabetically and
// without duplicates.
//
// Options are validated before any generation starts. Cancelling ctx stops
// generation and returns the context error.
func Generate(ctx context.Context, opts Options) ([]string, error) {
	seq, err := Stream(ctx, opts)
	if err != nil {
		return nil, err
	}

	words := slices.Collect(seq)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generate words: %w", err)
	}

	// Each length is ordered on its own, but a longer word can sort before a
	// shorter one.
	slices.Sort(words)
	return slices.Compact(words), nil
}

// Stream yields the words allowed by opts one syllable count at a time, in
// increasing order within each count. It stops early if ctx is cancelled;
// callers should check ctx.Err() after ranging.
func Stream(ctx context.Context, opts Options) (iter.Seq[string], error) {
	f, err := opts.compile()
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		for n := opts.MinSyllables; n <= opts.MaxSyllables; n++ {
			words, err := phonotactics.WordsOfLength(n)
			if err != nil {
				// Unreachable: the range was validated.
				return
			}

			produced, kept := 0, 0
			for w := range words {
				if ctx.Err() != nil {
					return
				}
				produced++
				if !f.keep(w) {
					continue
				}
				kept++
				if !yield(w) {
					return
				}
			}
			slog.Debug("generated words", "syllables", n, "produced", produced, "kept", kept)
		}
	}, nil
}
