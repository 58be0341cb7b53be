// SPDX-License-Identifier: MPL-2.0

// Package palinimi generates names that follow Toki Pona's phonotactics.
//
// [Generate] lists every valid word within a syllable-count range, minus the
// words of excluded lexical categories and the words that fail a pattern or
// glob filter. The result is sorted and free of duplicates.
//
// Typical usage:
//
//	opts := palinimi.DefaultOptions(2, 3)
//	opts.ExcludePu = true
//	opts.Pattern = "ma"
//	words, err := palinimi.Generate(ctx, opts)
//
// Pattern is a regular expression anchored at the start of the word only:
// "ma" keeps "mama" and "manka" alike. Glob, when set, must match the whole
// word ("*la" keeps words ending in "la").
package palinimi
