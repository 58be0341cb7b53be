// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// These benchmarks cover the hot paths of palinimi:
//   - word enumeration and validation
//   - filtered generation over a syllable range
//   - CUE parsing of the lexicon and the config file
//   - result encoding
//
// To generate a PGO profile, run:
//
//	go test ./internal/benchmark -bench=. -cpuprofile=default.pgo
package benchmark
