// SPDX-License-Identifier: MPL-2.0

// Package output encodes generation results for the terminal or for other
// programs: one word per line, or a JSON, TOML or YAML document that also
// records the query that produced the words.
package output
