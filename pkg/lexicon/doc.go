// SPDX-License-Identifier: MPL-2.0

// Package lexicon holds the known Toki Pona words grouped by lexical category.
//
// The categories are nimi pu, nimi ku suli, nimi ku lili, nimi su and the
// reserved words. They are used to exclude existing words from generated
// names. The word lists are embedded CUE data, validated against an embedded
// schema and decoded once on first use.
package lexicon
