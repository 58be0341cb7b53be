// SPDX-License-Identifier: MPL-2.0

// Package phonotactics implements Toki Pona's syllable and word structure.
//
// Syllables take the form (C)V(n): an optional consonant onset, a vowel, and an
// optional coda nasal. Words are sequences of syllables where only the first
// syllable may be vowel-led, and a syllable with an m/n onset may not follow a
// syllable that ended in the coda nasal.
//
// The package provides validators ([IsValidSyllable], [IsValidWord]), the
// canonical syllable table ([Syllables], [SyllableTable]) and an ordered word
// generator ([WordsOfLength]) that yields every valid word of a given syllable
// count in strictly increasing lexicographic order without sorting.
//
// A valid word is not necessarily an existing Toki Pona word: validity only
// means the string follows the phonotactic rules.
//
// All package-level tables are immutable after first use and safe for
// concurrent readers.
package phonotactics
