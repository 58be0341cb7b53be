// SPDX-License-Identifier: MPL-2.0

package phonotactics

import "strings"

const (
	// Vowels lists the vowel letters in alphabetical order.
	Vowels = "aeiou"
	// Consonants lists the consonant letters in alphabetical order.
	Consonants = "jklmnpstw"
	// Alphabet is the union of Consonants and Vowels in alphabetical order.
	// Enumeration walks it in this order to produce sorted output.
	Alphabet = "aeijklmnopstuw"

	// NasalCoda is the letter that may close a syllable.
	NasalCoda byte = 'n'

	// nasalOnsets are the onsets barred right after a coda nasal.
	nasalOnsets = "mn"
)

// forbiddenStems are onset+vowel pairs that are never legal, with or without coda.
var forbiddenStems = [...]string{"ji", "ti", "wo", "wu"}

// IsVowel reports whether c is one of the five vowels.
func IsVowel(c byte) bool {
	return strings.IndexByte(Vowels, c) >= 0
}

// IsConsonant reports whether c is one of the nine consonants.
func IsConsonant(c byte) bool {
	return strings.IndexByte(Consonants, c) >= 0
}

// HasCodaNasal reports whether syllable s is closed by the coda nasal.
// Only meaningful for strings already known to be syllables.
func HasCodaNasal(s string) bool {
	return len(s) > 1 && s[len(s)-1] == NasalCoda
}

func hasNasalOnset(s string) bool {
	return s != "" && strings.IndexByte(nasalOnsets, s[0]) >= 0
}
