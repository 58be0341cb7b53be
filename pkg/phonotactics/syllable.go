// SPDX-License-Identifier: MPL-2.0

package phonotactics

import (
	"iter"
	"slices"
	"sync"
)

// syllableTable holds every legal syllable in alphabetical order, each bare
// form immediately followed by its coda-nasal form.
var syllableTable = sync.OnceValue(buildSyllableTable)

// IsValidSyllable reports whether s is a legal syllable.
//
// A syllable with coda nasal is legal iff its bare form is; the coda is
// stripped once, so "ann" is not a syllable.
func IsValidSyllable(s string) bool {
	if HasCodaNasal(s) {
		return isBareSyllable(s[:len(s)-1])
	}
	return isBareSyllable(s)
}

// isBareSyllable accepts V and CV shapes outside the forbidden stems.
func isBareSyllable(s string) bool {
	if slices.Contains(forbiddenStems[:], s) {
		return false
	}
	switch len(s) {
	case 1:
		return IsVowel(s[0])
	case 2:
		return IsConsonant(s[0]) && IsVowel(s[1])
	default:
		return false
	}
}

// Syllables returns the canonical syllable sequence in alphabetical order.
// Each call to the returned sequence starts from the beginning.
func Syllables() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range syllableTable() {
			if !yield(s) {
				return
			}
		}
	}
}

// SyllableTable returns a copy of the canonical syllable table.
func SyllableTable() []string {
	return slices.Clone(syllableTable())
}

// buildSyllableTable walks the alphabet in order. Vowels and consonants are
// contiguous in Alphabet and the coda suffix sorts after every bare form of the
// same stem, so the result is alphabetical without a sort step.
func buildSyllableTable() []string {
	coda := string(NasalCoda)
	table := make([]string, 0, 2*(len(Vowels)+len(Consonants)*len(Vowels)))
	for i := range len(Alphabet) {
		letter := Alphabet[i]
		if IsVowel(letter) {
			table = append(table, string(letter), string(letter)+coda)
			continue
		}
		for j := range len(Vowels) {
			stem := string([]byte{letter, Vowels[j]})
			if IsValidSyllable(stem) {
				table = append(table, stem, stem+coda)
			}
		}
	}
	return table
}
