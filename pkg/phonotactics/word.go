// SPDX-License-Identifier: MPL-2.0

package phonotactics

import (
	"iter"
	"slices"
)

// maxSyllableLen is the length of the longest syllable shape, CVn.
const maxSyllableLen = 3

// IsValidWord reports whether w parses as a sequence of syllables following
// Toki Pona's word-level rules:
//   - all syllables except the first must be consonant-led;
//   - a syllable starting with m or n cannot follow one with coda nasal.
//
// Any legal segmentation is enough. The empty string is not a word.
func IsValidWord(w string) bool {
	return w != "" && parseWord(w, true, false)
}

// parseWord tries every syllable length at the head of rest and backtracks
// until one leads to a full parse.
func parseWord(rest string, first, afterNasal bool) bool {
	if rest == "" {
		return !first
	}
	for size := 1; size <= maxSyllableLen && size <= len(rest); size++ {
		syl := rest[:size]
		if !fits(syl, first, afterNasal) {
			continue
		}
		if parseWord(rest[size:], false, HasCodaNasal(syl)) {
			return true
		}
	}
	return false
}

// Segment returns the first legal segmentation of w found by the parser.
func Segment(w string) ([]string, bool) {
	for syllables := range Segmentations(w) {
		return syllables, true
	}
	return nil, false
}

// Segmentations yields every legal segmentation of w, shortest head syllable
// first. Each yielded slice is owned by the caller.
func Segmentations(w string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		if w == "" {
			return
		}
		segment(w, true, false, make([]string, 0, len(w)), yield)
	}
}

func segment(rest string, first, afterNasal bool, prefix []string, yield func([]string) bool) bool {
	if rest == "" {
		if first {
			return true
		}
		return yield(slices.Clone(prefix))
	}
	for size := 1; size <= maxSyllableLen && size <= len(rest); size++ {
		syl := rest[:size]
		if !fits(syl, first, afterNasal) {
			continue
		}
		if !segment(rest[size:], false, HasCodaNasal(syl), append(prefix, syl), yield) {
			return false
		}
	}
	return true
}

// allowedAt applies the positional rules to a syllable without checking its shape.
func allowedAt(syl string, first, afterNasal bool) bool {
	if !first && IsVowel(syl[0]) {
		return false
	}
	return !afterNasal || !hasNasalOnset(syl)
}

// fits reports whether syl is a legal syllable in the given position.
func fits(syl string, first, afterNasal bool) bool {
	return allowedAt(syl, first, afterNasal) && IsValidSyllable(syl)
}
