// SPDX-License-Identifier: MPL-2.0

package phonotactics

import (
	"iter"
	"sync"
)

const (
	bareSide = 0
	codaSide = 1
)

// headTables caches the syllables allowed at each (first, afterNasal) position,
// indexed by headIndex.
var headTables = sync.OnceValue(func() [4][]string {
	var tables [4][]string
	for _, first := range []bool{false, true} {
		for _, afterNasal := range []bool{false, true} {
			var heads []string
			for _, s := range syllableTable() {
				if allowedAt(s, first, afterNasal) {
					heads = append(heads, s)
				}
			}
			tables[headIndex(first, afterNasal)] = heads
		}
	}
	return tables
})

func headIndex(first, afterNasal bool) int {
	i := 0
	if first {
		i |= 2
	}
	if afterNasal {
		i |= 1
	}
	return i
}

// WordsOfLength returns the valid words of exactly n syllables in strictly
// increasing lexicographic order.
//
// The sequence is lazy and restartable: every range over it generates from
// scratch, and stopping early releases all internal state.
func WordsOfLength(n int) (iter.Seq[string], error) {
	if n < 1 {
		return nil, &InvalidSyllableCountError{Value: n}
	}
	return words(n, true, false), nil
}

// CountWords reports how many valid words have exactly n syllables.
func CountWords(n int) (int, error) {
	seq, err := WordsOfLength(n)
	if err != nil {
		return 0, err
	}
	count := 0
	for range seq {
		count++
	}
	return count, nil
}

// words generates the words of remaining syllables that may appear at the
// given position.
//
// Heads come from the alphabetical syllable table, where each bare syllable is
// followed by its coda form. Words of different stems never interleave, so
// each (bare, coda) pair is merged on its own and fully drained before the next.
func words(remaining int, first, afterNasal bool) iter.Seq[string] {
	heads := headTables()[headIndex(first, afterNasal)]
	if remaining == 1 {
		return func(yield func(string) bool) {
			for _, h := range heads {
				if !yield(h) {
					return
				}
			}
		}
	}
	return func(yield func(string) bool) {
		for i := 0; i+1 < len(heads); i += 2 {
			if !mergePair(heads[i], heads[i+1], remaining-1, yield) {
				return
			}
		}
	}
}

func mergePair(bare, coda string, tail int, yield func(string) bool) bool {
	m := newPairMerger(bare, coda, tail)
	defer m.close()
	for {
		w, ok := m.next()
		if !ok {
			return true
		}
		if !yield(w) {
			return false
		}
	}
}

// pairMerger merges the words headed by a bare syllable and by its coda-nasal
// form. Each side is a pull cursor over its tails with one pending candidate.
type pairMerger struct {
	heads   [2]string
	pulls   [2]func() (string, bool)
	stops   [2]func()
	pending [2]string
	live    [2]bool
}

func newPairMerger(bare, coda string, tail int) *pairMerger {
	m := &pairMerger{heads: [2]string{bare, coda}}
	m.pulls[bareSide], m.stops[bareSide] = iter.Pull(words(tail, false, false))
	m.pulls[codaSide], m.stops[codaSide] = iter.Pull(words(tail, false, true))
	m.refill(bareSide)
	m.refill(codaSide)
	return m
}

// refill replaces side's pending candidate with its next word, or marks the
// side exhausted.
func (m *pairMerger) refill(side int) {
	tail, ok := m.pulls[side]()
	m.live[side] = ok
	if ok {
		m.pending[side] = m.heads[side] + tail
	}
}

// next returns the smaller pending candidate and refills its side. Once one
// side is exhausted, the other side's candidates are returned in order.
func (m *pairMerger) next() (string, bool) {
	var side int
	switch {
	case m.live[bareSide] && m.live[codaSide]:
		side = bareSide
		if m.pending[codaSide] < m.pending[bareSide] {
			side = codaSide
		}
	case m.live[bareSide]:
		side = bareSide
	case m.live[codaSide]:
		side = codaSide
	default:
		return "", false
	}
	w := m.pending[side]
	m.refill(side)
	return w, true
}

func (m *pairMerger) close() {
	m.stops[bareSide]()
	m.stops[codaSide]()
}
