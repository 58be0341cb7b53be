// SPDX-License-Identifier: MPL-2.0

package lexicon

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/palinimi/palinimi/pkg/cueutil"
)

// MaxFileSize caps the size of a lexicon file (256KB).
const MaxFileSize int64 = 256 << 10

var (
	//go:embed lexicon_schema.cue
	lexiconSchema []byte

	//go:embed lexicon.cue
	lexiconData []byte

	defaultLexicon = sync.OnceValues(func() (*Lexicon, error) {
		return Parse(lexiconData, "lexicon.cue")
	})
)

type (
	// Lexicon maps each category to its set of words. A Lexicon is read-only
	// after construction and safe for concurrent use.
	Lexicon struct {
		sets map[Category]map[string]struct{}
	}

	// lexiconFile mirrors the #Lexicon schema definition.
	lexiconFile struct {
		Pu       []string `json:"pu"`
		KuSuli   []string `json:"ku_suli"`
		KuLili   []string `json:"ku_lili"`
		Su       []string `json:"su"`
		Reserved []string `json:"reserved"`
	}
)

// Default returns the lexicon embedded in the binary.
//
// It panics if the embedded data does not match its schema, which can only
// happen if the package was built from broken sources.
func Default() *Lexicon {
	lex, err := defaultLexicon()
	if err != nil {
		panic(fmt.Sprintf("lexicon: embedded data is invalid: %v", err))
	}
	return lex
}

// Parse decodes CUE lexicon data validated against the #Lexicon schema.
// filename is only used in error messages.
func Parse(data []byte, filename string) (*Lexicon, error) {
	result, err := cueutil.ParseAndDecode[lexiconFile](lexiconSchema, data, "#Lexicon",
		cueutil.WithFilename(filename), cueutil.WithMaxFileSize(MaxFileSize))
	if err != nil {
		return nil, err
	}

	f := result.Value
	return New(map[Category][]string{
		Pu:       f.Pu,
		KuSuli:   f.KuSuli,
		KuLili:   f.KuLili,
		Su:       f.Su,
		Reserved: f.Reserved,
	})
}

// New builds a lexicon from word lists. Categories missing from words are empty.
func New(words map[Category][]string) (*Lexicon, error) {
	lex := &Lexicon{sets: make(map[Category]map[string]struct{}, len(words))}
	for c, list := range words {
		if valid, errs := c.IsValid(); !valid {
			return nil, errs[0]
		}
		set := make(map[string]struct{}, len(list))
		for _, w := range list {
			set[w] = struct{}{}
		}
		lex.sets[c] = set
	}
	return lex, nil
}

// Contains reports whether word belongs to category c.
func (l *Lexicon) Contains(c Category, word string) bool {
	_, ok := l.sets[c][word]
	return ok
}

// Words returns the words of category c in alphabetical order.
func (l *Lexicon) Words(c Category) []string {
	words := make([]string, 0, len(l.sets[c]))
	for w := range l.sets[c] {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Lookup returns the categories word belongs to, in Categories order.
func (l *Lexicon) Lookup(word string) []Category {
	var found []Category
	for _, c := range Categories() {
		if l.Contains(c, word) {
			found = append(found, c)
		}
	}
	return found
}
