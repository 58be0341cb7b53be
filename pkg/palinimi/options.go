// SPDX-License-Identifier: MPL-2.0

package palinimi

import (
	"regexp"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/palinimi/palinimi/pkg/lexicon"
)

// MatchAll is the default pattern; it accepts every word.
const MatchAll = ".*"

type (
	// Options restrains word generation.
	Options struct {
		// MinSyllables is the minimum number of syllables (inclusive, >= 1).
		MinSyllables int
		// MaxSyllables is the maximum number of syllables (inclusive, >= MinSyllables).
		MaxSyllables int

		// ExcludePu drops the nimi pu.
		ExcludePu bool
		// ExcludeKuSuli drops the nimi ku suli.
		ExcludeKuSuli bool
		// ExcludeKuLili drops the nimi ku lili.
		ExcludeKuLili bool
		// ExcludeSu drops the nimi su.
		ExcludeSu bool
		// ExcludeReserved drops the reserved words.
		ExcludeReserved bool

		// Pattern is a regular expression the words must match at their start.
		// The empty pattern matches everything.
		Pattern string
		// Glob, when set, is a doublestar glob the whole word must match.
		Glob string

		// Lexicon supplies the category word lists. Nil means lexicon.Default().
		Lexicon *lexicon.Lexicon
	}

	// filter is the compiled form of Options.
	filter struct {
		lex     *lexicon.Lexicon
		exclude []lexicon.Category
		pattern *regexp.Regexp
		glob    string
	}
)

// DefaultOptions returns options for the given range with no exclusions and
// the match-everything pattern.
func DefaultOptions(minSyllables, maxSyllables int) Options {
	return Options{
		MinSyllables: minSyllables,
		MaxSyllables: maxSyllables,
		Pattern:      MatchAll,
	}
}

// Validate checks the range, the pattern and the glob, in that order, and
// returns the first problem found.
func (o Options) Validate() error {
	_, err := o.compile()
	return err
}

// ExcludedCategories returns the categories whose exclusion flag is set.
func (o Options) ExcludedCategories() []lexicon.Category {
	flags := map[lexicon.Category]bool{
		lexicon.Pu:       o.ExcludePu,
		lexicon.KuSuli:   o.ExcludeKuSuli,
		lexicon.KuLili:   o.ExcludeKuLili,
		lexicon.Su:       o.ExcludeSu,
		lexicon.Reserved: o.ExcludeReserved,
	}
	var excluded []lexicon.Category
	for _, c := range lexicon.Categories() {
		if flags[c] {
			excluded = append(excluded, c)
		}
	}
	return excluded
}

func (o Options) compile() (*filter, error) {
	if o.MinSyllables < 1 || o.MaxSyllables < o.MinSyllables {
		return nil, &InvalidRangeError{Min: o.MinSyllables, Max: o.MaxSyllables}
	}

	// Compile the pattern on its own first so a stray ")" cannot pair with
	// the anchoring group.
	if _, err := regexp.Compile(o.Pattern); err != nil {
		return nil, &InvalidPatternError{Pattern: o.Pattern, Err: err}
	}
	anchored, err := regexp.Compile(`^(?:` + o.Pattern + `)`)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: o.Pattern, Err: err}
	}

	if o.Glob != "" && !doublestar.ValidatePattern(o.Glob) {
		return nil, &InvalidGlobError{Glob: o.Glob}
	}

	lex := o.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}

	return &filter{
		lex:     lex,
		exclude: o.ExcludedCategories(),
		pattern: anchored,
		glob:    o.Glob,
	}, nil
}

// keep reports whether w survives every filter.
func (f *filter) keep(w string) bool {
	for _, c := range f.exclude {
		if f.lex.Contains(c, w) {
			return false
		}
	}
	if !f.pattern.MatchString(w) {
		return false
	}
	if f.glob != "" {
		// The glob was validated up front, so Match cannot fail.
		matched, _ := doublestar.Match(f.glob, w)
		return matched
	}
	return true
}
