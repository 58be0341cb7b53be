// SPDX-License-Identifier: MPL-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type (
	// Query records the options that produced a Result.
	Query struct {
		MinSyllables int      `json:"min_syllables" toml:"min_syllables" yaml:"min_syllables"`
		MaxSyllables int      `json:"max_syllables" toml:"max_syllables" yaml:"max_syllables"`
		Exclude      []string `json:"exclude,omitempty" toml:"exclude,omitempty" yaml:"exclude,omitempty"`
		Pattern      string   `json:"pattern" toml:"pattern" yaml:"pattern"`
		Glob         string   `json:"glob,omitempty" toml:"glob,omitempty" yaml:"glob,omitempty"`
	}

	// Result is the document written by Write.
	Result struct {
		Query Query    `json:"query" toml:"query" yaml:"query"`
		Count int      `json:"count" toml:"count" yaml:"count"`
		Words []string `json:"words" toml:"words" yaml:"words"`
	}

	// countResult is the document written when only the count is requested.
	countResult struct {
		Query Query `json:"query" toml:"query" yaml:"query"`
		Count int   `json:"count" toml:"count" yaml:"count"`
	}

	// Options controls encoding.
	Options struct {
		Format Format
		// TitleCase capitalizes the first letter of each word.
		TitleCase bool
		// CountOnly drops the word list and prints only the count.
		CountOnly bool
	}
)

// NewResult builds a Result for words; Count is len(words).
func NewResult(q Query, words []string) Result {
	return Result{Query: q, Count: len(words), Words: words}
}

// TitleCase returns a copy of words with each word capitalized.
func TitleCase(words []string) []string {
	caser := cases.Title(language.Und)
	titled := make([]string, len(words))
	for i, w := range words {
		titled[i] = caser.String(w)
	}
	return titled
}

// Write encodes r to w according to opts. The plain format prints one word
// per line, or only the count when opts.CountOnly is set. Structured formats
// always carry a words list, empty when nothing matched, unless
// opts.CountOnly drops it.
func Write(w io.Writer, r Result, opts Options) error {
	if valid, errs := opts.Format.IsValid(); !valid {
		return errs[0]
	}

	if opts.TitleCase && !opts.CountOnly {
		r.Words = TitleCase(r.Words)
	}
	if r.Words == nil {
		r.Words = []string{}
	}

	if opts.Format == FormatPlain {
		return writePlain(w, r, opts.CountOnly)
	}
	if opts.CountOnly {
		return encode(w, opts.Format, countResult{Query: r.Query, Count: r.Count})
	}
	return encode(w, opts.Format, r)
}

func encode(w io.Writer, format Format, doc any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return &InvalidFormatError{Value: format}
	}
	return nil
}

func writePlain(w io.Writer, r Result, countOnly bool) error {
	if countOnly {
		_, err := io.WriteString(w, strconv.Itoa(r.Count)+"\n")
		return err
	}
	for _, word := range r.Words {
		if _, err := io.WriteString(w, word+"\n"); err != nil {
			return err
		}
	}
	return nil
}
