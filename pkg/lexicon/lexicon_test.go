// SPDX-License-Identifier: MPL-2.0

package lexicon

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/palinimi/palinimi/pkg/phonotactics"
)

func TestDefaultCategorySizes(t *testing.T) {
	t.Parallel()

	lex := Default()
	tests := []struct {
		category Category
		want     int
	}{
		{Pu, 120},
		{KuSuli, 16},
		{KuLili, 41},
		{Su, 2},
		{Reserved, 5},
	}

	for _, tt := range tests {
		if got := len(lex.Words(tt.category)); got != tt.want {
			t.Errorf("len(Words(%s)) = %d, want %d", tt.category, got, tt.want)
		}
	}
}

func TestDefaultWordsAreValid(t *testing.T) {
	t.Parallel()

	lex := Default()
	for _, c := range Categories() {
		words := lex.Words(c)
		if !slices.IsSorted(words) {
			t.Errorf("Words(%s) is not sorted", c)
		}
		for _, w := range words {
			if !phonotactics.IsValidWord(w) {
				t.Errorf("%s word %q does not follow phonotactics", c, w)
			}
		}
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	lex := Default()
	tests := []struct {
		category Category
		word     string
		want     bool
	}{
		{Pu, "toki", true},
		{Pu, "pona", true},
		{Pu, "kijetesantakalu", false},
		{KuSuli, "kijetesantakalu", true},
		{KuLili, "majuna", true},
		{Su, "majuna", true},
		{Reserved, "su", true},
		{Su, "su", true},
		{Reserved, "toki", false},
		{Category("unknown"), "toki", false},
	}

	for _, tt := range tests {
		if got := lex.Contains(tt.category, tt.word); got != tt.want {
			t.Errorf("Contains(%s, %q) = %v, want %v", tt.category, tt.word, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	lex := Default()
	tests := []struct {
		word string
		want []Category
	}{
		{"toki", []Category{Pu}},
		{"majuna", []Category{KuLili, Su}},
		{"su", []Category{Su, Reserved}},
		{"kanpa", nil},
	}

	for _, tt := range tests {
		if got := lex.Lookup(tt.word); !slices.Equal(got, tt.want) {
			t.Errorf("Lookup(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("custom lists", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
pu: ["toki"]
ku_suli: []
ku_lili: []
su: []
reserved: ["u"]
`)
		lex, err := Parse(data, "custom.cue")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if !lex.Contains(Pu, "toki") || !lex.Contains(Reserved, "u") {
			t.Error("Parse() lost words")
		}
		if lex.Contains(Pu, "pona") {
			t.Error("Parse() invented words")
		}
	})

	t.Run("letters outside the alphabet", func(t *testing.T) {
		t.Parallel()

		data := []byte(`pu: ["hello"], ku_suli: [], ku_lili: [], su: [], reserved: []`)
		_, err := Parse(data, "bad.cue")
		if err == nil {
			t.Fatal("Parse() accepted a word outside the alphabet")
		}
		if !strings.Contains(err.Error(), "bad.cue") {
			t.Errorf("error = %q, want filename", err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()

		data := []byte("pu: [], ku_suli: [], ku_lili: [], su: [], reserved: []\n" +
			strings.Repeat("// padding\n", int(MaxFileSize)/11+1))
		_, err := Parse(data, "huge.cue")
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Errorf("Parse() error = %v, want size limit error", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()

		data := []byte(`pu: [], ku_suli: [], ku_lili: [], su: [], reserved: [], extra: ["a"]`)
		if _, err := Parse(data, "extra.cue"); err == nil {
			t.Error("Parse() accepted a field outside the schema")
		}
	})
}

func TestNewRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	_, err := New(map[Category][]string{"nimi-sin": {"a"}})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("New() error = %v, want ErrInvalidCategory", err)
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{input: "pu", want: Pu},
		{input: "ku-suli", want: KuSuli},
		{input: "ku_lili", want: KuLili},
		{input: " SU ", want: Su},
		{input: "reserved", want: Reserved},
		{input: "sin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidCategory) {
				t.Errorf("ParseCategory(%q) error = %v, want ErrInvalidCategory", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, %v, want %q", tt.input, got, err, tt.want)
		}
	}
}
