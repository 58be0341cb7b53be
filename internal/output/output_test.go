// SPDX-License-Identifier: MPL-2.0

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func testResult() Result {
	return NewResult(Query{
		MinSyllables: 2,
		MaxSyllables: 2,
		Exclude:      []string{"pu"},
		Pattern:      "to",
	}, []string{"toja", "tojan", "toje"})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "plain", want: FormatPlain},
		{in: "JSON", want: FormatJSON},
		{in: " toml ", want: FormatTOML},
		{in: "yaml", want: FormatYAML},
		{in: "csv", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrInvalidFormat", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestWritePlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "words", opts: Options{Format: FormatPlain}, want: "toja\ntojan\ntoje\n"},
		{name: "title case", opts: Options{Format: FormatPlain, TitleCase: true}, want: "Toja\nTojan\nToje\n"},
		{name: "count", opts: Options{Format: FormatPlain, CountOnly: true}, want: "3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := Write(&buf, testResult(), tt.opts); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Write() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWritePlainEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, NewResult(Query{}, nil), Options{Format: FormatPlain}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Write() of no words = %q, want empty", buf.String())
	}
}

func TestWriteStructured(t *testing.T) {
	t.Parallel()

	decoders := map[Format]func([]byte, any) error{
		FormatJSON: json.Unmarshal,
		FormatTOML: toml.Unmarshal,
		FormatYAML: yaml.Unmarshal,
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := Write(&buf, testResult(), Options{Format: format, TitleCase: true}); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			var got Result
			if err := decode(buf.Bytes(), &got); err != nil {
				t.Fatalf("decode %s: %v\n%s", format, err, buf.String())
			}
			if got.Count != 3 || !slices.Equal(got.Words, []string{"Toja", "Tojan", "Toje"}) {
				t.Errorf("decoded = %+v", got)
			}
			if got.Query.Pattern != "to" || !slices.Equal(got.Query.Exclude, []string{"pu"}) {
				t.Errorf("decoded query = %+v", got.Query)
			}
		})
	}
}

func TestWriteStructuredCountOnly(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{FormatJSON, FormatTOML, FormatYAML} {
		var buf bytes.Buffer
		if err := Write(&buf, testResult(), Options{Format: format, CountOnly: true}); err != nil {
			t.Fatalf("Write(%s) error = %v", format, err)
		}
		if strings.Contains(buf.String(), "words") {
			t.Errorf("Write(%s, CountOnly) = %s, want no word list", format, buf.String())
		}
		if !strings.Contains(buf.String(), "count") || !strings.Contains(buf.String(), "3") {
			t.Errorf("Write(%s, CountOnly) = %s, want the count", format, buf.String())
		}
	}
}

func TestWriteInvalidFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, testResult(), Options{Format: "csv"})
	var formatErr *InvalidFormatError
	if !errors.As(err, &formatErr) || formatErr.Value != "csv" {
		t.Errorf("Write() error = %v, want *InvalidFormatError", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Write() wrote %q before failing", buf.String())
	}
}

func TestTitleCaseDoesNotMutate(t *testing.T) {
	t.Parallel()

	words := []string{"kijetesantakalu", "a"}
	got := TitleCase(words)
	if !slices.Equal(got, []string{"Kijetesantakalu", "A"}) {
		t.Errorf("TitleCase() = %v", got)
	}
	if words[0] != "kijetesantakalu" {
		t.Errorf("TitleCase() mutated its input: %v", words)
	}
}

func TestWriteStructuredEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		want   string
	}{
		{format: FormatJSON, want: `"words": []`},
		{format: FormatTOML, want: `words = []`},
		{format: FormatYAML, want: `words: []`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := Write(&buf, NewResult(Query{MinSyllables: 1, MaxSyllables: 1}, nil), Options{Format: tt.format, TitleCase: true}); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Write() of no words = %s, want %q", buf.String(), tt.want)
			}
		})
	}
}
