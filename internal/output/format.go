// SPDX-License-Identifier: MPL-2.0

package output

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// FormatPlain prints one word per line.
	FormatPlain Format = "plain"
	// FormatJSON prints an indented JSON document.
	FormatJSON Format = "json"
	// FormatTOML prints a TOML document.
	FormatTOML Format = "toml"
	// FormatYAML prints a YAML document.
	FormatYAML Format = "yaml"
)

// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid output format")

type (
	// Format names an output encoding.
	Format string

	// InvalidFormatError is returned when a Format value is not recognized.
	InvalidFormatError struct {
		Value Format
	}
)

// Formats returns every supported format, in the order shown in help text.
func Formats() []Format {
	return []Format{FormatPlain, FormatJSON, FormatTOML, FormatYAML}
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if valid, errs := f.IsValid(); !valid {
		return "", errs[0]
	}
	return f, nil
}

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// IsValid returns whether the Format is one of the defined formats,
// and a list of validation errors if it is not.
func (f Format) IsValid() (bool, []error) {
	switch f {
	case FormatPlain, FormatJSON, FormatTOML, FormatYAML:
		return true, nil
	default:
		return false, []error{&InvalidFormatError{Value: f}}
	}
}

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: plain, json, toml, yaml)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }
