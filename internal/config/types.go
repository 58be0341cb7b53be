// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// OutputFormatPlain prints one word per line.
	OutputFormatPlain OutputFormat = "plain"
	// OutputFormatJSON prints a JSON document.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatTOML prints a TOML document.
	OutputFormatTOML OutputFormat = "toml"
	// OutputFormatYAML prints a YAML document.
	OutputFormatYAML OutputFormat = "yaml"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// defaultPattern matches every word. Defined locally to avoid coupling
	// config to pkg/palinimi.
	defaultPattern = ".*"
)

var (
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidSyllableRange is the sentinel error wrapped by InvalidSyllableRangeError.
	ErrInvalidSyllableRange = errors.New("invalid syllable range")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// OutputFormat selects how generated words are printed.
	// Defined locally to avoid coupling config to internal/output;
	// the command layer converts it at the boundary.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	// It wraps ErrInvalidOutputFormat for errors.Is() compatibility.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// SyllableRange is an inclusive range of syllable counts.
	SyllableRange struct {
		Min int
		Max int
	}

	// InvalidSyllableRangeError is returned when a SyllableRange starts below 1
	// or ends before it starts.
	InvalidSyllableRangeError struct {
		Value SyllableRange
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Generate holds the defaults for word generation
		Generate GenerateConfig `json:"generate" mapstructure:"generate"`
		// Output configures how results are printed
		Output OutputConfig `json:"output" mapstructure:"output"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// GenerateConfig holds the defaults used when the command line leaves a
	// generation setting unset.
	GenerateConfig struct {
		// MinSyllables is used when no positional count is given
		MinSyllables int `json:"min_syllables" mapstructure:"min_syllables"`
		// MaxSyllables is used when no positional count is given
		MaxSyllables int `json:"max_syllables" mapstructure:"max_syllables"`
		// Exclude lists the lexical categories to drop
		Exclude ExcludeConfig `json:"exclude" mapstructure:"exclude"`
		// Pattern is the regular expression filter
		Pattern string `json:"pattern" mapstructure:"pattern"`
		// Glob is the glob filter; empty disables it
		Glob string `json:"glob" mapstructure:"glob"`
		// Lexicon is the path of a CUE lexicon file; empty uses the built-in one
		Lexicon string `json:"lexicon" mapstructure:"lexicon"`
	}

	// ExcludeConfig selects lexical categories to drop from the results.
	ExcludeConfig struct {
		Pu       bool `json:"pu" mapstructure:"pu"`
		KuSuli   bool `json:"ku_suli" mapstructure:"ku_suli"`
		KuLili   bool `json:"ku_lili" mapstructure:"ku_lili"`
		Su       bool `json:"su" mapstructure:"su"`
		Reserved bool `json:"reserved" mapstructure:"reserved"`
	}

	// OutputConfig configures result printing.
	OutputConfig struct {
		// Format is the default output format
		Format OutputFormat `json:"format" mapstructure:"format"`
		// TitleCase capitalizes each word, for use as a proper name
		TitleCase bool `json:"title_case" mapstructure:"title_case"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme for rendered help
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// Range returns the configured syllable range.
func (c GenerateConfig) Range() SyllableRange {
	return SyllableRange{Min: c.MinSyllables, Max: c.MaxSyllables}
}

// IsValid returns whether the GenerateConfig has valid fields.
// Only the range is checked here; the pattern and glob are compiled by the
// generator, which reports them with their own errors.
func (c GenerateConfig) IsValid() (bool, []error) {
	return c.Range().IsValid()
}

// IsValid returns whether the OutputConfig has valid fields.
func (c OutputConfig) IsValid() (bool, []error) {
	return c.Format.IsValid()
}

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	return c.ColorScheme.IsValid()
}

// IsValid returns whether the Config has valid fields.
// It delegates to Generate.IsValid(), Output.IsValid() and UI.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Generate.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Output.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// String returns the "min..max" form of the range.
func (r SyllableRange) String() string { return fmt.Sprintf("%d..%d", r.Min, r.Max) }

// IsValid returns whether the range starts at 1 or more and does not end
// before it starts.
func (r SyllableRange) IsValid() (bool, []error) {
	if r.Min < 1 || r.Max < r.Min {
		return false, []error{&InvalidSyllableRangeError{Value: r}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSyllableRangeError.
func (e *InvalidSyllableRangeError) Error() string {
	return fmt.Sprintf("invalid syllable range %s (need 1 <= min <= max)", e.Value)
}

// Unwrap returns ErrInvalidSyllableRange for errors.Is() compatibility.
func (e *InvalidSyllableRangeError) Unwrap() error { return ErrInvalidSyllableRange }

// Error implements the error interface for InvalidOutputFormatError.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: plain, json, toml, yaml)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error {
	return ErrInvalidOutputFormat
}

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats,
// and a list of validation errors if it is not.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case OutputFormatPlain, OutputFormatJSON, OutputFormatTOML, OutputFormatYAML:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			MinSyllables: 1,
			MaxSyllables: 2,
			Pattern:      defaultPattern,
		},
		Output: OutputConfig{
			Format: OutputFormatPlain,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}
