// SPDX-License-Identifier: MPL-2.0

package palinimi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is the sentinel error wrapped by InvalidRangeError.
	ErrInvalidRange = errors.New("invalid syllable range")
	// ErrInvalidPattern is the sentinel error wrapped by InvalidPatternError.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidGlob is the sentinel error wrapped by InvalidGlobError.
	ErrInvalidGlob = errors.New("invalid glob")
)

type (
	// InvalidRangeError is returned when MinSyllables is not positive or
	// MaxSyllables is below MinSyllables.
	InvalidRangeError struct {
		Min int
		Max int
	}

	// InvalidPatternError is returned when Pattern does not compile.
	// Err is the error reported by the regexp engine.
	InvalidPatternError struct {
		Pattern string
		Err     error
	}

	// InvalidGlobError is returned when Glob is not a well-formed glob.
	InvalidGlobError struct {
		Glob string
	}
)

// Error implements the error interface.
func (e *InvalidRangeError) Error() string {
	if e.Min < 1 {
		return fmt.Sprintf("invalid syllable range %d..%d: min_syllables must be a positive integer", e.Min, e.Max)
	}
	return fmt.Sprintf("invalid syllable range %d..%d: max_syllables must not be lesser than min_syllables", e.Min, e.Max)
}

// Unwrap returns ErrInvalidRange for errors.Is() compatibility.
func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// Error implements the error interface.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns both ErrInvalidPattern and the regexp error.
func (e *InvalidPatternError) Unwrap() []error { return []error{ErrInvalidPattern, e.Err} }

// Error implements the error interface.
func (e *InvalidGlobError) Error() string {
	return fmt.Sprintf("invalid glob %q", e.Glob)
}

// Unwrap returns ErrInvalidGlob for errors.Is() compatibility.
func (e *InvalidGlobError) Unwrap() error { return ErrInvalidGlob }
