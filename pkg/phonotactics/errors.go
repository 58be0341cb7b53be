// SPDX-License-Identifier: MPL-2.0

package phonotactics

import (
	"errors"
	"fmt"
)

// ErrInvalidSyllableCount is the sentinel error wrapped by InvalidSyllableCountError.
var ErrInvalidSyllableCount = errors.New("invalid syllable count")

// InvalidSyllableCountError is returned when a word length is not a positive
// number of syllables.
type InvalidSyllableCountError struct {
	Value int
}

// Error implements the error interface.
func (e *InvalidSyllableCountError) Error() string {
	return fmt.Sprintf("invalid syllable count %d (must be a positive integer)", e.Value)
}

// Unwrap returns ErrInvalidSyllableCount for errors.Is() compatibility.
func (e *InvalidSyllableCountError) Unwrap() error { return ErrInvalidSyllableCount }
