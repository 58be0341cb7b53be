// SPDX-License-Identifier: MPL-2.0

package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Pu is the set of the 120 words listed in Toki Pona: The Language of Good.
	Pu Category = "pu"
	// KuSuli is the set of new words with a frequency index of 3 or higher in
	// the Toki Pona Dictionary.
	KuSuli Category = "ku-suli"
	// KuLili is the set of the other new words of the Toki Pona Dictionary,
	// also referred to as nimi ku pi suli ala.
	KuLili Category = "ku-lili"
	// Su is the set of new words used in The Wizard of Oz: Toki Pona Edition.
	Su Category = "su"
	// Reserved is the set of words reserved for future use by Sonja Lang.
	Reserved Category = "reserved"
)

// ErrInvalidCategory is the sentinel error wrapped by InvalidCategoryError.
var ErrInvalidCategory = errors.New("invalid lexical category")

type (
	// Category names a lexical category.
	Category string

	// InvalidCategoryError is returned when a Category value is not recognized.
	// It wraps ErrInvalidCategory for errors.Is() compatibility.
	InvalidCategoryError struct {
		Value Category
	}
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Pu, KuSuli, KuLili, Su, Reserved}
}

// ParseCategory converts a user-supplied name to a Category. Underscores are
// accepted in place of hyphens and case is ignored.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if valid, errs := c.IsValid(); !valid {
		return "", errs[0]
	}
	return c, nil
}

// String returns the string representation of the Category.
func (c Category) String() string { return string(c) }

// IsValid returns whether the Category is one of the defined categories,
// and a list of validation errors if it is not.
func (c Category) IsValid() (bool, []error) {
	switch c {
	case Pu, KuSuli, KuLili, Su, Reserved:
		return true, nil
	default:
		return false, []error{&InvalidCategoryError{Value: c}}
	}
}

// Error implements the error interface for InvalidCategoryError.
func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid lexical category %q (valid: pu, ku-suli, ku-lili, su, reserved)", e.Value)
}

// Unwrap returns ErrInvalidCategory for errors.Is() compatibility.
func (e *InvalidCategoryError) Unwrap() error { return ErrInvalidCategory }
