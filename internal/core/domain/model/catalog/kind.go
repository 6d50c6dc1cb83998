package catalog

import (
	"fmt"

	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"
)

// Kind tags a sellable item with the catalog it comes from. The shop sells
// from two heterogeneous catalogs, books and stationery, and order lines
// must remember which one an item was picked from.
//
// Kind is a value object that validates itself and provides the string
// representation used in persistence. The persisted spelling "Stationary"
// is kept as-is because the existing data uses it.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	UnknownKind Kind = iota

	// Book identifies items from the book catalog.
	Book

	// Stationery identifies items from the stationery catalog.
	Stationery
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "Unknown",
		Book:        "Book",
		Stationery:  "Stationary",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // UnknownKind is intentionally excluded as it's invalid
	return map[Kind]string{
		Book:       "Book",
		Stationery: "Stationary",
	}
}

// KindFromString parses a persisted or request-supplied kind value.
// Accepts the stored forms ("Book", "Stationary") and the route forms
// ("books", "stationery", "stationary").
func KindFromString(s string) (Kind, error) {
	switch s {
	case "Book", "book", "books":
		return Book, nil
	case "Stationary", "Stationery", "stationary", "stationery":
		return Stationery, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause(
			"kind", fmt.Errorf("%q is not a valid catalog kind", s))
	}
}

// Validate checks the Kind is one of the valid values.
// UnknownKind (0) and out-of-range values are invalid.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind is invalid", fmt.Errorf("%d is not a valid catalog kind", k))
	}
	return nil
}

// String returns the persisted name of the kind: "Book" or "Stationary".
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
