package staff

import (
	"fmt"

	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"
)

// Role is the authorization level of a staff account.
//
// The shop has exactly two roles: the owner, who can do everything
// including destructive deletion and staff management, and salespeople,
// who handle day-to-day catalog and order work.
//
// Role is a value object that validates itself and provides the string
// representation used in persistence ("owner" / "sales_man").
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Owner is the superuser role: full access including permanent
	// order deletion and staff account management.
	Owner

	// Salesman is the day-to-day role: catalog reads, order creation,
	// and order status updates.
	Salesman
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Owner:       "owner",
		Salesman:    "sales_man",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Owner:    "owner",
		Salesman: "sales_man",
	}
}

// RoleFromString parses a persisted role value.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks the Role is one of the valid values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted name of the role: "owner" or "sales_man".
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
