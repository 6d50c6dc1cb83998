package staff

import (
	"errors"
	"fmt"
)

// ErrForbidden is the sentinel for authorization failures, usable with
// errors.Is regardless of which action was denied.
var ErrForbidden = errors.New("forbidden")

// Action names a mutating operation that requires authorization.
// Every role check in the application goes through Authorize with one of
// these values; pages and handlers must not reimplement role branching.
type Action int

const (
	// ActionCreateOrder creates a new sales order.
	ActionCreateOrder Action = iota + 1

	// ActionUpdateOrderStatus completes or cancels a pending order.
	ActionUpdateOrderStatus

	// ActionDeleteOrder permanently removes an order and its line items.
	ActionDeleteOrder

	// ActionManageStaff creates, edits, or deactivates staff accounts.
	ActionManageStaff
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionCreateOrder:       "create order",
		ActionUpdateOrderStatus: "update order status",
		ActionDeleteOrder:       "delete order",
		ActionManageStaff:       "manage staff",
	}
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown action"
}

// ForbiddenError indicates a role attempted an action it is not allowed
// to perform. Unwraps to ErrForbidden.
type ForbiddenError struct {
	Action Action
	Role   Role
}

// NewForbiddenError creates an authorization failure for the given
// action/role pair.
func NewForbiddenError(action Action, role Role) *ForbiddenError {
	return &ForbiddenError{Action: action, Role: role}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: role %s may not %s", ErrForbidden, e.Role, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ownerOnlyActions lists the actions reserved for the owner.
// Everything else is open to any valid role.
func ownerOnlyActions() map[Action]bool {
	return map[Action]bool{
		ActionDeleteOrder: true,
		ActionManageStaff: true,
	}
}

// Authorize is the single authorization check for the whole application.
// It decides whether the given role may perform the given action.
//
// Rules:
//   - the role must be valid (UnknownRole is always rejected)
//   - order deletion and staff management require Owner
//   - all other actions are allowed for any valid role
//
// Returns nil when allowed, a ForbiddenError when denied, or a validation
// error when the role itself is invalid.
func Authorize(action Action, role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	if ownerOnlyActions()[action] && role != Owner {
		return NewForbiddenError(action, role)
	}

	return nil
}
