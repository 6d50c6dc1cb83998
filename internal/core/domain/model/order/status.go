package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for status-machine violations,
// usable with errors.Is regardless of which transition was attempted.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a sales order.
// It implements a state machine with defined transitions so orders follow
// the correct business workflow.
//
// State transitions:
//
//	        create()
//	(none) ──────────► Pending
//	                   │      │
//	       complete()  │      │ cancel()
//	                   ▼      ▼
//	              Completed  Cancelled
//
// Completed and Cancelled are terminal: no further status change is
// defined from them. Permanent deletion is not a status transition and is
// handled by the delete command, which works from any status.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status assigned at creation. It is the only
	// status from which complete and cancel transitions are allowed.
	Pending

	// Completed indicates the order was fulfilled. Terminal.
	Completed

	// Cancelled indicates the order was called off before fulfilment.
	// Terminal; repeated cancellation is rejected, not silently accepted.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "Pending",
		Completed:     "Completed",
		Cancelled:     "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// InvalidTransitionError reports a rejected status transition, carrying
// the status the order was in and the transition that was attempted.
// Unwraps to ErrInvalidTransition.
type InvalidTransitionError struct {
	From      Status
	Attempted string
}

// NewInvalidTransitionError creates a status-machine violation error.
func NewInvalidTransitionError(from Status, attempted string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Attempted: attempted}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s an order in %s status", ErrInvalidTransition, e.Attempted, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// StatusFromString parses a persisted status value.
// Only the exact stored names are accepted; anything else is rejected so
// a corrupted row surfaces as an error instead of an Unknown order.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if s == str {
			return status, nil
		}
	}
	return UnknownStatus, fmt.Errorf("%w: %q is not a valid status", ErrInvalidTransition, s)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Completed, Cancelled.
// UnknownStatus (0) and any other values are invalid.
//
// Used to ensure Status values from external sources (database, API) are
// valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Pending -> Completed
//
// Any other source status is rejected with an InvalidTransitionError:
// completed orders cannot be completed again, and cancelled orders stay
// cancelled.
func (s Status) Complete() (Status, error) {
	if s != Pending {
		return 0, NewInvalidTransitionError(s, "complete")
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Completed orders are immutable with respect to cancellation, and
// cancelling an already cancelled order fails rather than succeeding
// silently.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, NewInvalidTransitionError(s, "cancel")
	}

	return Cancelled, nil
}
