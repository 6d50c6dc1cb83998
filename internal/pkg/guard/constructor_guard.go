// Package guard provides a defensive pattern that ensures value objects,
// entities, and commands are only created through their designated
// constructor functions, never as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether the enclosing struct was created through
// its constructor or left as a zero value. Embed it in a domain object and
// set it with NewConstructorGuard inside the constructor; any zero-value
// instance will then fail Validate.
//
// Example:
//
//	type Draft struct {
//	    customerID string
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewDraft(customerID string) (Draft, error) {
//	    if customerID == "" {
//	        return Draft{}, errors.New("customer is required")
//	    }
//	    return Draft{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (d Draft) Validate() error {
//	    return d.guard.Validate(ErrDraftIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
// Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// objects it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
