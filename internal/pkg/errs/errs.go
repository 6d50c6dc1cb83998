package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each concrete error
// type below unwraps to exactly one of these.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrObjectNotFound     = errors.New("object not found")
	ErrFetchFailed        = errors.New("fetch failed")
	ErrPartialWrite       = errors.New("partial write")
	ErrConstraintViolated = errors.New("constraint violated")
)

// sanitize keeps error messages single-line for log output.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a lookup by identifier returned nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a failed lookup.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a failed lookup
// with an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// FetchError indicates a read from the backing store failed. Callers are
// expected to surface it and keep any previously loaded state untouched.
type FetchError struct {
	Source string
	Cause  error
}

// NewFetchError creates an error for a failed read of the named source.
func NewFetchError(source string, cause error) *FetchError {
	return &FetchError{Source: source, Cause: cause}
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrFetchFailed, e.Source, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrFetchFailed, e.Source))
}

func (e *FetchError) Unwrap() error {
	return ErrFetchFailed
}

// PartialWriteError indicates a multi-row write did not complete as a unit.
// The write is rolled back before this error is returned, so no orphaned
// rows remain; the error exists so callers can tell an incomplete order
// write apart from an ordinary store failure.
type PartialWriteError struct {
	Object string
	Cause  error
}

// NewPartialWriteError creates an error for an incomplete multi-row write.
func NewPartialWriteError(object string, cause error) *PartialWriteError {
	return &PartialWriteError{Object: object, Cause: cause}
}

func (e *PartialWriteError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPartialWrite, e.Object, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPartialWrite, e.Object))
}

func (e *PartialWriteError) Unwrap() error {
	return ErrPartialWrite
}

// ConstraintError indicates the store rejected a write for referential
// integrity reasons, such as deleting a customer that still has orders.
type ConstraintError struct {
	Constraint string
	Cause      error
}

// NewConstraintError creates an error for a store-side constraint rejection.
func NewConstraintError(constraint string, cause error) *ConstraintError {
	return &ConstraintError{Constraint: constraint, Cause: cause}
}

func (e *ConstraintError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConstraintViolated, e.Constraint, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConstraintViolated, e.Constraint))
}

func (e *ConstraintError) Unwrap() error {
	return ErrConstraintViolated
}
