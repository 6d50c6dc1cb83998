// Package errs provides standardized error types for the back-office
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for classification
//
// The general-purpose types live here (required/invalid values, failed
// lookups, failed reads, incomplete multi-row writes, store constraint
// rejections). Errors tied to a single domain concept stay with that
// concept: invalid order status transitions are defined in the order
// package, authorization failures in the staff package.
package errs
