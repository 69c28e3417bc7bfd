// Package errs provides standardized error types for the parcel service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure class:
//   - ObjectNotFoundError: a referenced parcel, history entry or directory entity does not exist
//   - DuplicateError: a directory uniqueness constraint was violated
//   - BadRequestError: the request is not acceptable (ownership mismatch, unknown enum value)
//   - ValidationError: one or more field level constraints failed
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: the leaf
//     errors returned by constructors and folded into a ValidationError by Collect
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The transport layer classifies errors with errors.Is against the sentinels.
package errs
