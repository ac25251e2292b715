// Package errs provides standardized error types for the LifeLink application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the failure taxonomy of the transport workflow:
//   - ValueIsRequiredError / ValueIsInvalidError: rejected input (HTTP 400)
//   - ValueIsOutOfRangeError: numeric input outside its bounds (HTTP 400)
//   - ObjectNotFoundError: unknown listing, hospital, driver, or order (HTTP 404)
//   - InvalidStateError: a lifecycle transition the state machine forbids (HTTP 400)
//   - ConflictError: an operation colliding with state held elsewhere,
//     such as a driver who already has an active order (HTTP 400)
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() producing a single-line message
//   - Unwrap() returning the sentinel
//
// The HTTP adapter maps sentinels to status codes, so application and domain
// code never deal with HTTP concerns directly.
package errs
