// Package errs provides standardized error types for the fuel settlement
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for common validation scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value lies outside an allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//
// and for the settlement error taxonomy:
//   - UnauthorizedError: For callers lacking the role an action requires
//   - InvalidTransitionError: For actions not legal from the current order status
//   - InsufficientFundsError: For payments below the required escrow capture
//   - AlreadyReleasedError: For repeated release attempts against a drained escrow
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrUnauthorized)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach improves error reporting, makes error handling
// consistent, and enables classification with errors.Is at transport and
// application boundaries.
package errs
