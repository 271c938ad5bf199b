// Package errs provides standardized error types for the packing service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: invalid input
//   - ObjectNotFoundError: an entity cannot be found
//   - PreconditionFailedError: the entity is in a state that does not allow the operation
//   - ConflictError: an idempotency guard tripped (already active, already shipped)
//   - TimeoutError: a collaborator deadline was exceeded
//   - BackingStoreError: an opaque persistence failure
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf and CodeOf classify any error into a machine-readable kind and code
// so transport adapters can build structured failure payloads.
package errs
