// Package errors provides a structured error taxonomy for futurekit. It
// defines the error codes and categories shared by the handle registry and
// the promise handle type, so callers can distinguish caller mistakes
// (duplicate keys, unsupported operations) from delegated-operation failures
// (timeouts, cancelled computations) with one mechanism.
//
// # Error Categories
//
// Errors are classified into three categories:
//
//   - Transient: Temporary failures where retry may succeed (a blocking
//     result retrieval that timed out while the work is still running)
//   - Permanent: Failures where retry will not help (duplicate key,
//     unsupported operation, cancelled computation)
//   - Internal: Unexpected errors indicating bugs or system failures
//
// # Error Codes
//
// Each error has a specific code that identifies the type of failure:
//
//   - TIMEOUT: Blocking operation timed out
//   - DUPLICATE_KEY: Key is already registered
//   - UNSUPPORTED_OP: Operation outside the handle capability set
//   - CANCELED: Computation was cancelled
//   - ALREADY_RESOLVED: Handle already carries a result
//   - And more...
//
// # Usage
//
// Create a new error:
//
//	err := errors.New(errors.ErrCodeTimeout, "result retrieval timed out")
//
// Wrap an existing error with context:
//
//	wrapped := errors.Wrap(err, "retrieving result for request")
//
// Check if an error is retryable:
//
//	if kitErr := errors.AsKitError(err); kitErr != nil && kitErr.Retryable() {
//	    // poll again later
//	}
//
// # JSON Serialization
//
// Errors marshal to and from JSON, so a delegated failure can be reported
// to a remote caller and reconstructed with its code, category, and
// metadata intact.
package errors
