package errors

// ErrorCategory classifies errors by their nature and retry semantics.
type ErrorCategory string

// Error categories define how errors should be handled.
const (
	// CategoryTransient indicates temporary failures where retry may succeed.
	// Examples: a blocking result retrieval timing out while work is still running.
	CategoryTransient ErrorCategory = "transient"

	// CategoryPermanent indicates failures where retry will not help.
	// Examples: duplicate key, unsupported operation, cancelled computation.
	CategoryPermanent ErrorCategory = "permanent"

	// CategoryInternal indicates unexpected errors, bugs, or system failures.
	CategoryInternal ErrorCategory = "internal"
)

// String returns the string representation of the category.
func (c ErrorCategory) String() string {
	return string(c)
}

// IsRetryable returns true if errors in this category may succeed on retry.
func (c ErrorCategory) IsRetryable() bool {
	return c == CategoryTransient
}

// ErrorCode identifies specific error types within categories.
type ErrorCode string

// Error codes for common failure scenarios.
const (
	// Transient errors
	ErrCodeTimeout ErrorCode = "TIMEOUT" // Blocking operation timed out

	// Permanent errors
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"        // Key or handle does not exist
	ErrCodeDuplicateKey    ErrorCode = "DUPLICATE_KEY"    // Key is already registered
	ErrCodeUnsupportedOp   ErrorCode = "UNSUPPORTED_OP"   // Operation outside the handle capability set
	ErrCodeInvalidInput    ErrorCode = "INVALID_INPUT"    // Malformed or invalid input
	ErrCodeCanceled        ErrorCode = "CANCELED"         // Computation was cancelled
	ErrCodeAlreadyResolved ErrorCode = "ALREADY_RESOLVED" // Handle already carries a result

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL" // Unexpected internal error
	ErrCodePanic    ErrorCode = "PANIC"    // Recovered from panic
)

// String returns the string representation of the error code.
func (c ErrorCode) String() string {
	return string(c)
}

// DefaultCategory returns the default category for an error code.
func (c ErrorCode) DefaultCategory() ErrorCategory {
	switch c {
	case ErrCodeTimeout:
		return CategoryTransient

	case ErrCodeNotFound, ErrCodeDuplicateKey, ErrCodeUnsupportedOp,
		ErrCodeInvalidInput, ErrCodeCanceled, ErrCodeAlreadyResolved:
		return CategoryPermanent

	case ErrCodeInternal, ErrCodePanic:
		return CategoryInternal

	default:
		return CategoryInternal
	}
}

// DefaultRetryable returns whether this error code is typically retryable.
func (c ErrorCode) DefaultRetryable() bool {
	return c.DefaultCategory().IsRetryable()
}

// codeDescriptions provides human-readable descriptions for error codes.
var codeDescriptions = map[ErrorCode]string{
	ErrCodeTimeout:         "operation timed out",
	ErrCodeNotFound:        "not found",
	ErrCodeDuplicateKey:    "key already registered",
	ErrCodeUnsupportedOp:   "operation not supported by handle",
	ErrCodeInvalidInput:    "invalid input provided",
	ErrCodeCanceled:        "computation cancelled",
	ErrCodeAlreadyResolved: "handle already resolved",
	ErrCodeInternal:        "internal error",
	ErrCodePanic:           "recovered from panic",
}

// Description returns a human-readable description for the error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}
