package futures

import (
	"context"

	kiterrors "github.com/vinayprograms/futurekit/errors"
)

// Common errors. All are coded errors from the futurekit errors package, so
// callers can match them with errors.Is against these sentinels or inspect
// their code and category.
var (
	// ErrDuplicateKey indicates the key is already registered.
	ErrDuplicateKey = kiterrors.FromCode(kiterrors.ErrCodeDuplicateKey)

	// ErrUnsupportedOp indicates the requested operation is outside the
	// handle capability set.
	ErrUnsupportedOp = kiterrors.FromCode(kiterrors.ErrCodeUnsupportedOp)

	// ErrInvalidArgument indicates arguments that do not match the
	// requested operation's signature.
	ErrInvalidArgument = kiterrors.New(kiterrors.ErrCodeInvalidInput, "arguments do not match operation")

	// ErrNilHandle indicates an attempt to register a nil handle.
	ErrNilHandle = kiterrors.New(kiterrors.ErrCodeInvalidInput, "nil handle")

	// ErrCancelled is reported by handles whose computation was cancelled.
	ErrCancelled = kiterrors.FromCode(kiterrors.ErrCodeCanceled)
)

// Handle is the capability set an execution engine's computation handle must
// expose to be stored in a Registry. The registry never constructs handles
// and never interprets their state; it only stores them and relays these
// operations.
//
// Result is the one blocking capability: it waits until the handle is
// terminal or the context ends, whichever comes first. Err is its
// non-blocking counterpart and reports the terminal error, nil while the
// computation is still pending or when it succeeded.
type Handle interface {
	// Done reports whether the computation reached a terminal state
	// (completed, failed, or cancelled).
	Done() bool

	// Cancelled reports whether the computation was cancelled.
	Cancelled() bool

	// Result blocks until the computation is terminal or ctx ends, then
	// returns the computation's value and error. A cancelled computation
	// yields ErrCancelled.
	Result(ctx context.Context) (any, error)

	// Err returns the terminal error without blocking: the failure error,
	// ErrCancelled for a cancelled computation, nil while pending or after
	// success.
	Err() error

	// Cancel requests cancellation and reports whether the request took
	// effect. The work itself is owned by the execution engine.
	Cancel() bool

	// OnDone registers fn to run once the computation is terminal. A
	// callback registered after completion runs immediately.
	OnDone(fn func(Handle))
}

// Op names an operation in the Handle capability set for delegation through
// Registry.Invoke. The set is closed: any other value fails with
// ErrUnsupportedOp.
type Op string

const (
	// OpDone queries terminal state. No arguments; returns bool.
	OpDone Op = "done"

	// OpCancelled queries cancellation state. No arguments; returns bool.
	OpCancelled Op = "cancelled"

	// OpResult blocks for the computation's value. No arguments; the
	// Invoke context bounds the wait. Returns the value and the
	// computation's error.
	OpResult Op = "result"

	// OpErr retrieves the terminal error as a value without blocking.
	// No arguments; returns error (possibly nil).
	OpErr Op = "err"

	// OpCancel requests cancellation. No arguments; returns bool.
	OpCancel Op = "cancel"

	// OpOnDone registers a completion callback. One argument of type
	// func(Handle); returns nil.
	OpOnDone Op = "on_done"
)

// String returns the string representation of the operation.
func (o Op) String() string {
	return string(o)
}

// Valid returns true if the operation is part of the capability set.
func (o Op) Valid() bool {
	switch o {
	case OpDone, OpCancelled, OpResult, OpErr, OpCancel, OpOnDone:
		return true
	default:
		return false
	}
}
