package futures

import (
	"context"
	"time"
)

// Invoke looks up key and delegates op to the stored handle.
//
// The return is tri-state:
//   - found == false: the key is absent. Value and error are nil; polling a
//     missing key is a normal outcome, never an error.
//   - found == true, err == nil: the operation's result is in value.
//   - found == true, err != nil: the delegated operation failed (the error
//     is passed through unchanged), the op is outside the capability set
//     (ErrUnsupportedOp), or args did not match it (ErrInvalidArgument).
//
// ctx is forwarded only to OpResult, the one blocking capability; the
// registry imposes no timeout of its own.
func (r *Registry[K]) Invoke(ctx context.Context, key K, op Op, args ...any) (value any, found bool, err error) {
	h, exists := r.entries[key]
	if !exists {
		return nil, false, nil
	}

	start := time.Now()
	value, err = delegate(ctx, h, op, args)
	if r.logger != nil {
		r.logger.Delegated(op.String(), key, time.Since(start), err)
	}
	r.metrics.RecordDelegated(ctx, op.String(), err != nil)
	return value, true, err
}

// delegate dispatches over the closed capability set. Each arm validates the
// argument shape before touching the handle, so a bad call never partially
// executes.
func delegate(ctx context.Context, h Handle, op Op, args []any) (any, error) {
	switch op {
	case OpDone:
		if len(args) != 0 {
			return nil, ErrInvalidArgument
		}
		return h.Done(), nil

	case OpCancelled:
		if len(args) != 0 {
			return nil, ErrInvalidArgument
		}
		return h.Cancelled(), nil

	case OpResult:
		if len(args) != 0 {
			return nil, ErrInvalidArgument
		}
		return h.Result(ctx)

	case OpErr:
		if len(args) != 0 {
			return nil, ErrInvalidArgument
		}
		// The terminal error is the operation's value, not a delegation
		// failure: err stays nil.
		return h.Err(), nil

	case OpCancel:
		if len(args) != 0 {
			return nil, ErrInvalidArgument
		}
		return h.Cancel(), nil

	case OpOnDone:
		if len(args) != 1 {
			return nil, ErrInvalidArgument
		}
		fn, ok := args[0].(func(Handle))
		if !ok {
			return nil, ErrInvalidArgument
		}
		h.OnDone(fn)
		return nil, nil

	default:
		return nil, ErrUnsupportedOp
	}
}
