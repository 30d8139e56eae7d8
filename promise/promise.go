package promise

import (
	"context"
	"sync"

	"github.com/google/uuid"

	kiterrors "github.com/vinayprograms/futurekit/errors"
	"github.com/vinayprograms/futurekit/futures"
)

// Common errors.
var (
	// ErrAlreadyResolved indicates the promise already carries a result.
	ErrAlreadyResolved = kiterrors.FromCode(kiterrors.ErrCodeAlreadyResolved)
)

// State represents a promise's lifecycle position.
type State string

const (
	// StatePending indicates the computation has not finished.
	StatePending State = "pending"

	// StateFulfilled indicates the computation finished with a value.
	StateFulfilled State = "fulfilled"

	// StateRejected indicates the computation finished with an error.
	StateRejected State = "rejected"

	// StateCancelled indicates cancellation was requested before resolution.
	StateCancelled State = "cancelled"
)

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// IsTerminal returns true if the state is final.
func (s State) IsTerminal() bool {
	return s != StatePending
}

// Promise is a resolve-once computation handle. The execution engine that
// runs the work calls Resolve or Reject exactly once; any number of other
// goroutines may query state, wait on Result, or register callbacks.
//
// Promise implements futures.Handle, so it can be stored in a
// futures.Registry and driven through Invoke.
type Promise struct {
	id string

	mu        sync.Mutex
	state     State
	value     any
	err       error
	callbacks []func(futures.Handle)

	// closed exactly once, on resolution.
	done chan struct{}
}

var _ futures.Handle = (*Promise)(nil)

// Option configures a Promise at construction.
type Option func(*Promise)

// WithID overrides the generated handle ID.
func WithID(id string) Option {
	return func(p *Promise) {
		p.id = id
	}
}

// New creates a pending promise with a generated ID.
func New(opts ...Option) *Promise {
	p := &Promise{
		id:    uuid.NewString(),
		state: StatePending,
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the handle ID.
func (p *Promise) ID() string {
	return p.id
}

// State returns the current lifecycle state.
func (p *Promise) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Resolve fulfils the promise with a value. Returns ErrAlreadyResolved if
// the promise is already terminal. Completion callbacks run synchronously
// in the resolving goroutine, in registration order.
func (p *Promise) Resolve(value any) error {
	return p.settle(StateFulfilled, value, nil)
}

// Reject fails the promise with an error. A nil err is recorded as an
// internal failure so a rejected promise is never indistinguishable from a
// fulfilled one. Returns ErrAlreadyResolved if already terminal.
func (p *Promise) Reject(err error) error {
	if err == nil {
		err = kiterrors.Internal("rejected with nil error", kiterrors.WithHandleID(p.id))
	}
	return p.settle(StateRejected, nil, err)
}

// Cancel requests cancellation. It succeeds only while the promise is still
// pending; a terminal promise reports false. On success the promise becomes
// terminal with futures.ErrCancelled and callbacks run.
func (p *Promise) Cancel() bool {
	return p.settle(StateCancelled, nil, futures.ErrCancelled) == nil
}

// settle performs the single state transition out of pending.
func (p *Promise) settle(state State, value any, err error) error {
	p.mu.Lock()
	if p.state.IsTerminal() {
		p.mu.Unlock()
		return ErrAlreadyResolved
	}
	p.state = state
	p.value = value
	p.err = err
	callbacks := p.callbacks
	p.callbacks = nil
	close(p.done)
	p.mu.Unlock()

	for _, fn := range callbacks {
		fn(p)
	}
	return nil
}

// Done reports whether the promise is terminal (fulfilled, rejected, or
// cancelled).
func (p *Promise) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.IsTerminal()
}

// Cancelled reports whether the promise was cancelled.
func (p *Promise) Cancelled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == StateCancelled
}

// Result blocks until the promise is terminal or ctx ends. A fulfilled
// promise returns its value; a rejected one returns its error; a cancelled
// one returns futures.ErrCancelled. When ctx ends first the context error
// is returned wrapped with a TIMEOUT or CANCELED code.
func (p *Promise) Result(ctx context.Context) (any, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		return nil, kiterrors.Wrap(ctx.Err(), "awaiting result", kiterrors.WithHandleID(p.id))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.err
}

// Err returns the terminal error without blocking: the rejection error,
// futures.ErrCancelled after cancellation, nil while pending or after
// fulfilment.
func (p *Promise) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// OnDone registers fn to run when the promise becomes terminal. If it
// already is, fn runs immediately in the calling goroutine.
func (p *Promise) OnDone(fn func(futures.Handle)) {
	p.mu.Lock()
	if !p.state.IsTerminal() {
		p.callbacks = append(p.callbacks, fn)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	fn(p)
}
