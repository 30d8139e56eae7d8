package futures

import (
	"context"
	"sync"
)

// stubHandle is a minimal Handle for registry tests. It stands in for
// whatever the execution engine would produce.
type stubHandle struct {
	mu        sync.Mutex
	done      bool
	cancelled bool
	value     any
	err       error
	cancelOK  bool
	callbacks []func(Handle)

	cancelCalled bool
}

func newStub() *stubHandle {
	return &stubHandle{cancelOK: true}
}

func completedStub(value any) *stubHandle {
	return &stubHandle{done: true, value: value}
}

func failedStub(err error) *stubHandle {
	return &stubHandle{done: true, err: err}
}

func (h *stubHandle) Done() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.done
}

func (h *stubHandle) Cancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelled
}

func (h *stubHandle) Result(ctx context.Context) (any, error) {
	h.mu.Lock()
	if h.done {
		defer h.mu.Unlock()
		return h.value, h.err
	}
	h.mu.Unlock()

	// Pending: block like a real handle until the caller gives up.
	<-ctx.Done()
	return nil, ctx.Err()
}

func (h *stubHandle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.done {
		return nil
	}
	return h.err
}

func (h *stubHandle) Cancel() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cancelCalled = true
	if h.done || !h.cancelOK {
		return false
	}
	h.done = true
	h.cancelled = true
	h.err = ErrCancelled
	return true
}

func (h *stubHandle) OnDone(fn func(Handle)) {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		fn(h)
		return
	}
	h.callbacks = append(h.callbacks, fn)
	h.mu.Unlock()
}

// complete resolves a pending stub and fires registered callbacks.
func (h *stubHandle) complete(value any) {
	h.mu.Lock()
	h.done = true
	h.value = value
	callbacks := h.callbacks
	h.callbacks = nil
	h.mu.Unlock()

	for _, fn := range callbacks {
		fn(h)
	}
}
