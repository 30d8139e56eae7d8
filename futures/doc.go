// Package futures provides a bounded, insertion-ordered registry for
// asynchronous computation handles.
//
// A caller submits work to an execution engine, receives a handle, and
// registers it here under a key of its choosing. Later it can inspect or
// drive the handle through one delegation entry point (Invoke) or claim it
// for final use (Pop) without the registry ever holding unbounded memory
// for results nobody collects.
//
// # Basic Usage
//
// Create a registry, register handles, and poll them by key:
//
//	reg := futures.New[string](futures.WithMaxSize(100))
//
//	// The execution engine produced h for this request.
//	err := reg.Add("req-42", h)
//
//	// Poll without claiming.
//	done, found, _ := reg.Invoke(ctx, "req-42", futures.OpDone)
//	if found && done.(bool) {
//	    h, _ := reg.Pop("req-42")
//	    value, err := h.Result(ctx)
//	    // ...
//	}
//
// # Bounding and Eviction
//
// The registry holds at most MaxSize entries (50 by default, or none with
// Unbounded). Adding beyond the bound evicts the oldest registrations
// first, synchronously, inside Add. Eviction is a statement about registry
// memory only: the evicted handle keeps running in the execution engine.
// It is a safety net — callers should Pop handles they are finished
// polling rather than rely on eviction.
//
// # Delegation
//
// Invoke dispatches over the closed Op set (done, cancelled, result, err,
// cancel, on_done) so one call site can drive any handle capability by
// registry key. A missing key reports found == false and never errors,
// which makes "is this request still registered and finished?" a single
// guard-free poll. Errors from the delegated operation itself pass through
// unchanged.
//
// # Concurrency
//
// The registry is intentionally not synchronized: it expects its methods to
// be called from one logical thread of control at a time, such as a single
// request-handling goroutine. Only the delegated operations themselves may
// block (OpResult), bounded by the caller's context. Wrap registry calls in
// a mutex to share an instance across goroutines.
package futures
