// Package promise provides a resolve-once computation handle implementing
// the futures.Handle capability set.
//
// The registry in package futures stores opaque handles produced by an
// execution engine; this package is the reference handle type for engines
// that do not bring their own. It deliberately does not schedule or run
// work: whatever runs the computation calls Resolve or Reject when it
// finishes, from whichever goroutine it owns.
//
// # Basic Usage
//
//	p := promise.New()
//
//	// The engine resolves the promise when the work completes.
//	go func() {
//	    value, err := compute()
//	    if err != nil {
//	        p.Reject(err)
//	        return
//	    }
//	    p.Resolve(value)
//	}()
//
//	// Elsewhere: register it and poll through the registry.
//	reg.Add("req-1", p)
//
// # Lifecycle
//
// A promise moves out of pending exactly once:
//
//	Pending → Fulfilled (Resolve)
//	        → Rejected  (Reject)
//	        → Cancelled (Cancel)
//
// Later transitions fail with ErrAlreadyResolved (Cancel reports false).
// Completion callbacks registered with OnDone run synchronously in the
// resolving goroutine; callbacks registered after resolution run
// immediately.
//
// # Thread Safety
//
// Unlike the registry, a Promise is safe for concurrent use: the engine
// goroutine resolves it while the registry-owning goroutine polls it.
package promise
