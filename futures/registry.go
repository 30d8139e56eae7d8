package futures

import (
	"context"

	"github.com/vinayprograms/futurekit/logging"
	"github.com/vinayprograms/futurekit/telemetry"
)

// DefaultMaxSize is the registry bound used when no option overrides it.
const DefaultMaxSize = 50

// Registry stores computation handles under caller-chosen keys, bounded by a
// maximum entry count. Insertion order doubles as recency-of-registration
// order: once the bound is exceeded the oldest entries are evicted first.
//
// Eviction drops only the registry's reference. The handle, and whatever
// work it represents, stays owned by the execution engine and may run to
// completion after eviction.
//
// A Registry is not internally synchronized. It expects a single logical
// thread of control at a time; wrap calls in a mutex if multiple goroutines
// share one instance.
type Registry[K comparable] struct {
	maxSize   int
	unbounded bool
	order     []K
	entries   map[K]Handle
	logger    *logging.Logger
	metrics   *telemetry.RegistryMetrics
}

// options holds construction settings shared by all key types.
type options struct {
	maxSize   int
	unbounded bool
	logger    *logging.Logger
	metrics   *telemetry.RegistryMetrics
}

// Option configures a Registry at construction.
type Option func(*options)

// WithMaxSize sets the maximum number of stored handles. Negative values are
// clamped to zero; a zero bound makes every Add evict its own entry.
func WithMaxSize(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxSize = n
		o.unbounded = false
	}
}

// Unbounded disables eviction entirely. Callers then rely on Pop as the only
// memory-reclamation path.
func Unbounded() Option {
	return func(o *options) {
		o.unbounded = true
	}
}

// WithLogger attaches a logger for registry events (debug level).
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics attaches telemetry counters for registry activity.
func WithMetrics(m *telemetry.RegistryMetrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// New creates an empty registry bounded at DefaultMaxSize unless options say
// otherwise.
func New[K comparable](opts ...Option) *Registry[K] {
	o := options{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[K]{
		maxSize:   o.maxSize,
		unbounded: o.unbounded,
		entries:   make(map[K]Handle),
		logger:    o.logger,
		metrics:   o.metrics,
	}
}

// Add registers a handle under key. It fails with ErrDuplicateKey if the key
// is already present (the existing entry is left untouched) and ErrNilHandle
// for a nil handle. After insertion the oldest entries are evicted until the
// size bound holds again; with a bound of zero that includes the entry just
// added.
func (r *Registry[K]) Add(key K, h Handle) error {
	if h == nil {
		return ErrNilHandle
	}
	if _, exists := r.entries[key]; exists {
		return ErrDuplicateKey
	}

	r.entries[key] = h
	r.order = append(r.order, key)
	if r.logger != nil {
		r.logger.Registered(key, len(r.entries))
	}
	r.metrics.RecordRegistered(context.Background())

	r.checkSizeLimit()
	return nil
}

// checkSizeLimit evicts oldest-first until the bound is satisfied. Never
// removes more than necessary; a no-op when unbounded.
func (r *Registry[K]) checkSizeLimit() {
	if r.unbounded {
		return
	}
	for len(r.order) > r.maxSize {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.entries, oldest)
		if r.logger != nil {
			r.logger.Evicted(oldest, len(r.entries))
		}
		r.metrics.RecordEvicted(context.Background())
	}
}

// Pop removes and returns the handle registered under key. The second return
// is false when the key is absent (never added, already popped, or evicted);
// absence is a normal outcome, not an error. Handles that are ready for use
// should always be popped so they stop consuming registry memory.
func (r *Registry[K]) Pop(key K) (Handle, bool) {
	h, exists := r.entries[key]
	if !exists {
		return nil, false
	}

	delete(r.entries, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	if r.logger != nil {
		r.logger.Popped(key, len(r.entries))
	}
	r.metrics.RecordPopped(context.Background())
	return h, true
}

// Contains reports whether the given handle is currently stored under any
// key. This compares handle identity over the stored values, not keys, and
// is O(n).
func (r *Registry[K]) Contains(h Handle) bool {
	for _, stored := range r.entries {
		if stored == h {
			return true
		}
	}
	return false
}

// Len returns the current number of stored handles.
func (r *Registry[K]) Len() int {
	return len(r.entries)
}

// MaxSize returns the current bound and whether one is in effect.
func (r *Registry[K]) MaxSize() (int, bool) {
	if r.unbounded {
		return 0, false
	}
	return r.maxSize, true
}

// SetMaxSize changes the bound. Negative values are clamped to zero. The new
// bound takes effect on the next Add: lowering it does not evict immediately,
// so the next Add may evict more than one entry.
func (r *Registry[K]) SetMaxSize(n int) {
	if n < 0 {
		n = 0
	}
	r.maxSize = n
	r.unbounded = false
}
