package cache

import (
	"time"

	"github.com/krisalay/lru-cache/types"
)

const (
	// DefaultCapacity is the capacity bound used when WithCapacity is
	// not given.
	DefaultCapacity = 10_000

	// DefaultNotifyBuffer is how many pending notifications the
	// dispatcher buffers before it starts dropping.
	DefaultNotifyBuffer = 1024
)

// Option configures a cache at construction time.
type Option func(*options)

type options struct {
	capacity     int
	maxAge       time.Duration
	allowStale   bool
	sizer        types.SizeCalculator
	notFound     any
	loader       types.Loader
	metrics      types.Metrics
	notifyBuffer int
}

func defaultOptions() *options {
	return &options{
		capacity:     DefaultCapacity,
		maxAge:       0, // never expires
		sizer:        types.UnitSize,
		notifyBuffer: DefaultNotifyBuffer,
	}
}

// WithCapacity sets the maximum number of resident entries. Inserting a
// brand-new key into a full cache first evicts the least-recently-used
// one. New panics when the capacity is not positive.
// Default: 10,000.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMaxAge sets the expiration window: an entry expires once the time
// since its last modification exceeds d. Expired entries are removed
// lazily, on the read that discovers them; there is no background
// sweep. Zero or negative means entries never expire.
// Default: 0 (never expires).
func WithMaxAge(d time.Duration) Option {
	return func(o *options) {
		o.maxAge = d
	}
}

// WithAllowStale sets the cache-wide default for tolerating expired
// entries on reads. types.AllowStale overrides it per call.
// Default: false.
func WithAllowStale(allow bool) Option {
	return func(o *options) {
		o.allowStale = allow
	}
}

// WithSizeCalculation sets the per-entry size function used by the
// aggregate size accounting. Overwriting an existing key does NOT
// re-run the calculation, so a value-dependent calculator can let the
// aggregate drift from a re-summed total; with the default unit size
// the two always agree. Nil restores the default.
// Default: constant 1 per entry.
func WithSizeCalculation(fn types.SizeCalculator) Option {
	return func(o *options) {
		o.sizer = fn
	}
}

// WithNotFoundValue sets the value Get, Peek, and Find return when a
// lookup misses (or hits an expired entry with stale reads disallowed).
// Default: nil.
func WithNotFoundValue(v any) Option {
	return func(o *options) {
		o.notFound = v
	}
}

// WithLoader sets the backing source GetOrLoad falls back to on a miss.
// Default: none (GetOrLoad returns ErrNoLoader).
func WithLoader(l types.Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithMetrics mirrors lifecycle events to an external observer. The
// cache's own Stats counters run regardless.
// Default: no observer.
func WithMetrics(m types.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithNotifyBuffer sets the notification dispatch buffer. A full buffer
// drops events rather than blocking cache operations.
// Default: 1024.
func WithNotifyBuffer(n int) Option {
	return func(o *options) {
		o.notifyBuffer = n
	}
}
