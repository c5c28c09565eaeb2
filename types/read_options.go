package types

// This file defines per-call read behavior overrides.

/*
ReadOptions carries the knobs a single Get/Peek/Find call may override.

allowStale is a tri-state: unset means "use the cache-wide default",
which is why it is a pointer rather than a plain bool.
*/
type ReadOptions struct {
	allowStale *bool
}

// ReadOption mutates ReadOptions. Options are applied in order.
type ReadOption func(*ReadOptions)

// AllowStale overrides the cache-wide stale-read policy for one call.
// With stale reads allowed, an expired entry is returned (and promoted
// by Get) instead of being removed.
func AllowStale(allow bool) ReadOption {
	return func(o *ReadOptions) {
		o.allowStale = &allow
	}
}

// ResolveStale applies the per-call override, falling back to the
// cache-wide default when no option was given.
func (o *ReadOptions) ResolveStale(def bool) bool {
	if o.allowStale == nil {
		return def
	}
	return *o.allowStale
}

// NewReadOptions folds a list of options into a ReadOptions value.
func NewReadOptions(opts ...ReadOption) ReadOptions {
	var o ReadOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
