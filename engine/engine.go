package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/krisalay/lru-cache/expiration"
	"github.com/krisalay/lru-cache/notify"
	"github.com/krisalay/lru-cache/types"
)

/*
CacheEngine is the "brain" of the cache. It is responsible for the
BEHAVIOR of the cache, not for storage.

It decides:
- When an entry counts as expired
- What an entry costs (size accounting)
- How lifecycle events reach counters, observers, and listeners
- How data is loaded on a miss

It does NOT:
- Store data
- Track recency order
- Decide which key to evict
*/
type CacheEngine struct {

	// Expiration decides when an entry is too old. Nil means entries
	// never expire based on time.
	Expiration expiration.Strategy

	// Sizer computes the logical size of an entry. Never nil; the
	// constructor substitutes the unit size.
	Sizer types.SizeCalculator

	// Loader is how the cache talks to the outside world when it does
	// NOT have the data (read-through). Nil means misses are final.
	Loader types.Loader

	// Notifier carries lifecycle notifications to registered listeners.
	Notifier *notify.Notifier

	// counters back the Stats snapshot and always run.
	counters *types.Counters

	// observer mirrors lifecycle events to user-supplied metrics.
	observer types.Metrics
}

// NewCacheEngine creates a CacheEngine. A nil sizer falls back to the
// unit size; a nil observer falls back to NoopMetrics so the rest of
// the code never nil-checks it.
func NewCacheEngine(
	exp expiration.Strategy,
	sizer types.SizeCalculator,
	loader types.Loader,
	notifier *notify.Notifier,
	observer types.Metrics,
) *CacheEngine {
	if sizer == nil {
		sizer = types.UnitSize
	}
	if observer == nil {
		observer = types.NoopMetrics{}
	}

	return &CacheEngine{
		Expiration: exp,
		Sizer:      sizer,
		Loader:     loader,
		Notifier:   notifier,
		counters:   &types.Counters{},
		observer:   observer,
	}
}

// IsExpired checks whether a cache entry is expired right now.
// Returns false when no expiration strategy is configured.
func (e *CacheEngine) IsExpired(ent *types.CacheEntry) bool {
	return e.Expiration != nil &&
		e.Expiration.IsExpired(ent, time.Now())
}

/*
SizeOf runs the configured size calculation for one entry.

A negative result means the calculator is broken, and misconfiguration
is fatal: SizeOf panics, the panic is never caught inside the cache,
and it surfaces from whichever operation (Set or Delete) invoked the
calculation.
*/
func (e *CacheEngine) SizeOf(value any, key string) int64 {
	size := e.Sizer(value, key)
	if size < 0 {
		panic(fmt.Sprintf("cache: size calculation returned %d for key %q; sizes must be non-negative", size, key))
	}
	return size
}

// Hit records a successful read.
func (e *CacheEngine) Hit() {
	e.counters.Hit()
	e.observer.Hit()
}

// Miss records a failed read (absent key, or expired without stale
// tolerance).
func (e *CacheEngine) Miss() {
	e.counters.Miss()
	e.observer.Miss()
}

// Evicted records a removal of any kind and notifies listeners with
// the removed value.
func (e *CacheEngine) Evicted(key string, value any) {
	e.counters.Eviction()
	e.observer.Eviction()
	e.Notifier.Emit(notify.Event{Channel: notify.Evicted, Key: key, Value: value})
}

// Expired records an expiration discovered on read and notifies
// listeners with the removed entry.
func (e *CacheEngine) Expired(ent *types.CacheEntry) {
	e.counters.Expire()
	e.observer.Expire()
	e.Notifier.Emit(notify.Event{Channel: notify.Expired, Key: ent.Key, Value: ent.Value, Entry: ent})
}

// Load asks the backing source for a key the cache does not have.
func (e *CacheEngine) Load(ctx context.Context, key string) (any, error) {
	return e.Loader.Load(ctx, key)
}

// Stats snapshots the engine's counters together with the cache's
// current aggregate size.
func (e *CacheEngine) Stats(size int64) types.Stats {
	return e.counters.Snapshot(size)
}
