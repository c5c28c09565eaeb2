/*
Package cache implements a bounded, in-memory key-value cache with
least-recently-used eviction, max-age expiration, optional stale-read
tolerance, pluggable size accounting, and lifecycle notifications.

The cache is a single-threaded, synchronous data structure: no internal
locking, no atomicity across operations. A consumer that shares one
instance between goroutines must serialize access externally (a mutex,
or a single owning goroutine). The one exception is notification
delivery, which runs on the notifier's own worker and never blocks a
cache operation.
*/
package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/krisalay/lru-cache/api"
	"github.com/krisalay/lru-cache/engine"
	"github.com/krisalay/lru-cache/expiration"
	"github.com/krisalay/lru-cache/notify"
	"github.com/krisalay/lru-cache/order"
	"github.com/krisalay/lru-cache/store"
	"github.com/krisalay/lru-cache/types"
)

/*
LRUCache is the cache implementation. It is the orchestrator that
connects:
- the entry store (key → entry, O(1))
- the recency order (eviction victims, promotion)
- the engine (expiration, sizing, counters, notifications, loading)

Invariant: every resident key has exactly one position in the recency
order and vice versa. Every mutation below maintains that bijection.
*/
type LRUCache struct {
	store    store.Store
	order    *order.List
	engine   *engine.CacheEngine
	notifier *notify.Notifier

	capacity   int
	maxAge     time.Duration
	allowStale bool
	notFound   any

	// size is the running aggregate: adds minus removes since the last
	// Clear. Overwrites do not touch it (see WithSizeCalculation).
	size int64

	// sf collapses concurrent Loader calls for the same key.
	sf singleflight.Group
}

// New creates a cache. All options have usable defaults; New panics
// when the configured capacity is not positive.
//
// Example:
//
//	c := cache.New(
//	    cache.WithCapacity(1000),
//	    cache.WithMaxAge(5*time.Minute),
//	)
//	defer c.Close()
func New(opts ...Option) *LRUCache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.capacity <= 0 {
		panic(fmt.Sprintf("cache: capacity must be positive, got %d", o.capacity))
	}
	if o.notifyBuffer < 0 {
		o.notifyBuffer = 0
	}

	var exp expiration.Strategy
	if o.maxAge > 0 {
		exp = &expiration.ExpireAfterWrite{MaxAge: o.maxAge}
	}

	notifier := notify.NewNotifier(o.notifyBuffer)

	return &LRUCache{
		store:      store.NewMapStore(),
		order:      order.New(),
		engine:     engine.NewCacheEngine(exp, o.sizer, o.loader, notifier, o.metrics),
		notifier:   notifier,
		capacity:   o.capacity,
		maxAge:     o.maxAge,
		allowStale: o.allowStale,
		notFound:   o.notFound,
	}
}

// Set stores a key-value pair and returns the cache for chaining.
//
// A brand-new key inserted into a full cache first evicts the current
// least-recently-used key — chosen purely by recency, even if that
// victim is itself expired. An existing key is overwritten in place:
// value and modified timestamp change, the key is promoted, and the
// size calculation is not re-run.
func (c *LRUCache) Set(key string, value any) api.Cache {
	now := time.Now()

	if ent, ok := c.store.Get(key); ok {
		ent.Value = value
		ent.ModifiedAt = now
		c.order.Touch(key)
		return c
	}

	if c.store.Len() >= c.capacity {
		if victim, ok := c.order.Candidate(); ok {
			c.removeResident(victim)
		}
	}

	c.store.Put(key, &types.CacheEntry{
		Key:        key,
		Value:      value,
		CreatedAt:  now,
		ModifiedAt: now,
	})
	c.order.Touch(key)
	c.size += c.engine.SizeOf(value, key)

	return c
}

// Get retrieves the value for a key, promoting it to most-recently-used
// on a hit. A miss — absent key, or expired entry with stale reads
// disallowed — returns the configured not-found value; the expired case
// also removes the entry and fires "expired" and "evicted".
func (c *LRUCache) Get(key string, opts ...types.ReadOption) any {
	if v, ok := c.read(key, true, opts...); ok {
		return v
	}
	return c.notFound
}

// Peek is Get without promotion and without touching the hit/miss
// counters. It still removes a disallowed-stale expired entry it finds,
// with the same notifications as Get.
func (c *LRUCache) Peek(key string, opts ...types.ReadOption) any {
	if v, ok := c.read(key, false, opts...); ok {
		return v
	}
	return c.notFound
}

// read is the shared lookup path. promote distinguishes Get from Peek:
// it enables both recency promotion and hit/miss counting, which the
// two operations toggle together.
func (c *LRUCache) read(key string, promote bool, opts ...types.ReadOption) (any, bool) {
	ent, ok := c.store.Get(key)
	if !ok {
		if promote {
			c.engine.Miss()
		}
		return nil, false
	}

	ro := types.NewReadOptions(opts...)
	if c.engine.IsExpired(ent) && !ro.ResolveStale(c.allowStale) {
		c.removeResident(key)
		c.engine.Expired(ent)
		if promote {
			c.engine.Miss()
		}
		return nil, false
	}

	// Expiration was either not reached or deliberately ignored
	// (stale reads allowed); the entry counts as a plain hit.
	if promote {
		c.engine.Hit()
		c.order.Touch(key)
	}
	return ent.Value, true
}

// GetOrLoad retrieves a key, consulting the configured Loader on a
// miss. Concurrent loads of the same key are collapsed into one Loader
// call; a non-nil loaded value is stored before being returned. The
// miss and subsequent hit statistics behave exactly as for Get.
func (c *LRUCache) GetOrLoad(ctx context.Context, key string) (any, error) {
	if v, ok := c.read(key, true); ok {
		return v, nil
	}
	if c.engine.Loader == nil {
		return c.notFound, ErrNoLoader
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		return c.engine.Load(ctx, key)
	})
	if err != nil {
		return c.notFound, err
	}
	if v == nil {
		// The source has nothing for this key; cache nothing.
		return c.notFound, nil
	}

	c.Set(key, v)
	return v, nil
}

// Delete removes a key immediately and reports whether it was resident.
// A removal fires "evicted" with the removed value exactly once.
func (c *LRUCache) Delete(key string) bool {
	_, ok := c.removeResident(key)
	return ok
}

// Clear empties the cache and resets the aggregate size to zero.
// Hit/miss counters keep their values and no notifications fire.
func (c *LRUCache) Clear() {
	c.store.Clear()
	c.order.Clear()
	c.size = 0
}

// Find scans resident entries in insertion order (least- to
// most-recently-used) and returns the result of a Get on the first key
// the predicate accepts — so the match is promoted and the stale-read
// options apply to it. No match returns the not-found value.
func (c *LRUCache) Find(pred func(value any, key string) bool, opts ...types.ReadOption) any {
	for _, key := range c.order.KeysOldestFirst() {
		ent, ok := c.store.Get(key)
		if !ok {
			continue
		}
		if pred(ent.Value, key) {
			return c.Get(key, opts...)
		}
	}
	return c.notFound
}

// Some reports whether the predicate accepts any resident entry,
// scanning in insertion order. Entries are not read through Get, so
// nothing is promoted, expired, or counted.
func (c *LRUCache) Some(pred func(value any, key string) bool) bool {
	for _, key := range c.order.KeysOldestFirst() {
		if ent, ok := c.store.Get(key); ok && pred(ent.Value, key) {
			return true
		}
	}
	return false
}

// ForEach invokes fn for every resident entry in insertion order,
// without promotion or expiration checks.
func (c *LRUCache) ForEach(fn func(value any, key string)) {
	for _, key := range c.order.KeysOldestFirst() {
		if ent, ok := c.store.Get(key); ok {
			fn(ent.Value, key)
		}
	}
}

// Keys returns a snapshot of the resident keys from most- to
// least-recently-used. Mutating the cache afterwards does not affect
// the returned slice.
func (c *LRUCache) Keys() []string {
	return c.order.Keys()
}

// Values returns a snapshot of the resident values in Keys order.
func (c *LRUCache) Values() []any {
	keys := c.order.Keys()
	values := make([]any, 0, len(keys))
	for _, key := range keys {
		if ent, ok := c.store.Get(key); ok {
			values = append(values, ent.Value)
		}
	}
	return values
}

// Entries returns copies of the resident entries in Keys order. Copies,
// so that a later overwrite of a key does not reach into the snapshot.
func (c *LRUCache) Entries() []types.CacheEntry {
	keys := c.order.Keys()
	entries := make([]types.CacheEntry, 0, len(keys))
	for _, key := range keys {
		if ent, ok := c.store.Get(key); ok {
			entries = append(entries, *ent)
		}
	}
	return entries
}

// Len returns the number of resident entries.
func (c *LRUCache) Len() int {
	return c.store.Len()
}

// Size returns the aggregate size of the resident entries.
func (c *LRUCache) Size() int64 {
	return c.size
}

// MaxSize returns the configured capacity bound.
func (c *LRUCache) MaxSize() int {
	return c.capacity
}

// MaxAge returns the configured expiration window; zero means entries
// never expire.
func (c *LRUCache) MaxAge() time.Duration {
	return c.maxAge
}

// AllowStale returns the cache-wide stale-read default.
func (c *LRUCache) AllowStale() bool {
	return c.allowStale
}

// Stats snapshots the aggregate size and the hit/miss/eviction/
// expiration counters. The hit ratio is hits/(hits+misses) and is NaN
// before the first read.
func (c *LRUCache) Stats() types.Stats {
	return c.engine.Stats(c.size)
}

// AddListener registers a listener on a notification channel and
// returns its registration id. Unknown channels are a no-op returning 0.
func (c *LRUCache) AddListener(ch notify.Channel, fn notify.Listener) uint64 {
	return c.notifier.AddListener(ch, fn)
}

// RemoveListener unregisters a listener by channel and registration id.
func (c *LRUCache) RemoveListener(ch notify.Channel, id uint64) {
	c.notifier.RemoveListener(ch, id)
}

// Close shuts down notification dispatch, delivering what is already
// queued. The cache remains readable afterwards, but lifecycle events
// stop reaching listeners.
func (c *LRUCache) Close() {
	c.notifier.Close()
}

// removeResident takes a key out of both the store and the recency
// order, reverses its size contribution, and fires "evicted". This is
// the single removal path shared by Delete, capacity eviction, and
// expired reads, which keeps the store/order bijection in one place.
func (c *LRUCache) removeResident(key string) (*types.CacheEntry, bool) {
	ent, ok := c.store.Delete(key)
	if !ok {
		return nil, false
	}
	c.order.Remove(key)
	c.size -= c.engine.SizeOf(ent.Value, key)
	c.engine.Evicted(key, ent.Value)
	return ent, true
}

var _ api.Cache = (*LRUCache)(nil)
