package api

import (
	"context"
	"time"

	"github.com/krisalay/lru-cache/notify"
	"github.com/krisalay/lru-cache/types"
)

/*
Cache defines the PUBLIC API of the cache.
This is a contract that guarantees certain behaviors without exposing
internals. The recency bookkeeping, expiration policy, size accounting,
and notification dispatch are all hidden behind this interface.
*/
type Cache interface {

	/*
		Set stores a key-value pair.

		BEHAVIOR:
		---------
		- If the key is new and the cache is full, exactly one entry is
		  evicted first: the least-recently-used one, chosen purely by
		  recency (an expired victim is not special-cased).
		- If the key already exists, its value and modified timestamp
		  are overwritten in place. The size calculation is NOT re-run
		  for an overwrite.
		- Either way the key ends up most-recently-used.

		Set returns the cache so calls can be chained.
	*/
	Set(key string, value any) Cache

	/*
		Get retrieves the value for a key.

		BEHAVIOR:
		---------
		1. Key absent → counts a miss, returns the not-found value.
		2. Key present but expired, stale reads disallowed → the entry
		   is removed, "expired" and "evicted" notifications fire, a
		   miss is counted, and the not-found value is returned.
		3. Otherwise → counts a hit, promotes the key to
		   most-recently-used, returns the value. With stale reads
		   allowed (cache-wide or via types.AllowStale) an expired
		   entry takes this path too.
	*/
	Get(key string, opts ...types.ReadOption) any

	/*
		Peek is Get without side effects on recency or counters: it
		never promotes the key and never counts a hit or miss. It DOES
		still remove a disallowed-stale expired entry it discovers,
		with the same notifications as Get.
	*/
	Peek(key string, opts ...types.ReadOption) any

	/*
		GetOrLoad retrieves a key, falling back to the configured
		Loader on a miss (read-through):

		1. Cache checks memory → usable value is returned as a hit
		2. On a miss the Loader fetches the value; concurrent loads of
		   the same key are collapsed into one fetch
		3. A non-nil loaded value is stored and returned

		Returns ErrNoLoader when no Loader is configured.
	*/
	GetOrLoad(ctx context.Context, key string) (any, error)

	/*
		Delete removes a key immediately.

		Reports whether the key was resident; when it was, an "evicted"
		notification fires with the removed value, exactly once.
		Deleting an absent key is a safe no-op.
	*/
	Delete(key string) bool

	// Clear removes every entry and resets the aggregate size to zero.
	// Hit/miss counters are NOT reset and no notifications fire.
	Clear()

	/*
		Find scans resident entries in insertion order (least- to
		most-recently-used) and, on the first entry the predicate
		accepts, performs a Get on its key — promoting it and honoring
		any stale-read option — and returns that Get's result. With no
		match it returns the not-found value.
	*/
	Find(pred func(value any, key string) bool, opts ...types.ReadOption) any

	// Some reports whether the predicate accepts any resident entry.
	// The scan runs in insertion order and mutates nothing.
	Some(pred func(value any, key string) bool) bool

	// ForEach invokes fn for every resident entry in insertion order.
	// It neither promotes nor expires anything.
	ForEach(fn func(value any, key string))

	// Keys returns a snapshot of resident keys ordered from most- to
	// least-recently-used. Later cache mutation does not affect it.
	Keys() []string

	// Values returns the values in the same order as Keys.
	Values() []any

	// Entries returns copies of the resident entries in the same order
	// as Keys.
	Entries() []types.CacheEntry

	// Len returns the number of resident entries.
	Len() int

	// Size returns the aggregate size: the sum of the size calculation
	// over every resident entry, tracked incrementally.
	Size() int64

	// MaxSize returns the configured capacity bound.
	MaxSize() int

	// MaxAge returns the configured expiration window; zero means
	// entries never expire.
	MaxAge() time.Duration

	// AllowStale returns the cache-wide stale-read default.
	AllowStale() bool

	// Stats snapshots the aggregate size, hit/miss/eviction/expiration
	// counts, and the hit ratio.
	Stats() types.Stats

	// AddListener registers a listener on one of the notification
	// channels and returns its registration id. Unknown channel names
	// register nothing and return 0.
	AddListener(ch notify.Channel, fn notify.Listener) uint64

	// RemoveListener unregisters a listener by channel and id.
	RemoveListener(ch notify.Channel, id uint64)

	// Close shuts down notification dispatch, delivering events that
	// are already queued. The cache itself needs no teardown.
	Close()
}
