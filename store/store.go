// This package defines how entries are actually stored.

package store

import "github.com/krisalay/lru-cache/types"

/*
Store is the interface the cache uses to keep and retrieve entries.
It has no ordering semantics of its own; recency lives elsewhere.
All operations are average O(1).
*/
type Store interface {

	// Get retrieves an entry by key.
	Get(key string) (*types.CacheEntry, bool)

	// Put inserts or replaces an entry.
	Put(key string, ent *types.CacheEntry)

	// Delete removes an entry, returning it if it was present.
	Delete(key string) (*types.CacheEntry, bool)

	// Contains reports whether a key is resident.
	Contains(key string) bool

	// Len returns how many entries are stored.
	Len() int

	// Clear removes every entry.
	Clear()
}

/*
mapStore is the plain-map implementation of Store.

The cache core is single-threaded by contract (callers serialize access
externally), so there is no locking, no copy-on-write, no atomics —
just the map. Keeping Store as an interface leaves room for swapping
the substrate without touching the policy layer.
*/
type mapStore struct {
	data map[string]*types.CacheEntry
}

func NewMapStore() Store {
	return &mapStore{data: make(map[string]*types.CacheEntry)}
}

func (s *mapStore) Get(key string) (*types.CacheEntry, bool) {
	ent, ok := s.data[key]
	return ent, ok
}

func (s *mapStore) Put(key string, ent *types.CacheEntry) {
	s.data[key] = ent
}

func (s *mapStore) Delete(key string) (*types.CacheEntry, bool) {
	ent, ok := s.data[key]
	if ok {
		delete(s.data, key)
	}
	return ent, ok
}

func (s *mapStore) Contains(key string) bool {
	_, ok := s.data[key]
	return ok
}

func (s *mapStore) Len() int {
	return len(s.data)
}

func (s *mapStore) Clear() {
	s.data = make(map[string]*types.CacheEntry)
}
