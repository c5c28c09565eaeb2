package types

import "time"

/*
CacheEntry is one resident key/value pair.

An entry is created on the first Set of its key. A later Set of the same
key overwrites Value and ModifiedAt in place; the entry itself survives
until the key leaves the cache (explicit delete, expiration discovered
on read, or capacity eviction).

Expiration is derived, not stored: an entry is stale once the time since
ModifiedAt exceeds the cache's max age. That is why there is no ExpireAt
field here.
*/
type CacheEntry struct {
	Key        string
	Value      any
	CreatedAt  time.Time
	ModifiedAt time.Time
}
