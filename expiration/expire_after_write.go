package expiration

import (
	"time"

	"github.com/krisalay/lru-cache/types"
)

/*
ExpireAfterWrite implements max-age expiration: an entry is valid for a
fixed window after it was last written. Reading the entry does NOT push
the window forward; only a Set of the same key does, because Set
refreshes the entry's modified timestamp.

The check is strict: an entry whose age equals MaxAge exactly is still
alive, it expires only once the age exceeds MaxAge.
*/
type ExpireAfterWrite struct {

	// MaxAge defines how long an entry remains valid after its last
	// modification. Zero or negative means entries never expire.
	MaxAge time.Duration
}

// IsExpired checks whether the entry is expired at this moment.
func (e *ExpireAfterWrite) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	if e.MaxAge <= 0 {
		return false
	}
	return now.Sub(ent.ModifiedAt) > e.MaxAge
}
