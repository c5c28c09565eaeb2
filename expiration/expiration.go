// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/krisalay/lru-cache/types"
)

/*
Strategy is the interface that all expiration rules must follow.
Instead of hard-coding expiration logic into the cache, we define a
strategy so expiration behavior can be swapped easily.

Expiration here is purely a question — "is this entry too old right
now?" — the strategy never removes anything itself. Removal is the
policy layer's job, and it only happens lazily on the read that
discovers the expired entry. There is no background sweep.
*/
type Strategy interface {

	// IsExpired checks if the entry is expired at the given moment.
	IsExpired(*types.CacheEntry, time.Time) bool
}
