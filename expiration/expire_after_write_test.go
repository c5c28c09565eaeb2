package expiration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/krisalay/lru-cache/expiration"
	"github.com/krisalay/lru-cache/types"
)

func TestExpireAfterWrite(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	entryModifiedAt := func(mod time.Time) *types.CacheEntry {
		return &types.CacheEntry{Key: "k", Value: "v", CreatedAt: mod, ModifiedAt: mod}
	}

	strat := &expiration.ExpireAfterWrite{MaxAge: time.Minute}

	t.Run("younger than max age is alive", func(t *testing.T) {
		ent := entryModifiedAt(now.Add(-30 * time.Second))
		require.False(t, strat.IsExpired(ent, now))
	})

	t.Run("exactly max age old is still alive", func(t *testing.T) {
		ent := entryModifiedAt(now.Add(-time.Minute))
		require.False(t, strat.IsExpired(ent, now), "the check is strictly greater-than")
	})

	t.Run("older than max age is expired", func(t *testing.T) {
		ent := entryModifiedAt(now.Add(-time.Minute - time.Nanosecond))
		require.True(t, strat.IsExpired(ent, now))
	})

	t.Run("age counts from modification, not creation", func(t *testing.T) {
		ent := entryModifiedAt(now.Add(-time.Hour))
		ent.ModifiedAt = now.Add(-time.Second) // overwritten recently
		require.False(t, strat.IsExpired(ent, now))
	})

	t.Run("zero max age never expires", func(t *testing.T) {
		forever := &expiration.ExpireAfterWrite{}
		ent := entryModifiedAt(now.Add(-24 * time.Hour))
		require.False(t, forever.IsExpired(ent, now))
	})
}
