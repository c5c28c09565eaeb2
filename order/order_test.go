package order_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krisalay/lru-cache/order"
)

func TestTouch(t *testing.T) {
	t.Run("inserts unknown keys at the recent end", func(t *testing.T) {
		l := order.New()
		l.Touch("a")
		l.Touch("b")
		l.Touch("c")

		require.Equal(t, []string{"c", "b", "a"}, l.Keys())
		require.Equal(t, 3, l.Len())
	})

	t.Run("moves known keys to the recent end", func(t *testing.T) {
		l := order.New()
		l.Touch("a")
		l.Touch("b")
		l.Touch("c")
		l.Touch("a")

		require.Equal(t, []string{"a", "c", "b"}, l.Keys())
		require.Equal(t, 3, l.Len(), "touch must not duplicate")
	})

	t.Run("touching the most recent key is a no-op", func(t *testing.T) {
		l := order.New()
		l.Touch("a")
		l.Touch("b")
		l.Touch("b")

		require.Equal(t, []string{"b", "a"}, l.Keys())
	})
}

func TestCandidate(t *testing.T) {
	l := order.New()

	_, ok := l.Candidate()
	require.False(t, ok, "empty order has no candidate")

	l.Touch("a")
	l.Touch("b")

	victim, ok := l.Candidate()
	require.True(t, ok)
	require.Equal(t, "a", victim, "least recent key is the candidate")
	require.Equal(t, 2, l.Len(), "candidate must not remove")
}

func TestRemove(t *testing.T) {
	t.Run("removes head, middle, and tail correctly", func(t *testing.T) {
		for _, target := range []string{"a", "b", "c"} {
			l := order.New()
			l.Touch("a")
			l.Touch("b")
			l.Touch("c")

			require.True(t, l.Remove(target))
			require.False(t, l.Contains(target))
			require.Equal(t, 2, l.Len())
			require.Len(t, l.Keys(), 2)
			require.Len(t, l.KeysOldestFirst(), 2)
		}
	})

	t.Run("reports absence", func(t *testing.T) {
		l := order.New()
		require.False(t, l.Remove("ghost"))
	})

	t.Run("removing the only key empties the order", func(t *testing.T) {
		l := order.New()
		l.Touch("a")
		require.True(t, l.Remove("a"))

		_, ok := l.Candidate()
		require.False(t, ok)
		require.Empty(t, l.Keys())
	})
}

func TestIterationSnapshots(t *testing.T) {
	l := order.New()
	l.Touch("a")
	l.Touch("b")
	l.Touch("c")

	require.Equal(t, []string{"c", "b", "a"}, l.Keys())
	require.Equal(t, []string{"a", "b", "c"}, l.KeysOldestFirst())

	// Snapshots are independent of later mutation.
	keys := l.Keys()
	l.Remove("b")
	require.Equal(t, []string{"c", "b", "a"}, keys)
	require.Equal(t, []string{"c", "a"}, l.Keys())
}

func TestClear(t *testing.T) {
	l := order.New()
	l.Touch("a")
	l.Touch("b")
	l.Clear()

	require.Zero(t, l.Len())
	require.Empty(t, l.Keys())

	l.Touch("c")
	require.Equal(t, []string{"c"}, l.Keys(), "order is usable after clear")
}
