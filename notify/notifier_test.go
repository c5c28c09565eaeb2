package notify_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krisalay/lru-cache/notify"
)

// recorder is a listener that remembers what it saw. Dispatch runs on
// the notifier's worker, so tests Close (which drains) before asserting.
type recorder struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recorder) listen(ev notify.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) all() []notify.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Event(nil), r.events...)
}

func TestDispatch(t *testing.T) {
	t.Run("delivers to listeners on the matching channel only", func(t *testing.T) {
		n := notify.NewNotifier(16)
		evicted := &recorder{}
		expired := &recorder{}
		n.AddListener(notify.Evicted, evicted.listen)
		n.AddListener(notify.Expired, expired.listen)

		n.Emit(notify.Event{Channel: notify.Evicted, Key: "k", Value: "v"})
		n.Close()

		require.Len(t, evicted.all(), 1)
		require.Equal(t, "k", evicted.all()[0].Key)
		require.Empty(t, expired.all())
	})

	t.Run("delivers to every listener on a channel", func(t *testing.T) {
		n := notify.NewNotifier(16)
		a, b := &recorder{}, &recorder{}
		n.AddListener(notify.Evicted, a.listen)
		n.AddListener(notify.Evicted, b.listen)

		n.Emit(notify.Event{Channel: notify.Evicted, Key: "k"})
		n.Close()

		require.Len(t, a.all(), 1)
		require.Len(t, b.all(), 1)
	})

	t.Run("events with no listeners are discarded quietly", func(t *testing.T) {
		n := notify.NewNotifier(16)
		n.Emit(notify.Event{Channel: notify.Expired, Key: "k"})
		n.Close() // must not hang or panic
	})
}

func TestRegistration(t *testing.T) {
	t.Run("ids are distinct and removal is by id", func(t *testing.T) {
		n := notify.NewNotifier(16)
		keep, drop := &recorder{}, &recorder{}

		keepID := n.AddListener(notify.Evicted, keep.listen)
		dropID := n.AddListener(notify.Evicted, drop.listen)
		require.NotEqual(t, keepID, dropID)

		n.RemoveListener(notify.Evicted, dropID)
		n.Emit(notify.Event{Channel: notify.Evicted, Key: "k"})
		n.Close()

		require.Len(t, keep.all(), 1)
		require.Empty(t, drop.all())
	})

	t.Run("unknown channels are no-ops", func(t *testing.T) {
		n := notify.NewNotifier(16)
		defer n.Close()

		id := n.AddListener(notify.Channel("bogus"), func(notify.Event) error { return nil })
		require.Zero(t, id)

		n.RemoveListener(notify.Channel("bogus"), 42)
		n.Emit(notify.Event{Channel: notify.Channel("bogus")})
	})

	t.Run("nil listeners are rejected", func(t *testing.T) {
		n := notify.NewNotifier(16)
		defer n.Close()

		require.Zero(t, n.AddListener(notify.Evicted, nil))
	})
}

func TestErrorRedirection(t *testing.T) {
	t.Run("a failing listener produces an error event", func(t *testing.T) {
		n := notify.NewNotifier(16)
		errs := &recorder{}
		boom := errors.New("boom")

		n.AddListener(notify.Evicted, func(notify.Event) error { return boom })
		n.AddListener(notify.Error, errs.listen)

		n.Emit(notify.Event{Channel: notify.Evicted, Key: "k"})
		n.Close()

		got := errs.all()
		require.Len(t, got, 1)
		require.Equal(t, notify.Error, got[0].Channel)
		require.Equal(t, "k", got[0].Key)
		require.ErrorIs(t, got[0].Err, boom)
	})

	t.Run("a failing error listener is not redirected again", func(t *testing.T) {
		n := notify.NewNotifier(16)

		var calls int
		n.AddListener(notify.Error, func(notify.Event) error {
			calls++
			return errors.New("and again")
		})

		n.Emit(notify.Event{Channel: notify.Error, Err: errors.New("original")})
		n.Close()

		require.Equal(t, 1, calls)
	})
}

func TestClose(t *testing.T) {
	t.Run("drains queued events before returning", func(t *testing.T) {
		n := notify.NewNotifier(64)
		rec := &recorder{}
		n.AddListener(notify.Evicted, rec.listen)

		for i := 0; i < 10; i++ {
			n.Emit(notify.Event{Channel: notify.Evicted, Key: "k"})
		}
		n.Close()

		require.Len(t, rec.all(), 10)
	})

	t.Run("is idempotent and drops later emits", func(t *testing.T) {
		n := notify.NewNotifier(16)
		rec := &recorder{}
		n.AddListener(notify.Evicted, rec.listen)

		n.Close()
		n.Close()
		n.Emit(notify.Event{Channel: notify.Evicted, Key: "k"}) // must not panic

		require.Empty(t, rec.all())
	})
}
