// This package implements the cache's lifecycle notifications.
// The cache fires an event and moves on; listeners run on a background
// worker so they can never slow down the operation that triggered them.

package notify

import (
	"sync"

	"github.com/krisalay/lru-cache/types"
)

// Channel names the three fixed notification channels.
type Channel string

const (
	// Expired fires when a read discovers an expired entry and removes
	// it. The event carries the whole removed entry.
	Expired Channel = "expired"

	// Evicted fires whenever any deletion occurs: explicit delete,
	// expiration discovered on read, or capacity pressure. The event
	// carries the removed value.
	Evicted Channel = "evicted"

	// Error fires when a listener on another channel fails. The event
	// carries the listener's error. A failure raised by an Error
	// listener itself is dropped, never redirected again.
	Error Channel = "error"
)

// valid reports whether ch is one of the fixed channels.
// Unknown channel names are no-ops throughout, not errors.
func (ch Channel) valid() bool {
	switch ch {
	case Expired, Evicted, Error:
		return true
	}
	return false
}

// Event is one notification.
// Key and Value are set for Evicted, Entry for Expired, Err for Error.
type Event struct {
	Channel Channel
	Key     string
	Value   any
	Entry   *types.CacheEntry
	Err     error
}

// Listener receives events on one channel. A non-nil return is treated
// as the listener failing; the failure is redirected to the Error
// channel (unless the listener was itself registered on Error).
type Listener func(Event) error

/*
Notifier manages listener registration and asynchronous dispatch.

Events are queued on a buffered channel and delivered by one background
worker. Queueing never blocks: when the buffer is full the event is
dropped, because stalling a cache operation to deliver a notification
would defeat the point of fire-and-forget.

Go functions are not comparable, so "removal by callback identity"
works through the registration id AddListener hands out.
*/
type Notifier struct {

	// mu guards the listener registry and the closed flag. The cache
	// core is single-threaded, but listeners may be registered while
	// the worker is dispatching, so the notifier protects itself.
	mu        sync.Mutex
	listeners map[Channel]map[uint64]Listener
	nextID    uint64
	closed    bool

	// ch holds pending events. Buffering absorbs bursts of evictions
	// without blocking the write path.
	ch chan Event

	// wg waits for the worker to drain during shutdown.
	wg sync.WaitGroup
}

// NewNotifier creates a notifier with the given event buffer and starts
// its dispatch worker.
func NewNotifier(buffer int) *Notifier {
	n := &Notifier{
		listeners: make(map[Channel]map[uint64]Listener),
		ch:        make(chan Event, buffer),
	}

	n.wg.Add(1)
	go n.worker()

	return n
}

// AddListener registers fn on a channel and returns its registration
// id. Registering on an unknown channel does nothing and returns 0.
func (n *Notifier) AddListener(ch Channel, fn Listener) uint64 {
	if !ch.valid() || fn == nil {
		return 0
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	if n.listeners[ch] == nil {
		n.listeners[ch] = make(map[uint64]Listener)
	}
	n.listeners[ch][n.nextID] = fn
	return n.nextID
}

// RemoveListener unregisters a listener by channel and registration id.
// Unknown channels and ids are no-ops.
func (n *Notifier) RemoveListener(ch Channel, id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.listeners[ch], id)
}

// Emit queues an event for delivery. It never blocks: a full buffer or
// a closed notifier drops the event.
func (n *Notifier) Emit(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}

	select {
	case n.ch <- ev:
		// queued successfully
	default:
		// drop under pressure rather than stall the cache
	}
}

// worker runs in the background and delivers queued events.
func (n *Notifier) worker() {
	defer n.wg.Done()

	for ev := range n.ch {
		n.dispatch(ev)
	}
}

// dispatch delivers one event to every listener currently registered on
// its channel. Listener failures on non-Error channels are delivered to
// the Error listeners right away, on this same worker, so a redirected
// failure cannot be lost to a full queue or a closing notifier.
// Failures of Error listeners are dropped to avoid recursion.
func (n *Notifier) dispatch(ev Event) {
	n.mu.Lock()
	fns := make([]Listener, 0, len(n.listeners[ev.Channel]))
	for _, fn := range n.listeners[ev.Channel] {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		if err := fn(ev); err != nil && ev.Channel != Error {
			n.dispatch(Event{Channel: Error, Key: ev.Key, Err: err})
		}
	}
}

/*
Close shuts the notifier down gracefully:

1. Stop accepting new events
2. Wait for the worker to finish delivering what is already queued

Listener failures hit during the drain still reach the Error listeners,
because redirection happens inline on the worker.
*/
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.ch)
	n.mu.Unlock()

	n.wg.Wait()
}
