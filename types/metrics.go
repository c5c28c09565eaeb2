package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache calls
these methods whenever something happens.

The cache always keeps its own counters for the Stats snapshot; a
Metrics implementation is an OPTIONAL extra observer for wiring these
events into whatever monitoring the application already has.
*/
type Metrics interface {

	// Hit is called when the cache successfully returns a value.
	Hit()

	// Miss is called when a lookup finds nothing usable
	// (key absent, or expired with stale reads disallowed).
	Miss()

	// Eviction is called whenever an entry is removed:
	// explicitly, by capacity pressure, or because it expired.
	Eviction()

	// Expire is called when a read discovers an expired entry
	// and removes it.
	Expire()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

We don't want to force every user of the cache to implement metrics.
If someone does not care, the cache still works without nil checks
everywhere, so we provide a default implementation that ignores all
metric events.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Expire()   {}

/*
Counters is the cache's own running tally of lifecycle events.
It backs the Stats snapshot.

There is no locking here on purpose: the cache core is single-threaded
by contract, so synchronization (if any) happens at whatever layer
serializes access to the cache itself.
*/
type Counters struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Expired   uint64
}

func (c *Counters) Hit()      { c.Hits++ }
func (c *Counters) Miss()     { c.Misses++ }
func (c *Counters) Eviction() { c.Evictions++ }
func (c *Counters) Expire()   { c.Expired++ }

// Snapshot materializes the counters into a Stats value.
// size is the cache's current aggregate size.
func (c *Counters) Snapshot(size int64) Stats {
	return Stats{
		Size:      size,
		Hits:      c.Hits,
		Misses:    c.Misses,
		Evictions: c.Evictions,
		Expired:   c.Expired,
		HitRatio:  float64(c.Hits) / float64(c.Hits+c.Misses),
	}
}

/*
Stats is a read-only snapshot of cache effectiveness.

HitRatio is Hits / (Hits + Misses). When both are zero the division
yields NaN; callers that care should check math.IsNaN. For example,
3 hits and 1 miss give a HitRatio of 0.75.
*/
type Stats struct {
	Size      int64
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Expired   uint64
	HitRatio  float64
}
