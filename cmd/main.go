package main

import (
	"fmt"
	"time"

	cache "github.com/krisalay/lru-cache"
	"github.com/krisalay/lru-cache/notify"
	"github.com/krisalay/lru-cache/types"
)

func main() {
	fmt.Println("\n==================== SYSTEM BOOT ====================")

	// ---------------- System Config ----------------
	fmt.Println("EVICTION POLICY : LRU")
	fmt.Println("CAPACITY        : 3 keys")
	fmt.Println("MAX AGE         : 1s")
	fmt.Println("STALE READS     : disabled (per-call override shown below)")

	c := cache.New(
		cache.WithCapacity(3),
		cache.WithMaxAge(1*time.Second),
		cache.WithNotFoundValue("<not found>"),
	)
	defer c.Close()

	// ---------------- Listeners ----------------
	c.AddListener(notify.Evicted, func(ev notify.Event) error {
		fmt.Printf("EVENT  → evicted: %s = %v\n", ev.Key, ev.Value)
		return nil
	})
	c.AddListener(notify.Expired, func(ev notify.Event) error {
		fmt.Printf("EVENT  → expired: %s (modified %s ago)\n",
			ev.Key, time.Since(ev.Entry.ModifiedAt).Round(time.Millisecond))
		return nil
	})
	c.AddListener(notify.Error, func(ev notify.Event) error {
		fmt.Printf("EVENT  → listener error on %s: %v\n", ev.Key, ev.Err)
		return nil
	})

	// ====================================================
	fmt.Println("\n==================== 1) SET + GET ====================")
	c.Set("a", "alpha").Set("b", "beta").Set("c", "gamma")
	fmt.Println("CACHE  → GET b =", c.Get("b"))
	fmt.Println("CACHE  → GET missing =", c.Get("missing"))

	// ====================================================
	fmt.Println("\n==================== 2) PEEK vs GET ====================")

	// Peek does not promote: "a" stays least-recently-used, so the
	// next insert beyond capacity evicts it.
	fmt.Println("CACHE  → PEEK a =", c.Peek("a"))
	c.Set("d", "delta")
	fmt.Println("CACHE  → keys (MRU→LRU) =", c.Keys())

	// ====================================================
	fmt.Println("\n==================== 3) EXPIRATION ====================")
	c.Set("x", "temp-value")
	time.Sleep(1500 * time.Millisecond)

	fmt.Println("CACHE  → GET x (stale allowed) =", c.Get("x", types.AllowStale(true)))
	fmt.Println("CACHE  → GET x (stale refused) =", c.Get("x"))
	fmt.Println("CACHE  → GET x again          =", c.Get("x"))

	// ====================================================
	fmt.Println("\n==================== 4) SCANS ====================")
	c.Clear()
	c.Set("u1", 10).Set("u2", 20).Set("u3", 30)

	found := c.Find(func(value any, key string) bool {
		n, ok := value.(int)
		return ok && n > 15
	})
	fmt.Println("CACHE  → FIND >15 =", found)

	any20 := c.Some(func(value any, key string) bool { return value == 20 })
	fmt.Println("CACHE  → SOME ==20 =", any20)

	c.ForEach(func(value any, key string) {
		fmt.Printf("CACHE  → FOREACH %s = %v\n", key, value)
	})

	// ====================================================
	fmt.Println("\n==================== STATS ====================")
	stats := c.Stats()
	fmt.Printf("SIZE      : %d\n", stats.Size)
	fmt.Printf("HITS      : %d\n", stats.Hits)
	fmt.Printf("MISSES    : %d\n", stats.Misses)
	fmt.Printf("EVICTIONS : %d\n", stats.Evictions)
	fmt.Printf("EXPIRED   : %d\n", stats.Expired)
	fmt.Printf("HIT RATIO : %.2f\n", stats.HitRatio)

	// ====================================================
	fmt.Println("\n==================== SHUTDOWN ====================")
	c.Close()
	fmt.Println("SYSTEM → cache closed cleanly")
}
