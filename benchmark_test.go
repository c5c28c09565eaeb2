package cache_test

import (
	"fmt"
	"testing"
	"time"

	cache "github.com/krisalay/lru-cache"
)

// The cache is a single-threaded data structure, so all benchmarks run
// on one goroutine; concurrent throughput is a property of whatever
// serialization layer a consumer puts in front of it.

func newBenchmarkCache() *cache.LRUCache {
	return cache.New(
		cache.WithCapacity(100_000),
		cache.WithMaxAge(10*time.Second),
	)
}

//
// ================= READ BENCH =================
//

func BenchmarkGetHit(b *testing.B) {
	c := newBenchmarkCache()
	defer c.Close()

	c.Set("key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}

func BenchmarkGetMiss(b *testing.B) {
	c := newBenchmarkCache()
	defer c.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(fmt.Sprintf("miss-%d", i))
	}
}

func BenchmarkPeek(b *testing.B) {
	c := newBenchmarkCache()
	defer c.Close()

	c.Set("key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Peek("key")
	}
}

//
// ================= WRITE BENCH =================
//

func BenchmarkSet(b *testing.B) {
	c := newBenchmarkCache()
	defer c.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}
}

func BenchmarkSetWithEviction(b *testing.B) {
	c := cache.New(cache.WithCapacity(1024))
	defer c.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}
}

//
// ================= MIXED WORKLOAD =================
//

func BenchmarkMixedWorkload(b *testing.B) {
	c := newBenchmarkCache()
	defer c.Close()

	keys := make([]string, 10_000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		c.Set(keys[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := keys[i%len(keys)]
		if i%10 == 0 {
			c.Set(key, i)
		} else {
			c.Get(key)
		}
	}
}
