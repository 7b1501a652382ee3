package cache

import (
	"math/rand"
	"strconv"
	"testing"
)

// benchmarkMix exercises a read/write mix against a warm cache.
// String keys include strconv/concat costs and often allocate, which is
// fine for an end-to-end benchmark.
func benchmarkMix(b *testing.B, readsPct int) {
	c, err := New[string](Options[string]{Capacity: 100_000})
	if err != nil {
		b.Fatal(err)
	}

	// Preload half the capacity to get a realistic hit-rate.
	for i := 0; i < 50_000; i++ {
		c.Insert([]byte("k:"+strconv.Itoa(i)), "v")
	}

	// Report per-op allocations for a rough idea where costs go.
	b.ReportAllocs()
	b.ResetTimer()

	r := rand.New(rand.NewSource(1))
	keyMask := (1 << 16) - 1 // hot keyspace (power of two for fast &-mask)

	for i := 0; i < b.N; i++ {
		k := []byte("k:" + strconv.Itoa(i&keyMask))
		if r.Intn(100) < readsPct {
			c.Get(k)
		} else {
			c.Insert(k, "v")
		}
	}
}

func BenchmarkCache_90r10w(b *testing.B) { benchmarkMix(b, 90) }
func BenchmarkCache_50r50w(b *testing.B) { benchmarkMix(b, 50) }

// BenchmarkCache_GetHit isolates the hit path: one map lookup plus a
// constant number of pointer fixes.
func BenchmarkCache_GetHit(b *testing.B) {
	c, err := New[int](Options[int]{Capacity: 1024})
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1024; i++ {
		c.Insert([]byte("k:"+strconv.Itoa(i)), i)
	}
	key := []byte("k:512")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(key)
	}
}

// BenchmarkCache_InsertEvict measures steady-state insertion where every
// new key evicts the tail.
func BenchmarkCache_InsertEvict(b *testing.B) {
	c, err := New[int](Options[int]{Capacity: 1024})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Insert([]byte("k:"+strconv.Itoa(i)), i)
	}
}
