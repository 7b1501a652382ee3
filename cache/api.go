package cache

import "iter"

// Cache is a fixed-capacity in-memory key/value cache with LRU eviction.
// Keys are opaque byte sequences compared by exact byte equality.
//
// A Cache is NOT safe for concurrent use: exactly one goroutine may
// access an instance at a time. Note that Get refreshes recency order
// and therefore counts as a mutation for any external locking scheme.
//
// Typical complexity for operations is O(1): a map lookup plus a
// constant number of list link adjustments (key hashing and comparison
// are O(len(key))).
type Cache[V any] interface {
	// Get returns the value for key and a presence flag. On hit the
	// entry becomes the most recently used.
	Get(key []byte) (V, bool)

	// Insert stores key→v and returns the displaced value, if any:
	// the previous value when key was already present (the entry is
	// updated in place and promoted; nothing is evicted), or the least
	// recently used value evicted to make room for a new key in a full
	// cache. The flag reports whether a value was displaced.
	Insert(key []byte, v V) (V, bool)

	// Contains reports whether key is present without refreshing its
	// recency.
	Contains(key []byte) bool

	// Peek returns the value for key without refreshing its recency.
	Peek(key []byte) (V, bool)

	// Remove deletes key if present and returns its value.
	Remove(key []byte) (V, bool)

	// Len returns the number of resident entries.
	Len() int

	// Cap returns the capacity the cache was constructed with.
	Cap() int

	// All returns a diagnostic iterator over resident entries from most
	// to least recently used. Each range starts a fresh pass. The cache
	// must not be mutated during a pass.
	All() iter.Seq2[[]byte, V]

	// Purge removes every entry, invoking OnEvict with EvictPurge for
	// each when configured. The cache stays usable afterwards.
	Purge()

	// Stats returns a snapshot of lifetime hit/miss/eviction counters.
	Stats() Stats
}

// Stats is a snapshot of the cache's lifetime counters. Evictions counts
// capacity evictions only; explicit Remove calls and Purge are reported
// through Metrics/OnEvict but not counted here.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}
