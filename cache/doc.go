// Package cache provides a fixed-capacity, generic, in-memory key/value
// cache with least-recently-used eviction, opaque byte-sequence keys,
// lightweight metrics hooks, and an eviction callback.
//
// Design
//
//   - Storage: one map[string]*node for lookups (the index) and one
//     intrusive MRU↔LRU doubly linked list (internal/list) for ordering.
//     The index holds non-owning handles into the list; the list owns
//     the nodes. Every mutating operation updates both together, so the
//     index and the list never diverge and all operations are O(1) plus
//     key hashing.
//
//   - Keys: opaque byte sequences compared by exact byte equality. Keys
//     are copied into immutable strings at admission, so callers keep
//     ownership of the slices they pass in.
//
//   - Eviction: inserting a new key into a full cache removes exactly
//     the least recently used entry and returns its value. Updating an
//     existing key never evicts; it replaces the value in place and
//     promotes the entry. A cache holds at most Capacity entries at all
//     times; Capacity is fixed at construction and must be positive
//     (New returns ErrInvalidCapacity otherwise).
//
//   - Teardown: Purge releases all entries with an iterative tail-pop
//     loop, so teardown stack usage is constant even for huge caches.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     By default NoopMetrics is used; plug the Prometheus adapter from
//     metrics/prom to export them.
//
//   - Callbacks: Options.OnEvict(k, v, reason) fires for every capacity
//     eviction and for each entry released by Purge.
//
// Basic usage
//
//	c, err := cache.New[string](cache.Options[string]{Capacity: 2})
//	if err != nil {
//	    // invalid configuration
//	}
//	c.Insert([]byte("a"), "1")
//	c.Insert([]byte("b"), "2")
//	if v, ok := c.Get([]byte("a")); ok {
//	    _ = v // "1"; "a" is now the most recently used
//	}
//	old, evicted := c.Insert([]byte("c"), "3") // evicts "b" (LRU)
//	_ = old                                    // "2"
//	_ = evicted                                // true
//
// # Concurrency
//
// A Cache instance is single-threaded by contract: it has no internal
// synchronization and exactly one goroutine may use it at a time. Get
// mutates recency order, so it counts as a write. If shared access is
// needed, guard the whole cache behind one mutex; the index and the list
// must always be mutated together, so finer-grained locking is unsound
// without a different list design.
//
// Values returned by Get/Peek/All are copies of V. When V is a pointer,
// slice, or map type, the copy shares its referent with the cache; a
// later Insert on the same key does not rewrite data behind previously
// returned values, but mutating the referent is visible to both sides.
package cache
