package cache

// EvictReason explains why an entry left the cache.
type EvictReason int

const (
	// EvictCapacity — the entry was the least recently used when a new
	// key was inserted into a full cache.
	EvictCapacity EvictReason = iota
	// EvictPurge — the entry was released during Purge.
	EvictPurge
)

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
//
// All hooks are invoked synchronously from inside the cache operation
// that triggered them.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int)
}

// Options configures the cache. Capacity is mandatory; everything else
// has safe zero values (nil Metrics => NoopMetrics).
type Options[V any] struct {
	// Capacity is the maximum number of resident entries. It is fixed at
	// construction; New returns ErrInvalidCapacity for values <= 0.
	Capacity int

	// OnEvict, if set, is called for every entry removed by capacity
	// eviction or Purge, after the entry has left both the index and the
	// list. The key slice passed to the callback is a fresh copy.
	// Callbacks run inside the mutating operation; keep them lightweight
	// and do not call back into the same cache from them.
	OnEvict func(key []byte, v V, reason EvictReason)

	// Metrics receives Hit/Miss/Evict/Size signals. Nil => NoopMetrics.
	Metrics Metrics
}
