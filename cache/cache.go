package cache

import (
	"errors"
	"iter"

	"github.com/IvanBrykalov/lru/internal/list"
)

// ErrInvalidCapacity is returned by New when Options.Capacity is zero or
// negative. A zero-capacity cache would have to evict every entry it just
// admitted, so the configuration is rejected outright instead.
var ErrInvalidCapacity = errors.New("cache: capacity must be positive")

// cache composes the recency list with the key index. The index maps an
// admitted key to the list node holding its entry; the two structures are
// only ever mutated together, so a key present in one is present in the
// other and list.Len() == len(index) <= cap after every operation.
type cache[V any] struct {
	index map[string]*list.Node[entry[V]]
	list  *list.List[entry[V]]
	cap   int

	opt Options[V]

	hits   uint64
	misses uint64
	evicts uint64
}

// New constructs a cache with the provided Options.
// It returns ErrInvalidCapacity if opt.Capacity <= 0; a nil opt.Metrics
// defaults to NoopMetrics.
func New[V any](opt Options[V]) (Cache[V], error) {
	if opt.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return &cache[V]{
		index: make(map[string]*list.Node[entry[V]], opt.Capacity),
		list:  list.New[entry[V]](),
		cap:   opt.Capacity,
		opt:   opt,
	}, nil
}

// Get returns the value for key and promotes the entry to MRU on hit.
func (c *cache[V]) Get(key []byte) (V, bool) {
	n, ok := c.index[string(key)]
	if !ok {
		c.misses++
		c.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	c.list.MoveToFront(n)
	c.hits++
	c.opt.Metrics.Hit()
	return n.Value().val, true
}

// Insert stores key→v and returns the displaced value, if any.
//
// Existing key: the entry is updated in place (the node and its handle
// keep their identity), promoted to MRU, and the previous value is
// returned. Length does not change and nothing is evicted.
//
// New key: if the cache is full, the LRU tail is evicted first and its
// value becomes the result; then the new entry is linked at MRU and
// recorded in the index.
func (c *cache[V]) Insert(key []byte, v V) (V, bool) {
	if n, ok := c.index[string(key)]; ok {
		e := n.Value()
		old := e.val
		e.val = v
		c.list.MoveToFront(n)
		return old, true
	}

	var displaced V
	var evicted bool
	if c.list.Len() == c.cap {
		displaced, evicted = c.evictTail()
	}
	n := c.list.PushFront(entry[V]{key: string(key), val: v})
	c.index[n.Value().key] = n
	c.opt.Metrics.Size(c.list.Len())
	return displaced, evicted
}

// Contains reports presence without touching recency or hit/miss counters.
func (c *cache[V]) Contains(key []byte) bool {
	_, ok := c.index[string(key)]
	return ok
}

// Peek reads the value without promoting the entry and without counting
// a hit or a miss.
func (c *cache[V]) Peek(key []byte) (V, bool) {
	n, ok := c.index[string(key)]
	if !ok {
		var zero V
		return zero, false
	}
	return n.Value().val, true
}

// Remove deletes key if present: index lookup, list unlink, index delete.
// Explicit removals are not counted as evictions and do not trigger
// OnEvict.
func (c *cache[V]) Remove(key []byte) (V, bool) {
	n, ok := c.index[string(key)]
	if !ok {
		var zero V
		return zero, false
	}
	e := c.list.Remove(n)
	delete(c.index, e.key)
	c.opt.Metrics.Size(c.list.Len())
	return e.val, true
}

// Len returns the number of resident entries.
func (c *cache[V]) Len() int { return c.list.Len() }

// Cap returns the fixed capacity.
func (c *cache[V]) Cap() int { return c.cap }

// All iterates resident entries from MRU to LRU. Keys are fresh copies;
// values are copied by assignment, so for reference-typed V the caller
// shares the referent with the cache.
func (c *cache[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		for e := range c.list.All() {
			if !yield([]byte(e.key), e.val) {
				return
			}
		}
	}
}

// Purge removes every entry and resets the index. Teardown pops the list
// tail in a loop so stack usage stays constant no matter how long the
// list is.
func (c *cache[V]) Purge() {
	if cb := c.opt.OnEvict; cb != nil {
		for {
			e, ok := c.list.RemoveTail()
			if !ok {
				break
			}
			c.opt.Metrics.Evict(EvictPurge)
			cb([]byte(e.key), e.val, EvictPurge)
		}
	} else {
		for n := c.list.Len(); n > 0; n-- {
			c.opt.Metrics.Evict(EvictPurge)
		}
		c.list.Clear()
	}
	clear(c.index)
	c.opt.Metrics.Size(0)
}

// Stats returns a snapshot of the lifetime counters.
func (c *cache[V]) Stats() Stats {
	return Stats{Hits: c.hits, Misses: c.misses, Evictions: c.evicts}
}

// evictTail removes the least recently used entry, keeping the index in
// lockstep with the list, and reports it through metrics and OnEvict.
func (c *cache[V]) evictTail() (V, bool) {
	e, ok := c.list.RemoveTail()
	if !ok {
		var zero V
		return zero, false
	}
	delete(c.index, e.key)
	c.evicts++
	c.opt.Metrics.Evict(EvictCapacity)
	if cb := c.opt.OnEvict; cb != nil {
		cb([]byte(e.key), e.val, EvictCapacity)
	}
	return e.val, true
}
