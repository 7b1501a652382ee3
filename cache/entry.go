package cache

// entry is the record stored in the recency list: the admitted key and
// its current value. The key is copied into an immutable string when the
// entry is created, so callers may reuse or mutate their byte slice after
// Insert returns; string(key) is also what the index maps on, keeping the
// comparison exact byte equality with no normalization.
type entry[V any] struct {
	key string
	val V
}
