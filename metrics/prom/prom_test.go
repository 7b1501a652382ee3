package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/IvanBrykalov/lru/cache"
)

func TestAdapter_Signals(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg, "lru", "test", nil)

	c, err := cache.New[string](cache.Options[string]{Capacity: 1, Metrics: m})
	require.NoError(t, err)

	c.Insert([]byte("a"), "1")
	c.Get([]byte("a"))         // hit
	c.Get([]byte("b"))         // miss
	c.Insert([]byte("b"), "2") // evicts a
	c.Purge()                  // releases b

	require.Equal(t, 1.0, testutil.ToFloat64(m.hits))
	require.Equal(t, 1.0, testutil.ToFloat64(m.misses))
	require.Equal(t, 1.0, testutil.ToFloat64(m.evicts.WithLabelValues("capacity")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.evicts.WithLabelValues("purge")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.sizeEnt))
}

func TestAdapter_RegistersAllCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	New(reg, "lru", "reg", prometheus.Labels{"app": "test"})

	// hits, misses, size gather immediately; the eviction counter vec has
	// no children until a reason is observed, so it is not gathered yet.
	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 3)
}

func TestAdapter_ReasonLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "purge", reason(cache.EvictPurge))
	require.Equal(t, "capacity", reason(cache.EvictCapacity))
}
