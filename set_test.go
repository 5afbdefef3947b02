package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStringSet(t *testing.T, opts ...Option[string, struct{}]) *Set[string] {
	t.Helper()
	s, err := NewSet[string](opts...)
	require.NoError(t, err)
	return s
}

func TestSet_Basic(t *testing.T) {
	ss := newStringSet(t)

	isNew, err := ss.Add("foo")
	require.NoError(t, err)
	assert.True(t, isNew)

	assert.True(t, ss.Has("foo"))

	isNew, err = ss.Add("foo")
	require.NoError(t, err)
	assert.False(t, isNew, "re-adding an existing key is not an error")

	assert.False(t, ss.Has("bar"))

	removed := ss.Remove("foo")
	assert.True(t, removed)
	assert.False(t, ss.Has("foo"))

	removed = ss.Remove("foo")
	assert.False(t, removed)
}

func TestSet_Stats(t *testing.T) {
	ss, err := NewSet[int]()
	require.NoError(t, err)

	stats := ss.Stats()
	assert.Equal(t, 0, stats.Size)
	assert.Equal(t, 8, stats.Capacity)

	for i := 0; i < 5; i++ {
		_, err := ss.Add(i)
		require.NoError(t, err)
	}

	stats = ss.Stats()
	assert.Equal(t, 5, stats.Size)
}

func TestSet_Reset(t *testing.T) {
	ss, err := NewSet[int]()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := ss.Add(i)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, ss.Len())

	ss.Reset()

	assert.Equal(t, 0, ss.Len())
	assert.False(t, ss.Has(0))
}

func TestSet_GrowsPastInitialCapacity(t *testing.T) {
	ss, err := NewSet[int](WithCapacity[int, struct{}](8))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		_, err := ss.Add(i)
		require.NoError(t, err)
	}

	for i := 0; i < 100; i++ {
		assert.True(t, ss.Has(i))
	}
	assert.Equal(t, 100, ss.Len())
	assert.Greater(t, ss.Cap(), 8)
}

func TestSet_WithHasher(t *testing.T) {
	customHash := func(k int) uint64 { return uint64(k * 31) }

	ss, err := NewSet[int](WithHasher[int, struct{}](customHash))
	require.NoError(t, err)

	_, err = ss.Add(1)
	require.NoError(t, err)
	assert.True(t, ss.Has(1))
}
