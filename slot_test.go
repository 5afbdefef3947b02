package hashtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlot_ZeroValueIsEmpty(t *testing.T) {
	var s Slot[string, int]
	require.True(t, s.isEmpty())
	require.False(t, s.isOccupied())
	require.False(t, s.isTombstone())
}

func TestSlot_OccupyThenTombstoneThenClear(t *testing.T) {
	var s Slot[string, int]

	s.occupy("foo", 42, 7)
	require.True(t, s.isOccupied())
	require.Equal(t, "foo", s.bucket.Key())
	require.Equal(t, 7, s.bucket.Value())

	s.markTombstone()
	require.True(t, s.isTombstone())
	require.False(t, s.isOccupied())

	s.clear()
	require.True(t, s.isEmpty())
}

func TestSlot_OccupyReusesTombstoneSlot(t *testing.T) {
	var s Slot[int, int]

	s.occupy(1, 100, 1)
	s.markTombstone()
	require.True(t, s.isTombstone())

	s.occupy(2, 200, 2)
	require.True(t, s.isOccupied())
	require.Equal(t, 2, s.bucket.Key())
	require.Equal(t, uint64(200), s.bucket.hash)
}
