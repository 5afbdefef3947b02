package hashtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func linearOffset() OffsetFunc {
	var k uint64
	return func() uint64 {
		k++
		return k
	}
}

func TestProbeWalk_VacancyOnEmptyTable(t *testing.T) {
	rt := allocateRawTable[int, int](8)

	outcome := probeWalk(rt, 5, 5, linearOffset(), true)
	require.Equal(t, probeVacancy, outcome.result)
	require.Equal(t, uint64(5), outcome.index)
}

func TestProbeWalk_HitOnMatchingOccupiedSlot(t *testing.T) {
	rt := allocateRawTable[int, int](8)
	rt.slot(3).occupy(3, 3, 30)

	outcome := probeWalk(rt, 3, 3, linearOffset(), false)
	require.Equal(t, probeHit, outcome.result)
	require.Equal(t, uint64(3), outcome.index)
}

func TestProbeWalk_SkipsOverOccupiedSlotsOfOtherKeys(t *testing.T) {
	rt := allocateRawTable[int, int](8)
	// Force a collision: two keys sharing home index 0 under a hash that
	// maps onto the same slot.
	rt.slot(0).occupy(100, 0, 1)

	outcome := probeWalk(rt, 200, 0, linearOffset(), true)
	require.Equal(t, probeVacancy, outcome.result)
	require.Equal(t, uint64(1), outcome.index)
}

func TestProbeWalk_SkipTombstonesTrueReturnsFirstTombstone(t *testing.T) {
	rt := allocateRawTable[int, int](8)
	rt.slot(0).occupy(100, 0, 1)
	rt.slot(1).markTombstone()
	rt.slot(2).occupy(300, 0, 3)

	outcome := probeWalk(rt, 400, 0, linearOffset(), true)
	require.Equal(t, probeVacancy, outcome.result)
	require.Equal(t, uint64(1), outcome.index, "insert should reuse the earliest tombstone")
}

func TestProbeWalk_SkipTombstonesFalsePassesThrough(t *testing.T) {
	rt := allocateRawTable[int, int](8)
	rt.slot(0).occupy(100, 0, 1)
	rt.slot(1).markTombstone()
	rt.slot(2).occupy(300, 0, 3)

	// Looking up a key not present: skipTombstones=false should walk past
	// the tombstone and terminate at the first real Empty slot (index 3).
	outcome := probeWalk(rt, 400, 0, linearOffset(), false)
	require.Equal(t, probeVacancy, outcome.result)
	require.Equal(t, uint64(3), outcome.index)
}

func TestProbeWalk_FullWhenHomeCollisionReached(t *testing.T) {
	rt := allocateRawTable[int, int](4)
	for i := uint64(0); i < 4; i++ {
		rt.slot(i).occupy(int(i), i, int(i))
	}

	outcome := probeWalk(rt, 999, 0, linearOffset(), true)
	require.Equal(t, probeFull, outcome.result)
}
