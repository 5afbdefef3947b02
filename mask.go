package hashtable

import (
	"math/bits"
	"unsafe"
)

// minCapacity is the configured minimum capacity of spec §3 invariant 1:
// capacity is always a power of two no smaller than this floor, regardless
// of what WithCapacity requests.
const minCapacity = 8

// nextPowerOf2 returns the smallest power of two >= v, floored at
// minCapacity. Adapted from the teacher's own NextPowerOf2 (same
// bits.Len-based trick), with the floor folded in since every capacity this
// package ever allocates must already respect invariant 1.
func nextPowerOf2(v uint64) uint64 {
	if v <= minCapacity {
		return minCapacity
	}
	return uint64(1) << bits.Len64(v-1)
}

// CapacityFromSize estimates how many slots of a Table[K, V] fit in size
// bytes of backing array, rounded down to a whole slot count and then up to
// the next power of two. Mirrors the teacher's own CapacityFromSize,
// adapted from Swiss-table group granularity to this package's single-slot
// granularity (spec §10: supplemented from original_source/'s sizing
// helpers, useful for callers who want to pre-size a Table from a memory
// budget).
func CapacityFromSize[K comparable, V any](size uintptr) int {
	var s Slot[K, V]
	sizeOfSlot := unsafe.Sizeof(s)
	if sizeOfSlot == 0 {
		return 0
	}

	n := uint64(size / sizeOfSlot)
	if n == 0 {
		return 0
	}

	return int(nextPowerOf2(n))
}
