package hashtable

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned by Remove when the key has no live entry.
	ErrKeyNotFound = errors.New("hashtable: key not found")

	// ErrUnsupportedDiscipline is returned by New/WithStrategy when LCFS is
	// paired with a non-monotone strategy (quadratic or double hashing).
	// An LCFS shift moves each displaced occupant from one probe position of
	// the new key to the next; that position is also the occupant's own next
	// probe only when the distance between consecutive probes is the same
	// for every key and every step, i.e. linear probing.
	ErrUnsupportedDiscipline = errors.New("hashtable: LCFS discipline requires a monotone (linear) probe strategy")

	// errTableFull is internal and is not returned by any function in this
	// package: the probe/shift engines report an exhausted probe sequence as
	// probeFull/shiftFull, and Table.Insert resizes and retries on that.
	errTableFull = errors.New("hashtable: probe sequence exhausted without a free slot")
)

// DuplicateKeyError is returned by Table.Insert when key already maps to a
// value. It carries the rejected value back to the caller unchanged
// (spec's "richer" duplicate-key contract — see SPEC_FULL.md §9.3), rather
// than discarding it, so callers can recover it with errors.As without
// having kept their own copy around.
type DuplicateKeyError[V any] struct {
	Value V
}

func (e *DuplicateKeyError[V]) Error() string {
	return "hashtable: key already exists"
}

func invariantViolation(format string, args ...any) {
	panic(fmt.Sprintf("hashtable: invariant violation: "+format, args...))
}
