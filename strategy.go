package hashtable

// Discipline selects the insertion backend composed with a Strategy:
// first-come-first-served (write at the first free slot found while
// probing) or last-come-first-served (Robin-Hood-like forward shift, so a
// new entry always lands at its own home slot). See spec §4.3/§9.1.
type Discipline int

const (
	// FCFS writes the new entry at the first free slot (Empty or
	// tombstone) discovered along the probe sequence.
	FCFS Discipline = iota
	// LCFS shifts existing occupants forward so the new entry lands at
	// hash&mask. Only permitted with strategies whose AllowsLCFS reports
	// true (spec §9 open question 1).
	LCFS
)

// Strategy supplies the offset sequence ProbeWalk/ShiftWalk step along,
// and — for strategies that need one — a secondary hash. NewOffsetFunc
// must return a closure that is pure in (key, hash): the same pair must
// always reproduce the same sequence of steps across lookup, insert, and
// remove, or the probe-continuity invariant breaks.
type Strategy[K comparable] interface {
	// Name identifies the strategy for diagnostics/stat labeling.
	Name() string
	// AllowsLCFS reports whether this strategy's offset sequence is
	// monotone enough for LCFS shifting to remain consistent (spec §4.4:
	// "LCFS is restricted to Linear").
	AllowsLCFS() bool
	// NewOffsetFunc returns a fresh offset-producing closure for one
	// operation against key/hash.
	NewOffsetFunc(key K, hash uint64) OffsetFunc
}

// LinearStrategy steps by k*Step (k = 1, 2, ...). Step defaults to 1 when
// zero. It is the only strategy monotone enough to permit LCFS.
type LinearStrategy[K comparable] struct {
	Step uint64
}

func (LinearStrategy[K]) Name() string { return "linear" }

func (LinearStrategy[K]) AllowsLCFS() bool { return true }

func (s LinearStrategy[K]) NewOffsetFunc(_ K, _ uint64) OffsetFunc {
	step := s.Step
	if step == 0 {
		step = 1
	}
	var k uint64
	return func() uint64 {
		k++
		return k * step
	}
}

// QuadraticStrategy steps by k^2 (k = 1, 2, ...). The distance between
// consecutive probes grows with k, so LCFS is not permitted (spec §9 open
// question 1): a shift moves an occupant from the new key's k-th probe to
// its (k+1)-th, which is off the occupant's own sequence when the occupant
// has a different home slot.
type QuadraticStrategy[K comparable] struct{}

func (QuadraticStrategy[K]) Name() string { return "quadratic" }

func (QuadraticStrategy[K]) AllowsLCFS() bool { return false }

func (QuadraticStrategy[K]) NewOffsetFunc(_ K, _ uint64) OffsetFunc {
	var k uint64
	return func() uint64 {
		k++
		return k * k
	}
}

// DoubleHashStrategy steps by k*h2(key), where h2 is the Secondary hash
// forced odd so every step sequence covers the full power-of-two table
// (spec §9 open question 4 — the Rust original does not force this, and
// can starve odd-indexed slots for even-keyed secondary hashes). LCFS is
// not permitted: the step size varies per key, so shifted occupants would
// not walk a shared sequence.
type DoubleHashStrategy[K comparable] struct {
	Secondary HashFunc[K]
}

func (DoubleHashStrategy[K]) Name() string { return "double-hash" }

func (DoubleHashStrategy[K]) AllowsLCFS() bool { return false }

func (s DoubleHashStrategy[K]) NewOffsetFunc(key K, _ uint64) OffsetFunc {
	step := s.Secondary(key) | 1
	var k uint64
	return func() uint64 {
		k++
		return k * step
	}
}
