package hashtable

import "errors"

const (
	defaultCapacity   = 8
	defaultLoadFactor = 0.7
)

// Option configures a Table at construction time, mirroring the teacher's
// own functional-options Option[K, V]. Unlike the teacher's version, a
// Table's Option can fail: an illegal strategy/discipline combination
// (LCFS with a non-monotone strategy) must be rejectable at construction,
// which the teacher's single-hasher-override option never needed to do.
type Option[K comparable, V any] func(*tableConfig[K, V]) error

type tableConfig[K comparable, V any] struct {
	capacity   uint64
	loadFactor float64
	hasher     HashFunc[K]
	strategy   Strategy[K]
	discipline Discipline
	sink       *StatSink
}

// WithCapacity sets the initial capacity. It is normalized up to the next
// power of two and floored at minCapacity (spec §3 invariant 1). Default 8.
func WithCapacity[K comparable, V any](n int) Option[K, V] {
	return func(c *tableConfig[K, V]) error {
		if n < 1 {
			return errors.New("hashtable: capacity must be >= 1")
		}
		c.capacity = uint64(n)
		return nil
	}
}

// WithLoadFactor sets the fraction of capacity that triggers a pre-insert
// resize. Must be in (0, 1]. Default 0.7.
func WithLoadFactor[K comparable, V any](f float64) Option[K, V] {
	return func(c *tableConfig[K, V]) error {
		if f <= 0 || f > 1 {
			return errors.New("hashtable: load factor must be in (0, 1]")
		}
		c.loadFactor = f
		return nil
	}
}

// WithHasher overrides the default maphash-backed hasher.
func WithHasher[K comparable, V any](h HashFunc[K]) Option[K, V] {
	return func(c *tableConfig[K, V]) error {
		c.hasher = h
		return nil
	}
}

// WithStrategy selects the collision strategy and insertion discipline.
// Default: LinearStrategy{Step: 1} with FCFS. Returns
// ErrUnsupportedDiscipline if discipline is LCFS and strategy does not
// permit it.
func WithStrategy[K comparable, V any](s Strategy[K], discipline Discipline) Option[K, V] {
	return func(c *tableConfig[K, V]) error {
		if discipline == LCFS && !s.AllowsLCFS() {
			return ErrUnsupportedDiscipline
		}
		c.strategy = s
		c.discipline = discipline
		return nil
	}
}

// WithStatSink attaches a StatSink that records the PSL of every
// subsequent operation. Disabled (nil) by default.
func WithStatSink[K comparable, V any](sink *StatSink) Option[K, V] {
	return func(c *tableConfig[K, V]) error {
		c.sink = sink
		return nil
	}
}

// Table is the public hash map contract of spec §4.5: a single contiguous
// open-addressed bucket array composed with a pluggable Strategy through
// the probe/shift engines. Not safe for concurrent use (spec §5).
type Table[K comparable, V any] struct {
	raw          *RawTable[K, V]
	hasher       HashFunc[K]
	strategy     Strategy[K]
	discipline   Discipline
	loadFactor   float64
	sink         *StatSink
	shiftScratch []uint64
}

// New constructs a Table. Defaults: capacity 8, load factor 0.7, a
// maphash-backed default hasher, LinearStrategy{Step: 1} with FCFS, no
// stat sink. The only error path is an illegal option (bad capacity/load
// factor, or LCFS paired with a non-monotone strategy).
func New[K comparable, V any](opts ...Option[K, V]) (*Table[K, V], error) {
	cfg := tableConfig[K, V]{
		capacity:   defaultCapacity,
		loadFactor: defaultLoadFactor,
	}

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.hasher == nil {
		cfg.hasher = defaultHashFunc[K]()
	}
	if cfg.strategy == nil {
		cfg.strategy = LinearStrategy[K]{Step: 1}
		cfg.discipline = FCFS
	}

	return &Table[K, V]{
		raw:        allocateRawTable[K, V](nextPowerOf2(cfg.capacity)),
		hasher:     cfg.hasher,
		strategy:   cfg.strategy,
		discipline: cfg.discipline,
		loadFactor: cfg.loadFactor,
		sink:       cfg.sink,
	}, nil
}

// Len reports the number of live entries.
func (t *Table[K, V]) Len() int { return t.raw.count }

// Cap reports the current bucket-array capacity (always a power of two).
func (t *Table[K, V]) Cap() int { return int(t.raw.capacity()) }

func (t *Table[K, V]) threshold() int {
	return int(float64(t.raw.capacity()) * t.loadFactor)
}

// Insert writes key/value. If key is already present, it returns
// *DuplicateKeyError[V] carrying value unchanged and performs no mutation.
// A pre-insert resize is triggered when count has reached the load-factor
// threshold; a Full decision from the strategy triggers one further
// resize-and-retry. Failing to place the key after that retry is an
// invariant violation and panics (spec §4.5/§7).
func (t *Table[K, V]) Insert(key K, value V) error {
	if t.raw.count >= t.threshold() {
		t.grow()
	}

	hash := t.hasher(key)

	for attempt := 0; ; attempt++ {
		dupErr, full := t.insertOnce(key, hash, value)
		if dupErr != nil {
			return dupErr
		}
		if !full {
			return nil
		}
		if attempt > 0 {
			invariantViolation("table full after resize")
		}
		t.grow()
	}
}

func (t *Table[K, V]) insertOnce(key K, hash uint64, value V) (dupErr error, full bool) {
	var psl int
	base := t.strategy.NewOffsetFunc(key, hash)
	offset := func() uint64 {
		psl++
		return base()
	}

	switch t.discipline {
	case FCFS:
		outcome := probeWalk(t.raw, key, hash, offset, true)
		if t.sink != nil {
			t.sink.Record(OpInsert, psl)
		}

		switch outcome.result {
		case probeHit:
			return &DuplicateKeyError[V]{Value: value}, false
		case probeVacancy:
			slot := t.raw.slot(outcome.index)
			wasTombstone := slot.isTombstone()
			slot.occupy(key, hash, value)
			t.raw.count++
			if wasTombstone {
				t.raw.tombstones--
			}
			return nil, false
		default: // probeFull
			return nil, true
		}

	default: // LCFS
		result := shiftInsert(t.raw, key, hash, value, offset, &t.shiftScratch)
		if t.sink != nil {
			t.sink.Record(OpInsert, psl)
		}

		switch result {
		case shiftInserted:
			return nil, false
		case shiftAlreadyExists:
			return &DuplicateKeyError[V]{Value: value}, false
		default: // shiftFull
			return nil, true
		}
	}
}

// Lookup returns the value stored for key, or false if absent (no live
// entry, or only a tombstone chain exists).
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	hash := t.hasher(key)

	var psl int
	base := t.strategy.NewOffsetFunc(key, hash)
	offset := func() uint64 {
		psl++
		return base()
	}

	outcome := probeWalk(t.raw, key, hash, offset, false)
	if t.sink != nil {
		t.sink.Record(OpLookup, psl)
	}

	if outcome.result != probeHit {
		var zero V
		return zero, false
	}

	return t.raw.slot(outcome.index).bucket.Value(), true
}

// Remove extracts key's value, replacing the slot with a tombstone. It
// returns ErrKeyNotFound if key has no live entry. Remove never shrinks
// the table (spec §1 Non-goals).
func (t *Table[K, V]) Remove(key K) (V, error) {
	hash := t.hasher(key)

	var psl int
	base := t.strategy.NewOffsetFunc(key, hash)
	offset := func() uint64 {
		psl++
		return base()
	}

	outcome := probeWalk(t.raw, key, hash, offset, false)
	if t.sink != nil {
		t.sink.Record(OpRemove, psl)
	}

	if outcome.result != probeHit {
		var zero V
		return zero, ErrKeyNotFound
	}

	slot := t.raw.slot(outcome.index)
	value := slot.bucket.Value()
	slot.markTombstone()
	t.raw.count--
	t.raw.tombstones++

	return value, nil
}

// Reset drops every entry back to Empty without shrinking capacity.
// Supplemental operation, not named in spec's core contract (§10).
func (t *Table[K, V]) Reset() {
	t.raw.reset()
}

// Stats returns a point-in-time occupancy summary.
func (t *Table[K, V]) Stats() TableStats {
	capacity := t.raw.capacity()

	var tombstonesCapacityRatio, tombstonesSizeRatio float64
	if capacity > 0 {
		tombstonesCapacityRatio = float64(t.raw.tombstones) / float64(capacity)
	}
	if t.raw.count > 0 {
		tombstonesSizeRatio = float64(t.raw.tombstones) / float64(t.raw.count)
	}

	return TableStats{
		Size:                    t.raw.count,
		Capacity:                int(capacity),
		Tombstones:              t.raw.tombstones,
		TombstonesCapacityRatio: tombstonesCapacityRatio,
		TombstonesSizeRatio:     tombstonesSizeRatio,
	}
}

// StatSink returns the attached StatSink, or nil if none was configured.
func (t *Table[K, V]) StatSink() *StatSink { return t.sink }

// grow doubles the bucket array and re-inserts every live entry through
// the current strategy against the new mask. Tombstones are dropped: this
// is resize's bulk deletion-amortization mechanism (spec §9).
func (t *Table[K, V]) grow() {
	newRaw := allocateRawTable[K, V](t.raw.capacity() * 2)

	for i := range t.raw.slots {
		s := &t.raw.slots[i]
		if !s.isOccupied() {
			continue
		}
		t.reinsertInto(newRaw, s.bucket.key, s.bucket.hash, s.bucket.Value())
	}

	t.raw = newRaw
}

// reinsertInto writes a known-unique, known-live bucket into a fresh
// table during resize. It can never observe AlreadyExists (the key was
// already unique in the old table) or Full (the new table has double the
// old effective capacity) — either would be an invariant violation.
func (t *Table[K, V]) reinsertInto(raw *RawTable[K, V], key K, hash uint64, value V) {
	offset := t.strategy.NewOffsetFunc(key, hash)

	switch t.discipline {
	case FCFS:
		outcome := probeWalk(raw, key, hash, offset, true)
		if outcome.result != probeVacancy {
			invariantViolation("resize could not place a rehashed key")
		}
		raw.slot(outcome.index).occupy(key, hash, value)
		raw.count++

	default: // LCFS
		result := shiftInsert(raw, key, hash, value, offset, &t.shiftScratch)
		if result != shiftInserted {
			invariantViolation("resize could not place a rehashed key")
		}
	}
}
