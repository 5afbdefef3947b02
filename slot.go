package hashtable

// slotTag identifies which of the three states a Slot currently holds.
// slotEmpty is the zero value so a freshly make'd []Slot needs no
// initialization loop.
type slotTag uint8

const (
	slotEmpty slotTag = iota
	slotOccupied
	slotTombstone
)

// Bucket is the payload of an Occupied slot: the key, its precomputed
// hash, and the value kept behind a pointer indirection. The indirection
// keeps every Slot's footprint constant regardless of V and makes
// ShiftWalk's forward shift a plain struct copy rather than a deep copy of
// V (see SPEC_FULL.md §3).
type Bucket[K comparable, V any] struct {
	key   K
	hash  uint64
	value *V
}

// Key returns the bucket's key.
func (b Bucket[K, V]) Key() K { return b.key }

// Value returns the bucket's value.
func (b Bucket[K, V]) Value() V { return *b.value }

// Slot is one cell of a RawTable's backing array: a tagged variant of
// {Empty, Occupied(Bucket), Tombstone}. Empty and Tombstone carry no
// payload; the tag alone is authoritative, the zeroed Bucket alongside it
// is never read while tag != slotOccupied.
type Slot[K comparable, V any] struct {
	tag    slotTag
	bucket Bucket[K, V]
}

func (s *Slot[K, V]) isEmpty() bool     { return s.tag == slotEmpty }
func (s *Slot[K, V]) isTombstone() bool { return s.tag == slotTombstone }
func (s *Slot[K, V]) isOccupied() bool  { return s.tag == slotOccupied }

func (s *Slot[K, V]) occupy(key K, hash uint64, value V) {
	s.tag = slotOccupied
	s.bucket = Bucket[K, V]{key: key, hash: hash, value: &value}
}

func (s *Slot[K, V]) markTombstone() {
	s.tag = slotTombstone
	s.bucket = Bucket[K, V]{}
}

func (s *Slot[K, V]) clear() {
	s.tag = slotEmpty
	s.bucket = Bucket[K, V]{}
}
