package hashtable

import "errors"

// Set is a thin convenience wrapper around Table[K, struct{}], mirroring
// the teacher's own Map+Set pairing atop one shared engine. Set is not a
// core [MODULE] of the spec — it costs nothing beyond the Table it wraps
// and is kept because the teacher's own repo pairs a Map and a Set the
// same way (SPEC_FULL.md §10 supplemented features).
type Set[K comparable] struct {
	table *Table[K, struct{}]
}

// NewSet constructs a Set with the same options a Table accepts.
func NewSet[K comparable](opts ...Option[K, struct{}]) (*Set[K], error) {
	t, err := New[K, struct{}](opts...)
	if err != nil {
		return nil, err
	}
	return &Set[K]{table: t}, nil
}

// Has reports whether key is in the set.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.table.Lookup(key)
	return ok
}

// Add inserts key. It returns true if the key was new, false if it was
// already present. Unlike Table.Insert, a duplicate Add is not an error:
// there is no value to reject, so a no-op report is the idiomatic set
// contract (matching the teacher's own StableSet.Put isNew boolean).
func (s *Set[K]) Add(key K) (bool, error) {
	err := s.table.Insert(key, struct{}{})
	if err == nil {
		return true, nil
	}

	var dup *DuplicateKeyError[struct{}]
	if errors.As(err, &dup) {
		return false, nil
	}

	return false, err
}

// Remove deletes key from the set, reporting whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, err := s.table.Remove(key)
	return err == nil
}

// Len reports the number of live keys.
func (s *Set[K]) Len() int { return s.table.Len() }

// Cap reports the current bucket-array capacity.
func (s *Set[K]) Cap() int { return s.table.Cap() }

// Reset drops every key back to Empty without shrinking capacity.
func (s *Set[K]) Reset() { s.table.Reset() }

// Stats returns a point-in-time occupancy summary.
func (s *Set[K]) Stats() TableStats { return s.table.Stats() }
