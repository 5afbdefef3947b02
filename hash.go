package hashtable

import "hash/maphash"

// HashFunc hashes a key to a 64-bit value. A built HashFunc must be
// deterministic: every call with an equal key must return an equal hash
// (spec §6, the Hasher builder collaborator contract). The default
// implementation, like the teacher's own MakeDefaultHashFunc, closes over
// one maphash.Seed per Table so hash values are stable for the Table's
// lifetime but randomized across process runs (anti hash-flooding, matching
// the Rust original's per-process RandomState).
type HashFunc[K comparable] func(K) uint64

// defaultHashFunc builds a maphash-backed HashFunc with a freshly drawn
// seed.
func defaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
