// Package hashtable implements an open-addressing hash map with a
// pluggable collision strategy (linear probing, quadratic probing, double
// hashing) and a pluggable insertion discipline: first-come-first-served
// (write at the first free slot discovered while probing) or
// last-come-first-served (Robin-Hood-like forward shift, so a new entry
// always lands at its own home slot).
//
// A Table is a single-writer, single-reader resource: there is no lock, no
// atomic, no fence anywhere in this package. Concurrent mutation from
// multiple goroutines is undefined behavior; wrap a Table externally
// (e.g. behind a sync.Mutex) if you need shared access.
package hashtable
