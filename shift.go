package hashtable

// shiftResult is the terminal decision of shiftInsert.
type shiftResult int

const (
	shiftInserted shiftResult = iota
	shiftAlreadyExists
	shiftFull
)

// shiftInsert is the LCFS engine of spec §4.3: a Robin-Hood-style insertion
// path. It walks the same probe sequence probeWalk would, recording the
// visited indices, until it hits an Empty slot (tombstone-aware: the
// earliest tombstone seen becomes the terminal slot instead), an Occupied
// slot whose (hash, key) matches (shiftAlreadyExists), or the
// home-collision stop (shiftFull). On a terminal Empty/Tombstone it shifts
// every recorded occupant one step forward so the new entry lands at the
// home slot.
//
// scratch is a reusable path buffer owned by the caller (normally
// Table.shiftScratch) so repeated LCFS inserts do not allocate once the
// buffer has grown to the longest path seen so far.
func shiftInsert[K comparable, V any](rt *RawTable[K, V], key K, hash uint64, value V, offset OffsetFunc, scratch *[]uint64) shiftResult {
	mask := rt.mask
	home := hash & mask
	i := home

	path := (*scratch)[:0]

	var (
		firstTombstone     uint64
		haveFirstTombstone bool
		terminalIsEmpty    bool
	)

walk:
	for {
		path = append(path, i)
		s := rt.slot(i)

		switch {
		case s.isEmpty():
			terminalIsEmpty = true
			break walk

		case s.isTombstone():
			if !haveFirstTombstone {
				firstTombstone = i
				haveFirstTombstone = true
			}

		default: // Occupied
			if s.bucket.hash == hash && s.bucket.key == key {
				*scratch = path
				return shiftAlreadyExists
			}
		}

		next := (home + offset()) & mask
		if next == home {
			*scratch = path
			return shiftFull
		}
		i = next
	}

	if haveFirstTombstone {
		terminalIsEmpty = false
		for idx, v := range path {
			if v == firstTombstone {
				path = path[:idx+1]
				break
			}
		}
	}

	*scratch = path

	tail := path[len(path)-1]
	wasTombstone := !terminalIsEmpty && rt.slot(tail).isTombstone()

	// Shift forward: move the content of each prior slot into the slot
	// immediately after it, walking from the tail backwards, so every
	// displaced occupant ends up exactly one probe-step further along its
	// own sequence.
	for k := len(path) - 1; k > 0; k-- {
		*rt.slot(path[k]) = *rt.slot(path[k-1])
	}

	rt.slot(path[0]).occupy(key, hash, value)
	rt.count++
	if wasTombstone {
		rt.tombstones--
	}

	return shiftInserted
}
