package planetable

import "github.com/ashenforge/dmap/geo"

// neighborOffsets enumerates the 3^4 quantisation cells around a bucket key
// so a plane that quantised to the boundary between two cells still finds
// its match.
var neighborOffsets = buildNeighborOffsets()

func buildNeighborOffsets() [][4]int64 {
	offs := make([][4]int64, 0, 81)
	for a := int64(-1); a <= 1; a++ {
		for b := int64(-1); b <= 1; b++ {
			for c := int64(-1); c <= 1; c++ {
				for d := int64(-1); d <= 1; d++ {
					offs = append(offs, [4]int64{a, b, c, d})
				}
			}
		}
	}
	return offs
}

// FindOrInsert canonicalises plane and returns its stable index: the first
// orientation seen for a given surface is inserted at a fresh even index
// together with its opposite at index+1, so a plane queried in the
// orientation first registered comes back even and its antiparallel mate
// comes back odd. A second call with the same oriented plane (within
// NormalEpsilon/DistEpsilon) always returns the same index; Opposite(index)
// gives the antiparallel plane's index either way.
//
// Complexity: O(1) amortised (bounded bucket scan), O(n) worst case
// under pathological hash collisions, since a bucket is scanned linearly.
func (t *Table) FindOrInsert(plane geo.Plane) int {
	norm := plane.Normalized()

	if idx, ok := t.lookup(norm); ok {
		return idx
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-check under the write lock: another goroutine may have inserted
	// the same plane between our read-locked lookup and acquiring this
	// lock (spec §5: the registry requires a writer lock under
	// cross-entity parallelism).
	if idx, ok := t.lookupLocked(norm); ok {
		return idx
	}

	evenIdx := len(t.planes)
	t.planes = append(t.planes, norm, norm.Opposite())
	t.indexLocked(norm, evenIdx)
	t.indexLocked(norm.Opposite(), evenIdx)

	return evenIdx
}

func (t *Table) lookup(norm geo.Plane) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lookupLocked(norm)
}

// lookupLocked must be called with mu held (read or write).
func (t *Table) lookupLocked(norm geo.Plane) (int, bool) {
	base := keyFor(norm)
	for _, off := range neighborOffsets {
		key := bucketKey{base.qa + off[0], base.qb + off[1], base.qc + off[2], base.qd + off[3]}
		for _, evenIdx := range t.buckets[key] {
			stored := t.planes[evenIdx]
			if stored.ApproxEqual(norm) {
				return evenIdx, true
			}
			if stored.Opposite().ApproxEqual(norm) {
				return evenIdx ^ 1, true
			}
		}
	}
	return 0, false
}

// indexLocked must be called with mu (write) held.
func (t *Table) indexLocked(norm geo.Plane, evenIdx int) {
	key := keyFor(norm)
	t.buckets[key] = append(t.buckets[key], evenIdx)
}
