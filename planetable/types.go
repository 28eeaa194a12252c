package planetable

import (
	"math"
	"sync"

	"github.com/ashenforge/dmap/geo"
)

// bucketKey coarsely quantises a normalized plane so near-duplicate planes
// land in the same or an adjacent bucket.
type bucketKey struct {
	qa, qb, qc, qd int64
}

func quantize(f, eps float64) int64 {
	return int64(math.Round(f / eps))
}

func keyFor(p geo.Plane) bucketKey {
	return bucketKey{
		qa: quantize(p.A, geo.NormalEpsilon),
		qb: quantize(p.B, geo.NormalEpsilon),
		qc: quantize(p.C, geo.NormalEpsilon),
		qd: quantize(p.D, geo.DistEpsilon),
	}
}

// Table is the process-wide plane registry (C2). The zero value is not
// usable; construct with New.
type Table struct {
	mu sync.RWMutex

	// planes holds every registered plane, front and back interleaved:
	// planes[2k] and planes[2k+1] are always antiparallel.
	planes []geo.Plane

	// buckets maps a coarse quantisation of either orientation of a
	// registered plane to its canonical even index.
	buckets map[bucketKey][]int
}

// New returns an empty plane registry.
func New() *Table {
	return &Table{buckets: make(map[bucketKey][]int)}
}

// Len returns the number of registered planes (even + odd entries).
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.planes)
}

// Get returns the plane stored at index. index must come from a prior
// FindOrInsert/Opposite call on this table; out-of-range indices panic,
// matching the teacher's core.Graph convention of trusting internally
// sourced indices rather than defensive-checking every hot-path lookup.
func (t *Table) Get(index int) geo.Plane {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.planes[index]
}

// TryGet is the bounds-checked variant of Get for indices that may have
// come from outside this compilation (e.g. a debug tool reading a dump).
func (t *Table) TryGet(index int) (geo.Plane, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if index < 0 || index >= len(t.planes) {
		return geo.Plane{}, ErrIndexOutOfRange
	}
	return t.planes[index], nil
}

// Opposite returns the antiparallel index of index, per the registry's
// even/odd pairing convention.
func Opposite(index int) int { return index ^ 1 }
