package brush

import "github.com/ashenforge/dmap/geo"

// PlaneLookup resolves a registry index to its plane. *planetable.Table
// satisfies this; it is expressed as an interface here so brush never
// imports planetable, avoiding a dependency cycle (planetable is a leaf
// package, but brush is meant to stay a leaf too).
type PlaneLookup interface {
	Get(index int) geo.Plane
}

// DefaultBaseWindingSize bounds the initial square used to seed each side's
// winding before it is clipped down by the brush's other half-spaces. It
// must exceed any map's extent.
const DefaultBaseWindingSize = 1 << 20

// MaterializeSides computes each side's winding by intersecting its plane
// against every other side's half-space, per §3's brush invariant: a
// side's plane normal points outward, so a side's winding is clipped to
// the back (interior) half-space of every sibling plane.
//
// A side whose winding collapses to fewer than 3 vertices makes the whole
// brush ErrBadBrush; callers should drop the brush and log a warning (§7),
// not abort compilation.
func MaterializeSides(b *Brush, planes PlaneLookup) error {
	if len(b.Sides) < 4 {
		return ErrTooFewSides
	}

	for i := range b.Sides {
		plane := planes.Get(b.Sides[i].PlaneIndex)
		w := geo.BaseWindingForPlane(plane, DefaultBaseWindingSize)

		for j := range b.Sides {
			if i == j {
				continue
			}
			clipPlane := planes.Get(b.Sides[j].PlaneIndex)
			w = w.Clip(clipPlane, geo.ClipEpsilon, true, false)
			if w == nil {
				return ErrBadBrush
			}
		}

		if !w.Valid() {
			return ErrBadBrush
		}
		b.Sides[i].Winding = w
	}

	b.ComputeBounds()
	return nil
}
