package compiler

import (
	"strconv"

	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/planetable"
)

// boundingBrushMargin pads the synthetic bounding brush built for a
// simpleBSP entity (one with meshes but no brushes) beyond its mesh
// triangles' bounds, so triangles exactly on the boundary still classify
// cleanly against it.
const boundingBrushMargin = 16.0

// makeStructuralFaceList builds the BSP builder's input face list for
// one entity (§4.2's input). Brush sides materialise directly into
// faces, carrying the Portal bit for areaportal sides per §4.3 step 2's
// portal-gating rule. When the entity has no brushes at all but does
// carry mesh primitives, a synthetic bounding brush is built from the
// meshes' combined bounds to seed FaceBSP — spec §9's "simpleBSP"
// open question, resolved here by treating the mesh triangles purely as
// primitives to distribute later (via PutPrimitivesInAreas) rather than
// as structural splitting faces, and by never marking the synthetic
// brush as solid so its interior stays open for those triangles and for
// any occupant placed there.
//
// solidBrushes is the subset fed onward to FilterBrushesIntoTree
// (flood's opaque classification); the synthetic bounding brush, when
// one is built, is deliberately excluded from it.
func makeStructuralFaceList(e Entity, planes *planetable.Table) (faces []*bsp.Face, solidBrushes []*brush.Brush, warnings []string) {
	if len(e.Brushes) > 0 {
		for _, b := range e.Brushes {
			if err := brush.MaterializeSides(b, planes); err != nil {
				warnings = append(warnings, "compiler: dropped brush in entity "+strconv.Itoa(e.EntityNum)+": "+err.Error())
				continue
			}
			for i := range b.Sides {
				faces = append(faces, &bsp.Face{
					Winding:    b.Sides[i].Winding,
					PlaneIndex: b.Sides[i].PlaneIndex,
					Portal:     b.AreaPortal,
				})
			}
			solidBrushes = append(solidBrushes, b)
		}
		return faces, solidBrushes, warnings
	}

	if len(e.Meshes) == 0 {
		return nil, nil, warnings
	}

	bounds := geo.EmptyBounds()
	for _, m := range e.Meshes {
		for _, tri := range m.Triangles {
			for _, v := range tri.Vertices {
				bounds = bounds.ExpandPoint(v)
			}
		}
	}
	margin := geo.Vec3{X: boundingBrushMargin, Y: boundingBrushMargin, Z: boundingBrushMargin}
	bounds.Min = bounds.Min.Sub(margin)
	bounds.Max = bounds.Max.Add(margin)

	enclosing := synthesizeBoundingBrush(bounds, planes)
	if err := brush.MaterializeSides(enclosing, planes); err != nil {
		warnings = append(warnings, "compiler: simpleBSP bounding brush for entity "+strconv.Itoa(e.EntityNum)+" failed to materialize: "+err.Error())
		return nil, nil, warnings
	}
	for i := range enclosing.Sides {
		faces = append(faces, &bsp.Face{
			Winding:    enclosing.Sides[i].Winding,
			PlaneIndex: enclosing.Sides[i].PlaneIndex,
			SimpleBSP:  true,
		})
	}
	return faces, nil, warnings
}

// synthesizeBoundingBrush builds the six-sided enclosing brush for a
// simpleBSP entity. It is never marked solid: it exists only to give
// FaceBSP real, finite geometry to partition.
func synthesizeBoundingBrush(bounds geo.Bounds, planes *planetable.Table) *brush.Brush {
	type axisSign struct {
		axis geo.Axis
		sign float64
	}
	faces := [6]axisSign{
		{geo.AxisX, 1}, {geo.AxisX, -1},
		{geo.AxisY, 1}, {geo.AxisY, -1},
		{geo.AxisZ, 1}, {geo.AxisZ, -1},
	}

	b := &brush.Brush{SimpleBSP: true}
	for _, f := range faces {
		var normal geo.Vec3
		normal = normal.WithComponent(f.axis, f.sign)

		var dist float64
		if f.sign > 0 {
			dist = bounds.Max.Component(f.axis)
		} else {
			dist = -bounds.Min.Component(f.axis)
		}

		idx := planes.FindOrInsert(geo.NewPlane(normal, dist))
		b.Sides = append(b.Sides, brush.Side{PlaneIndex: idx})
	}
	return b
}
