package brush

import "github.com/ashenforge/dmap/geo"

// Side is one face of a Brush: a plane index (into the shared plane
// registry) plus the winding obtained by intersecting that plane against
// every other side's half-space.
type Side struct {
	PlaneIndex int
	Winding    *geo.Winding
	Material   string
	Portal     bool // true when this side's face should seed a BSP portal face
}

// Brush is the convex intersection of its Sides' half-spaces.
type Brush struct {
	Sides []Side

	Opaque       bool
	AreaPortal   bool
	Subtractive  bool
	SimpleBSP    bool
	EntityNum    int
	ContentFlags ContentFlags

	Bounds geo.Bounds
}

// ComputeBounds recomputes Bounds from the materialised side windings.
// Call after MaterializeSides.
func (b *Brush) ComputeBounds() {
	bounds := geo.EmptyBounds()
	for _, s := range b.Sides {
		if s.Winding == nil {
			continue
		}
		bounds = bounds.Union(s.Winding.Bounds())
	}
	b.Bounds = bounds
}

// MeshTriangle is one triangle of a polygon-mesh primitive, carrying its
// own plane index and a back-pointer to the source Mesh for areaportal
// detection (§3).
type MeshTriangle struct {
	PlaneIndex int
	Vertices   [3]geo.Vec3
	Material   string
	Source     *Mesh
}

// Mesh is a triangle-soup primitive. Its triangles are distributed into
// areas after the tree is built; they never become BSP faces themselves
// (an entity with meshes and no brushes gets its tree from a synthetic
// bounding brush instead, the "simpleBSP" case).
type Mesh struct {
	Triangles    []MeshTriangle
	Material     string
	AreaPortal   bool
	ContentFlags ContentFlags
	EntityNum    int
}
