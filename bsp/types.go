package bsp

import (
	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/geo"
)

// LeafSentinel is the PlaneIndex value marking a leaf node.
const LeafSentinel = -1

// Face is one polygon carried down the tree during construction: either a
// structural brush side or a triangulated mesh fragment, reduced to its
// winding and the plane index it lies on.
type Face struct {
	Winding    *geo.Winding
	PlaneIndex int

	// Portal marks a face that should seed BSP portal generation (C6),
	// per the split-plane selector's portal-gating rule (§4.3 step 2).
	Portal bool

	// SimpleBSP marks a face of the synthetic bounding brush made for an
	// entity that has meshes but no brushes. The builder carries the flag
	// through and does not branch on it.
	SimpleBSP bool
}

// Node is one node of the BSP tree. A node with PlaneIndex == LeafSentinel
// is a leaf; its Children are nil and its leaf-only fields are valid.
type Node struct {
	PlaneIndex int
	Children   [2]*Node // 0: front (positive side), 1: back
	Bounds     geo.Bounds

	// Number is the leaf's (or node's) index in the deterministic
	// post-order numbering assigned after the tree is built (§5).
	Number int

	// Leaf-only fields, valid when Leaf() is true.
	Area       int
	Opaque     bool
	Occupied   bool
	OccupantID int

	// Faces holds the structural/mesh faces still facing into this leaf
	// once the build terminates, retained for debug visualisation of
	// per-leaf input face lists (package objdebug).
	Faces []*Face

	// Brushes holds the structural brushes whose volume intersects this
	// leaf, populated by FilterBrushesIntoTree (package flood).
	Brushes []*brush.Brush

	// AreaPortalTris holds the areaportal mesh triangles distributed
	// into this leaf by the primitive distribution pass (C9); see
	// clip.PutPrimitivesInAreas.
	AreaPortalTris []brush.MeshTriangle
}

// Leaf reports whether n is a leaf.
func (n *Node) Leaf() bool { return n.PlaneIndex == LeafSentinel }

// Tree is a built BSP tree over one entity's face list.
type Tree struct {
	Root   *Node
	Bounds geo.Bounds
}

// PlaneRegistry is the subset of planetable.Table's API the builder needs:
// lookup for existing indices, and insertion for planes synthesized by the
// forced block-size cut (§4.3 step 1). Expressed as an interface so bsp
// never imports planetable.
type PlaneRegistry interface {
	Get(index int) geo.Plane
	FindOrInsert(p geo.Plane) int
}

// Options configures the builder and split-plane selector.
type Options struct {
	// BlockSize, when a component is positive, forces an axis-aligned
	// cut whenever a node's full extent along that axis exceeds it
	// (§4.3 step 1), repeating every recursion until each leaf spans at
	// most one block along that axis. Zero disables the forced cut for
	// that axis.
	BlockSize geo.Vec3

	// AltSplit selects the alternative scoring formula over the default
	// id-Software-style one (§4.3 step 3).
	AltSplit bool
}
