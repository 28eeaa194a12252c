package flood

import (
	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/geo"
)

// FilterBrushesIntoTree pushes every structural brush down tree, visiting
// every leaf the brush's bounds might intersect and marking that leaf
// opaque when the brush's content is solid-for-BSP (§4.5 step 1).
//
// Distribution classifies the brush's axis-aligned bounds against each
// node's plane rather than clipping the brush's actual winding geometry:
// exact for the axial planes the forced block-cut and most structural
// geometry produce, a conservative (descend-both-children) over-approximation
// for oblique ones. A brush is never dropped by this approximation, only
// possibly recorded in one leaf more than strictly necessary.
func FilterBrushesIntoTree(tree *bsp.Tree, brushes []*brush.Brush, planes bsp.PlaneRegistry) {
	for _, b := range brushes {
		pushBrushIntoNode(tree.Root, b, planes)
	}
}

func pushBrushIntoNode(node *bsp.Node, b *brush.Brush, planes bsp.PlaneRegistry) {
	if node.Leaf() {
		node.Brushes = append(node.Brushes, b)
		if b.ContentFlags.OpaqueForBSP() {
			node.Opaque = true
		}
		return
	}

	plane := planes.Get(node.PlaneIndex)
	switch classifyBounds(b.Bounds, plane) {
	case geo.Front:
		pushBrushIntoNode(node.Children[0], b, planes)
	case geo.Back:
		pushBrushIntoNode(node.Children[1], b, planes)
	default:
		pushBrushIntoNode(node.Children[0], b, planes)
		pushBrushIntoNode(node.Children[1], b, planes)
	}
}

// classifyBounds classifies an axis-aligned box against plane by testing
// all eight corners.
func classifyBounds(b geo.Bounds, plane geo.Plane) geo.Side {
	corners := [8]geo.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}

	var front, back int
	for _, c := range corners {
		d := plane.Distance(c)
		switch {
		case d > geo.ClipEpsilon:
			front++
		case d < -geo.ClipEpsilon:
			back++
		}
	}

	switch {
	case front == 0 && back == 0:
		return geo.On
	case back == 0:
		return geo.Front
	case front == 0:
		return geo.Back
	default:
		return geo.Cross
	}
}

// FindLeaf descends tree from root to the leaf containing point.
func FindLeaf(root *bsp.Node, point geo.Vec3, planes bsp.PlaneRegistry) *bsp.Node {
	n := root
	for !n.Leaf() {
		plane := planes.Get(n.PlaneIndex)
		if plane.Distance(point) >= 0 {
			n = n.Children[0]
		} else {
			n = n.Children[1]
		}
	}
	return n
}

// Occupant is a point-entity origin seeding the reachability flood.
type Occupant struct {
	ID        int
	Origin    geo.Vec3
	EntityNum int
}

// PlaceOccupant locates the leaf containing occ.Origin and marks it
// occupied. Returns nil if occ.Origin lies outside the tree's bounds
// (§4.5 step 2: such entities simply contribute no flood seed).
func PlaceOccupant(tree *bsp.Tree, planes bsp.PlaneRegistry, occ Occupant) *bsp.Node {
	if !tree.Bounds.Contains(occ.Origin) {
		return nil
	}
	leaf := FindLeaf(tree.Root, occ.Origin, planes)
	leaf.Occupied = true
	leaf.OccupantID = occ.ID
	return leaf
}
