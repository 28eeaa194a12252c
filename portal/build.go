package portal

import (
	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/geo"
)

// OutsidePortalSize bounds the square seeding each outside-world bounding
// portal; it must exceed the map's extent by a comfortable margin.
const OutsidePortalSize = 1 << 20

// OutsideMargin is how far the six outside portals sit beyond the tree's
// computed bounds, so structural geometry exactly on the bounding box
// still classifies cleanly against them.
const OutsideMargin = 64.0

// ancestorClip records one ancestor node's splitting plane and which
// side of it the current subtree occupies, accumulated while descending
// so each interior node's base portal can be clipped to the half-space
// its position in the tree actually constrains it to (§4.4 step 2).
type ancestorClip struct {
	plane     geo.Plane
	keepFront bool
}

type portalFrame struct {
	node      *bsp.Node
	ancestors []ancestorClip
}

// MakeTreePortals builds the full portal graph for tree: six outside
// bounding portals against the synthetic outside leaf, then a base
// portal at every interior node split down against descendants (§4.4).
func MakeTreePortals(tree *bsp.Tree, planes PlaneRegistry) *Graph {
	g := newGraph()
	rootIdx := g.indexOf(tree.Root)
	addOutsidePortals(g, tree.Bounds, planes, rootIdx)

	stack := []portalFrame{{node: tree.Root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := top.node
		if node.Leaf() {
			continue
		}

		nodeIdx := g.indexOf(node)
		nodePlane := planes.Get(node.PlaneIndex)
		frontIdx := g.indexOf(node.Children[0])
		backIdx := g.indexOf(node.Children[1])

		if base := buildBasePortal(nodePlane, top.ancestors); base.Valid() {
			p := &Portal{Winding: base, PlaneIndex: node.PlaneIndex, OnNode: node}
			p.Nodes = [2]int{frontIdx, backIdx}
			idx := g.addPortal(p)
			g.linkToNode(idx, frontIdx)
			g.linkToNode(idx, backIdx)
		}

		splitNodePortals(g, nodeIdx, frontIdx, backIdx, nodePlane, planes)

		frontAncestors := append(append([]ancestorClip{}, top.ancestors...), ancestorClip{plane: nodePlane, keepFront: true})
		backAncestors := append(append([]ancestorClip{}, top.ancestors...), ancestorClip{plane: nodePlane, keepFront: false})
		stack = append(stack, portalFrame{node: node.Children[0], ancestors: frontAncestors})
		stack = append(stack, portalFrame{node: node.Children[1], ancestors: backAncestors})
	}

	return g
}

// buildBasePortal seeds a huge winding on plane and clips it against
// every ancestor half-space the current node is nested inside.
func buildBasePortal(plane geo.Plane, ancestors []ancestorClip) *geo.Winding {
	w := geo.BaseWindingForPlane(plane, OutsidePortalSize)
	for _, a := range ancestors {
		w = w.Clip(a.plane, geo.ClipEpsilon, true, a.keepFront)
		if w == nil {
			return nil
		}
	}
	return w
}

// addOutsidePortals seeds the six bounding portals between the outside
// sentinel and the tree root (§4.4 step 1).
func addOutsidePortals(g *Graph, bounds geo.Bounds, planes PlaneRegistry, rootIdx int) {
	type axisSign struct {
		axis geo.Axis
		sign float64
	}
	faces := []axisSign{
		{geo.AxisX, 1}, {geo.AxisX, -1},
		{geo.AxisY, 1}, {geo.AxisY, -1},
		{geo.AxisZ, 1}, {geo.AxisZ, -1},
	}

	for _, f := range faces {
		var normal geo.Vec3
		normal = normal.WithComponent(f.axis, f.sign)

		var dist float64
		if f.sign > 0 {
			dist = bounds.Max.Component(f.axis) + OutsideMargin
		} else {
			dist = -(bounds.Min.Component(f.axis) - OutsideMargin)
		}

		plane := geo.NewPlane(normal, dist)
		idx := planes.FindOrInsert(plane)
		w := geo.BaseWindingForPlane(plane, OutsidePortalSize)

		p := &Portal{Winding: w, PlaneIndex: idx}
		p.Nodes = [2]int{g.outsideID, rootIdx}
		pIdx := g.addPortal(p)
		g.linkToNode(pIdx, g.outsideID)
		g.linkToNode(pIdx, rootIdx)
	}
}

// splitNodePortals consumes every portal currently incident to nodeIdx
// (inherited from ancestors) and redistributes each to frontIdx, backIdx,
// or both (when it crosses nodePlane), per §4.4 step 3.
func splitNodePortals(g *Graph, nodeIdx, frontIdx, backIdx int, nodePlane geo.Plane, planes PlaneRegistry) {
	cur := g.head[nodeIdx]
	g.head[nodeIdx] = -1

	for cur != -1 {
		p := g.portals[cur]
		side := sideIndexOf(p, nodeIdx)
		next := p.Next[side]
		otherIdx := Other(p, nodeIdx)

		switch p.Winding.ClassifySide(nodePlane, geo.ClipEpsilon) {
		case geo.Front:
			p.Nodes[side] = frontIdx
			p.Next[side] = -1
			g.linkToNode(cur, frontIdx)

		case geo.Back:
			p.Nodes[side] = backIdx
			p.Next[side] = -1
			g.linkToNode(cur, backIdx)

		case geo.On:
			// Coincident with the node's own splitting plane: this can
			// only happen when the portal's plane is the same surface
			// (or its antiparallel mate) as the node's. Route by
			// whether the orientations agree.
			dest := backIdx
			if planes.Get(p.PlaneIndex).Normal().Dot(nodePlane.Normal()) > 0 {
				dest = frontIdx
			}
			p.Nodes[side] = dest
			p.Next[side] = -1
			g.linkToNode(cur, dest)

		case geo.Cross:
			fw, bw, _ := p.Winding.Split(nodePlane, 2*geo.ClipEpsilon)
			g.unlinkFromNode(cur, otherIdx)

			if fw.Valid() {
				fp := &Portal{Winding: fw, PlaneIndex: p.PlaneIndex, OnNode: p.OnNode}
				fp.Nodes[side], fp.Nodes[1-side] = frontIdx, otherIdx
				fidx := g.addPortal(fp)
				g.linkToNode(fidx, frontIdx)
				g.linkToNode(fidx, otherIdx)
			}
			if bw.Valid() {
				bp := &Portal{Winding: bw, PlaneIndex: p.PlaneIndex, OnNode: p.OnNode}
				bp.Nodes[side], bp.Nodes[1-side] = backIdx, otherIdx
				bidx := g.addPortal(bp)
				g.linkToNode(bidx, backIdx)
				g.linkToNode(bidx, otherIdx)
			}
			p.Removed = true
		}

		cur = next
	}
}
