package portal

import (
	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/geo"
)

// Portal is a convex winding on some plane with exactly two incident
// nodes (by arena index) and a linked-list pointer per side.
type Portal struct {
	Winding    *geo.Winding
	PlaneIndex int

	// Nodes holds the two incident node-arena indices. Nodes[0] is the
	// side the portal's plane normal points toward (the "front"
	// neighbour), Nodes[1] the other.
	Nodes [2]int

	// Next holds, per side, the arena index of the next portal in that
	// side's linked list, or -1 at the list's end.
	Next [2]int

	// OnNode is the tree node whose splitting plane produced this
	// portal; nil for the synthetic outside-world bounding portals.
	OnNode *bsp.Node

	// Removed is a debug sentinel: true once this portal has been
	// unlinked from both incident lists. A second RemovePortal call on
	// an already-removed portal panics rather than silently no-opping.
	Removed bool
}

// PlaneRegistry is the read side of planetable.Table that portal needs.
// Expressed locally to avoid importing planetable, matching bsp's
// PlaneRegistry.
type PlaneRegistry interface {
	Get(index int) geo.Plane
	FindOrInsert(p geo.Plane) int
}

// Graph is the full portal arena for one entity's BSP tree: an arena of
// node pointers (index 0 always reserved for the synthetic outside
// leaf), a per-node head-of-list index, and the portal arena itself.
type Graph struct {
	nodes     []*bsp.Node
	nodeIndex map[*bsp.Node]int
	head      []int
	portals   []*Portal
	outsideID int
}

func newGraph() *Graph {
	g := &Graph{nodeIndex: make(map[*bsp.Node]int)}
	g.outsideID = g.indexOf(nil)
	return g
}

// indexOf returns node's arena index, allocating a fresh one (and a -1
// head slot) on first sight. node == nil resolves to the single outside
// sentinel.
func (g *Graph) indexOf(node *bsp.Node) int {
	if idx, ok := g.nodeIndex[node]; ok {
		return idx
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, node)
	g.head = append(g.head, -1)
	g.nodeIndex[node] = idx
	return idx
}

// NodeIndex looks up node's arena index without inserting. Call after
// MakeTreePortals has populated the graph from the full tree.
func (g *Graph) NodeIndex(node *bsp.Node) (int, bool) {
	idx, ok := g.nodeIndex[node]
	return idx, ok
}

// OutsideIndex returns the arena index of the synthetic outside leaf.
func (g *Graph) OutsideIndex() int { return g.outsideID }

// Node returns the node at arena index idx, or nil for the outside leaf.
func (g *Graph) Node(idx int) *bsp.Node { return g.nodes[idx] }

// PortalsAt returns every portal currently incident to the node at idx,
// head-to-tail.
func (g *Graph) PortalsAt(idx int) []*Portal {
	var out []*Portal
	for cur := g.head[idx]; cur != -1; {
		p := g.portals[cur]
		out = append(out, p)
		cur = p.Next[sideIndexOf(p, idx)]
	}
	return out
}

// AllPortals returns every non-removed portal in the graph. Order is
// arena-insertion order, not traversal order.
func (g *Graph) AllPortals() []*Portal {
	out := make([]*Portal, 0, len(g.portals))
	for _, p := range g.portals {
		if !p.Removed {
			out = append(out, p)
		}
	}
	return out
}

// Other returns the arena index of p's neighbour on the side opposite
// nodeIdx.
func Other(p *Portal, nodeIdx int) int {
	if p.Nodes[0] == nodeIdx {
		return p.Nodes[1]
	}
	return p.Nodes[0]
}

// sideIndexOf reports which of p.Nodes equals nodeIdx.
func sideIndexOf(p *Portal, nodeIdx int) int {
	if p.Nodes[0] == nodeIdx {
		return 0
	}
	return 1
}

func (g *Graph) addPortal(p *Portal) int {
	p.Next = [2]int{-1, -1}
	idx := len(g.portals)
	g.portals = append(g.portals, p)
	return idx
}

// linkToNode inserts the portal at idx at the head of nodeIdx's list, on
// whichever side of the portal nodeIdx occupies.
func (g *Graph) linkToNode(idx, nodeIdx int) {
	p := g.portals[idx]
	side := sideIndexOf(p, nodeIdx)
	p.Next[side] = g.head[nodeIdx]
	g.head[nodeIdx] = idx
}

// unlinkFromNode removes the portal at idx from nodeIdx's list.
func (g *Graph) unlinkFromNode(idx, nodeIdx int) {
	side := sideIndexOf(g.portals[idx], nodeIdx)
	if g.head[nodeIdx] == idx {
		g.head[nodeIdx] = g.portals[idx].Next[side]
		return
	}
	cur := g.head[nodeIdx]
	for cur != -1 {
		p := g.portals[cur]
		curSide := sideIndexOf(p, nodeIdx)
		if p.Next[curSide] == idx {
			p.Next[curSide] = g.portals[idx].Next[side]
			return
		}
		cur = p.Next[curSide]
	}
}

// RemovePortal unlinks the portal at idx from both incident lists and
// marks it removed. Panics if idx was already removed.
func (g *Graph) RemovePortal(idx int) {
	p := g.portals[idx]
	if p.Removed {
		panic("portal: RemovePortal called twice on the same portal")
	}
	g.unlinkFromNode(idx, p.Nodes[0])
	g.unlinkFromNode(idx, p.Nodes[1])
	p.Removed = true
}

// Passable implements §4.4's predicate: a portal is passable iff neither
// incident node is opaque (the outside sentinel counts as always
// opaque), and, when areaMode is set, the portal's plane is not an
// areaportal boundary per isAreaPortal.
func (g *Graph) Passable(p *Portal, areaMode bool, isAreaPortal func(planeIndex int) bool) bool {
	if p.Removed {
		return false
	}
	for _, idx := range p.Nodes {
		n := g.nodes[idx]
		if n == nil || n.Opaque {
			return false
		}
	}
	if areaMode && isAreaPortal != nil && isAreaPortal(p.PlaneIndex) {
		return false
	}
	return true
}
