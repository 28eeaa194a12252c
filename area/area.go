package area

import (
	"fmt"

	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/portal"
)

// AssignAreas floods area indices across every reachable, non-opaque
// leaf of root (§4.6). isAreaPortal reports whether a plane index
// belongs to an areaportal-flagged brush side; callers should have it
// answer true for both a registered areaportal plane and its opposite
// orientation, since a portal may carry either.
//
// Leaves are seeded for new areas in the tree's pre-order traversal
// order (front child before back child, collectLeaves), not by
// ascending Number — but that traversal order is itself fixed for a
// given tree, so area indices are still deterministic for a given tree.
func AssignAreas(g *portal.Graph, root *bsp.Node, isAreaPortal func(planeIndex int) bool) *Result {
	leaves := collectLeaves(root)

	nextArea := 0
	for _, leaf := range leaves {
		if leaf.Opaque || leaf.Area != -1 {
			continue
		}
		floodArea(g, leaf, nextArea, isAreaPortal)
		nextArea++
	}

	result := buildInterAreaPortals(g, isAreaPortal)
	result.NumAreas = nextArea
	return result
}

func collectLeaves(root *bsp.Node) []*bsp.Node {
	var leaves []*bsp.Node
	var walk func(*bsp.Node)
	walk = func(n *bsp.Node) {
		if n == nil {
			return
		}
		if n.Leaf() {
			leaves = append(leaves, n)
			return
		}
		walk(n.Children[0])
		walk(n.Children[1])
	}
	walk(root)
	return leaves
}

func floodArea(g *portal.Graph, start *bsp.Node, areaIdx int, isAreaPortal func(int) bool) {
	startIdx, ok := g.NodeIndex(start)
	if !ok {
		return
	}
	start.Area = areaIdx

	queue := []int{startIdx}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, p := range g.PortalsAt(cur) {
			if !g.Passable(p, true, isAreaPortal) {
				continue
			}
			nIdx := portal.Other(p, cur)
			n := g.Node(nIdx)
			if n.Area != -1 {
				continue
			}
			n.Area = areaIdx
			queue = append(queue, nIdx)
		}
	}
}

// buildInterAreaPortals emits one record per portal lying on an
// areaportal plane, warning (not failing) when it doesn't connect
// exactly two distinct, assigned areas.
func buildInterAreaPortals(g *portal.Graph, isAreaPortal func(int) bool) *Result {
	res := &Result{}
	for _, p := range g.AllPortals() {
		if !isAreaPortal(p.PlaneIndex) {
			continue
		}
		nA := g.Node(p.Nodes[0])
		nB := g.Node(p.Nodes[1])
		if nA == nil || nB == nil {
			continue
		}

		res.InterAreaPortals = append(res.InterAreaPortals, InterAreaPortal{
			AreaA:      nA.Area,
			AreaB:      nB.Area,
			Winding:    p.Winding,
			SourceSide: p.PlaneIndex,
		})

		if nA.Area == -1 || nB.Area == -1 || nA.Area == nB.Area {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"area: areaportal on plane %d connects areas %d and %d, not two distinct areas",
				p.PlaneIndex, nA.Area, nB.Area))
		}
	}
	return res
}
