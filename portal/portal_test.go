package portal

import (
	"testing"

	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/planetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onePlaneTree builds a two-leaf tree split by a single plane, used by
// several tests below to exercise MakeTreePortals without the full
// FaceBSP pipeline.
func onePlaneTree(t *testing.T, table *planetable.Table) *bsp.Tree {
	t.Helper()
	idx := table.FindOrInsert(geo.NewPlane(geo.Vec3{X: 1}, 0))
	root := &bsp.Node{
		PlaneIndex: idx,
		Bounds:     geo.Bounds{Min: geo.Vec3{X: -10, Y: -10, Z: -10}, Max: geo.Vec3{X: 10, Y: 10, Z: 10}},
	}
	root.Children[0] = &bsp.Node{PlaneIndex: bsp.LeafSentinel, Bounds: geo.Bounds{Min: geo.Vec3{X: 0, Y: -10, Z: -10}, Max: geo.Vec3{X: 10, Y: 10, Z: 10}}}
	root.Children[1] = &bsp.Node{PlaneIndex: bsp.LeafSentinel, Bounds: geo.Bounds{Min: geo.Vec3{X: -10, Y: -10, Z: -10}, Max: geo.Vec3{X: 0, Y: 10, Z: 10}}}
	bsp.AssignNodeNumbers(root)
	return &bsp.Tree{Root: root, Bounds: root.Bounds}
}

func TestMakeTreePortalsLinksBothLeavesToBasePortal(t *testing.T) {
	table := planetable.New()
	tree := onePlaneTree(t, table)

	g := MakeTreePortals(tree, table)

	frontIdx, ok := g.NodeIndex(tree.Root.Children[0])
	require.True(t, ok)
	backIdx, ok := g.NodeIndex(tree.Root.Children[1])
	require.True(t, ok)

	frontPortals := g.PortalsAt(frontIdx)
	backPortals := g.PortalsAt(backIdx)

	// Each leaf sees the base portal between the two children, plus the
	// outside bounding portals it touches.
	assert.NotEmpty(t, frontPortals)
	assert.NotEmpty(t, backPortals)

	var sharedFound bool
	for _, p := range frontPortals {
		if Other(p, frontIdx) == backIdx {
			sharedFound = true
		}
	}
	assert.True(t, sharedFound, "expected a base portal directly connecting the two leaves")
}

func TestRemovePortalUnlinksBothSides(t *testing.T) {
	table := planetable.New()
	tree := onePlaneTree(t, table)
	g := MakeTreePortals(tree, table)

	frontIdx, _ := g.NodeIndex(tree.Root.Children[0])
	backIdx, _ := g.NodeIndex(tree.Root.Children[1])

	var sharedIdx = -1
	for i, p := range g.portals {
		if (p.Nodes[0] == frontIdx && p.Nodes[1] == backIdx) || (p.Nodes[0] == backIdx && p.Nodes[1] == frontIdx) {
			sharedIdx = i
			break
		}
	}
	require.NotEqual(t, -1, sharedIdx)

	g.RemovePortal(sharedIdx)

	for _, p := range g.PortalsAt(frontIdx) {
		assert.NotEqual(t, sharedIdx, indexOfPortal(g, p))
	}
	for _, p := range g.PortalsAt(backIdx) {
		assert.NotEqual(t, sharedIdx, indexOfPortal(g, p))
	}

	assert.Panics(t, func() { g.RemovePortal(sharedIdx) })
}

func indexOfPortal(g *Graph, target *Portal) int {
	for i, p := range g.portals {
		if p == target {
			return i
		}
	}
	return -1
}

func TestOutsideLeafAlwaysBlocksPassable(t *testing.T) {
	table := planetable.New()
	tree := onePlaneTree(t, table)
	g := MakeTreePortals(tree, table)

	for _, p := range g.PortalsAt(g.OutsideIndex()) {
		assert.False(t, g.Passable(p, false, nil))
	}
}
