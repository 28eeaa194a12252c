package objdebug

import (
	"strings"
	"testing"

	"github.com/ashenforge/dmap/area"
	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaColorIsDeterministicAndWrapsPalette(t *testing.T) {
	assert.Equal(t, AreaColor(0), AreaColor(0))
	assert.Equal(t, AreaColor(0), AreaColor(len(palette)))
	assert.Equal(t, opaqueColor, AreaColor(-1))
}

func TestTintClampsToUnitRange(t *testing.T) {
	tinted := Tint([3]float64{0.95, 0.05, 0.5}, 0.5)
	assert.Equal(t, 1.0, tinted[0])
	assert.Equal(t, 0.55, tinted[1])
	assert.Equal(t, 1.0, tinted[2])

	tinted = Tint([3]float64{0.1, 0.1, 0.1}, -0.5)
	assert.Equal(t, 0.0, tinted[0])
}

func TestWriteFaceListEmitsVerticesAndFace(t *testing.T) {
	w := geo.NewWinding([]geo.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	faces := []*bsp.Face{{Winding: w, PlaneIndex: 0}}

	var buf strings.Builder
	ow := NewWriter(&buf)
	require.NoError(t, ow.WriteFaceList("structural", faces, AreaColor(0)))

	out := buf.String()
	assert.Contains(t, out, "g structural\n")
	assert.Contains(t, out, "f 1 2 3\n")
	assert.Equal(t, 3, strings.Count(out, "v "))
}

func TestWriteFaceListSkipsDegenerateWindings(t *testing.T) {
	degenerate := geo.NewWinding([]geo.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}})
	faces := []*bsp.Face{{Winding: degenerate, PlaneIndex: 0}}

	var buf strings.Builder
	ow := NewWriter(&buf)
	require.NoError(t, ow.WriteFaceList("empty", faces, AreaColor(0)))
	assert.NotContains(t, buf.String(), "f ")
}

func leafTree() *bsp.Tree {
	leafA := &bsp.Node{PlaneIndex: bsp.LeafSentinel, Area: 0, Bounds: geo.Bounds{Min: geo.Vec3{X: -1, Y: -1, Z: -1}, Max: geo.Vec3{}}}
	leafB := &bsp.Node{PlaneIndex: bsp.LeafSentinel, Area: -1, Opaque: true, Bounds: geo.Bounds{Min: geo.Vec3{}, Max: geo.Vec3{X: 1, Y: 1, Z: 1}}}
	root := &bsp.Node{PlaneIndex: 0, Children: [2]*bsp.Node{leafA, leafB}, Bounds: geo.Bounds{Min: geo.Vec3{X: -1, Y: -1, Z: -1}, Max: geo.Vec3{X: 1, Y: 1, Z: 1}}}
	bsp.AssignNodeNumbers(root)
	return &bsp.Tree{Root: root, Bounds: root.Bounds}
}

func TestWriteLeafBoundingBoxesOneBoxPerLeaf(t *testing.T) {
	tree := leafTree()

	var buf strings.Builder
	ow := NewWriter(&buf)
	require.NoError(t, ow.WriteLeafBoundingBoxes(tree))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "g leaf_"))
	assert.Equal(t, 2*12, strings.Count(out, "l "))
	assert.Equal(t, 2*8, strings.Count(out, "v "))
}

func TestWriteAreaPortalTrianglesOnePerPortal(t *testing.T) {
	result := &area.Result{
		NumAreas: 2,
		InterAreaPortals: []area.InterAreaPortal{
			{AreaA: 0, AreaB: 1, Winding: geo.NewWinding([]geo.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})},
		},
	}

	var buf strings.Builder
	ow := NewWriter(&buf)
	require.NoError(t, ow.WriteAreaPortalTriangles(result))

	out := buf.String()
	assert.Contains(t, out, "g areaportal_0_0to1\n")
	assert.Contains(t, out, "f 1 2 3\n")
}

func TestWriteLeafFaceListsOnlyEmitsLeavesWithFaces(t *testing.T) {
	tree := leafTree()
	tree.Root.Children[0].Faces = []*bsp.Face{
		{Winding: geo.NewWinding([]geo.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}), PlaneIndex: 0},
	}

	var buf strings.Builder
	ow := NewWriter(&buf)
	require.NoError(t, ow.WriteLeafFaceLists(tree))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "g leaf_"))
	assert.Contains(t, out, "f 1 2 3\n")
}

func TestWriteLeafAreaPortalTrisOnlyEmitsLeavesWithTris(t *testing.T) {
	tree := leafTree()
	tree.Root.Children[0].AreaPortalTris = []brush.MeshTriangle{
		{Vertices: [3]geo.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
	}

	var buf strings.Builder
	ow := NewWriter(&buf)
	require.NoError(t, ow.WriteLeafAreaPortalTris(tree))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "g leaf_"))
	assert.Contains(t, out, "areaportal_tris")
	assert.Contains(t, out, "f 1 2 3\n")
}

func TestWriteASCIITreeIndentsByDepth(t *testing.T) {
	tree := leafTree()

	var buf strings.Builder
	require.NoError(t, WriteASCIITree(&buf, tree.Root))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "node #"))
	assert.True(t, strings.HasPrefix(lines[1], "  leaf #"))
	assert.True(t, strings.HasPrefix(lines[2], "  leaf #"))
	assert.Contains(t, lines[2], "opaque=true")
}

func TestWriteASCIITreeHandlesNilRoot(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteASCIITree(&buf, nil))
	assert.Equal(t, "<nil>\n", buf.String())
}
