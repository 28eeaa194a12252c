package flood

import (
	"context"
	"testing"

	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/planetable"
	"github.com/ashenforge/dmap/portal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hollowBoxFaces builds the six outward-facing structural faces of a
// hollow box spanning [-64,64]^3, one per axis side, optionally omitting
// a named side to produce a leak (spec §8 scenarios 2 and 3).
func hollowBoxFaces(t *testing.T, table *planetable.Table, omit geo.Vec3) ([]*bsp.Face, []*brush.Brush) {
	t.Helper()
	type side struct {
		normal geo.Vec3
		axis   geo.Axis
		sign   float64
	}
	sides := []side{
		{geo.Vec3{X: 1}, geo.AxisX, 1}, {geo.Vec3{X: -1}, geo.AxisX, -1},
		{geo.Vec3{Y: 1}, geo.AxisY, 1}, {geo.Vec3{Y: -1}, geo.AxisY, -1},
		{geo.Vec3{Z: 1}, geo.AxisZ, 1}, {geo.Vec3{Z: -1}, geo.AxisZ, -1},
	}

	var faces []*bsp.Face
	var brushes []*brush.Brush
	for _, s := range sides {
		if s.normal == omit {
			continue
		}
		plane := geo.NewPlane(s.normal, 64)
		idx := table.FindOrInsert(plane)
		w := geo.BaseWindingForPlane(plane, 128)
		faces = append(faces, &bsp.Face{Winding: w.Copy(), PlaneIndex: idx})

		// A thin slab hugging this wall, not the whole room, so
		// FilterBrushesIntoTree doesn't mark the interior air opaque.
		bounds := geo.Bounds{Min: geo.Vec3{X: -68, Y: -68, Z: -68}, Max: geo.Vec3{X: 68, Y: 68, Z: 68}}
		center := s.sign * 64
		lo, hi := center, center+s.sign*8
		if lo > hi {
			lo, hi = hi, lo
		}
		bounds.Min = bounds.Min.WithComponent(s.axis, lo)
		bounds.Max = bounds.Max.WithComponent(s.axis, hi)

		b := &brush.Brush{
			ContentFlags: brush.ContentSolid | brush.ContentOpaque,
			Bounds:       bounds,
		}
		brushes = append(brushes, b)
	}
	return faces, brushes
}

func TestHollowBoxWithOccupantNoLeak(t *testing.T) {
	table := planetable.New()
	faces, brushes := hollowBoxFaces(t, table, geo.Vec3{})

	tree := bsp.FaceBSP(faces, table, bsp.Options{}, map[int]int{})
	FilterBrushesIntoTree(tree, brushes, table)

	g := portal.MakeTreePortals(tree, table)

	leaf := PlaceOccupant(tree, table, Occupant{ID: 1, Origin: geo.Vec3{}})
	require.NotNil(t, leaf)

	trail, err := Flood(context.Background(), g, []*bsp.Node{leaf})
	assert.NoError(t, err)
	assert.Nil(t, trail)

	FillOutside(tree.Root)
	assert.True(t, leaf.Occupied)
	assert.False(t, leaf.Opaque)
}

func TestHollowBoxMissingSideLeaks(t *testing.T) {
	table := planetable.New()
	faces, brushes := hollowBoxFaces(t, table, geo.Vec3{Z: 1})

	tree := bsp.FaceBSP(faces, table, bsp.Options{}, map[int]int{})
	FilterBrushesIntoTree(tree, brushes, table)

	g := portal.MakeTreePortals(tree, table)

	leaf := PlaceOccupant(tree, table, Occupant{ID: 1, Origin: geo.Vec3{}})
	require.NotNil(t, leaf)

	trail, err := Flood(context.Background(), g, []*bsp.Node{leaf})
	require.ErrorIs(t, err, ErrLeak)
	require.NotNil(t, trail)
	assert.NotEmpty(t, trail.Points)
	assert.NotEmpty(t, trail.RunID)
}
