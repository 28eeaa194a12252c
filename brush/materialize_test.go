package brush

import (
	"testing"

	"github.com/ashenforge/dmap/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlanes implements PlaneLookup over a fixed slice, standing in for
// planetable.Table in tests that don't need the full registry.
type fakePlanes []geo.Plane

func (f fakePlanes) Get(i int) geo.Plane { return f[i] }

// unitCubePlanes returns the six outward-facing planes of a cube spanning
// [-1,1]^3, matching concrete scenario 1 in spec §8.
func unitCubePlanes() fakePlanes {
	return fakePlanes{
		geo.NewPlane(geo.Vec3{X: 1}, 1),
		geo.NewPlane(geo.Vec3{X: -1}, 1),
		geo.NewPlane(geo.Vec3{Y: 1}, 1),
		geo.NewPlane(geo.Vec3{Y: -1}, 1),
		geo.NewPlane(geo.Vec3{Z: 1}, 1),
		geo.NewPlane(geo.Vec3{Z: -1}, 1),
	}
}

func TestMaterializeSidesUnitCube(t *testing.T) {
	planes := unitCubePlanes()
	b := &Brush{
		ContentFlags: ContentSolid | ContentOpaque,
		Sides: []Side{
			{PlaneIndex: 0}, {PlaneIndex: 1},
			{PlaneIndex: 2}, {PlaneIndex: 3},
			{PlaneIndex: 4}, {PlaneIndex: 5},
		},
	}

	require.NoError(t, MaterializeSides(b, planes))

	for _, s := range b.Sides {
		require.True(t, s.Winding.Valid())
		assert.InDelta(t, 4.0, s.Winding.Area(), 1e-6)
	}
	assert.InDelta(t, -1, b.Bounds.Min.X, 1e-6)
	assert.InDelta(t, 1, b.Bounds.Max.X, 1e-6)
}

func TestMaterializeSidesTooFew(t *testing.T) {
	b := &Brush{Sides: []Side{{PlaneIndex: 0}, {PlaneIndex: 1}}}
	err := MaterializeSides(b, unitCubePlanes())
	assert.ErrorIs(t, err, ErrTooFewSides)
}
