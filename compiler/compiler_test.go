package compiler

import (
	"context"
	"errors"
	"testing"

	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/planetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxBrush builds a solid axis-aligned brush spanning [min,max], used by
// every scenario below as either the cube worldspawn or one wall slab of
// a hollow box.
func boxBrush(min, max geo.Vec3, table *planetable.Table, content brush.ContentFlags) *brush.Brush {
	type face struct {
		normal geo.Vec3
		dist   float64
	}
	faces := []face{
		{geo.Vec3{X: 1}, max.X}, {geo.Vec3{X: -1}, -min.X},
		{geo.Vec3{Y: 1}, max.Y}, {geo.Vec3{Y: -1}, -min.Y},
		{geo.Vec3{Z: 1}, max.Z}, {geo.Vec3{Z: -1}, -min.Z},
	}
	b := &brush.Brush{ContentFlags: content}
	for _, f := range faces {
		idx := table.FindOrInsert(geo.NewPlane(f.normal, f.dist))
		b.Sides = append(b.Sides, brush.Side{PlaneIndex: idx})
	}
	return b
}

// hollowBoxWalls builds the six thin wall-slab brushes of a box spanning
// roughly [-64,64]^3, optionally omitting one named side (by outward
// normal) to produce a leak (spec §8 scenarios 2 and 3).
func hollowBoxWalls(table *planetable.Table, omitNormal geo.Vec3) []*brush.Brush {
	type wall struct {
		axis geo.Axis
		sign float64
	}
	walls := []wall{
		{geo.AxisX, 1}, {geo.AxisX, -1},
		{geo.AxisY, 1}, {geo.AxisY, -1},
		{geo.AxisZ, 1}, {geo.AxisZ, -1},
	}

	var out []*brush.Brush
	for _, w := range walls {
		var normal geo.Vec3
		normal = normal.WithComponent(w.axis, w.sign)
		if normal == omitNormal {
			continue
		}

		min := geo.Vec3{X: -68, Y: -68, Z: -68}
		max := geo.Vec3{X: 68, Y: 68, Z: 68}
		center := w.sign * 64
		lo, hi := center-4, center+4
		if lo > hi {
			lo, hi = hi, lo
		}
		min = min.WithComponent(w.axis, lo)
		max = max.WithComponent(w.axis, hi)

		out = append(out, boxBrush(min, max, table, brush.ContentSolid|brush.ContentOpaque))
	}
	return out
}

func TestCompileUnitCubeWorldspawnNoEntities(t *testing.T) {
	table := planetable.New()
	cube := boxBrush(geo.Vec3{X: -1, Y: -1, Z: -1}, geo.Vec3{X: 1, Y: 1, Z: 1}, table, brush.ContentSolid|brush.ContentOpaque)

	entities := []Entity{
		{EntityNum: 0, Worldspawn: true, Brushes: []*brush.Brush{cube}},
	}

	cctx := NewContext(Options{}, table)
	result, err := Compile(context.Background(), cctx, entities)
	require.NoError(t, err)
	require.Len(t, result.Entities, 1)

	out := result.Entities[0]
	assert.False(t, out.Leaked)
	assert.Equal(t, 0, out.NumAreas, "solid cube interior has no reachable space without an occupant")
}

func TestCompileHollowBoxWithOccupantNoLeak(t *testing.T) {
	table := planetable.New()
	walls := hollowBoxWalls(table, geo.Vec3{})

	entities := []Entity{
		{EntityNum: 0, Worldspawn: true, Brushes: walls},
		{EntityNum: 1, Origin: geo.Vec3{}},
	}

	cctx := NewContext(Options{}, table)
	result, err := Compile(context.Background(), cctx, entities)
	require.NoError(t, err)
	require.Len(t, result.Entities, 2)

	world := result.Entities[0]
	assert.False(t, world.Leaked)
	assert.Equal(t, 1, world.NumAreas)
	assert.False(t, result.Aborted)

	assert.True(t, result.Entities[1].Skipped)
}

func TestCompileHollowBoxMissingSideLeaksAbortsWorldspawn(t *testing.T) {
	table := planetable.New()
	walls := hollowBoxWalls(table, geo.Vec3{Z: 1})

	entities := []Entity{
		{EntityNum: 0, Worldspawn: true, Brushes: walls},
		{EntityNum: 1, Origin: geo.Vec3{}},
	}

	cctx := NewContext(Options{}, table)
	result, err := Compile(context.Background(), cctx, entities)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWorldspawnLeak))
	assert.True(t, result.Aborted)
	require.True(t, result.Entities[0].Leaked)
	require.NotNil(t, result.Entities[0].LeakTrail)
	assert.NotEmpty(t, result.Entities[0].LeakTrail.Points)
}

func TestCompileNoEntitiesErrors(t *testing.T) {
	cctx := NewContext(Options{}, planetable.New())
	_, err := Compile(context.Background(), cctx, nil)
	assert.ErrorIs(t, err, ErrNoEntities)
}
