package fixtures

import (
	"context"
	"errors"
	"testing"

	"github.com/ashenforge/dmap/compiler"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/planetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCubeWorldspawnHasNoReachableArea(t *testing.T) {
	table := planetable.New()
	cctx := compiler.NewContext(compiler.Options{}, table)

	result, err := compiler.Compile(context.Background(), cctx, UnitCubeWorldspawn(table))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Entities[0].NumAreas)
}

func TestHollowBoxWithOccupantHasOneArea(t *testing.T) {
	table := planetable.New()
	cctx := compiler.NewContext(compiler.Options{}, table)

	result, err := compiler.Compile(context.Background(), cctx, HollowBoxWithOccupant(table))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Entities[0].NumAreas)
	assert.False(t, result.Entities[0].Leaked)
}

func TestHollowBoxMissingSideLeaks(t *testing.T) {
	table := planetable.New()
	cctx := compiler.NewContext(compiler.Options{}, table)

	result, err := compiler.Compile(context.Background(), cctx, HollowBoxMissingSide(table, geo.Vec3{Z: 1}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, compiler.ErrWorldspawnLeak))
	require.NotNil(t, result.Entities[0].LeakTrail)
}

func TestTwoRoomsWithAreaportalHasTwoAreasAndOnePortal(t *testing.T) {
	table := planetable.New()
	cctx := compiler.NewContext(compiler.Options{}, table)

	result, err := compiler.Compile(context.Background(), cctx, TwoRoomsWithAreaportal(table))
	require.NoError(t, err)

	world := result.Entities[0]
	assert.False(t, world.Leaked)
	assert.Equal(t, 2, world.NumAreas)
	require.Len(t, world.InterAreaPortals, 1)
	portal := world.InterAreaPortals[0]
	assert.ElementsMatch(t, []int{0, 1}, []int{portal.AreaA, portal.AreaB})
}

func TestForcedBlockSizeBarCutsNearRoot(t *testing.T) {
	table := planetable.New()
	cctx := compiler.NewContext(compiler.Options{BlockSize: geo.Vec3{X: 1024, Y: 1024, Z: 1024}}, table)

	result, err := compiler.Compile(context.Background(), cctx, ForcedBlockSizeBar(table))
	require.NoError(t, err)

	tree := result.Entities[0].Tree
	require.NotNil(t, tree)
	assert.False(t, tree.Root.Leaf(), "forced block cut must introduce an interior split")
}
