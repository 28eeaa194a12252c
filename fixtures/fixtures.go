package fixtures

import (
	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/compiler"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/planetable"
)

// boxBrush builds a solid axis-aligned brush spanning [min,max].
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
// [-half,half]^3 (wallThickness deep), optionally omitting one named
// side (by outward normal) to produce a leak.
func hollowBoxWalls(table *planetable.Table, half, wallThickness float64, omitNormal geo.Vec3) []*brush.Brush {
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

		pad := half + wallThickness
		min := geo.Vec3{X: -pad, Y: -pad, Z: -pad}
		max := geo.Vec3{X: pad, Y: pad, Z: pad}
		center := w.sign * half
		lo, hi := center-wallThickness/2, center+wallThickness/2
		if lo > hi {
			lo, hi = hi, lo
		}
		min = min.WithComponent(w.axis, lo)
		max = max.WithComponent(w.axis, hi)

		out = append(out, boxBrush(min, max, table, brush.ContentSolid|brush.ContentOpaque))
	}
	return out
}

// UnitCubeWorldspawn is spec §8 scenario 1: one solid unit cube, no
// entities, no reachable interior.
func UnitCubeWorldspawn(table *planetable.Table) []compiler.Entity {
	cube := boxBrush(geo.Vec3{X: -1, Y: -1, Z: -1}, geo.Vec3{X: 1, Y: 1, Z: 1}, table, brush.ContentSolid|brush.ContentOpaque)
	return []compiler.Entity{
		{EntityNum: 0, Worldspawn: true, Brushes: []*brush.Brush{cube}},
	}
}

// HollowBoxWithOccupant is spec §8 scenario 2: a closed hollow box with
// one point entity seeding the occupant flood from its center.
func HollowBoxWithOccupant(table *planetable.Table) []compiler.Entity {
	walls := hollowBoxWalls(table, 64, 8, geo.Vec3{})
	return []compiler.Entity{
		{EntityNum: 0, Worldspawn: true, Brushes: walls},
		{EntityNum: 1, Origin: geo.Vec3{}},
	}
}

// HollowBoxMissingSide is spec §8 scenario 3: the same hollow box with
// one named wall (by outward normal, e.g. geo.Vec3{Z: 1} for +Z) left
// out, producing a leak.
func HollowBoxMissingSide(table *planetable.Table, omitNormal geo.Vec3) []compiler.Entity {
	walls := hollowBoxWalls(table, 64, 8, omitNormal)
	return []compiler.Entity{
		{EntityNum: 0, Worldspawn: true, Brushes: walls},
		{EntityNum: 1, Origin: geo.Vec3{}},
	}
}

// TwoRoomsWithAreaportal is spec §8 scenario 4: one hollow box spanning
// [-64,64]^3 split in half by a thin areaportal slab at x=0, with an
// occupant in each half.
func TwoRoomsWithAreaportal(table *planetable.Table) []compiler.Entity {
	outer := hollowBoxWalls(table, 64, 8, geo.Vec3{})

	portalSlab := boxBrush(
		geo.Vec3{X: -4, Y: -64, Z: -64},
		geo.Vec3{X: 4, Y: 64, Z: 64},
		table,
		brush.ContentSolid|brush.ContentAreaPortal,
	)
	portalSlab.AreaPortal = true

	brushes := append(append([]*brush.Brush{}, outer...), portalSlab)

	return []compiler.Entity{
		{EntityNum: 0, Worldspawn: true, Brushes: brushes},
		{EntityNum: 1, Origin: geo.Vec3{X: -32}},
		{EntityNum: 2, Origin: geo.Vec3{X: 32}},
	}
}

// ForcedBlockSizeBar is spec §8 scenario 5: a single 3000x300x300 solid
// bar, meant to be compiled with a forced block size of 1024 1024 1024
// so axial cuts appear near the root at x=1024 and x=2048.
func ForcedBlockSizeBar(table *planetable.Table) []compiler.Entity {
	bar := boxBrush(
		geo.Vec3{X: 0, Y: -150, Z: -150},
		geo.Vec3{X: 3000, Y: 150, Z: 150},
		table,
		brush.ContentSolid|brush.ContentOpaque,
	)
	return []compiler.Entity{
		{EntityNum: 0, Worldspawn: true, Brushes: []*brush.Brush{bar}},
	}
}
