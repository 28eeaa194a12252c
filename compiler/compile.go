package compiler

import (
	"context"
	"fmt"

	"github.com/ashenforge/dmap/area"
	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/clip"
	"github.com/ashenforge/dmap/flood"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/planetable"
	"github.com/ashenforge/dmap/portal"
	"github.com/ashenforge/dmap/tjunc"
)

// Compile drives the full per-entity pipeline of §4.9 over entities,
// worldspawn (entities[0]) first. Per-entity split-plane use counters
// reset at each entity boundary; the plane registry in cctx.Planes does
// not. Unless Options.NoFlood is set, a worldspawn leak aborts the run
// (ErrWorldspawnLeak, with Aborted set on the returned result); any
// other entity's failure is recorded on its own EntityOutput and
// compilation continues.
func Compile(ctx context.Context, cctx *Context, entities []Entity) (*CompileResult, error) {
	if len(entities) == 0 {
		return nil, ErrNoEntities
	}

	result := &CompileResult{Entities: make([]EntityOutput, len(entities))}
	worldOrigins := collectPointEntityOrigins(entities)

	for i, e := range entities {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		out := EntityOutput{EntityNum: e.EntityNum}

		if e.IsPointEntity() {
			out.Skipped = true
			result.Entities[i] = out
			continue
		}

		cctx.Options.logf("compiling entity %d (worldspawn=%v)", e.EntityNum, e.Worldspawn)

		leaked, err := compileEntity(ctx, cctx, e, worldOrigins, &out)
		result.Entities[i] = out

		if err != nil {
			return result, fmt.Errorf("compiler: entity %d: %w", e.EntityNum, err)
		}
		if leaked && e.Worldspawn && !cctx.Options.NoFlood {
			result.Aborted = true
			return result, ErrWorldspawnLeak
		}
	}

	return result, nil
}

// collectPointEntityOrigins gathers the Origin of every bare point
// entity in the list; these seed worldspawn's occupant flood (§4.5 step
// 2, the "FloodEntities" branch of §4.9's pipeline).
func collectPointEntityOrigins(entities []Entity) []geo.Vec3 {
	var origins []geo.Vec3
	for _, e := range entities {
		if e.IsPointEntity() {
			origins = append(origins, e.Origin)
		}
	}
	return origins
}

// compileEntity runs one entity through face-list construction, BSP
// build, portalization, flood/leak, area assignment, side clipping and
// primitive distribution, and T-junction repair (§4.2-§4.8). It reports
// whether this entity's flood leaked, also when NoFlood let the entity
// continue past the leak. With NoFlood the outside pass (FillOutside)
// is skipped.
func compileEntity(ctx context.Context, cctx *Context, e Entity, worldOrigins []geo.Vec3, out *EntityOutput) (leaked bool, err error) {
	planeUseCount := make(map[int]int)

	faces, solidBrushes, warnings := makeStructuralFaceList(e, cctx.Planes)
	out.Warnings = append(out.Warnings, warnings...)
	if len(faces) == 0 {
		return false, nil
	}

	opts := bsp.Options{BlockSize: cctx.Options.BlockSize, AltSplit: cctx.Options.AltSplit}
	tree := bsp.FaceBSP(faces, cctx.Planes, opts, planeUseCount)
	out.Tree = tree
	cctx.Options.verbosef("entity %d: BSP built from %d faces", e.EntityNum, len(faces))

	flood.FilterBrushesIntoTree(tree, solidBrushes, cctx.Planes)

	g := portal.MakeTreePortals(tree, cctx.Planes)
	out.Graph = g
	cctx.Options.verbosef("entity %d: portalized, %d portals", e.EntityNum, len(g.AllPortals()))

	occupantLeaves := placeOccupants(cctx, tree, e, worldOrigins)

	trail, floodErr := flood.Flood(ctx, g, occupantLeaves)
	if floodErr != nil {
		leaked = true
		out.Leaked = true
		out.LeakTrail = trail
		cctx.Options.logf("entity %d leaked (%d occupants placed)", e.EntityNum, len(occupantLeaves))
		if !cctx.Options.NoFlood {
			return true, nil
		}
	}
	if !cctx.Options.NoFlood {
		flood.FillOutside(tree.Root)
	}

	isAreaPortal := areaPortalPredicate(solidBrushes, e.Meshes)
	areaResult := area.AssignAreas(g, tree.Root, isAreaPortal)
	out.NumAreas = areaResult.NumAreas
	out.InterAreaPortals = areaResult.InterAreaPortals
	out.Warnings = append(out.Warnings, areaResult.Warnings...)
	out.AreaResult = areaResult
	cctx.Options.verbosef("entity %d: %d areas, %d inter-area portals", e.EntityNum, areaResult.NumAreas, len(areaResult.InterAreaPortals))

	if !cctx.Options.NoClipSides {
		out.Sides = clipAllSides(tree, solidBrushes, cctx.Planes)
	}

	buckets := clip.PutPrimitivesInAreas(tree, collectMeshTriangles(e), cctx.Planes)
	if !cctx.Options.NoTjunc {
		buckets = repairTjunctions(buckets)
	}
	out.AreaTriangles = buckets

	return leaked, nil
}

// placeOccupants seeds the flood for one entity: for worldspawn, every
// bare point entity's origin; for everything else, a single occupant at
// the entity's own center (its explicit Origin, or its tree's bounds
// center when Origin was left unset) — §4.9's "PlaceOccupant at entity
// center" branch, extended to simpleBSP mesh-only entities as well as
// brush submodels, since both reach this branch the same way.
func placeOccupants(cctx *Context, tree *bsp.Tree, e Entity, worldOrigins []geo.Vec3) []*bsp.Node {
	var leaves []*bsp.Node

	if e.Worldspawn {
		for _, origin := range worldOrigins {
			occ := flood.Occupant{ID: cctx.allocOccupantID(), Origin: origin}
			if leaf := flood.PlaceOccupant(tree, cctx.Planes, occ); leaf != nil {
				leaves = append(leaves, leaf)
			}
		}
		return leaves
	}

	center := e.Origin
	if center == (geo.Vec3{}) {
		center = tree.Bounds.Min.Add(tree.Bounds.Max).Scale(0.5)
	}
	occ := flood.Occupant{ID: cctx.allocOccupantID(), Origin: center, EntityNum: e.EntityNum}
	if leaf := flood.PlaceOccupant(tree, cctx.Planes, occ); leaf != nil {
		leaves = append(leaves, leaf)
	}
	return leaves
}

// areaPortalPredicate builds the isAreaPortal function area.AssignAreas
// needs from the entity's materialised brushes and meshes: true for an
// areaportal brush side's or areaportal mesh triangle's plane index or
// its antiparallel mate, since a portal may carry either orientation of
// the same surface.
func areaPortalPredicate(brushes []*brush.Brush, meshes []*brush.Mesh) func(int) bool {
	portalPlanes := make(map[int]bool)
	mark := func(planeIndex int) {
		portalPlanes[planeIndex] = true
		portalPlanes[planetable.Opposite(planeIndex)] = true
	}
	for _, b := range brushes {
		if !b.AreaPortal {
			continue
		}
		for _, s := range b.Sides {
			mark(s.PlaneIndex)
		}
	}
	for _, m := range meshes {
		if !m.AreaPortal {
			continue
		}
		for _, tri := range m.Triangles {
			mark(tri.PlaneIndex)
		}
	}
	return func(planeIndex int) bool { return portalPlanes[planeIndex] }
}

// SideFragments is the visible-hull output of ClipSidesByTree for one
// brush side (§4.7): the portion of the side's winding surviving into
// non-opaque leaves.
type SideFragments struct {
	PlaneIndex int
	Material   string
	Fragments  []*geo.Winding
}

// clipAllSides runs ClipSidesByTree over every solid brush's sides.
func clipAllSides(tree *bsp.Tree, brushes []*brush.Brush, planes *planetable.Table) []SideFragments {
	var out []SideFragments
	for _, b := range brushes {
		for _, s := range b.Sides {
			if s.Winding == nil {
				continue
			}
			frags := clip.ClipSidesByTree(tree, s.Winding, planes)
			if len(frags) == 0 {
				continue
			}
			out = append(out, SideFragments{PlaneIndex: s.PlaneIndex, Material: s.Material, Fragments: frags})
		}
	}
	return out
}

// collectMeshTriangles flattens every mesh primitive's triangles for
// PutPrimitivesInAreas.
func collectMeshTriangles(e Entity) []brush.MeshTriangle {
	var tris []brush.MeshTriangle
	for _, m := range e.Meshes {
		tris = append(tris, m.Triangles...)
	}
	return tris
}

// repairTjunctions applies §4.8's two-pass weld: first within each
// area's own triangles, then once more across every area combined so
// areaportal seams weld too.
func repairTjunctions(buckets clip.AreaTriangles) clip.AreaTriangles {
	perArea := make(clip.AreaTriangles, len(buckets))
	for areaIdx, tris := range buckets {
		perArea[areaIdx] = tjunc.FixAreaTjunctions(tris)
	}
	return tjunc.FixGlobalTjunctions(perArea)
}
