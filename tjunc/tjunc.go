package tjunc

import (
	"sort"

	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/clip"
	"github.com/ashenforge/dmap/geo"
)

// FixAreaTjunctions repairs T-junctions within a single area's triangle
// list (§4.8): every edge of every triangle is checked against every
// other triangle's vertices in tris, and split to include any that lie
// on it.
func FixAreaTjunctions(tris []brush.MeshTriangle) []brush.MeshTriangle {
	verts := collectVertices(tris)
	out := make([]brush.MeshTriangle, 0, len(tris))
	for _, tri := range tris {
		out = append(out, repairTriangle(tri, verts)...)
	}
	return out
}

// FixGlobalTjunctions repeats the scan across every area in buckets, so a
// vertex on one side of an areaportal welds the seam on the other side
// too.
func FixGlobalTjunctions(buckets clip.AreaTriangles) clip.AreaTriangles {
	var allVerts []geo.Vec3
	for _, tris := range buckets {
		allVerts = append(allVerts, collectVertices(tris)...)
	}

	out := make(clip.AreaTriangles, len(buckets))
	for areaIdx, tris := range buckets {
		fixed := make([]brush.MeshTriangle, 0, len(tris))
		for _, tri := range tris {
			fixed = append(fixed, repairTriangle(tri, allVerts)...)
		}
		out[areaIdx] = fixed
	}
	return out
}

func collectVertices(tris []brush.MeshTriangle) []geo.Vec3 {
	var verts []geo.Vec3
	for _, tri := range tris {
		for _, v := range tri.Vertices {
			verts = appendUnique(verts, v)
		}
	}
	return verts
}

func appendUnique(verts []geo.Vec3, p geo.Vec3) []geo.Vec3 {
	for _, v := range verts {
		if v.ApproxEqual(p, geo.TJuncEpsilon) {
			return verts
		}
	}
	return append(verts, p)
}

// repairTriangle rebuilds tri's edges with any of verts found to lie on
// them, fanning the resulting polygon from its first vertex.
func repairTriangle(tri brush.MeshTriangle, verts []geo.Vec3) []brush.MeshTriangle {
	v0, v1, v2 := tri.Vertices[0], tri.Vertices[1], tri.Vertices[2]

	poly := make([]geo.Vec3, 0, 3)
	poly = append(poly, v0)
	poly = append(poly, pointsOnSegment(v0, v1, verts)...)
	poly = append(poly, v1)
	poly = append(poly, pointsOnSegment(v1, v2, verts)...)
	poly = append(poly, v2)
	poly = append(poly, pointsOnSegment(v2, v0, verts)...)

	if len(poly) == 3 {
		return []brush.MeshTriangle{tri}
	}

	out := make([]brush.MeshTriangle, 0, len(poly)-2)
	for i := 1; i+1 < len(poly); i++ {
		out = append(out, brush.MeshTriangle{
			PlaneIndex: tri.PlaneIndex,
			Vertices:   [3]geo.Vec3{poly[0], poly[i], poly[i+1]},
			Material:   tri.Material,
			Source:     tri.Source,
		})
	}
	return out
}

// pointsOnSegment returns every point in verts that lies strictly between
// a and b, within T_JUNC_EPSILON of the segment, ordered by distance
// from a.
func pointsOnSegment(a, b geo.Vec3, verts []geo.Vec3) []geo.Vec3 {
	dir := b.Sub(a)
	length := dir.Length()
	if length < 1e-9 {
		return nil
	}
	unit := dir.Scale(1 / length)

	type hit struct {
		t float64
		p geo.Vec3
	}
	var hits []hit
	for _, p := range verts {
		if p.ApproxEqual(a, geo.TJuncEpsilon) || p.ApproxEqual(b, geo.TJuncEpsilon) {
			continue
		}
		t := p.Sub(a).Dot(unit)
		if t <= geo.TJuncEpsilon || t >= length-geo.TJuncEpsilon {
			continue
		}
		proj := a.Add(unit.Scale(t))
		if p.Sub(proj).Length() > geo.TJuncEpsilon {
			continue
		}
		hits = append(hits, hit{t: t, p: p})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })

	out := make([]geo.Vec3, 0, len(hits))
	for _, h := range hits {
		if len(out) > 0 && h.p.ApproxEqual(out[len(out)-1], geo.TJuncEpsilon) {
			continue
		}
		out = append(out, h.p)
	}
	return out
}
