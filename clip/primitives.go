package clip

import (
	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/geo"
)

// AreaTriangles buckets surviving mesh-primitive triangle fragments by
// the area id of the leaf they landed in.
type AreaTriangles map[int][]brush.MeshTriangle

// PutPrimitivesInAreas pushes every triangle in tris down tree, splitting
// at each plane it crosses, discarding fragments that land in an opaque
// leaf, and bucketing survivors by their leaf's area (§4.7). A triangle
// whose source mesh is areaportal-flagged is instead recorded on the
// leaf it lands in (leaf.AreaPortalTris) rather than bucketed, since an
// areaportal surface marks a portal plane and isn't itself rendered.
func PutPrimitivesInAreas(tree *bsp.Tree, tris []brush.MeshTriangle, planes bsp.PlaneRegistry) AreaTriangles {
	buckets := make(AreaTriangles)
	for _, tri := range tris {
		distributeTriangle(tree.Root, tri, planes, buckets)
	}
	return buckets
}

func distributeTriangle(node *bsp.Node, tri brush.MeshTriangle, planes bsp.PlaneRegistry, buckets AreaTriangles) {
	if node.Leaf() {
		if node.Opaque {
			return
		}
		if tri.Source != nil && tri.Source.AreaPortal {
			node.AreaPortalTris = append(node.AreaPortalTris, tri)
			return
		}
		buckets[node.Area] = append(buckets[node.Area], tri)
		return
	}

	plane := planes.Get(node.PlaneIndex)
	w := geo.NewWinding(tri.Vertices[:])

	switch w.ClassifySide(plane, geo.ClipEpsilon) {
	case geo.Front, geo.On:
		distributeTriangle(node.Children[0], tri, planes, buckets)
	case geo.Back:
		distributeTriangle(node.Children[1], tri, planes, buckets)
	case geo.Cross:
		fw, bw, _ := w.Split(plane, geo.ClipEpsilon)
		for _, ft := range fanTriangulate(fw, tri) {
			distributeTriangle(node.Children[0], ft, planes, buckets)
		}
		for _, bt := range fanTriangulate(bw, tri) {
			distributeTriangle(node.Children[1], bt, planes, buckets)
		}
	}
}

// fanTriangulate re-triangulates a (possibly quad) split fragment back
// into triangles carrying src's plane index, material and source mesh.
func fanTriangulate(w *geo.Winding, src brush.MeshTriangle) []brush.MeshTriangle {
	if !w.Valid() {
		return nil
	}
	out := make([]brush.MeshTriangle, 0, len(w.Points)-2)
	for i := 1; i+1 < len(w.Points); i++ {
		out = append(out, brush.MeshTriangle{
			PlaneIndex: src.PlaneIndex,
			Vertices:   [3]geo.Vec3{w.Points[0], w.Points[i], w.Points[i+1]},
			Material:   src.Material,
			Source:     src.Source,
		})
	}
	return out
}
