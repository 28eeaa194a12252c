package objdebug

import (
	"fmt"
	"io"

	"github.com/ashenforge/dmap/area"
	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/portal"
)

// Writer accumulates a single Wavefront OBJ stream across multiple
// Write* calls, since face lines reference vertex indices that are
// global to the whole file, not to one group.
type Writer struct {
	w         io.Writer
	nextIndex int
}

// NewWriter wraps w for debug OBJ emission. w is written to linearly;
// callers own opening and closing it.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, nextIndex: 1}
}

func (ow *Writer) group(name string) error {
	_, err := fmt.Fprintf(ow.w, "g %s\n", name)
	return err
}

func (ow *Writer) vertex(p geo.Vec3, color [3]float64) (int, error) {
	idx := ow.nextIndex
	_, err := fmt.Fprintf(ow.w, "v %g %g %g %g %g %g\n", p.X, p.Y, p.Z, color[0], color[1], color[2])
	ow.nextIndex++
	return idx, err
}

// polygon writes points as one v-per-vertex run followed by a single f
// line referencing them, all tinted color.
func (ow *Writer) polygon(points []geo.Vec3, color [3]float64) error {
	if len(points) < 3 {
		return nil
	}
	indices := make([]int, 0, len(points))
	for _, p := range points {
		idx, err := ow.vertex(p, color)
		if err != nil {
			return err
		}
		indices = append(indices, idx)
	}
	if _, err := fmt.Fprint(ow.w, "f"); err != nil {
		return err
	}
	for _, idx := range indices {
		if _, err := fmt.Fprintf(ow.w, " %d", idx); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(ow.w, "\n")
	return err
}

// boxEdges are the 12 vertex-index pairs (0-based, into the 8-corner
// ordering used by box) forming a wireframe cube.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func boxCorners(b geo.Bounds) [8]geo.Vec3 {
	return [8]geo.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z}, {X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z}, {X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z}, {X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z}, {X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// box writes b's 8 corners and 12 wireframe edges as `l` lines, tinted
// color.
func (ow *Writer) box(b geo.Bounds, color [3]float64) error {
	corners := boxCorners(b)
	indices := make([]int, 8)
	for i, c := range corners {
		idx, err := ow.vertex(c, color)
		if err != nil {
			return err
		}
		indices[i] = idx
	}
	for _, e := range boxEdges {
		if _, err := fmt.Fprintf(ow.w, "l %d %d\n", indices[e[0]], indices[e[1]]); err != nil {
			return err
		}
	}
	return nil
}

// WriteFaceList emits faces as one group, one tinted colour per input
// face so overlapping structural surfaces from different brushes remain
// distinguishable (spec §6: "a small per-surface tint increment").
func (ow *Writer) WriteFaceList(label string, faces []*bsp.Face, base [3]float64) error {
	if err := ow.group(label); err != nil {
		return err
	}
	for i, f := range faces {
		if f.Winding == nil || !f.Winding.Valid() {
			continue
		}
		tint := Tint(base, 0.02*float64(i%10))
		if err := ow.polygon(f.Winding.Points, tint); err != nil {
			return err
		}
	}
	return nil
}

// WriteLeafBoundingBoxes walks tree and emits one wireframe box per
// leaf, grouped and coloured by the leaf's area (opaque/unassigned
// leaves get the neutral opaque colour).
func (ow *Writer) WriteLeafBoundingBoxes(tree *bsp.Tree) error {
	var walk func(n *bsp.Node) error
	walk = func(n *bsp.Node) error {
		if n == nil {
			return nil
		}
		if n.Leaf() {
			color := AreaColor(n.Area)
			if n.Opaque {
				color = opaqueColor
			}
			if err := ow.group(fmt.Sprintf("leaf_%d_area_%d", n.Number, n.Area)); err != nil {
				return err
			}
			return ow.box(n.Bounds, color)
		}
		if err := walk(n.Children[0]); err != nil {
			return err
		}
		return walk(n.Children[1])
	}
	return walk(tree.Root)
}

// WriteLeafFaceLists walks tree and emits one group per leaf holding
// that leaf's surviving structural faces, tinted by the leaf's area —
// the "input face lists" debug visual (spec §6), scoped per leaf rather
// than per entity so overlapping leaves stay distinguishable.
func (ow *Writer) WriteLeafFaceLists(tree *bsp.Tree) error {
	var walk func(n *bsp.Node) error
	walk = func(n *bsp.Node) error {
		if n == nil {
			return nil
		}
		if n.Leaf() {
			if len(n.Faces) == 0 {
				return nil
			}
			return ow.WriteFaceList(fmt.Sprintf("leaf_%d_faces", n.Number), n.Faces, AreaColor(n.Area))
		}
		if err := walk(n.Children[0]); err != nil {
			return err
		}
		return walk(n.Children[1])
	}
	return walk(tree.Root)
}

// WriteLeafAreaPortalTris walks tree and emits one group per leaf
// holding that leaf's areaportal mesh-primitive triangles (C9's
// per-leaf areaportal distribution), distinct from the BSP inter-area
// portal polygons WriteAreaPortalTriangles emits.
func (ow *Writer) WriteLeafAreaPortalTris(tree *bsp.Tree) error {
	var walk func(n *bsp.Node) error
	walk = func(n *bsp.Node) error {
		if n == nil {
			return nil
		}
		if n.Leaf() {
			if len(n.AreaPortalTris) == 0 {
				return nil
			}
			if err := ow.group(fmt.Sprintf("leaf_%d_areaportal_tris", n.Number)); err != nil {
				return err
			}
			for _, tri := range n.AreaPortalTris {
				if err := ow.polygon(tri.Vertices[:], areaPortalTrisColor); err != nil {
					return err
				}
			}
			return nil
		}
		if err := walk(n.Children[0]); err != nil {
			return err
		}
		return walk(n.Children[1])
	}
	return walk(tree.Root)
}

// WriteAreaPortalTriangles emits one group per inter-area portal,
// coloured by a tint of both connected areas' colours averaged.
func (ow *Writer) WriteAreaPortalTriangles(result *area.Result) error {
	for i, p := range result.InterAreaPortals {
		if err := ow.group(fmt.Sprintf("areaportal_%d_%dto%d", i, p.AreaA, p.AreaB)); err != nil {
			return err
		}
		a, b := AreaColor(p.AreaA), AreaColor(p.AreaB)
		mix := [3]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
		if p.Winding == nil || !p.Winding.Valid() {
			continue
		}
		if err := ow.polygon(p.Winding.Points, mix); err != nil {
			return err
		}
	}
	return nil
}

// WritePortalGraph emits every surviving portal in g as its own group
// and face, coloured by the lower of its two incident leaves' areas.
func (ow *Writer) WritePortalGraph(g *portal.Graph) error {
	for i, p := range g.AllPortals() {
		if p.Winding == nil || !p.Winding.Valid() {
			continue
		}
		area0, area1 := -1, -1
		if n0 := g.Node(p.Nodes[0]); n0 != nil {
			area0 = n0.Area
		}
		if n1 := g.Node(p.Nodes[1]); n1 != nil {
			area1 = n1.Area
		}
		colorArea := area0
		if area1 >= 0 && (colorArea < 0 || area1 < colorArea) {
			colorArea = area1
		}
		if err := ow.group(fmt.Sprintf("portal_%d", i)); err != nil {
			return err
		}
		if err := ow.polygon(p.Winding.Points, AreaColor(colorArea)); err != nil {
			return err
		}
	}
	return nil
}
