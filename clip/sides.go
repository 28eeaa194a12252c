package clip

import (
	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/geo"
)

// ClipSidesByTree pushes w down tree, splitting at every plane crossed,
// and returns the fragment(s) that survive into non-opaque leaves — the
// visible hull of the side that owns w (§4.7).
func ClipSidesByTree(tree *bsp.Tree, w *geo.Winding, planes bsp.PlaneRegistry) []*geo.Winding {
	var out []*geo.Winding
	clipIntoLeaves(tree.Root, w, planes, &out)
	return out
}

func clipIntoLeaves(node *bsp.Node, w *geo.Winding, planes bsp.PlaneRegistry, out *[]*geo.Winding) {
	if !w.Valid() {
		return
	}
	if node.Leaf() {
		if !node.Opaque {
			*out = append(*out, w)
		}
		return
	}

	plane := planes.Get(node.PlaneIndex)
	switch w.ClassifySide(plane, geo.ClipEpsilon) {
	case geo.Front, geo.On:
		clipIntoLeaves(node.Children[0], w, planes, out)
	case geo.Back:
		clipIntoLeaves(node.Children[1], w, planes, out)
	case geo.Cross:
		fw, bw, _ := w.Split(plane, geo.ClipEpsilon)
		clipIntoLeaves(node.Children[0], fw, planes, out)
		clipIntoLeaves(node.Children[1], bw, planes, out)
	}
}
