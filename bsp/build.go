package bsp

import "github.com/ashenforge/dmap/geo"

// buildFrame is one pending node awaiting its faces to be partitioned (or
// turned into a leaf). Using an explicit stack instead of recursive calls
// keeps FaceBSP's stack depth independent of tree depth.
type buildFrame struct {
	node  *Node
	faces []*Face
}

// FaceBSP builds a BSP tree from faces, recursively selecting a split
// plane at every node per selectSplitPlane until no candidate remains, at
// which point the node becomes a leaf carrying whatever faces still face
// into it. planeUseCount is mutated as the build proceeds so callers can
// inspect per-plane split counts afterward (or pass a fresh map per
// entity to keep counts entity-scoped, per §4.9).
func FaceBSP(faces []*Face, planes PlaneRegistry, opts Options, planeUseCount map[int]int) *Tree {
	bounds := computeFaceBounds(faces)
	root := &Node{Bounds: bounds, Area: -1}

	stack := []buildFrame{{node: root, faces: faces}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		plane, ok := selectSplitPlane(top.faces, top.node.Bounds, planes, opts, planeUseCount)
		if !ok {
			top.node.PlaneIndex = LeafSentinel
			top.node.Faces = top.faces
			continue
		}

		planeUseCount[plane]++
		top.node.PlaneIndex = plane

		nodePlane := planes.Get(plane)
		frontFaces, backFaces := partitionFaces(top.faces, nodePlane)
		frontBounds, backBounds := tightenChildBounds(top.node.Bounds, nodePlane)

		frontNode := &Node{Bounds: frontBounds, Area: -1}
		backNode := &Node{Bounds: backBounds, Area: -1}
		top.node.Children[0] = frontNode
		top.node.Children[1] = backNode

		stack = append(stack, buildFrame{node: frontNode, faces: frontFaces})
		stack = append(stack, buildFrame{node: backNode, faces: backFaces})
	}

	AssignNodeNumbers(root)
	return &Tree{Root: root, Bounds: bounds}
}

// partitionFaces classifies every face against nodePlane: coincident
// faces are dropped (they became the node's own splitting plane and don't
// propagate), front/back faces pass through unchanged, and crossing faces
// are split into front and back fragments that each retain the parent
// face's plane index.
func partitionFaces(faces []*Face, nodePlane geo.Plane) (front, back []*Face) {
	for _, f := range faces {
		switch f.Winding.ClassifySide(nodePlane, geo.ClipEpsilon) {
		case geo.On:
			// Coincident with the node's own plane; dropped.
		case geo.Front:
			front = append(front, f)
		case geo.Back:
			back = append(back, f)
		case geo.Cross:
			fw, bw, _ := f.Winding.Split(nodePlane, 2*geo.ClipEpsilon)
			if fw.Valid() {
				front = append(front, &Face{Winding: fw, PlaneIndex: f.PlaneIndex, Portal: f.Portal, SimpleBSP: f.SimpleBSP})
			}
			if bw.Valid() {
				back = append(back, &Face{Winding: bw, PlaneIndex: f.PlaneIndex, Portal: f.Portal, SimpleBSP: f.SimpleBSP})
			}
		}
	}
	return front, back
}

// tightenChildBounds implements §4.3 step 4: when the splitting plane is
// axial, the appropriate axis bound of each child is tightened to the
// plane's true cut position; oblique planes leave both children with the
// parent's bounds.
func tightenChildBounds(bounds geo.Bounds, plane geo.Plane) (front, back geo.Bounds) {
	front, back = bounds, bounds

	pt := plane.Type()
	if !pt.IsAxial() {
		return
	}

	var axis geo.Axis
	var normalComp float64
	switch pt {
	case geo.AxialX:
		axis, normalComp = geo.AxisX, plane.A
	case geo.AxialY:
		axis, normalComp = geo.AxisY, plane.B
	default:
		axis, normalComp = geo.AxisZ, plane.C
	}

	trueCut := plane.D
	if normalComp < 0 {
		trueCut = -trueCut
	}

	if normalComp > 0 {
		front.Min = front.Min.WithComponent(axis, trueCut)
		back.Max = back.Max.WithComponent(axis, trueCut)
	} else {
		front.Max = front.Max.WithComponent(axis, trueCut)
		back.Min = back.Min.WithComponent(axis, trueCut)
	}
	return
}

// computeFaceBounds returns the bounds enclosing every face's winding.
func computeFaceBounds(faces []*Face) geo.Bounds {
	b := geo.EmptyBounds()
	for _, f := range faces {
		if f.Winding.Valid() {
			b = b.Union(f.Winding.Bounds())
		}
	}
	return b
}

// AssignNodeNumbers assigns Number to every node in root's tree via a
// deterministic post-order traversal (§5): children before parents,
// front child before back child.
func AssignNodeNumbers(root *Node) {
	n := 0
	var walk func(*Node)
	walk = func(node *Node) {
		if node == nil {
			return
		}
		if !node.Leaf() {
			walk(node.Children[0])
			walk(node.Children[1])
		}
		node.Number = n
		n++
	}
	walk(root)
}
