package flood

import (
	"context"

	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/portal"
	"github.com/google/uuid"
)

// LeakTrail is the sequence of portal midpoints from an occupant to the
// leak site, in travel order, suitable for a .lin trail file. RunID
// stamps which compile run produced it, so .lin files written by
// repeated runs over the same map don't collide on disk.
type LeakTrail struct {
	RunID  string
	Points []geo.Vec3
}

type parentInfo struct {
	via       *portal.Portal
	parentIdx int
}

// Flood performs a multi-source breadth-first expansion from every
// already-placed occupant leaf through passable portals (§4.5 step 3).
// Reaching the outside sentinel, or a leaf already claimed by a
// different occupant, is a leak: Flood returns ErrLeak along with the
// trail connecting the two.
//
// ctx is checked once per dequeued leaf so a pathological flood over a
// huge tree remains cancellable.
func Flood(ctx context.Context, g *portal.Graph, occupantLeaves []*bsp.Node) (*LeakTrail, error) {
	parent := make(map[int]parentInfo)

	var queue []int
	for _, leaf := range occupantLeaves {
		if leaf == nil {
			continue
		}
		idx, ok := g.NodeIndex(leaf)
		if !ok {
			continue
		}
		queue = append(queue, idx)
	}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur := queue[0]
		queue = queue[1:]
		curNode := g.Node(cur)

		for _, p := range g.PortalsAt(cur) {
			neighborIdx := portal.Other(p, cur)

			// Passable treats the outside sentinel as opaque, so the
			// outside check runs before it.
			if neighborIdx == g.OutsideIndex() {
				if !curNode.Opaque {
					return reconstructTrail(parent, cur, p), ErrLeak
				}
				continue
			}

			if !g.Passable(p, false, nil) {
				continue
			}

			neighbor := g.Node(neighborIdx)
			if neighbor.Occupied {
				if neighbor.OccupantID != curNode.OccupantID {
					return reconstructTrail(parent, cur, p), ErrLeak
				}
				continue
			}

			neighbor.Occupied = true
			neighbor.OccupantID = curNode.OccupantID
			parent[neighborIdx] = parentInfo{via: p, parentIdx: cur}
			queue = append(queue, neighborIdx)
		}
	}

	return nil, nil
}

// reconstructTrail walks parent pointers from leafIdx back to its
// occupant's origin, collecting portal midpoints in travel order and
// appending finalPortal's midpoint — the step that reached the leak.
func reconstructTrail(parent map[int]parentInfo, leafIdx int, finalPortal *portal.Portal) *LeakTrail {
	var chain []*portal.Portal
	for cur := leafIdx; ; {
		info, ok := parent[cur]
		if !ok {
			break
		}
		chain = append(chain, info.via)
		cur = info.parentIdx
	}

	trail := &LeakTrail{RunID: uuid.NewString(), Points: make([]geo.Vec3, 0, len(chain)+1)}
	for i := len(chain) - 1; i >= 0; i-- {
		trail.Points = append(trail.Points, portalMidpoint(chain[i].Winding))
	}
	trail.Points = append(trail.Points, portalMidpoint(finalPortal.Winding))
	return trail
}

func portalMidpoint(w *geo.Winding) geo.Vec3 {
	var sum geo.Vec3
	for _, p := range w.Points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(w.Points)))
}

// FillOutside force-marks every non-occupied leaf opaque after a
// successful flood (§4.5 step 4): the unreachable space becomes the
// "outside" solid.
func FillOutside(root *bsp.Node) {
	if root == nil {
		return
	}
	if root.Leaf() {
		if !root.Occupied {
			root.Opaque = true
		}
		return
	}
	FillOutside(root.Children[0])
	FillOutside(root.Children[1])
}
