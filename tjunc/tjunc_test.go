package tjunc

import (
	"testing"

	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/clip"
	"github.com/ashenforge/dmap/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixAreaTjunctionsSplitsEdgeAtForeignVertex(t *testing.T) {
	// A big triangle whose bottom edge (0,0,0)-(10,0,0) is crossed by a
	// T-junction vertex at (5,0,0) belonging to a neighbouring triangle.
	big := brush.MeshTriangle{Vertices: [3]geo.Vec3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 5, Y: 10, Z: 0}}}
	neighbor := brush.MeshTriangle{Vertices: [3]geo.Vec3{{X: 5, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 7, Y: -5, Z: 0}}}

	fixed := FixAreaTjunctions([]brush.MeshTriangle{big, neighbor})

	// The big triangle's bottom edge should have been split in two,
	// producing one extra triangle versus the unrepaired input.
	assert.Greater(t, len(fixed), 2)

	var sawSplitVertex bool
	for _, tri := range fixed {
		for _, v := range tri.Vertices {
			if v.ApproxEqual(geo.Vec3{X: 5, Y: 0, Z: 0}, 1e-9) {
				sawSplitVertex = true
			}
		}
	}
	assert.True(t, sawSplitVertex)
}

func TestFixAreaTjunctionsLeavesCleanTrianglesAlone(t *testing.T) {
	tri := brush.MeshTriangle{Vertices: [3]geo.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}}
	fixed := FixAreaTjunctions([]brush.MeshTriangle{tri})
	require.Len(t, fixed, 1)
	assert.Equal(t, tri.Vertices, fixed[0].Vertices)
}

func TestFixGlobalTjunctionsWeldsAcrossAreas(t *testing.T) {
	big := brush.MeshTriangle{Vertices: [3]geo.Vec3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 5, Y: 10, Z: 0}}}
	neighborAreaB := brush.MeshTriangle{Vertices: [3]geo.Vec3{{X: 5, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 7, Y: -5, Z: 0}}}

	buckets := clip.AreaTriangles{
		0: {big},
		1: {neighborAreaB},
	}

	fixed := FixGlobalTjunctions(buckets)
	assert.Greater(t, len(fixed[0]), 1, "area 0's triangle should have been split by area 1's vertex")
}
