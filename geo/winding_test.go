package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareWinding() *Winding {
	return &Winding{Points: []Vec3{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: -1, Y: 1, Z: 0},
	}}
}

func TestWindingArea(t *testing.T) {
	w := squareWinding()
	assert.InDelta(t, 4.0, w.Area(), 1e-9)
}

func TestWindingClassifySide(t *testing.T) {
	w := squareWinding()
	plane := Plane{A: 0, B: 0, C: 1, D: 0} // z = 0, winding lies on it
	assert.Equal(t, On, w.ClassifySide(plane, ClipEpsilon))

	above := Plane{A: 0, B: 0, C: 1, D: 5}
	assert.Equal(t, Back, w.ClassifySide(above, ClipEpsilon))
}

// TestWindingSplitBySelfPlaneIsIdentity covers the idempotence property
// from spec §8: splitting a winding by its own plane classifies it ON and
// returns no front or back fragment, leaving the input untouched.
func TestWindingSplitBySelfPlaneIsIdentity(t *testing.T) {
	w := squareWinding()
	plane := w.Plane()
	front, back, side := w.Split(plane, ClipEpsilon)
	assert.Equal(t, On, side)
	assert.Nil(t, front)
	assert.Nil(t, back)
}

func TestWindingSplitCrossing(t *testing.T) {
	w := squareWinding()
	plane := Plane{A: 1, B: 0, C: 0, D: 0} // x = 0 cuts the square in half
	front, back, side := w.Split(plane, ClipEpsilon)
	require.Equal(t, Cross, side)
	require.NotNil(t, front)
	require.NotNil(t, back)
	assert.InDelta(t, 2.0, front.Area(), 1e-9)
	assert.InDelta(t, 2.0, back.Area(), 1e-9)
}

func TestBaseWindingForPlaneLiesOnPlane(t *testing.T) {
	plane := NewPlane(Vec3{X: 1}, 4)
	w := BaseWindingForPlane(plane, 1<<16)
	for _, p := range w.Points {
		assert.InDelta(t, 0, plane.Distance(p), 1e-6)
	}
}
