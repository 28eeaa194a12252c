package geo

import (
	"errors"
	"math"
)

// ErrDegenerateWinding is returned when an operation would produce a
// winding with fewer than 3 vertices or zero area — the "degenerate
// winding" error kind from the compiler's error-handling design (§7):
// the fragment is dropped by the caller, a warning emitted, and
// computation continues.
var ErrDegenerateWinding = errors.New("geo: degenerate winding")

// Side classifies a point or a whole winding against a plane.
type Side int

const (
	Front Side = iota
	Back
	Cross
	On
)

// Winding is a convex, planar, ordered ring of vertices with no duplicate
// adjacent vertices. It owns its vertex slice exclusively: splitting or
// clipping a winding destroys the input per the ownership rules in §3.
type Winding struct {
	Points []Vec3
}

// NewWinding wraps pts as a Winding without copying.
func NewWinding(pts []Vec3) *Winding { return &Winding{Points: pts} }

// Copy returns a deep copy of w.
func (w *Winding) Copy() *Winding {
	pts := make([]Vec3, len(w.Points))
	copy(pts, w.Points)
	return &Winding{Points: pts}
}

// Reverse flips winding order in place.
func (w *Winding) Reverse() {
	for i, j := 0, len(w.Points)-1; i < j; i, j = i+1, j-1 {
		w.Points[i], w.Points[j] = w.Points[j], w.Points[i]
	}
}

// Valid reports whether w has at least 3 vertices and non-zero area.
func (w *Winding) Valid() bool {
	return w != nil && len(w.Points) >= 3 && w.Area() > 1e-6
}

// Area returns the winding's polygon area via the standard cross-product
// fan-triangulation formula.
func (w *Winding) Area() float64 {
	if len(w.Points) < 3 {
		return 0
	}
	var total Vec3
	origin := w.Points[0]
	for i := 1; i+1 < len(w.Points); i++ {
		e1 := w.Points[i].Sub(origin)
		e2 := w.Points[i+1].Sub(origin)
		total = total.Add(e1.Cross(e2))
	}
	return total.Length() * 0.5
}

// Plane rederives the winding's supporting plane from its first three
// vertices. Callers that already know the plane index should prefer that
// over recomputation, which is why bsp.Face and brush.Side carry an explicit
// plane index rather than relying on this.
func (w *Winding) Plane() Plane {
	if len(w.Points) < 3 {
		return Plane{}
	}
	return PlaneFromPoints(w.Points[0], w.Points[1], w.Points[2])
}

// Bounds returns the axis-aligned bounds of w's vertices.
func (w *Winding) Bounds() Bounds {
	b := EmptyBounds()
	for _, p := range w.Points {
		b = b.ExpandPoint(p)
	}
	return b
}

// ClassifyPoint classifies a single point against plane using eps.
func ClassifyPoint(plane Plane, p Vec3, eps float64) Side {
	d := plane.Distance(p)
	switch {
	case d > eps:
		return Front
	case d < -eps:
		return Back
	default:
		return On
	}
}

// ClassifySide classifies the whole winding against plane using eps,
// returning On only when every vertex is within eps of the plane, Front
// or Back when every vertex lies (weakly) on one side, and Cross
// otherwise.
func (w *Winding) ClassifySide(plane Plane, eps float64) Side {
	var front, back int
	for _, p := range w.Points {
		switch ClassifyPoint(plane, p, eps) {
		case Front:
			front++
		case Back:
			back++
		}
	}
	switch {
	case front == 0 && back == 0:
		return On
	case back == 0:
		return Front
	case front == 0:
		return Back
	default:
		return Cross
	}
}

// Split partitions w against plane using eps. It returns the front and
// back fragments (either may be nil if w lies entirely on the other
// side), and an overall Side classification (On when w is coincident
// with plane, Front/Back when it didn't actually cross, Cross otherwise).
//
// Split destroys w per the winding ownership rule: callers must not reuse
// w.Points after calling Split.
func (w *Winding) Split(plane Plane, eps float64) (front, back *Winding, side Side) {
	n := len(w.Points)
	if n == 0 {
		return nil, nil, On
	}

	dists := make([]float64, n)
	sides := make([]Side, n)
	var counts [3]int // Front, Back, On
	for i, p := range w.Points {
		d := plane.Distance(p)
		dists[i] = d
		switch {
		case d > eps:
			sides[i] = Front
		case d < -eps:
			sides[i] = Back
		default:
			sides[i] = On
		}
		counts[sides[i]]++
	}

	switch {
	case counts[Front] == 0 && counts[Back] == 0:
		return nil, nil, On
	case counts[Back] == 0:
		return w, nil, Front
	case counts[Front] == 0:
		return nil, w, Back
	}

	var frontPts, backPts []Vec3
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := w.Points[i], w.Points[j]
		si, sj := sides[i], sides[j]

		if si == On {
			frontPts = append(frontPts, pi)
			backPts = append(backPts, pi)
		} else {
			if si == Front {
				frontPts = append(frontPts, pi)
			} else {
				backPts = append(backPts, pi)
			}
			if sj != On && sj != si {
				t := dists[i] / (dists[i] - dists[j])
				mid := pi.Lerp(pj, t)
				frontPts = append(frontPts, mid)
				backPts = append(backPts, mid)
			}
		}
	}

	return &Winding{Points: frontPts}, &Winding{Points: backPts}, Cross
}

// Clip returns the portion of w on the front side of plane (or, if front
// is false, the back side). keepOn controls whether exactly-on-plane
// windings are retained (true, used when clipping structural sides to the
// tree they came from) or dropped (false). Clip destroys w.
func (w *Winding) Clip(plane Plane, eps float64, keepOn bool, front bool) *Winding {
	f, b, side := w.Split(plane, eps)
	if side == On {
		if keepOn {
			return w
		}
		return nil
	}
	if front {
		return f
	}
	return b
}

// BaseWindingForPlane returns a huge square winding lying on plane, used
// to seed brush-side materialisation (intersected down against sibling
// half-spaces) and the portalization base portal (clipped against
// ancestor planes). size should exceed the world's extent many times
// over; 1<<20 map units is the conventional choice.
func BaseWindingForPlane(plane Plane, size float64) *Winding {
	normal := plane.Normal()

	// Find the component of the normal with the largest magnitude so we
	// can pick a non-parallel "up" reference vector.
	var up Vec3
	switch {
	case math.Abs(normal.X) >= math.Abs(normal.Y) && math.Abs(normal.X) >= math.Abs(normal.Z):
		up = Vec3{Y: 1}
	default:
		up = Vec3{X: 1}
	}

	right := normal.Cross(up).Normalize()
	up = right.Cross(normal).Normalize()

	org := normal.Scale(plane.D)
	right = right.Scale(size)
	up = up.Scale(size)

	p0 := org.Sub(right).Add(up)
	p1 := org.Add(right).Add(up)
	p2 := org.Add(right).Sub(up)
	p3 := org.Sub(right).Sub(up)

	return &Winding{Points: []Vec3{p0, p1, p2, p3}}
}
