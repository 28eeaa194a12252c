package geo

import "math"

// Epsilon tolerances shared across the geometry, plane registry, BSP and
// portal packages. These mirror the constants named in the compiler design:
// NORMAL_EPSILON, DIST_EPSILON and CLIP_EPSILON.
//
// They are package variables rather than constants so a compile profile
// (config.Config.Epsilons) can override the defaults at process startup,
// before any plane registry or BSP build runs; nothing in this package
// mutates them afterward.
var (
	NormalEpsilon = 1e-5
	DistEpsilon   = 0.01
	ClipEpsilon   = 0.1

	// TJuncEpsilon bounds how far a vertex may sit from a segment and still
	// be considered "on" it for T-junction welding. The spec does not pin a
	// value; we use ClipEpsilon's magnitude since both guard point-on-segment
	// classification under the same map-unit scale.
	TJuncEpsilon = 0.1
)

// Vec3 is a 3D point or direction.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector normalizes to
// itself rather than producing NaNs.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp returns the point a fraction t of the way from v to o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

// ApproxEqual reports whether v and o are within eps component-wise.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}
