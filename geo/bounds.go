package geo

import "math"

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Vec3
}

// EmptyBounds returns a degenerate bounds value suitable as the identity
// element for Union (Min at +inf, Max at -inf).
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

// IsEmpty reports whether b contains no volume at all (never expanded).
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// ExpandPoint grows b to include p, returning the expanded bounds.
func (b Bounds) ExpandPoint(p Vec3) Bounds {
	return Bounds{
		Min: Vec3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Max: Vec3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the bounds enclosing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: Vec3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Contains reports whether p lies within b (inclusive).
func (b Bounds) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Axis indexes an axis of a Vec3/Bounds for generic axis-aligned code, e.g.
// the forced block-cut search (C5) which must inspect each axis in turn.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Component returns v's value along axis a.
func (v Vec3) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// WithComponent returns a copy of v with axis a set to f.
func (v Vec3) WithComponent(a Axis, f float64) Vec3 {
	switch a {
	case AxisX:
		v.X = f
	case AxisY:
		v.Y = f
	default:
		v.Z = f
	}
	return v
}

// AxisPlane returns the canonical plane for "component along axis a equals
// dist", oriented with a positive unit normal, as used by the forced
// block-cut rule in the split-plane selector (§4.3 step 1).
func AxisPlane(a Axis, dist float64) Plane {
	var n Vec3
	switch a {
	case AxisX:
		n = Vec3{X: 1}
	case AxisY:
		n = Vec3{Y: 1}
	default:
		n = Vec3{Z: 1}
	}
	return Plane{A: n.X, B: n.Y, C: n.Z, D: dist}
}
