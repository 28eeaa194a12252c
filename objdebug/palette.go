package objdebug

// palette is the fixed set of base colours areas hash into (spec §6:
// "deterministic hash-of-area to a fixed palette").
var palette = [][3]float64{
	{0.90, 0.30, 0.30},
	{0.30, 0.80, 0.35},
	{0.30, 0.45, 0.95},
	{0.95, 0.80, 0.25},
	{0.75, 0.35, 0.95},
	{0.30, 0.85, 0.85},
	{0.95, 0.55, 0.20},
	{0.55, 0.55, 0.55},
}

// opaqueColor marks geometry with no assigned area (opaque leaves, the
// outside leaf): a dark neutral grey distinct from every palette entry.
var opaqueColor = [3]float64{0.12, 0.12, 0.12}

// areaPortalTrisColor marks a leaf's areaportal mesh-primitive
// triangles: flat white, distinct from every area colour and from
// opaqueColor.
var areaPortalTrisColor = [3]float64{1.0, 1.0, 1.0}

// AreaColor returns area's base palette colour, or opaqueColor for an
// unassigned (-1) area.
func AreaColor(area int) [3]float64 {
	if area < 0 {
		return opaqueColor
	}
	return palette[area%len(palette)]
}

// Tint nudges c by a small per-surface increment so that distinct
// surfaces sharing one area's colour remain visually distinguishable;
// amount is clamped so channels never leave [0,1].
func Tint(c [3]float64, amount float64) [3]float64 {
	var out [3]float64
	for i := range c {
		v := c[i] + amount
		switch {
		case v < 0:
			v = 0
		case v > 1:
			v = 1
		}
		out[i] = v
	}
	return out
}
