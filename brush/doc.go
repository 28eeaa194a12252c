// Package brush implements the compiler's primitive model (C3): brushes as
// the convex intersection of half-spaces with materialised side windings,
// and polygon-mesh primitives whose triangles are distributed into areas
// rather than used as BSP faces.
//
// A Brush owns its Sides' windings exclusively until MaterializeSides hands
// them off to the BSP face list; from that point the bsp package owns them
// per the winding lifetime rules in spec §3.
package brush
