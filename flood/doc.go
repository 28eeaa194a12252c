// Package flood implements opaque classification, occupant placement,
// reachability flood-fill and leak detection over a portalized BSP tree
// (C7): FilterBrushesIntoTree marks leaves opaque from structural brush
// content, PlaceOccupant seeds a flood origin, Flood walks the portal
// graph breadth-first recording parent portals for leak reconstruction,
// and FillOutside force-opaques everything the flood never reached.
package flood
