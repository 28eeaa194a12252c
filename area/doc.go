// Package area assigns contiguous area indices to reachable BSP leaves
// (C8): areaportal-flagged geometry is not opaque, but the portals it
// produces act as boundaries a reachability flood won't cross, so each
// maximal region between areaportals gets its own area index. Every
// areaportal portal crossed during assignment is recorded as an
// InterAreaPortal connecting the two areas it separates.
package area
