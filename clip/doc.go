// Package clip computes the visible hull of every brush side by pushing
// its winding down the BSP tree and keeping only the fragments that land
// in non-opaque leaves (ClipSidesByTree), and distributes mesh
// primitives into per-area triangle buckets by the same descent,
// splitting triangles at plane crossings and discarding fragments that
// fall into opaque leaves (PutPrimitivesInAreas) — C9.
package clip
