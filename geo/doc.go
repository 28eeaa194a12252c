// Package geo provides the floating-point geometry primitives the rest of
// the compiler builds on: vectors, oriented planes, convex windings, and
// axis-aligned bounds.
//
// None of the types here are safe for concurrent mutation — a Winding is
// owned by exactly one face or portal at a time (see the portal and bsp
// packages for the ownership discipline) — so no locking is attempted.
//
// Tolerances:
//
//	NormalEpsilon - used when comparing plane normals for equality.
//	DistEpsilon   - used when comparing plane distances for equality.
//	ClipEpsilon   - used when classifying a point against a plane and when
//	                splitting windings.
//	TJuncEpsilon  - used when testing whether a vertex lies on a segment.
package geo
