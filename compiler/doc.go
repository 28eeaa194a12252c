// Package compiler implements the per-entity compilation driver (C11):
// given a list of entities (worldspawn first, submodels and point
// entities after), it runs each one through face-list construction, BSP
// build, portalization, flood/leak, area assignment, side clipping and
// primitive distribution, and T-junction repair, in the order spec §4.9
// fixes.
//
// Entity compilation is sequential by design (spec §5): the plane
// registry is process-wide and shared across entities, and occupant ids
// keep counting up across entities, while the split-plane use counters
// reset at each entity boundary. Unless NoFlood is set, a worldspawn leak
// aborts the whole compilation; a submodel's own failure is recorded
// against that entity and compilation continues with the rest.
package compiler
