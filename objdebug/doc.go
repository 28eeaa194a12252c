// Package objdebug emits the compiler's debug visualisations (spec §6):
// Wavefront OBJ exports of input face lists, leaf bounding boxes
// (coloured by area), area-portal triangles and the portal graph, plus a
// plain-text ASCII dump of a BSP tree's shape. Every export here is
// strictly observational — nothing in this package feeds back into
// compilation.
package objdebug
