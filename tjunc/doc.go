// Package tjunc welds T-junction cracks in a triangulated primitive set:
// for every triangle edge, any other triangle's vertex that lies on that
// edge within T_JUNC_EPSILON gets inserted as a new edge point, and the
// triangle is re-fanned to include it. FixAreaTjunctions scans within one
// area's triangles; FixGlobalTjunctions repeats the scan over every
// area's vertices combined, so seams at areaportal boundaries weld too.
package tjunc
