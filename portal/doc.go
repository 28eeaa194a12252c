// Package portal generates the doubly-linked portal graph over a built
// BSP tree (C6): an outside bounding portal per world axis, a base portal
// at every interior node clipped against its ancestors' half-spaces, and
// an iterative split-and-relink of every portal already incident to a
// node as that node's own plane carves it into front and back children.
//
// Per the split-plane redesign note, nodes and portals form a genuinely
// cyclic reference graph (a portal names two nodes, a node's portal list
// names portals), so this package keeps its own arena of *bsp.Node
// pointers indexed by plain ints and has portals reference nodes by
// index rather than by pointer. This sidesteps Go's lack of cyclic
// ownership (there is no shared_ptr-style GC concern, only the ambiguity
// of "who frees what"): the arena is owned outright by the Graph, and a
// portal's removal is just an unlink from two integer-indexed lists.
package portal
