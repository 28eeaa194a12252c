// Package bsp builds the binary space partition tree over a leaf's face
// list (C4) using a heuristic split-plane selector with a forced
// block-size cut and a choice of two scoring formulas (C5).
//
// The tree itself is built iteratively with an explicit work stack rather
// than plain recursion, so a pathologically unbalanced map (a long thin
// corridor sliced one brush at a time) cannot blow the goroutine stack.
// Nodes are plain pointers — the tree is a strict parent/child hierarchy,
// never a cycle — so portalization (package portal) can reference *Node
// values directly while keeping its own, genuinely cyclic portal/node
// arena on its own side of the import.
package bsp
