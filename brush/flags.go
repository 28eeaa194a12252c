package brush

// ContentFlags is the bitfield the compiler requires from the material
// lookup collaborator (out of scope, §1): only SOLID, OPAQUE, AREAPORTAL
// and NONSOLID bits matter to this core.
type ContentFlags uint32

const (
	ContentSolid ContentFlags = 1 << iota
	ContentOpaque
	ContentAreaPortal
	ContentNonSolid
)

// Has reports whether all bits of mask are set in f.
func (f ContentFlags) Has(mask ContentFlags) bool { return f&mask == mask }

// Any reports whether any bit of mask is set in f.
func (f ContentFlags) Any(mask ContentFlags) bool { return f&mask != 0 }

// OpaqueForBSP implements the spec's composite "opaque for BSP" definition
// (§6): solid, and not areaportal-only. A brush flagged both SOLID and
// AREAPORTAL is treated as an areaportal, not as opaque structure — the
// areaportal classification always wins so area assignment (C8) sees a
// passable boundary rather than a sealed wall.
func (f ContentFlags) OpaqueForBSP() bool {
	return f.Has(ContentSolid) && !f.Has(ContentAreaPortal)
}

// IsAreaPortal reports whether f marks areaportal geometry (§4.6).
func (f ContentFlags) IsAreaPortal() bool { return f.Has(ContentAreaPortal) }
