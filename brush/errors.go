package brush

import "errors"

// ErrBadBrush indicates a side's winding failed to materialise (collapsed
// to nothing when clipped against its sibling half-spaces). Per the
// compiler's error-handling design (§7) this is non-fatal: the brush is
// skipped and a warning is emitted by the caller.
var ErrBadBrush = errors.New("brush: side winding failed to materialize")

// ErrTooFewSides indicates a brush was given fewer than 4 sides, which
// cannot enclose a convex volume.
var ErrTooFewSides = errors.New("brush: fewer than 4 sides cannot form a convex volume")
