package area

import "github.com/ashenforge/dmap/geo"

// InterAreaPortal records one areaportal-producing portal connecting two
// areas, for the runtime visibility graph.
type InterAreaPortal struct {
	AreaA, AreaB int
	Winding      *geo.Winding
	SourceSide   int // plane index of the areaportal brush side
}

// Result is everything AssignAreas produces beyond the Area field it
// writes directly onto each reached leaf.
type Result struct {
	// NumAreas is the count of distinct area indices assigned (0..NumAreas-1).
	NumAreas int

	InterAreaPortals []InterAreaPortal

	// Warnings holds non-fatal invariant violations (§4.6: an
	// areaportal connecting other than exactly two distinct areas is
	// reported, not an error).
	Warnings []string
}
