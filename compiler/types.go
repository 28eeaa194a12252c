package compiler

import (
	"log"

	"github.com/ashenforge/dmap/area"
	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/bsp"
	"github.com/ashenforge/dmap/clip"
	"github.com/ashenforge/dmap/flood"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/planetable"
	"github.com/ashenforge/dmap/portal"
)

// Entity is one input compilation unit (spec §3's "entity compilation
// unit"): either worldspawn or a submodel, carrying its own primitives,
// or a bare point entity that owns neither brushes nor meshes and exists
// only to seed worldspawn's occupant flood with Origin.
type Entity struct {
	EntityNum  int
	Worldspawn bool
	Brushes    []*brush.Brush
	Meshes     []*brush.Mesh
	Origin     geo.Vec3
	Epairs     map[string]string
}

// IsPointEntity reports whether e carries no geometry of its own — it
// contributes only Origin as a flood seed for whichever brush entity's
// tree contains it.
func (e Entity) IsPointEntity() bool { return len(e.Brushes) == 0 && len(e.Meshes) == 0 }

// Options configures a compilation run (spec §6's flag table, minus the
// purely cosmetic/debug-visual flags which live on the caller's side of
// objdebug).
type Options struct {
	BlockSize geo.Vec3
	AltSplit  bool

	// NoFlood accepts a leaking entity as-is (§4.5's failure semantics):
	// the tree is still fully portalized and areas computed, but a leak
	// no longer aborts the entity.
	NoFlood bool

	// NoClipSides and NoTjunc skip their respective downstream polish
	// passes (§4.7, §4.8), leaving the entity's tree/areas intact.
	NoClipSides bool
	NoTjunc     bool

	// Logger receives per-entity progress and warnings. A nil Logger
	// discards them. VerboseEntities additionally logs each stage
	// transition, distinct from a caller's own -v flag (§6).
	Logger          *log.Logger
	VerboseEntities bool
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

// verbosef logs only when VerboseEntities is set, for the per-stage
// transition detail (§6) distinct from ordinary per-entity progress.
func (o Options) verbosef(format string, args ...any) {
	if o.VerboseEntities {
		o.logf(format, args...)
	}
}

// Context is the explicit compilation context spec §9 calls for in place
// of global mutable state: the process-wide plane registry plus resolved
// options, threaded through every entity's compilation.
type Context struct {
	Options Options
	Planes  *planetable.Table

	nextOccupantID int
}

// NewContext builds a Context around planes (created fresh by the
// caller, or reused across repeated compilations of the same map for a
// stable plane numbering).
func NewContext(opts Options, planes *planetable.Table) *Context {
	return &Context{Options: opts, Planes: planes}
}

func (c *Context) allocOccupantID() int {
	id := c.nextOccupantID
	c.nextOccupantID++
	return id
}

// EntityOutput is one entity's compiled result.
type EntityOutput struct {
	EntityNum int

	NumAreas         int
	InterAreaPortals []area.InterAreaPortal
	AreaTriangles    clip.AreaTriangles
	Sides            []SideFragments

	Warnings []string

	Leaked    bool
	LeakTrail *flood.LeakTrail

	// Skipped is true for bare point entities (§4.9 only compiles
	// entities that own geometry; point entities merely seed
	// worldspawn's flood and produce no output of their own).
	Skipped bool

	// Tree, Graph and AreaResult retain this entity's intermediate BSP
	// tree, portal graph and area-assignment result after compilation,
	// purely so a caller (objdebug) can render them; nothing inside
	// this package reads them back.
	Tree       *bsp.Tree
	Graph      *portal.Graph
	AreaResult *area.Result
}

// CompileResult is the outcome of compiling an entire entity list.
type CompileResult struct {
	Entities []EntityOutput

	// Aborted is true when worldspawn leaked, per §7's propagation
	// policy: a worldspawn leak is fatal to the whole compilation, a
	// submodel leak is recorded against that entity only.
	Aborted bool
}
