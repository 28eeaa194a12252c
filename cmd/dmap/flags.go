package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ashenforge/dmap/geo"
	"github.com/spf13/pflag"
)

// vector3Value implements pflag.Value so -blockSize takes three
// whitespace-separated numbers in one argument, matching the flag
// table's `blockSize <x> <y> <z>` shape.
type vector3Value struct {
	v *geo.Vec3
}

func newVector3Value(def geo.Vec3, p *geo.Vec3) *vector3Value {
	*p = def
	return &vector3Value{v: p}
}

func (v *vector3Value) String() string {
	if v.v == nil {
		return "0 0 0"
	}
	return fmt.Sprintf("%g %g %g", v.v.X, v.v.Y, v.v.Z)
}

func (v *vector3Value) Set(s string) error {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return fmt.Errorf("expected 3 numbers, got %d", len(parts))
	}
	var nums [3]float64
	for i, p := range parts {
		n, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		nums[i] = n
	}
	v.v.X, v.v.Y, v.v.Z = nums[0], nums[1], nums[2]
	return nil
}

func (v *vector3Value) Type() string { return "x y z" }

// cliFlags mirrors the flag table (spec §6). Stage-disable flags for
// stages this build doesn't implement (lighting, curves, models,
// carving, optimisation, collision models, AAS) are accepted so scripts
// invoking the full original flag surface don't fail to parse, but are
// reported unimplemented rather than silently dropped.
type cliFlags struct {
	glview, debug    bool
	obj              bool
	asciiTree        bool
	verbose          bool
	draw             bool
	altSplit         bool
	blockSize        geo.Vec3
	inlineAll        bool
	noMerge          bool
	noFlood          bool
	noLightCarve     bool
	lightCarve       bool
	noOpt            bool
	noCurves         bool
	noModels         bool
	noClipSides      bool
	noCarve          bool
	noTjunc          bool
	noCM             bool
	noAAS            bool
	verboseEntities  bool
	configPath       string
}

func registerFlags(fs *pflag.FlagSet) *cliFlags {
	f := &cliFlags{}
	fs.BoolVar(&f.glview, "glview", false, "emit OBJ debug visuals")
	fs.BoolVar(&f.debug, "debug", false, "emit OBJ debug visuals (alias of -glview)")
	fs.BoolVar(&f.obj, "obj", false, "export BSP render surfaces as OBJ")
	fs.BoolVar(&f.asciiTree, "asciiTree", false, "emit ASCII tree dump")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose logging")
	fs.BoolVar(&f.draw, "draw", false, "interactive draw flag")
	fs.BoolVar(&f.altSplit, "altsplit", false, "use alternative split-plane scoring")
	fs.Var(newVector3Value(geo.Vec3{}, &f.blockSize), "blockSize", "forced partition block size; 0 0 0 disables")
	fs.BoolVar(&f.inlineAll, "inlineAll", false, "merge static models into worldspawn")
	fs.BoolVar(&f.noMerge, "noMerge", false, "disable face merging (unimplemented in this build)")
	fs.BoolVar(&f.noFlood, "noFlood", false, "accept a leaking entity instead of aborting it")
	fs.BoolVar(&f.noLightCarve, "noLightCarve", false, "disable light carving (unimplemented in this build)")
	fs.BoolVar(&f.lightCarve, "lightCarve", false, "enable light carving (unimplemented in this build)")
	fs.BoolVar(&f.noOpt, "noOpt", false, "disable tree optimisation (unimplemented in this build)")
	fs.BoolVar(&f.noCurves, "noCurves", false, "disable curve tessellation (unimplemented in this build)")
	fs.BoolVar(&f.noModels, "noModels", false, "disable model inlining (unimplemented in this build)")
	fs.BoolVar(&f.noClipSides, "noClipSides", false, "skip side clipping to the tree")
	fs.BoolVar(&f.noCarve, "noCarve", false, "disable brush carving (unimplemented in this build)")
	fs.BoolVar(&f.noTjunc, "noTjunc", false, "skip T-junction repair")
	fs.BoolVar(&f.noCM, "noCM", false, "skip collision-model generation (unimplemented in this build)")
	fs.BoolVar(&f.noAAS, "noAAS", false, "skip AAS generation (unimplemented in this build)")
	fs.BoolVar(&f.verboseEntities, "verboseentities", false, "per-entity verbose logging")
	fs.StringVar(&f.configPath, "config", "", "compile profile YAML (defaults if unset)")
	return f
}

// unimplementedStageFlags reports which stage-disable flags the caller
// set that this build doesn't act on, for a startup warning rather than
// silent acceptance.
func (f *cliFlags) unimplementedStageFlags() []string {
	var names []string
	add := func(set bool, name string) {
		if set {
			names = append(names, name)
		}
	}
	add(f.noMerge, "-noMerge")
	add(f.noLightCarve, "-noLightCarve")
	add(f.lightCarve, "-lightCarve")
	add(f.noOpt, "-noOpt")
	add(f.noCurves, "-noCurves")
	add(f.noModels, "-noModels")
	add(f.noCarve, "-noCarve")
	add(f.noCM, "-noCM")
	add(f.noAAS, "-noAAS")
	add(f.inlineAll, "-inlineAll")
	add(f.draw, "-draw")
	return names
}
