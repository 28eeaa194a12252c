package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/geo"
	"gopkg.in/yaml.v3"
)

// Config is the YAML compile profile a run of dmap starts from: default
// content-flag bits for non-areaportal brushes that don't specify their own, the
// default forced block-cut size, and epsilon overrides.
type Config struct {
	DefaultContent []string `yaml:"default_content"`
	BlockSize      Vec3     `yaml:"block_size"`
	Epsilons       Epsilons `yaml:"epsilons"`
}

// Vec3 mirrors geo.Vec3's three fields for YAML decoding; config stays
// free of a geo import cycle concern and converts explicitly via ToGeo.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// ToGeo converts v to a geo.Vec3.
func (v Vec3) ToGeo() geo.Vec3 { return geo.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// Epsilons carries optional overrides for the geometry package's
// tolerance variables. A zero field leaves that tolerance at its
// built-in default.
type Epsilons struct {
	Normal float64 `yaml:"normal,omitempty"`
	Dist   float64 `yaml:"dist,omitempty"`
	Clip   float64 `yaml:"clip,omitempty"`
	TJunc  float64 `yaml:"tjunc,omitempty"`
}

// contentBits maps a profile's default_content names to brush.ContentFlags
// bits, matching the names the spec's data model uses for brush flags.
var contentBits = map[string]brush.ContentFlags{
	"solid":      brush.ContentSolid,
	"opaque":     brush.ContentOpaque,
	"areaportal": brush.ContentAreaPortal,
	"nonsolid":   brush.ContentNonSolid,
}

// Load reads and validates the compile profile at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fills in defaults for any field the profile left unset and
// rejects a default_content name this build doesn't recognize.
func (c *Config) Validate() error {
	if c.BlockSize == (Vec3{}) {
		c.BlockSize = Vec3{X: 1024, Y: 1024, Z: 1024}
	}
	for _, name := range c.DefaultContent {
		if _, ok := contentBits[strings.ToLower(name)]; !ok {
			return fmt.Errorf("config: unknown default_content flag %q", name)
		}
	}
	return nil
}

// DefaultContentFlags resolves the profile's default_content names into
// a brush.ContentFlags bitmask.
func (c *Config) DefaultContentFlags() brush.ContentFlags {
	var flags brush.ContentFlags
	for _, name := range c.DefaultContent {
		flags |= contentBits[strings.ToLower(name)]
	}
	return flags
}

// ApplyEpsilons overrides geo's package-level tolerance variables with
// any non-zero field of e, leaving the rest at their built-in defaults.
// It must run once, before any compilation begins, since nothing
// downstream expects the tolerances to change mid-run.
func (e Epsilons) ApplyEpsilons() {
	if e.Normal != 0 {
		geo.NormalEpsilon = e.Normal
	}
	if e.Dist != 0 {
		geo.DistEpsilon = e.Dist
	}
	if e.Clip != 0 {
		geo.ClipEpsilon = e.Clip
	}
	if e.TJunc != 0 {
		geo.TJuncEpsilon = e.TJunc
	}
}
