package main

import (
	"fmt"
	"os"

	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/compiler"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/planetable"
	"gopkg.in/yaml.v3"
)

// Full .map/.reg parsing is an external collaborator this build doesn't
// implement; mapDocument is this command's minimal stand-in so the CLI
// has something runnable to drive the compiler with. A real deployment
// replaces loadMap with the actual map-parser integration.

type mapDocument struct {
	Entities []mapEntity `yaml:"entities"`
}

type mapEntity struct {
	EntityNum  int               `yaml:"entity_num"`
	Worldspawn bool              `yaml:"worldspawn"`
	Origin     vec3Doc           `yaml:"origin"`
	Epairs     map[string]string `yaml:"epairs"`
	Brushes    []brushDoc        `yaml:"brushes"`
	Meshes     []meshDoc         `yaml:"meshes"`
}

type vec3Doc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type brushDoc struct {
	AreaPortal bool      `yaml:"areaportal"`
	Sides      []sideDoc `yaml:"sides"`
}

type sideDoc struct {
	Normal   vec3Doc `yaml:"normal"`
	Dist     float64 `yaml:"dist"`
	Material string  `yaml:"material"`
}

type meshDoc struct {
	AreaPortal bool          `yaml:"areaportal"`
	Material   string        `yaml:"material"`
	Triangles  []triangleDoc `yaml:"triangles"`
}

type triangleDoc struct {
	Vertices   [3]vec3Doc `yaml:"vertices"`
	PlaneNorm  vec3Doc    `yaml:"plane_normal"`
	PlaneDist  float64    `yaml:"plane_dist"`
	Material   string     `yaml:"material"`
}

func (v vec3Doc) toGeo() geo.Vec3 { return geo.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// loadMap reads a mapDocument from path and resolves it into compiler
// entities, registering every brush/mesh plane in planes as it goes.
func loadMap(path string, planes *planetable.Table) ([]compiler.Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dmap: read map %s: %w", path, err)
	}
	var doc mapDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("dmap: parse map %s: %w", path, err)
	}

	entities := make([]compiler.Entity, 0, len(doc.Entities))
	for _, me := range doc.Entities {
		e := compiler.Entity{
			EntityNum:  me.EntityNum,
			Worldspawn: me.Worldspawn,
			Origin:     me.Origin.toGeo(),
			Epairs:     me.Epairs,
		}
		for _, bd := range me.Brushes {
			e.Brushes = append(e.Brushes, resolveBrush(bd, planes))
		}
		for _, md := range me.Meshes {
			e.Meshes = append(e.Meshes, resolveMesh(md, planes))
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func resolveBrush(bd brushDoc, planes *planetable.Table) *brush.Brush {
	b := &brush.Brush{AreaPortal: bd.AreaPortal}
	for _, sd := range bd.Sides {
		idx := planes.FindOrInsert(geo.NewPlane(sd.Normal.toGeo(), sd.Dist))
		b.Sides = append(b.Sides, brush.Side{PlaneIndex: idx, Material: sd.Material})
	}
	return b
}

func resolveMesh(md meshDoc, planes *planetable.Table) *brush.Mesh {
	m := &brush.Mesh{AreaPortal: md.AreaPortal, Material: md.Material}
	for _, td := range md.Triangles {
		idx := planes.FindOrInsert(geo.NewPlane(td.PlaneNorm.toGeo(), td.PlaneDist))
		material := td.Material
		if material == "" {
			material = md.Material
		}
		m.Triangles = append(m.Triangles, brush.MeshTriangle{
			PlaneIndex: idx,
			Vertices:   [3]geo.Vec3{td.Vertices[0].toGeo(), td.Vertices[1].toGeo(), td.Vertices[2].toGeo()},
			Material:   material,
			Source:     m,
		})
	}
	return m
}
