package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ashenforge/dmap/compiler"
	"github.com/ashenforge/dmap/flood"
	"github.com/ashenforge/dmap/objdebug"
)

// writeLeakFiles writes a .lin trail file for every entity that leaked,
// named with that entity's LeakTrail.RunID so repeated leaking runs of
// the same map don't collide on disk (§7).
func writeLeakFiles(mapPath string, result *compiler.CompileResult) error {
	base := strings.TrimSuffix(mapPath, filepath.Ext(mapPath))

	for _, out := range result.Entities {
		if out.LeakTrail == nil {
			continue
		}
		path := fmt.Sprintf("%s.entity%d.%s.lin", base, out.EntityNum, out.LeakTrail.RunID)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("dmap: create %s: %w", path, err)
		}
		err = flood.WriteLeakFile(f, out.LeakTrail)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// writeDebugArtifacts emits the OBJ/ASCII debug visuals requested by
// flags, one set of files per compiled entity, named after mapPath's
// base filename.
func writeDebugArtifacts(mapPath string, flags *cliFlags, result *compiler.CompileResult) error {
	base := strings.TrimSuffix(mapPath, filepath.Ext(mapPath))

	for _, out := range result.Entities {
		if out.Skipped || out.Tree == nil {
			continue
		}
		suffix := strconv.Itoa(out.EntityNum)

		if flags.asciiTree {
			if err := writeASCIITreeFile(base+".entity"+suffix+".tree.txt", out); err != nil {
				return err
			}
		}
		if flags.glview || flags.debug || flags.obj {
			if err := writeOBJFile(base+".entity"+suffix+".debug.obj", out); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeASCIITreeFile(path string, out compiler.EntityOutput) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dmap: create %s: %w", path, err)
	}
	defer f.Close()
	return objdebug.WriteASCIITree(f, out.Tree.Root)
}

func writeOBJFile(path string, out compiler.EntityOutput) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dmap: create %s: %w", path, err)
	}
	defer f.Close()

	w := objdebug.NewWriter(f)
	if err := w.WriteLeafBoundingBoxes(out.Tree); err != nil {
		return err
	}
	if err := w.WriteLeafFaceLists(out.Tree); err != nil {
		return err
	}
	if err := w.WriteLeafAreaPortalTris(out.Tree); err != nil {
		return err
	}
	if out.Graph != nil {
		if err := w.WritePortalGraph(out.Graph); err != nil {
			return err
		}
	}
	if out.AreaResult != nil {
		if err := w.WriteAreaPortalTriangles(out.AreaResult); err != nil {
			return err
		}
	}
	return nil
}
