// Command dmap compiles a map source file into a partitioned,
// area-segmented BSP ready for a downstream renderer/collision writer.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ashenforge/dmap/compiler"
	"github.com/ashenforge/dmap/config"
	"github.com/ashenforge/dmap/geo"
	"github.com/ashenforge/dmap/planetable"
	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet("dmap", pflag.ExitOnError)
	flags := registerFlags(fs)
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		log.Fatalf("usage: dmap [flags] <map-filename>")
	}
	mapPath, isRegion := resolveMapPath(fs.Arg(0))

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if flags.verbose {
		logger.SetPrefix("[dmap] ")
	}

	if unimplemented := flags.unimplementedStageFlags(); len(unimplemented) > 0 {
		logger.Printf("flags accepted but not acted on by this build: %s", strings.Join(unimplemented, ", "))
	}
	if isRegion {
		logger.Printf("%s is a region build: AAS generation is skipped regardless of -noAAS", mapPath)
	}

	cfg := &config.Config{}
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			log.Fatalf("dmap: load compile profile: %v", err)
		}
		cfg = loaded
	} else if err := cfg.Validate(); err != nil {
		log.Fatalf("dmap: default compile profile: %v", err)
	}
	cfg.Epsilons.ApplyEpsilons()

	blockSize := cfg.BlockSize.ToGeo()
	if flags.blockSize != (geo.Vec3{}) {
		blockSize = flags.blockSize
	}

	planes := planetable.New()
	entities, err := loadMap(mapPath, planes)
	if err != nil {
		log.Fatalf("dmap: %v", err)
	}
	defaultContent := cfg.DefaultContentFlags()
	for _, e := range entities {
		for _, b := range e.Brushes {
			if b.ContentFlags == 0 && !b.AreaPortal {
				b.ContentFlags = defaultContent
			}
		}
	}

	ctx, cancel := signalContext(context.Background())
	defer cancel()

	opts := compiler.Options{
		BlockSize:       blockSize,
		AltSplit:        flags.altSplit,
		NoFlood:         flags.noFlood,
		NoClipSides:     flags.noClipSides,
		NoTjunc:         flags.noTjunc,
		Logger:          logger,
		VerboseEntities: flags.verboseEntities,
	}
	cctx := compiler.NewContext(opts, planes)

	result, err := compiler.Compile(ctx, cctx, entities)
	if result == nil {
		log.Fatalf("dmap: compile %s: %v", mapPath, err)
	}
	if err != nil && !errors.Is(err, compiler.ErrWorldspawnLeak) {
		log.Fatalf("dmap: compile %s: %v", mapPath, err)
	}
	if errors.Is(err, compiler.ErrWorldspawnLeak) {
		logger.Printf("worldspawn leaked; aborting %s (see .lin trail file)", mapPath)
	}

	if err := writeLeakFiles(mapPath, result); err != nil {
		logger.Printf("leak trail export failed: %v", err)
	}

	if flags.asciiTree || flags.glview || flags.debug || flags.obj {
		if err := writeDebugArtifacts(mapPath, flags, result); err != nil {
			logger.Printf("debug artifact export failed: %v", err)
		}
	}

	if result.Aborted {
		os.Exit(1)
	}
}

// resolveMapPath applies the flag table's positional-argument rules:
// implicit maps/ prefix, and .reg suffix detection for region builds.
func resolveMapPath(arg string) (path string, isRegion bool) {
	path = arg
	if !strings.Contains(path, string(filepath.Separator)) && !strings.HasPrefix(path, "maps"+string(filepath.Separator)) {
		path = filepath.Join("maps", path)
	}
	return path, strings.HasSuffix(path, ".reg")
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
