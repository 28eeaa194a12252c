package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ashenforge/dmap/brush"
	"github.com/ashenforge/dmap/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFillsDefaultBlockSize(t *testing.T) {
	path := writeProfile(t, "default_content: [solid, opaque]\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Vec3{X: 1024, Y: 1024, Z: 1024}, cfg.BlockSize)
	assert.Equal(t, brush.ContentSolid|brush.ContentOpaque, cfg.DefaultContentFlags())
}

func TestLoadRejectsUnknownContentFlag(t *testing.T) {
	path := writeProfile(t, "default_content: [flammable]\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "flammable")
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadHonorsExplicitBlockSize(t *testing.T) {
	path := writeProfile(t, "block_size: {x: 512, y: 512, z: 256}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, geo.Vec3{X: 512, Y: 512, Z: 256}, cfg.BlockSize.ToGeo())
}

func TestApplyEpsilonsOverridesOnlyNonZeroFields(t *testing.T) {
	origClip, origTJunc := geo.ClipEpsilon, geo.TJuncEpsilon
	t.Cleanup(func() {
		geo.ClipEpsilon = origClip
		geo.TJuncEpsilon = origTJunc
	})

	Epsilons{Clip: 0.25}.ApplyEpsilons()
	assert.Equal(t, 0.25, geo.ClipEpsilon)
	assert.Equal(t, origTJunc, geo.TJuncEpsilon)
}
