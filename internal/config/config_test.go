package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "dembones-solver", cfg.SolverPath)
	assert.Equal(t, "CustomTools", cfg.ShelfName)
	assert.Equal(t, 1, cfg.Defaults.StartFrame)
	assert.Equal(t, 100, cfg.Defaults.EndFrame)
	assert.Equal(t, 50, cfg.Defaults.GlobalIters)
	assert.Equal(t, 12, cfg.Defaults.NumBones)
}

func TestLoad_MissingFilesAreSkipped(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, "solver_path: /opt/dembones/solve\ndefaults:\n  num_bones: 24\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/dembones/solve", cfg.SolverPath)
	assert.Equal(t, 24, cfg.Defaults.NumBones)
	// Untouched keys keep their defaults.
	assert.Equal(t, "CustomTools", cfg.ShelfName)
	assert.Equal(t, 50, cfg.Defaults.GlobalIters)
}

func TestLoad_LaterLayerWins(t *testing.T) {
	user := writeConfig(t, "shelf_name: StudioTools\ndefaults:\n  global_iters: 80\n")
	scene := writeConfig(t, "defaults:\n  global_iters: 20\n")

	cfg, err := Load(user, scene)
	require.NoError(t, err)
	assert.Equal(t, "StudioTools", cfg.ShelfName, "user layer survives")
	assert.Equal(t, 20, cfg.Defaults.GlobalIters, "scene layer overrides")
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "solver_path: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultsParams(t *testing.T) {
	p := Defaults{StartFrame: 5, EndFrame: 50, GlobalIters: 3, NumBones: 7}.Params()
	assert.Equal(t, 5, p.StartFrame)
	assert.Equal(t, 50, p.EndFrame)
	assert.Equal(t, 3, p.GlobalIters)
	assert.Equal(t, 7, p.NumBones)
}
