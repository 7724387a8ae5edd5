package adapters_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riglab/dembones/internal/adapters"
	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/ports"
)

// Ensure SceneHost implements the Host port.
var _ ports.Host = (*adapters.SceneHost)(nil)

const cubeOBJ = `
v -1 -1 -1
v  1 -1 -1
v  1  1 -1
v -1  1 -1
v -1 -1  1
v  1 -1  1
v  1  1  1
v -1  1  1
f 1 2 3 4
f 5 8 7 6
f 1 5 6 2
f 2 6 7 3
f 3 7 8 4
f 4 8 5 1
`

const manifest = `
name: test-scene
timeline:
  start: 1
  end: 120
objects:
  - path: "|chr|body_sim"
    mesh: meshes/body_sim.obj
  - path: "|chr|body_prod"
    mesh: meshes/body_prod.obj
  - path: "|chr|rig_grp"
`

func writeScene(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "meshes"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte(manifest), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meshes", "body_sim.obj"), []byte(cubeOBJ), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meshes", "body_prod.obj"), []byte(cubeOBJ), 0644))
	return dir
}

func TestOpenScene(t *testing.T) {
	host, err := adapters.OpenScene(writeScene(t))
	require.NoError(t, err)

	assert.Equal(t, "test-scene", host.Manifest().Name)
	start, end := host.TimelineRange()
	assert.Equal(t, 1, start)
	assert.Equal(t, 120, end)

	assert.True(t, host.ObjectExists("|chr|body_sim"))
	assert.True(t, host.ObjectExists("|chr|rig_grp"))
	assert.False(t, host.ObjectExists("|chr|ghost"))

	assert.True(t, host.HasMeshShape("|chr|body_sim"))
	assert.False(t, host.HasMeshShape("|chr|rig_grp"), "group without mesh binding")
}

func TestOpenScene_Errors(t *testing.T) {
	t.Run("missing manifest", func(t *testing.T) {
		_, err := adapters.OpenScene(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("duplicate path", func(t *testing.T) {
		dir := t.TempDir()
		dup := "objects:\n  - path: \"|a\"\n  - path: \"|a\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.yaml"), []byte(dup), 0644))
		_, err := adapters.OpenScene(dir)
		assert.ErrorContains(t, err, "duplicate object path")
	})
}

func TestSceneHost_Topology(t *testing.T) {
	host, err := adapters.OpenScene(writeScene(t))
	require.NoError(t, err)

	sig, err := host.Topology("|chr|body_sim")
	require.NoError(t, err)
	assert.Equal(t, domain.Signature{Vertices: 8, Faces: 6, Edges: 12}, sig)

	// Cached second read must agree.
	again, err := host.Topology("|chr|body_sim")
	require.NoError(t, err)
	assert.Equal(t, sig, again)

	_, err = host.Topology("|chr|ghost")
	assert.ErrorIs(t, err, domain.ErrObjectNotFound)

	_, err = host.Topology("|chr|rig_grp")
	assert.ErrorContains(t, err, "no mesh shape")
}

func TestSceneHost_Selection(t *testing.T) {
	host, err := adapters.OpenScene(writeScene(t))
	require.NoError(t, err)
	ctx := context.Background()

	// Fresh scene: nothing selected.
	sel, err := host.Selection(ctx)
	require.NoError(t, err)
	assert.Empty(t, sel)

	require.NoError(t, host.SetSelection(ctx, []string{"|chr|body_sim"}))
	sel, err = host.Selection(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"|chr|body_sim"}, sel)

	// Selecting an unknown object fails and keeps the old selection.
	err = host.SetSelection(ctx, []string{"|chr|ghost"})
	assert.ErrorIs(t, err, domain.ErrObjectNotFound)
	sel, _ = host.Selection(ctx)
	assert.Equal(t, []string{"|chr|body_sim"}, sel)

	// Clearing is idempotent.
	require.NoError(t, host.SetSelection(ctx, nil))
	require.NoError(t, host.SetSelection(ctx, nil))
	sel, err = host.Selection(ctx)
	require.NoError(t, err)
	assert.Empty(t, sel)
}
