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
	portstests "github.com/riglab/dembones/pkg/ports/tests"
)

// Ensure FileStore implements the StateStore port.
var _ ports.StateStore = (*adapters.FileStore)(nil)

func TestFileStore_StateStoreContract(t *testing.T) {
	portstests.StateStoreContractTest(t, adapters.NewFileStore(t.TempDir()))
}

func TestFileStore_Contract(t *testing.T) {
	sceneDir := t.TempDir()
	store := adapters.NewFileStore(sceneDir)
	ctx := context.Background()

	t.Run("LoadMissingState", func(t *testing.T) {
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrStateNotFound)
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		state := &domain.ToolState{
			SourceMesh: "|chr|body_sim",
			TargetMesh: "|chr|body_prod",
		}
		require.NoError(t, store.Save(ctx, state))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, state, loaded)

		// The file lands inside the scene's state directory.
		_, err = os.Stat(filepath.Join(sceneDir, ".dembones", "state.json"))
		assert.NoError(t, err)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx))
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrStateNotFound)

		// Clearing again is not an error.
		assert.NoError(t, store.Clear(ctx))
	})
}
