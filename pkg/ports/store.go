package ports

import (
	"context"

	"github.com/riglab/dembones/pkg/domain"
)

// StateStore persists the controller's source/target pair between CLI
// invocations, so that setting the meshes and running compose as separate
// commands.
type StateStore interface {
	// Save persists the tool state.
	Save(ctx context.Context, state *domain.ToolState) error

	// Load retrieves the tool state.
	// Returns domain.ErrStateNotFound if none has been saved yet.
	Load(ctx context.Context) (*domain.ToolState, error)

	// Clear removes the persisted state. Clearing absent state is not an error.
	Clear(ctx context.Context) error
}
