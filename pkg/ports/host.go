package ports

import (
	"context"

	"github.com/riglab/dembones/pkg/domain"
)

// Host exposes the scene collaborators the tool depends on: the selection
// query and the evaluation API. This keeps the core decoupled from how a
// scene is actually stored (manifest directory, in-memory fixture, ...).
type Host interface {
	// Selection returns the full paths of the currently selected objects,
	// in selection order. An empty slice means nothing is selected.
	Selection(ctx context.Context) ([]string, error)

	// ObjectExists reports whether the path still resolves in the scene.
	ObjectExists(path string) bool

	// HasMeshShape reports whether the object carries a mesh surface.
	// Non-mesh transforms (groups, locators) return false.
	HasMeshShape(path string) bool

	// Topology evaluates the vertex/face/edge counts for a mesh.
	// Returns domain.ErrObjectNotFound (wrapped) when the path no longer resolves.
	Topology(path string) (domain.Signature, error)

	// TimelineRange returns the scene's playback start and end frames.
	// Used to seed default run parameters.
	TimelineRange() (start, end int)
}
