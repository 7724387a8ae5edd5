package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/ports"
)

// FileStore implements ports.StateStore using the local filesystem.
// The tool state lives as one JSON file in the scene's state directory.
type FileStore struct {
	BasePath string
}

// NewFileStore creates a FileStore rooted at the given scene directory.
func NewFileStore(sceneDir string) *FileStore {
	return &FileStore{BasePath: filepath.Join(sceneDir, stateDirName)}
}

// Save persists the tool state to a JSON file.
func (f *FileStore) Save(ctx context.Context, state *domain.ToolState) error {
	if err := os.MkdirAll(f.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure state directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(f.statePath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Load retrieves the tool state from disk.
func (f *FileStore) Load(ctx context.Context) (*domain.ToolState, error) {
	data, err := os.ReadFile(f.statePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state domain.ToolState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return &state, nil
}

// Clear removes the state file. A missing file is not an error.
func (f *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(f.statePath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete state file: %w", err)
	}
	return nil
}

func (f *FileStore) statePath() string {
	return filepath.Join(f.BasePath, "state.json")
}

var _ ports.StateStore = (*FileStore)(nil)
