package memory

import (
	"context"
	"sync"

	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/ports"
)

// Store implements ports.StateStore in memory.
type Store struct {
	mu    sync.Mutex
	state *domain.ToolState
}

// NewStore creates an empty in-memory state store.
func NewStore() *Store {
	return &Store{}
}

// Save implements ports.StateStore.
func (s *Store) Save(ctx context.Context, state *domain.ToolState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *state
	s.state = &copied
	return nil
}

// Load implements ports.StateStore.
func (s *Store) Load(ctx context.Context) (*domain.ToolState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, domain.ErrStateNotFound
	}
	copied := *s.state
	return &copied, nil
}

// Clear implements ports.StateStore.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = nil
	return nil
}

var _ ports.StateStore = (*Store)(nil)
