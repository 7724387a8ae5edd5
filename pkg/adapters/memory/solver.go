package memory

import (
	"context"
	"sync"

	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/ports"
)

// Solver implements ports.SolverRunner with scripted outcomes, recording
// every job it receives.
type Solver struct {
	mu sync.Mutex

	// AvailableErr is returned by Available when non-nil.
	AvailableErr error
	// DecomposeErr is returned by Decompose when non-nil.
	DecomposeErr error
	// Output is returned as the solver log on success.
	Output string

	jobs []domain.SolveJob
}

// NewSolver creates a Solver that succeeds by default.
func NewSolver() *Solver {
	return &Solver{Output: "done"}
}

// Jobs returns the jobs Decompose has received, in order.
func (s *Solver) Jobs() []domain.SolveJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SolveJob(nil), s.jobs...)
}

// Available implements ports.SolverRunner.
func (s *Solver) Available(ctx context.Context) error {
	return s.AvailableErr
}

// Decompose implements ports.SolverRunner.
func (s *Solver) Decompose(ctx context.Context, job domain.SolveJob) (string, error) {
	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.mu.Unlock()
	if s.DecomposeErr != nil {
		return "", s.DecomposeErr
	}
	return s.Output, nil
}

var _ ports.SolverRunner = (*Solver)(nil)
