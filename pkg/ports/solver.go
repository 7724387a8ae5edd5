package ports

import (
	"context"

	"github.com/riglab/dembones/pkg/domain"
)

// SolverRunner drives the external Dem Bones command. Its contract is
// deliberately thin: the decomposition either completes (side effect: new
// skeleton and weights on the target mesh) or fails with an error. Everything
// else is defined by the closed solver binary, not by this tool.
type SolverRunner interface {
	// Available checks that the solver command can be invoked at all.
	// Returns domain.ErrSolverUnavailable (wrapped) when it cannot.
	Available(ctx context.Context) error

	// Decompose runs the solver synchronously and returns its log output.
	// The call blocks until the solver exits; cancellation flows through ctx.
	Decompose(ctx context.Context, job domain.SolveJob) (string, error)
}
