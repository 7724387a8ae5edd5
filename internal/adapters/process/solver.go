// Package process drives the external Dem Bones solver binary.
package process

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/ports"
)

// Solver implements ports.SolverRunner by invoking the solver command with
// the six named parameters. The algorithm itself is entirely owned by the
// binary; this adapter only shapes the invocation and captures its output.
type Solver struct {
	binary   string
	sceneDir string
	logger   *slog.Logger
}

// Option configures the Solver.
type Option func(*Solver)

// WithLogger sets a structured logger for invocation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSolver creates a Solver that invokes binary with the scene directory as
// its working context. binary may be a bare command name (resolved via PATH)
// or an explicit path.
func NewSolver(binary, sceneDir string, opts ...Option) *Solver {
	s := &Solver{
		binary:   binary,
		sceneDir: sceneDir,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available implements ports.SolverRunner.
func (s *Solver) Available(ctx context.Context) error {
	if s.binary == "" {
		return fmt.Errorf("no solver command configured: %w", domain.ErrSolverUnavailable)
	}
	if _, err := exec.LookPath(s.binary); err != nil {
		return fmt.Errorf("%q: %v: %w", s.binary, err, domain.ErrSolverUnavailable)
	}
	return nil
}

// Decompose implements ports.SolverRunner. The call blocks until the solver
// exits; cancelling ctx kills the process.
func (s *Solver) Decompose(ctx context.Context, job domain.SolveJob) (string, error) {
	args := []string{
		"--sourceMesh", job.SourceMesh,
		"--targetMesh", job.TargetMesh,
		"--startFrame", strconv.Itoa(job.Params.StartFrame),
		"--endFrame", strconv.Itoa(job.Params.EndFrame),
		"--globalIters", strconv.Itoa(job.Params.GlobalIters),
		"--numBones", strconv.Itoa(job.Params.NumBones),
	}

	cmd := exec.CommandContext(ctx, s.binary, args...)
	cmd.Dir = s.sceneDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.logger.Debug("invoking solver", "binary", s.binary, "args", strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return stdout.String(), fmt.Errorf("solver cancelled: %w", ctx.Err())
		}
		return stdout.String(), fmt.Errorf("execution failed: %v. Stderr: %s",
			err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

var _ ports.SolverRunner = (*Solver)(nil)
