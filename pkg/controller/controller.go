// Package controller holds the session state of the Dem Bones tool: the
// source/target mesh pair, selection-driven mutation of that pair, and the
// single Run operation that drives the external solver.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/ports"
	"github.com/riglab/dembones/pkg/topology"
	"github.com/riglab/dembones/pkg/validator"
)

// Controller coordinates selection, validation and solver invocation.
// It is reusable across multiple runs and is only ever driven from the
// operator's thread; there is no internal locking.
type Controller struct {
	host   ports.Host
	solver ports.SolverRunner
	store  ports.StateStore
	logger *slog.Logger

	state domain.ToolState
}

// SetResult reports a successful selection-driven mesh assignment.
type SetResult struct {
	FullPath  string
	ShortName string
	Message   string
}

// New creates a Controller bound to the given host and solver.
func New(host ports.Host, solver ports.SolverRunner, opts ...Option) *Controller {
	c := &Controller{
		host:   host,
		solver: solver,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current source/target pair.
func (c *Controller) State() domain.ToolState { return c.state }

// SourceMesh returns the current source mesh reference ("" when unset).
func (c *Controller) SourceMesh() string { return c.state.SourceMesh }

// TargetMesh returns the current target mesh reference ("" when unset).
func (c *Controller) TargetMesh() string { return c.state.TargetMesh }

// SetSourceFromSelection binds the source mesh to the current selection.
// On any failure the prior reference is left unchanged.
func (c *Controller) SetSourceFromSelection(ctx context.Context) (*SetResult, error) {
	path, err := c.selectedMesh(ctx)
	if err != nil {
		return nil, err
	}
	c.state.SourceMesh = path
	c.logger.Debug("source mesh set", "path", path)
	if err := c.persist(ctx); err != nil {
		return nil, err
	}
	short := domain.ShortName(path)
	return &SetResult{FullPath: path, ShortName: short, Message: "Source mesh set: " + short}, nil
}

// SetTargetFromSelection binds the target mesh to the current selection.
// On any failure the prior reference is left unchanged.
func (c *Controller) SetTargetFromSelection(ctx context.Context) (*SetResult, error) {
	path, err := c.selectedMesh(ctx)
	if err != nil {
		return nil, err
	}
	c.state.TargetMesh = path
	c.logger.Debug("target mesh set", "path", path)
	if err := c.persist(ctx); err != nil {
		return nil, err
	}
	short := domain.ShortName(path)
	return &SetResult{FullPath: path, ShortName: short, Message: "Target mesh set: " + short}, nil
}

// selectedMesh resolves the current selection to exactly one mesh object.
func (c *Controller) selectedMesh(ctx context.Context) (string, error) {
	selection, err := c.host.Selection(ctx)
	if err != nil {
		return "", fmt.Errorf("selection query failed: %w", err)
	}
	if len(selection) == 0 {
		return "", fmt.Errorf("please select a mesh: %w", domain.ErrNoSelection)
	}
	if len(selection) > 1 {
		return "", fmt.Errorf("%d objects selected, select exactly one mesh", len(selection))
	}
	path := selection[0]
	if !c.host.HasMeshShape(path) {
		return "", fmt.Errorf("selected object '%s' is not a mesh", domain.ShortName(path))
	}
	return path, nil
}

// Validate runs the full input validation for the held pair and the given
// parameters, returning every violation at once.
func (c *Controller) Validate(params domain.RunParams) (bool, []string) {
	return validator.ValidateAll(c.host, c.state.SourceMesh, c.state.TargetMesh, params)
}

// Topology compares the held pair for diagnostic display.
func (c *Controller) Topology() domain.TopologyReport {
	return topology.Compare(c.host, c.state.SourceMesh, c.state.TargetMesh)
}

// Run validates the inputs, ensures the solver is reachable and invokes the
// decomposition. Every failure mode is folded into the returned RunResult;
// the error return is reserved for state persistence problems.
func (c *Controller) Run(ctx context.Context, params domain.RunParams) domain.RunResult {
	if valid, errs := c.Validate(params); !valid {
		return domain.RunResult{
			Success: false,
			Message: "Validation failed:\n- " + strings.Join(errs, "\n- "),
		}
	}

	if err := c.solver.Available(ctx); err != nil {
		return domain.RunResult{
			Success: false,
			Message: fmt.Sprintf("Dem Bones solver is not available: %v", err),
		}
	}

	job := domain.SolveJob{
		SourceMesh: c.state.SourceMesh,
		TargetMesh: c.state.TargetMesh,
		Params:     params,
	}
	c.logger.Info("solver run started",
		"source", job.SourceMesh, "target", job.TargetMesh,
		"start_frame", params.StartFrame, "end_frame", params.EndFrame,
		"global_iters", params.GlobalIters, "num_bones", params.NumBones)

	output, err := c.solver.Decompose(ctx, job)
	if err != nil {
		c.logger.Error("solver run failed", "error", err)
		return domain.RunResult{
			Success: false,
			Message: fmt.Sprintf("Error running Dem Bones: %v", err),
			Output:  output,
		}
	}

	c.logger.Info("solver run finished", "target", job.TargetMesh)
	return domain.RunResult{
		Success: true,
		Message: domain.SuccessMessage(params.NumBones, c.state.TargetMesh),
		Output:  output,
	}
}

// persist saves the pair to the configured store, if any.
func (c *Controller) persist(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Save(ctx, &c.state); err != nil {
		return fmt.Errorf("failed to persist tool state: %w", err)
	}
	return nil
}
