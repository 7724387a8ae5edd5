package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riglab/dembones/pkg/adapters/memory"
	"github.com/riglab/dembones/pkg/domain"
)

var cubeSig = domain.Signature{Vertices: 8, Faces: 6, Edges: 12}

func testHost() *memory.Host {
	return memory.NewHost(map[string]memory.Object{
		"|chr|body_sim":  {HasMesh: true, Signature: cubeSig},
		"|chr|body_prod": {HasMesh: true, Signature: cubeSig},
		"|chr|rig_grp":   {HasMesh: false},
	})
}

func validParams() domain.RunParams {
	return domain.RunParams{StartFrame: 1, EndFrame: 100, GlobalIters: 30, NumBones: 40}
}

func TestSetSourceFromSelection(t *testing.T) {
	host := testHost()
	c := New(host, memory.NewSolver())

	host.Select("|chr|body_sim")
	res, err := c.SetSourceFromSelection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "|chr|body_sim", res.FullPath)
	assert.Equal(t, "body_sim", res.ShortName)
	assert.Equal(t, "Source mesh set: body_sim", res.Message)
	assert.Equal(t, "|chr|body_sim", c.SourceMesh())
}

func TestSetSourceFromSelection_Failures(t *testing.T) {
	host := testHost()
	c := New(host, memory.NewSolver())

	// Seed a prior reference to verify it survives failed attempts.
	host.Select("|chr|body_sim")
	_, err := c.SetSourceFromSelection(context.Background())
	require.NoError(t, err)

	t.Run("empty selection", func(t *testing.T) {
		host.Select()
		_, err := c.SetSourceFromSelection(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoSelection)
		assert.Equal(t, "|chr|body_sim", c.SourceMesh(), "prior reference must be unchanged")
	})

	t.Run("multiple selected", func(t *testing.T) {
		host.Select("|chr|body_sim", "|chr|body_prod")
		_, err := c.SetSourceFromSelection(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one mesh")
		assert.Equal(t, "|chr|body_sim", c.SourceMesh())
	})

	t.Run("non-mesh transform", func(t *testing.T) {
		host.Select("|chr|rig_grp")
		_, err := c.SetSourceFromSelection(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'rig_grp' is not a mesh")
		assert.Equal(t, "|chr|body_sim", c.SourceMesh())
	})
}

func TestRun_Success(t *testing.T) {
	host := testHost()
	solver := memory.NewSolver()
	c := New(host, solver, WithState(domain.ToolState{
		SourceMesh: "|chr|body_sim",
		TargetMesh: "|chr|body_prod",
	}))

	result := c.Run(context.Background(), validParams())
	require.True(t, result.Success, result.Message)
	assert.Equal(t, "SUCCESS! 40 bones created on 'body_prod'", result.Message)

	jobs := solver.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "|chr|body_sim", jobs[0].SourceMesh)
	assert.Equal(t, "|chr|body_prod", jobs[0].TargetMesh)
	assert.Equal(t, validParams(), jobs[0].Params)
}

func TestRun_ValidationFailure(t *testing.T) {
	host := testHost()
	solver := memory.NewSolver()
	c := New(host, solver)

	result := c.Run(context.Background(), domain.RunParams{
		StartFrame: 10, EndFrame: 10, GlobalIters: 1, NumBones: 1,
	})
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Source mesh is not set")
	assert.Contains(t, result.Message, "Start frame (10) must be less than end frame (10)")
	assert.Empty(t, solver.Jobs(), "solver must not run on invalid input")
}

func TestRun_SolverUnavailable(t *testing.T) {
	host := testHost()
	solver := memory.NewSolver()
	solver.AvailableErr = domain.ErrSolverUnavailable
	c := New(host, solver, WithState(domain.ToolState{
		SourceMesh: "|chr|body_sim",
		TargetMesh: "|chr|body_prod",
	}))

	result := c.Run(context.Background(), validParams())
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "not available")
	assert.Empty(t, solver.Jobs())
}

func TestRun_SolverFailure(t *testing.T) {
	host := testHost()
	solver := memory.NewSolver()
	solver.DecomposeErr = errors.New("exit status 3")
	c := New(host, solver, WithState(domain.ToolState{
		SourceMesh: "|chr|body_sim",
		TargetMesh: "|chr|body_prod",
	}))

	result := c.Run(context.Background(), validParams())
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Error running Dem Bones")
}

func TestRun_Reusable(t *testing.T) {
	// The controller survives a failed attempt and runs again without rebuilding.
	host := testHost()
	solver := memory.NewSolver()
	solver.DecomposeErr = errors.New("boom")
	c := New(host, solver, WithState(domain.ToolState{
		SourceMesh: "|chr|body_sim",
		TargetMesh: "|chr|body_prod",
	}))

	first := c.Run(context.Background(), validParams())
	assert.False(t, first.Success)

	solver.DecomposeErr = nil
	second := c.Run(context.Background(), validParams())
	assert.True(t, second.Success)
}

func TestSetPersistsThroughStore(t *testing.T) {
	host := testHost()
	store := memory.NewStore()
	c := New(host, memory.NewSolver(), WithStore(store))

	host.Select("|chr|body_prod")
	_, err := c.SetTargetFromSelection(context.Background())
	require.NoError(t, err)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "|chr|body_prod", saved.TargetMesh)
	assert.Empty(t, saved.SourceMesh)
}
