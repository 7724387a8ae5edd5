// Package cli wires the tool's adapters and controller together for the
// command layer, and hosts the interactive session.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/riglab/dembones/internal/adapters"
	"github.com/riglab/dembones/internal/adapters/process"
	"github.com/riglab/dembones/internal/config"
	"github.com/riglab/dembones/internal/logging"
	"github.com/riglab/dembones/pkg/controller"
	"github.com/riglab/dembones/pkg/domain"
)

// App bundles everything a command needs: the opened scene, the persisted
// controller and the resolved configuration.
type App struct {
	Scene      *adapters.SceneHost
	Store      *adapters.FileStore
	Config     config.Config
	Controller *controller.Controller
	Logger     *slog.Logger
}

// Open loads the configuration, opens the scene directory and rebuilds the
// controller from any persisted session state.
func Open(sceneDir string, debug bool) (*App, error) {
	logger := logging.ForDebug(debug)

	cfg, err := config.LoadForScene(sceneDir)
	if err != nil {
		return nil, err
	}

	scene, err := adapters.OpenScene(sceneDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene %q: %w", sceneDir, err)
	}

	store := adapters.NewFileStore(sceneDir)
	state := domain.ToolState{}
	if saved, err := store.Load(context.Background()); err == nil {
		state = *saved
	} else if !errors.Is(err, domain.ErrStateNotFound) {
		return nil, err
	}

	solver := process.NewSolver(cfg.SolverPath, sceneDir, process.WithLogger(logger))

	ctrl := controller.New(scene, solver,
		controller.WithLogger(logger),
		controller.WithStore(store),
		controller.WithState(state),
	)

	logger.Debug("scene opened", "dir", sceneDir, "objects", len(scene.Manifest().Objects))

	return &App{
		Scene:      scene,
		Store:      store,
		Config:     cfg,
		Controller: ctrl,
		Logger:     logger,
	}, nil
}

// DefaultParams resolves the parameter defaults for this scene: configured
// defaults with the frame range replaced by the scene timeline when set.
func (a *App) DefaultParams() domain.RunParams {
	params := a.Config.Defaults.Params()
	if start, end := a.Scene.TimelineRange(); start != 0 || end != 0 {
		params.StartFrame = start
		params.EndFrame = end
	}
	return params
}
