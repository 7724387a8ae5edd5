// Package config loads the tool configuration: where the solver binary and
// the host's document root live, plus the default run parameters the UI
// seeds its fields with.
//
// Configuration is layered: built-in defaults, then the user-level file
// (~/.config/dembones/config.yaml), then the per-scene file
// (<scene>/.dembones/config.yaml). Later layers override only the keys they
// actually set.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/riglab/dembones/pkg/domain"
)

// Config is the resolved tool configuration.
type Config struct {
	// SolverPath is the Dem Bones solver command: a bare name resolved via
	// PATH or an explicit binary path.
	SolverPath string `mapstructure:"solver_path"`
	// HostRoot is the host's documents root holding per-version directories
	// (the provisioning surface).
	HostRoot string `mapstructure:"host_root"`
	// ShelfName is the shelf the installer registers the launcher on.
	ShelfName string `mapstructure:"shelf_name"`
	// Defaults seed the run parameter fields.
	Defaults Defaults `mapstructure:"defaults"`
}

// Defaults are the initial run parameters shown by the UI.
type Defaults struct {
	StartFrame  int `mapstructure:"start_frame"`
	EndFrame    int `mapstructure:"end_frame"`
	GlobalIters int `mapstructure:"global_iters"`
	NumBones    int `mapstructure:"num_bones"`
}

// Params converts the defaults into run parameters.
func (d Defaults) Params() domain.RunParams {
	return domain.RunParams{
		StartFrame:  d.StartFrame,
		EndFrame:    d.EndFrame,
		GlobalIters: d.GlobalIters,
		NumBones:    d.NumBones,
	}
}

// Default returns the built-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		SolverPath: "dembones-solver",
		HostRoot:   filepath.Join(home, "Documents", "maya"),
		ShelfName:  "CustomTools",
		Defaults: Defaults{
			StartFrame:  1,
			EndFrame:    100,
			GlobalIters: 50,
			NumBones:    12,
		},
	}
}

// Load overlays the given YAML files, in order, on top of the defaults.
// Missing files are skipped; each file only overrides the keys it sets.
func Load(paths ...string) (Config, error) {
	cfg := Default()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		// Decoding onto the existing struct leaves absent keys untouched,
		// which is exactly the overlay behavior we want.
		if err := mapstructure.Decode(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// LoadForScene resolves the standard layering for a scene directory.
func LoadForScene(sceneDir string) (Config, error) {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "dembones", "config.yaml"))
	}
	paths = append(paths, filepath.Join(sceneDir, ".dembones", "config.yaml"))
	return Load(paths...)
}
