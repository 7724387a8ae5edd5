// Package adapters provides the filesystem-backed implementations of the
// tool's ports: the scene host (manifest directory + OBJ meshes) and the
// state store.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/mesh"
	"github.com/riglab/dembones/pkg/ports"
)

// ManifestName is the scene manifest file expected in a scene directory.
const ManifestName = "scene.yaml"

// stateDirName holds per-scene tool files (selection, session state).
const stateDirName = ".dembones"

// SceneManifest describes the objects and timeline of a scene directory.
// It uses "mapstructure" tags so the generic YAML map decodes into it.
type SceneManifest struct {
	Name     string      `json:"name" mapstructure:"name"`
	Timeline Timeline    `json:"timeline" mapstructure:"timeline"`
	Objects  []ObjectDef `json:"objects" mapstructure:"objects"`
}

// Timeline is the scene playback range.
type Timeline struct {
	Start int `json:"start" mapstructure:"start"`
	End   int `json:"end" mapstructure:"end"`
}

// ObjectDef binds a scene object path to an optional mesh file.
// Objects without a Mesh entry are plain transforms (groups, locators).
type ObjectDef struct {
	Path string `json:"path" mapstructure:"path"`
	Mesh string `json:"mesh,omitempty" mapstructure:"mesh"`
}

// SceneHost implements ports.Host against a scene directory. Topology is
// evaluated lazily from the bound OBJ files and cached per object.
type SceneHost struct {
	dir      string
	manifest SceneManifest
	objects  map[string]ObjectDef

	mu         sync.Mutex
	signatures map[string]domain.Signature
}

// OpenScene loads the manifest from dir and returns a host over it.
func OpenScene(dir string) (*SceneHost, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("failed to read scene manifest: %w", err)
	}

	// Decode through a generic map so unknown keys are tolerated and the
	// typed struct stays mapstructure-driven.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scene manifest: %w", err)
	}
	var manifest SceneManifest
	if err := mapstructure.Decode(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode scene manifest: %w", err)
	}

	objects := make(map[string]ObjectDef, len(manifest.Objects))
	for _, obj := range manifest.Objects {
		if obj.Path == "" {
			return nil, fmt.Errorf("scene manifest: object with empty path")
		}
		if _, dup := objects[obj.Path]; dup {
			return nil, fmt.Errorf("scene manifest: duplicate object path %q", obj.Path)
		}
		objects[obj.Path] = obj
	}

	return &SceneHost{
		dir:        dir,
		manifest:   manifest,
		objects:    objects,
		signatures: make(map[string]domain.Signature),
	}, nil
}

// Dir returns the scene directory the host was opened on.
func (h *SceneHost) Dir() string { return h.dir }

// Manifest returns the decoded scene manifest.
func (h *SceneHost) Manifest() SceneManifest { return h.manifest }

// Selection implements ports.Host by reading the per-scene selection file.
// A missing file simply means nothing is selected.
func (h *SceneHost) Selection(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(h.selectionPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}
	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, fmt.Errorf("failed to parse selection: %w", err)
	}
	return paths, nil
}

// SetSelection replaces the current selection. Every path must resolve to a
// scene object; an empty list clears the selection.
func (h *SceneHost) SetSelection(ctx context.Context, paths []string) error {
	for _, p := range paths {
		if !h.ObjectExists(p) {
			return fmt.Errorf("cannot select %q: %w", p, domain.ErrObjectNotFound)
		}
	}
	if len(paths) == 0 {
		if err := os.Remove(h.selectionPath()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear selection: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Join(h.dir, stateDirName), 0755); err != nil {
		return fmt.Errorf("failed to ensure state directory: %w", err)
	}
	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}
	if err := os.WriteFile(h.selectionPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write selection: %w", err)
	}
	return nil
}

// ObjectExists implements ports.Host.
func (h *SceneHost) ObjectExists(path string) bool {
	_, ok := h.objects[path]
	return ok
}

// HasMeshShape implements ports.Host.
func (h *SceneHost) HasMeshShape(path string) bool {
	obj, ok := h.objects[path]
	return ok && obj.Mesh != ""
}

// Topology implements ports.Host.
func (h *SceneHost) Topology(path string) (domain.Signature, error) {
	obj, ok := h.objects[path]
	if !ok {
		return domain.Signature{}, fmt.Errorf("%q: %w", path, domain.ErrObjectNotFound)
	}
	if obj.Mesh == "" {
		return domain.Signature{}, fmt.Errorf("%q has no mesh shape", path)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if sig, cached := h.signatures[path]; cached {
		return sig, nil
	}
	m, err := mesh.ParseOBJ(filepath.Join(h.dir, obj.Mesh))
	if err != nil {
		return domain.Signature{}, fmt.Errorf("failed to evaluate %q: %w", path, err)
	}
	sig := m.Signature()
	h.signatures[path] = sig
	return sig, nil
}

// TimelineRange implements ports.Host.
func (h *SceneHost) TimelineRange() (int, int) {
	return h.manifest.Timeline.Start, h.manifest.Timeline.End
}

func (h *SceneHost) selectionPath() string {
	return filepath.Join(h.dir, stateDirName, "selection.json")
}

var _ ports.Host = (*SceneHost)(nil)
