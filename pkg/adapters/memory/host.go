// Package memory provides in-memory adapter implementations, primarily for
// tests and examples.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/ports"
)

// Object is a scene object held by the in-memory host.
type Object struct {
	// HasMesh marks the object as carrying a mesh surface.
	HasMesh   bool
	Signature domain.Signature
}

// Host implements ports.Host using plain maps. Selection is mutated
// directly by tests via Select.
type Host struct {
	mu        sync.Mutex
	objects   map[string]Object
	selection []string
	start     int
	end       int
}

// NewHost creates a Host with the provided objects keyed by full path.
func NewHost(objects map[string]Object) *Host {
	if objects == nil {
		objects = make(map[string]Object)
	}
	return &Host{objects: objects, start: 1, end: 100}
}

// Select replaces the current selection.
func (h *Host) Select(paths ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.selection = append([]string(nil), paths...)
}

// SetTimeline sets the playback range returned by TimelineRange.
func (h *Host) SetTimeline(start, end int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.start, h.end = start, end
}

// Selection implements ports.Host.
func (h *Host) Selection(ctx context.Context) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.selection...), nil
}

// ObjectExists implements ports.Host.
func (h *Host) ObjectExists(path string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.objects[path]
	return ok
}

// HasMeshShape implements ports.Host.
func (h *Host) HasMeshShape(path string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	obj, ok := h.objects[path]
	return ok && obj.HasMesh
}

// Topology implements ports.Host.
func (h *Host) Topology(path string) (domain.Signature, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	obj, ok := h.objects[path]
	if !ok {
		return domain.Signature{}, fmt.Errorf("%q: %w", path, domain.ErrObjectNotFound)
	}
	if !obj.HasMesh {
		return domain.Signature{}, fmt.Errorf("%q has no mesh shape", path)
	}
	return obj.Signature, nil
}

// TimelineRange implements ports.Host.
func (h *Host) TimelineRange() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.start, h.end
}

var _ ports.Host = (*Host)(nil)
