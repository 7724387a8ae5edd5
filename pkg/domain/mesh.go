package domain

import (
	"fmt"
	"strings"
)

// ShortName returns the trailing segment of a '|'-separated object path.
// It is what the UI displays for a mesh reference like "|chr|body_sim".
func ShortName(fullPath string) string {
	if fullPath == "" {
		return ""
	}
	parts := strings.Split(fullPath, "|")
	return parts[len(parts)-1]
}

// Signature captures the topology counts of a single mesh.
// Two signatures match iff all three counts are equal.
type Signature struct {
	Vertices int `json:"vertices" yaml:"vertices" mapstructure:"vertices"`
	Faces    int `json:"faces" yaml:"faces" mapstructure:"faces"`
	Edges    int `json:"edges" yaml:"edges" mapstructure:"edges"`
}

// Equal reports whether both signatures carry identical counts.
func (s Signature) Equal(other Signature) bool {
	return s.Vertices == other.Vertices &&
		s.Faces == other.Faces &&
		s.Edges == other.Edges
}

func (s Signature) String() string {
	return fmt.Sprintf("%d verts, %d faces, %d edges", s.Vertices, s.Faces, s.Edges)
}

// MeshInfo pairs a mesh's display name with its topology signature.
// It exists for diagnostic display, not persistence.
type MeshInfo struct {
	Name      string    `json:"name"`
	Signature Signature `json:"signature"`
}

// TopologyReport is the outcome of comparing two meshes.
// When a mesh fails to resolve, Match is false and Detail carries the cause.
type TopologyReport struct {
	Source MeshInfo `json:"source"`
	Target MeshInfo `json:"target"`
	Match  bool     `json:"match"`
	Detail string   `json:"detail,omitempty"`
}
