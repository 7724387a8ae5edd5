// Package mesh reads polygon meshes from Wavefront OBJ files, just deep
// enough to evaluate topology. Positions and face loops are parsed; normals,
// texture coordinates and materials are skipped.
package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/riglab/dembones/pkg/domain"
)

// Mesh is a minimal polygon mesh: vertex positions plus per-face vertex
// index loops. Indices are zero-based (OBJ files start at 1).
type Mesh struct {
	Positions [][3]float64
	Faces     [][]int
}

// VertexCount returns the number of vertex positions.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// FaceCount returns the number of polygon faces.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// EdgeCount returns the number of unique undirected edges across all face
// boundary loops. An edge shared by two faces counts once.
func (m *Mesh) EdgeCount() int {
	type edge struct{ a, b int }
	seen := make(map[edge]struct{})
	for _, face := range m.Faces {
		n := len(face)
		for i := 0; i < n; i++ {
			a, b := face[i], face[(i+1)%n]
			if a > b {
				a, b = b, a
			}
			seen[edge{a, b}] = struct{}{}
		}
	}
	return len(seen)
}

// Signature evaluates the topology counts used by the match gate.
func (m *Mesh) Signature() domain.Signature {
	return domain.Signature{
		Vertices: m.VertexCount(),
		Faces:    m.FaceCount(),
		Edges:    m.EdgeCount(),
	}
}

// ParseOBJ reads an OBJ file from disk.
func ParseOBJ(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer file.Close()

	mesh := &Mesh{}
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		ident, val := fields[0], fields[1:]
		switch ident {
		case "v":
			if len(val) < 3 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var p [3]float64
			for i := 0; i < 3; i++ {
				p[i], err = strconv.ParseFloat(val[i], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad coordinate %q", lineNo, val[i])
				}
			}
			mesh.Positions = append(mesh.Positions, p)
		case "f":
			if len(val) < 3 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			face := make([]int, 0, len(val))
			for _, s := range val {
				// Each corner is pos, pos/texco, or pos/texco/norm.
				idx := strings.SplitN(s, "/", 2)[0]
				pos, err := strconv.Atoi(idx)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad face index %q", lineNo, s)
				}
				if pos < 0 {
					// Relative indices count back from the current vertex list.
					pos = len(mesh.Positions) + pos + 1
				}
				if pos < 1 || pos > len(mesh.Positions) {
					return nil, fmt.Errorf("line %d: face index %d out of range", lineNo, pos)
				}
				// Compensate for indices starting at 1 in the file.
				face = append(face, pos-1)
			}
			mesh.Faces = append(mesh.Faces, face)
		default:
			// vn, vt, usemtl, o, g, s: irrelevant to topology.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	return mesh, nil
}
