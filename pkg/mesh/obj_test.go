package mesh

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseOBJ_TrianglePair(t *testing.T) {
	// Two triangles sharing the diagonal: 4 verts, 2 faces, 5 unique edges.
	m, err := ParseOBJ(writeOBJ(t, `
# a quad split into two triangles
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`))
	require.NoError(t, err)

	sig := m.Signature()
	assert.Equal(t, 4, sig.Vertices)
	assert.Equal(t, 2, sig.Faces)
	assert.Equal(t, 5, sig.Edges, "shared diagonal must count once")
}

func TestParseOBJ_QuadGrid(t *testing.T) {
	// 2x2 grid of quads: 9 verts, 4 faces, 12 edges.
	var b string
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			b += fmt.Sprintf("v %d %d 0\n", x, y)
		}
	}
	quads := [][4]int{
		{1, 2, 5, 4}, {2, 3, 6, 5}, {4, 5, 8, 7}, {5, 6, 9, 8},
	}
	for _, q := range quads {
		b += fmt.Sprintf("f %d %d %d %d\n", q[0], q[1], q[2], q[3])
	}

	m, err := ParseOBJ(writeOBJ(t, b))
	require.NoError(t, err)

	sig := m.Signature()
	assert.Equal(t, 9, sig.Vertices)
	assert.Equal(t, 4, sig.Faces)
	assert.Equal(t, 12, sig.Edges)
}

func TestParseOBJ_IndexedCorners(t *testing.T) {
	// Faces referencing pos/texco/norm triplets must use only the position index.
	m, err := ParseOBJ(writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
`))
	require.NoError(t, err)
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 1, m.FaceCount())
	assert.Equal(t, 3, m.EdgeCount())
}

func TestParseOBJ_Errors(t *testing.T) {
	cases := map[string]string{
		"missing file":       "",
		"short vertex":       "v 0 0\n",
		"short face":         "v 0 0 0\nv 1 0 0\nf 1 2\n",
		"index out of range": "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n",
		"garbage index":      "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 x\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			var err error
			if name == "missing file" {
				_, err = ParseOBJ(filepath.Join(t.TempDir(), "absent.obj"))
			} else {
				_, err = ParseOBJ(writeOBJ(t, content))
			}
			assert.Error(t, err)
		})
	}
}
