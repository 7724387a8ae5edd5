package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riglab/dembones/pkg/adapters/memory"
	"github.com/riglab/dembones/pkg/domain"
)

func TestCompare_Match(t *testing.T) {
	sig := domain.Signature{Vertices: 100, Faces: 98, Edges: 196}
	host := memory.NewHost(map[string]memory.Object{
		"|grp|sim":  {HasMesh: true, Signature: sig},
		"|grp|prod": {HasMesh: true, Signature: sig},
	})

	report := Compare(host, "|grp|sim", "|grp|prod")
	assert.True(t, report.Match)
	assert.Equal(t, "sim", report.Source.Name)
	assert.Equal(t, "prod", report.Target.Name)
	assert.Equal(t, sig, report.Source.Signature)
	assert.Equal(t, sig, report.Target.Signature)
	assert.Empty(t, report.Detail)
}

func TestCompare_AnyDifferingCount(t *testing.T) {
	base := domain.Signature{Vertices: 100, Faces: 98, Edges: 196}
	cases := map[string]domain.Signature{
		"vertices": {Vertices: 101, Faces: 98, Edges: 196},
		"faces":    {Vertices: 100, Faces: 99, Edges: 196},
		"edges":    {Vertices: 100, Faces: 98, Edges: 197},
	}
	for name, other := range cases {
		t.Run(name, func(t *testing.T) {
			host := memory.NewHost(map[string]memory.Object{
				"|a": {HasMesh: true, Signature: base},
				"|b": {HasMesh: true, Signature: other},
			})
			assert.False(t, Compare(host, "|a", "|b").Match)
		})
	}
}

func TestCompare_UnresolvableMesh(t *testing.T) {
	host := memory.NewHost(map[string]memory.Object{
		"|a": {HasMesh: true, Signature: domain.Signature{Vertices: 8, Faces: 6, Edges: 12}},
	})

	report := Compare(host, "|a", "|gone")
	assert.False(t, report.Match)
	assert.Contains(t, report.Detail, "gone")
	assert.NotEmpty(t, report.Detail, "failure must surface as detail, not a panic")
}
