package refine_test

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/require"

	"github.com/chazu/wireforge/pkg/mesh"
	"github.com/chazu/wireforge/pkg/meshcheck"
	"github.com/chazu/wireforge/pkg/refine"
)

func tetra() *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}},
		Faces:    [][3]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}},
		Sources:  []mesh.FaceSource{0, 1, 2, mesh.JointSource(0)},
	}
}

func TestRegistry(t *testing.T) {
	require.Equal(t, []string{"loop", "midpoint"}, refine.Names())

	for _, name := range refine.Names() {
		s, ok := refine.Get(name)
		require.True(t, ok)
		require.Equal(t, name, s.Name())
	}

	_, ok := refine.Get("catmull-clark")
	require.False(t, ok)
}

func TestMidpointSubdivision(t *testing.T) {
	s, _ := refine.Get("midpoint")
	out, err := s.Apply(tetra(), 1)
	require.NoError(t, err)

	// 4-way split: F' = 4F, V' = V + E.
	require.Equal(t, 16, out.FaceCount())
	require.Equal(t, 4+6, out.VertexCount())
	require.True(t, meshcheck.IsWatertight(out))
	require.True(t, meshcheck.IsManifold(out))

	// Original vertices are untouched by the unsmoothed scheme.
	m := tetra()
	for i := 0; i < m.VertexCount(); i++ {
		require.Equal(t, m.Vertices[i], out.Vertices[i])
	}
}

func TestSourcePropagation(t *testing.T) {
	s, _ := refine.Get("midpoint")
	out, err := s.Apply(tetra(), 1)
	require.NoError(t, err)
	require.Len(t, out.Sources, out.FaceCount())

	// Each parent face contributes its tag to exactly four children.
	counts := make(map[mesh.FaceSource]int)
	for _, src := range out.Sources {
		counts[src]++
	}
	require.Equal(t, 4, counts[mesh.FaceSource(0)])
	require.Equal(t, 4, counts[mesh.JointSource(0)])
}

func TestLoopSubdivision(t *testing.T) {
	s, _ := refine.Get("loop")
	out, err := s.Apply(tetra(), 2)
	require.NoError(t, err)

	require.Equal(t, 64, out.FaceCount())
	require.True(t, meshcheck.IsWatertight(out))
	require.True(t, meshcheck.IsManifold(out))

	// Smoothing shrinks a convex shape toward its interior.
	min, max := out.BoundingBox()
	require.Greater(t, min.X, -1e-9)
	require.Less(t, max.X, 1.0)
}

func TestZeroIterationsCopies(t *testing.T) {
	m := tetra()
	s, _ := refine.Get("loop")
	out, err := s.Apply(m, 0)
	require.NoError(t, err)
	require.Equal(t, m.Faces, out.Faces)
	require.Equal(t, m.Vertices, out.Vertices)

	out.Vertices[0].X = 5
	require.Equal(t, 0.0, m.Vertices[0].X)
}

func TestErrors(t *testing.T) {
	s, _ := refine.Get("loop")

	_, err := s.Apply(tetra(), -1)
	require.ErrorIs(t, err, refine.ErrBadIterations)

	open := &mesh.Mesh{
		Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}},
		Faces:    [][3]int{{0, 1, 2}},
		Sources:  []mesh.FaceSource{0},
	}
	_, err = s.Apply(open, 1)
	require.ErrorIs(t, err, refine.ErrNotClosed)
}
