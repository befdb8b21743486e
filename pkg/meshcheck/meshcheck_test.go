package meshcheck_test

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/require"

	"github.com/chazu/wireforge/pkg/mesh"
	"github.com/chazu/wireforge/pkg/meshcheck"
	"github.com/chazu/wireforge/pkg/wires"
)

func tetra() *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: []v3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}},
		Faces:    [][3]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}},
		Sources:  []mesh.FaceSource{0, 0, 0, 0},
	}
}

// boxSurface triangulates the unit cube surface with diagonals chosen
// consistently, so opposite faces are exact translates of each other.
func boxSurface() *mesh.Mesh {
	var verts []v3.Vec
	for z := 0; z <= 1; z++ {
		for y := 0; y <= 1; y++ {
			for x := 0; x <= 1; x++ {
				verts = append(verts, v3.Vec{X: float64(x), Y: float64(y), Z: float64(z)})
			}
		}
	}
	faces := [][3]int{
		{0, 1, 3}, {0, 3, 2}, // z = 0
		{4, 5, 7}, {4, 7, 6}, // z = 1
		{0, 1, 5}, {0, 5, 4}, // y = 0
		{2, 3, 7}, {2, 7, 6}, // y = 1
		{0, 2, 6}, {0, 6, 4}, // x = 0
		{1, 3, 7}, {1, 7, 5}, // x = 1
	}
	srcs := make([]mesh.FaceSource, len(faces))
	return &mesh.Mesh{Vertices: verts, Faces: faces, Sources: srcs}
}

func TestIsWatertight(t *testing.T) {
	require.True(t, meshcheck.IsWatertight(tetra()))
	require.False(t, meshcheck.IsWatertight(&mesh.Mesh{}))

	open := tetra()
	open.Faces = open.Faces[:3]
	require.False(t, meshcheck.IsWatertight(open))
}

func TestIsManifold(t *testing.T) {
	require.True(t, meshcheck.IsManifold(tetra()))
	require.False(t, meshcheck.IsManifold(&mesh.Mesh{}))
}

func TestIsManifoldRejectsPinch(t *testing.T) {
	// Two tetrahedra sharing a single vertex: every edge is still used
	// twice, but the shared vertex's link is two disjoint cycles.
	m := &mesh.Mesh{
		Vertices: []v3.Vec{
			{}, {X: 1}, {Y: 1}, {Z: 1},
			{X: 2}, {X: 3}, {X: 2, Y: 1},
		},
		Faces: [][3]int{
			{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3},
			{3, 5, 4}, {3, 4, 6}, {3, 6, 5}, {4, 5, 6},
		},
		Sources: make([]mesh.FaceSource, 8),
	}
	require.True(t, meshcheck.IsWatertight(m))
	require.False(t, meshcheck.IsManifold(m))
}

func TestIsManifoldRejectsUnreferencedVertex(t *testing.T) {
	m := tetra()
	m.Vertices = append(m.Vertices, v3.Vec{X: 9})
	require.False(t, meshcheck.IsManifold(m))
}

func TestIsPeriodic(t *testing.T) {
	m := boxSurface()
	lo := v3.Vec{}
	hi := v3.Vec{X: 1, Y: 1, Z: 1}
	require.True(t, meshcheck.IsPeriodic(m, lo, hi, meshcheck.DefaultEps))

	// Nudge one corner off its faces: the counts no longer match.
	bad := boxSurface()
	bad.Vertices[7].Z += 0.01
	require.False(t, meshcheck.IsPeriodic(bad, lo, hi, meshcheck.DefaultEps))

	// Degenerate cell.
	require.False(t, meshcheck.IsPeriodic(m, lo, v3.Vec{X: 1, Y: 1}, meshcheck.DefaultEps))
}

func TestIsPeriodicVacuousInterior(t *testing.T) {
	// Geometry strictly inside the cell has no face vertices to pair.
	m := tetra()
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].MulScalar(0.2).Add(v3.Vec{X: 0.3, Y: 0.3, Z: 0.3})
	}
	require.True(t, meshcheck.IsPeriodic(m, v3.Vec{}, v3.Vec{X: 1, Y: 1, Z: 1}, meshcheck.DefaultEps))
}

func TestFaceSourcesValid(t *testing.T) {
	net := wires.Star()
	m := tetra()

	m.Sources = []mesh.FaceSource{
		mesh.EdgeSource(0), mesh.EdgeSource(7),
		mesh.JointSource(0), mesh.JointSource(8),
	}
	require.True(t, meshcheck.FaceSourcesValid(m, net))

	m.Sources[0] = mesh.EdgeSource(8) // star has edges 0..7
	require.False(t, meshcheck.FaceSourcesValid(m, net))

	m.Sources[0] = mesh.JointSource(9) // star has vertices 0..8
	require.False(t, meshcheck.FaceSourcesValid(m, net))

	m.Sources = m.Sources[:3]
	require.False(t, meshcheck.FaceSourcesValid(m, net))
}
