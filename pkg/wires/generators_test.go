package wires_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chazu/wireforge/pkg/wires"
)

func inUnitCube(t *testing.T, net *wires.Network) {
	t.Helper()
	for i := 0; i < net.VertexCount(); i++ {
		v := net.Vertex(i)
		for _, c := range [3]float64{v.X, v.Y, v.Z} {
			require.GreaterOrEqual(t, c, 0.0)
			require.LessOrEqual(t, c, 1.0)
		}
	}
}

func TestCubeGenerator(t *testing.T) {
	net := wires.Cube()
	require.Equal(t, 8, net.VertexCount())
	require.Equal(t, 12, net.EdgeCount())
	inUnitCube(t, net)

	for v := 0; v < 8; v++ {
		require.Equal(t, 3, net.Degree(v), "corner %d", v)
	}
	// Edges are unit-length axis steps listed lower index first.
	for e := 0; e < net.EdgeCount(); e++ {
		require.InDelta(t, 1.0, net.EdgeLength(e), 1e-12)
		ends := net.Edge(e)
		require.Less(t, ends[0], ends[1])
	}
}

func TestDiamondGenerator(t *testing.T) {
	net := wires.Diamond()
	require.Equal(t, 22, net.VertexCount())
	require.Equal(t, 32, net.EdgeCount())
	inUnitCube(t, net)

	// Corners dangle, face centers and sites bond four ways. No vertex
	// is isolated.
	for v := 0; v < 8; v++ {
		require.Equal(t, 1, net.Degree(v), "corner %d", v)
	}
	for v := 8; v < 14; v++ {
		require.Equal(t, 4, net.Degree(v), "face center %d", v)
	}
	for v := 14; v < 22; v++ {
		require.Equal(t, 4, net.Degree(v), "site %d", v)
	}
	// All bonds have the same length.
	for e := 0; e < net.EdgeCount(); e++ {
		require.InDelta(t, net.EdgeLength(0), net.EdgeLength(e), 1e-12)
	}
}

func TestBrick5Generator(t *testing.T) {
	net := wires.Brick5()
	require.Equal(t, 15, net.VertexCount())
	require.Equal(t, 18, net.EdgeCount())
	inUnitCube(t, net)

	for v := 0; v < 8; v++ {
		require.Equal(t, 3, net.Degree(v), "corner %d", v)
	}
	for v := 8; v < 14; v++ {
		require.Equal(t, 1, net.Degree(v), "face center %d", v)
	}
	require.Equal(t, 6, net.Degree(14))
	// The center is the only interior vertex.
	require.Len(t, net.BoundaryVertices(1e-12), 14)

	// Frame edges run the cube edges, struts run half a cell.
	for e := 0; e < 12; e++ {
		require.InDelta(t, 1.0, net.EdgeLength(e), 1e-12)
	}
	for e := 12; e < 18; e++ {
		require.InDelta(t, 0.5, net.EdgeLength(e), 1e-12)
	}
}

func TestStarGenerator(t *testing.T) {
	net := wires.Star()
	require.Equal(t, 9, net.VertexCount())
	require.Equal(t, 8, net.EdgeCount())
	inUnitCube(t, net)
	require.Equal(t, 8, net.Degree(8))
	require.Len(t, net.BoundaryVertices(1e-12), 8)
}
