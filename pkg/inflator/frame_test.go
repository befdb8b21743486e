package inflator

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/require"
)

func TestFrameFor(t *testing.T) {
	dirs := []v3.Vec{
		{X: 1},
		{Y: 1},
		{Z: 1}, // triggers the X fallback
		{Z: -1},
		{X: 1, Y: 1, Z: 1},
		{X: -2, Y: 0.5, Z: 3},
	}
	for _, d := range dirs {
		d = d.Normalize()
		u, w := frameFor(d)

		require.InDelta(t, 1.0, u.Length(), 1e-12)
		require.InDelta(t, 1.0, w.Length(), 1e-12)
		require.InDelta(t, 0.0, u.Dot(d), 1e-12)
		require.InDelta(t, 0.0, w.Dot(d), 1e-12)
		require.InDelta(t, 0.0, u.Dot(w), 1e-12)

		// Right-handed: u cross w recovers the tangent, so a CCW profile
		// winds CCW about the edge.
		c := u.Cross(w)
		require.InDelta(t, 0.0, c.Sub(d).Length(), 1e-12, "dir %+v", d)
	}
}

func TestFrameForNearVertical(t *testing.T) {
	// Just past the fallback threshold the frame must stay finite and
	// orthonormal rather than degenerating with the Z reference.
	d := v3.Vec{X: 0.1, Z: 1}.Normalize()
	u, w := frameFor(d)
	require.False(t, math.IsNaN(u.X) || math.IsNaN(w.X))
	require.InDelta(t, 1.0, u.Length(), 1e-12)
	require.InDelta(t, 1.0, w.Length(), 1e-12)
}
