package inflator

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/require"
)

// hullIsClosedOutward checks the hull faces form a closed surface with
// every face oriented away from the centroid of the input points.
func hullIsClosedOutward(t *testing.T, pts []v3.Vec, faces [][3]int) {
	t.Helper()

	var centroid v3.Vec
	for _, p := range pts {
		centroid = centroid.Add(p)
	}
	centroid = centroid.DivScalar(float64(len(pts)))

	count := make(map[[2]int]int)
	for _, f := range faces {
		n := pts[f[1]].Sub(pts[f[0]]).Cross(pts[f[2]].Sub(pts[f[0]]))
		require.Greater(t, n.Dot(pts[f[0]].Sub(centroid)), 0.0, "face %v inward", f)
		for c := 0; c < 3; c++ {
			count[orderPair(f[c], f[(c+1)%3])]++
		}
	}
	for e, n := range count {
		require.Equal(t, 2, n, "edge %v", e)
	}
}

func TestConvexHullTetra(t *testing.T) {
	pts := []v3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}
	faces, err := convexHull(pts)
	require.NoError(t, err)
	require.Len(t, faces, 4)
	hullIsClosedOutward(t, pts, faces)
}

func TestConvexHullCube(t *testing.T) {
	var pts []v3.Vec
	for z := 0; z <= 1; z++ {
		for y := 0; y <= 1; y++ {
			for x := 0; x <= 1; x++ {
				pts = append(pts, v3.Vec{X: float64(x), Y: float64(y), Z: float64(z)})
			}
		}
	}
	faces, err := convexHull(pts)
	require.NoError(t, err)
	// A triangulated hull over 8 extreme points has 2V-4 faces. The
	// coplanar-inclusive insertion must keep all cube corners even
	// though each sits in the plane of two existing faces.
	require.Len(t, faces, 12)
	hullIsClosedOutward(t, pts, faces)

	used := make(map[int]bool)
	for _, f := range faces {
		for _, v := range f {
			used[v] = true
		}
	}
	require.Len(t, used, 8)
}

func TestConvexHullIgnoresInterior(t *testing.T) {
	pts := []v3.Vec{
		{}, {X: 1}, {Y: 1}, {Z: 1},
		{X: 0.25, Y: 0.25, Z: 0.25}, // strictly inside
	}
	faces, err := convexHull(pts)
	require.NoError(t, err)
	require.Len(t, faces, 4)
	for _, f := range faces {
		for _, v := range f {
			require.NotEqual(t, 4, v)
		}
	}
}

func TestConvexHullDegenerate(t *testing.T) {
	_, err := convexHull([]v3.Vec{{}, {X: 1}, {Y: 1}})
	require.ErrorIs(t, err, errHullTooFew)

	// Coplanar cloud has no volume.
	_, err = convexHull([]v3.Vec{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}, {X: 0.5, Y: 0.25}})
	require.ErrorIs(t, err, errHullDegenerate)

	// Collinear cloud.
	_, err = convexHull([]v3.Vec{{}, {X: 1}, {X: 2}, {X: 3}})
	require.ErrorIs(t, err, errHullDegenerate)
}
