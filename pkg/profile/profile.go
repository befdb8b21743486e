// Package profile defines the 2D cross-sections swept along wire edges.
// A profile is an immutable closed polygon of sample points in
// profile-local coordinates, centered at the origin with counter-
// clockwise winding, shared read-only by every edge that uses it.
package profile

import (
	"fmt"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// ErrTooFewSamples indicates a profile with fewer than 3 sample points.
var ErrTooFewSamples = fmt.Errorf("profile: need at least 3 samples")

// Profile is a closed polygon of sample points, radius-1 and centered
// at the origin. Immutable after construction.
type Profile struct {
	points []v2.Vec
}

// CreateIsotropic builds a regular n-gon profile of radius 1 with
// counter-clockwise winding. Samples are phase-shifted by half a step
// so no sample lies on a coordinate axis; tubes resting on a cell face
// then touch it between samples instead of through coincident points.
func CreateIsotropic(n int) (*Profile, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}
	pts := make([]v2.Vec, n)
	for j := 0; j < n; j++ {
		theta := (2*float64(j) + 1) * math.Pi / float64(n)
		pts[j] = v2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return fromPoints(pts), nil
}

// fromPoints wraps a point slice, normalizing winding to CCW.
func fromPoints(pts []v2.Vec) *Profile {
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return &Profile{points: pts}
}

// signedArea is the shoelace sum; positive for CCW winding.
func signedArea(pts []v2.Vec) float64 {
	sum := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Size returns the number of sample points.
func (p *Profile) Size() int { return len(p.points) }

// Point returns the i-th sample point.
func (p *Profile) Point(i int) v2.Vec { return p.points[i] }

// Points returns a copy of the sample points.
func (p *Profile) Points() []v2.Vec {
	return append([]v2.Vec(nil), p.points...)
}
