package inflator

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// frameFallback is the |tangent.Z| threshold beyond which the frame
// reference switches from Z to X to stay well-conditioned.
const frameFallback = 0.9

// frameFor returns two unit axes (u, w) orthogonal to the unit tangent
// d, chosen so that u cross w equals d. Profile coordinates (x, y) map
// to u*x + w*y, which makes a CCW profile wind CCW about the tangent.
// The reference axis is Z, falling back to X for near-vertical tangents.
func frameFor(d v3.Vec) (u, w v3.Vec) {
	ref := v3.Vec{Z: 1}
	if math.Abs(d.Z) > frameFallback {
		ref = v3.Vec{X: 1}
	}
	u = ref.Cross(d).Normalize()
	w = d.Cross(u)
	return u, w
}
