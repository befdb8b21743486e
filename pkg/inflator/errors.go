package inflator

import "errors"

// Configuration errors, reported before any geometry is generated.
var (
	// ErrNoNetwork indicates the inflator has no wire network bound.
	ErrNoNetwork = errors.New("inflator: no wire network bound")

	// ErrEmptyNetwork indicates the network has no edges to sweep.
	ErrEmptyNetwork = errors.New("inflator: network has no edges")

	// ErrThicknessTypeUnset indicates Inflate was called before
	// SetThicknessType.
	ErrThicknessTypeUnset = errors.New("inflator: thickness type not set")

	// ErrThicknessSize indicates the thickness vector length does not
	// match the thickness type against the bound network.
	ErrThicknessSize = errors.New("inflator: thickness vector size mismatch")

	// ErrThicknessValue indicates a non-positive thickness value.
	ErrThicknessValue = errors.New("inflator: thickness values must be positive")

	// ErrUnknownScheme indicates WithRefinement named an unregistered
	// subdivision scheme.
	ErrUnknownScheme = errors.New("inflator: unknown refinement scheme")
)

// Geometric degeneracy errors. The engine reports these instead of
// emitting a non-manifold or non-periodic mesh.
var (
	// ErrIsolatedVertex indicates a network vertex with no incident edge.
	ErrIsolatedVertex = errors.New("inflator: isolated vertex")

	// ErrZeroLengthEdge indicates an edge whose endpoints coincide.
	ErrZeroLengthEdge = errors.New("inflator: zero-length edge")

	// ErrThicknessTooLarge indicates an edge too short to fit the joint
	// pull-backs of its endpoints; sweeping it would self-intersect.
	ErrThicknessTooLarge = errors.New("inflator: thickness too large for edge length")

	// ErrGeometryDegenerate indicates joint construction could not
	// produce a manifold patch (typically profiles too close together).
	ErrGeometryDegenerate = errors.New("inflator: degenerate joint geometry")
)
