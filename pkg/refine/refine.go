// Package refine applies named subdivision schemes to inflated meshes.
// Schemes split every triangle four ways and optionally smooth, while
// keeping the mesh closed and propagating face provenance from parent
// to child triangles.
package refine

import (
	"errors"
	"sort"

	"github.com/chazu/wireforge/pkg/mesh"
)

var (
	// ErrNotClosed indicates a mesh edge not shared by exactly two faces;
	// subdivision stencils require a closed 2-manifold.
	ErrNotClosed = errors.New("refine: mesh is not closed")

	// ErrBadIterations indicates a negative iteration count.
	ErrBadIterations = errors.New("refine: negative iteration count")
)

// Scheme is a named subdivision scheme.
type Scheme interface {
	// Name returns the registry name of the scheme.
	Name() string
	// Apply runs the scheme for the given iteration count and returns a
	// new mesh; the input is never mutated. Zero iterations returns a
	// plain copy.
	Apply(m *mesh.Mesh, iterations int) (*mesh.Mesh, error)
}

var schemes = map[string]Scheme{
	"loop":     loopScheme{},
	"midpoint": midpointScheme{},
}

// Get returns the scheme registered under name.
func Get(name string) (Scheme, bool) {
	s, ok := schemes[name]
	return s, ok
}

// Names returns the registered scheme names, sorted.
func Names() []string {
	out := make([]string, 0, len(schemes))
	for name := range schemes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// loopScheme is Loop subdivision: 4-way split with the classic vertex
// and edge smoothing stencils.
type loopScheme struct{}

func (loopScheme) Name() string { return "loop" }

func (loopScheme) Apply(m *mesh.Mesh, iterations int) (*mesh.Mesh, error) {
	return applyIterated(m, iterations, true)
}

// midpointScheme is a 4-way split at edge midpoints with no smoothing;
// it refines the triangulation without moving the surface.
type midpointScheme struct{}

func (midpointScheme) Name() string { return "midpoint" }

func (midpointScheme) Apply(m *mesh.Mesh, iterations int) (*mesh.Mesh, error) {
	return applyIterated(m, iterations, false)
}

func applyIterated(m *mesh.Mesh, iterations int, smooth bool) (*mesh.Mesh, error) {
	if iterations < 0 {
		return nil, ErrBadIterations
	}
	out := m.Clone()
	for i := 0; i < iterations; i++ {
		next, err := subdivideOnce(out, smooth)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}
