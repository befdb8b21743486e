// Package inflator turns a periodic wire network into a closed,
// manifold triangle mesh. Every edge is swept with a 2D profile into a
// tube, tubes are pulled back from their shared vertices, and the gaps
// are capped with convex joint patches. The result tiles space when
// translated by the network's cell periods.
package inflator

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/wireforge/pkg/mesh"
	"github.com/chazu/wireforge/pkg/profile"
	"github.com/chazu/wireforge/pkg/refine"
	"github.com/chazu/wireforge/pkg/wires"
)

// ThicknessType selects how the thickness vector is indexed.
type ThicknessType int

const (
	thicknessUnset ThicknessType = iota

	// PerEdge assigns one thickness per wire edge; tubes are uniform
	// cylinders.
	PerEdge

	// PerVertex assigns one thickness per wire vertex; tubes taper
	// linearly between their endpoint radii.
	PerVertex
)

func (t ThicknessType) String() string {
	switch t {
	case PerEdge:
		return "per-edge"
	case PerVertex:
		return "per-vertex"
	default:
		return "unset"
	}
}

// Thickness values are diameters. An entry of 0.5 produces a tube of
// radius 0.25.

// pullbackFactor scales the joint radius into the distance end rings
// retreat from their wire vertex. Below about sqrt(2) the rings of an
// axis-plus-diagonals star joint touch the hull's supporting planes;
// 1.6 keeps them strictly inside.
const pullbackFactor = 1.6

// minEdgeSlack is the fraction of an edge's length that pull-backs at
// both ends may consume before the sweep is rejected as self-crossing.
const minEdgeSlack = 0.9

const zeroEdgeEps = 1e-12

// Periodic inflates a wire network into a periodic triangle mesh.
// Configure with the setters, then call Inflate; the mesh accessors
// return the most recent successful result.
type Periodic struct {
	net       *wires.Network
	ttype     ThicknessType
	thickness []float64
	prof      *profile.Profile

	refineScheme string
	refineIters  int

	result *mesh.Mesh
}

// New binds an inflator to a network. The network's connectivity is
// computed here so degree and incidence queries are ready.
func New(net *wires.Network) (*Periodic, error) {
	if net == nil {
		return nil, ErrNoNetwork
	}
	if net.EdgeCount() == 0 {
		return nil, ErrEmptyNetwork
	}
	net.ComputeConnectivity()
	return &Periodic{net: net}, nil
}

// SetThicknessType selects per-edge or per-vertex thickness indexing.
// Changing the type clears any previously set thickness vector.
func (p *Periodic) SetThicknessType(t ThicknessType) {
	if t != p.ttype {
		p.thickness = nil
	}
	p.ttype = t
}

// SetThickness supplies the thickness vector (diameters). Its length
// must match the thickness type: EdgeCount for PerEdge, VertexCount for
// PerVertex. The slice is copied.
func (p *Periodic) SetThickness(thickness []float64) error {
	if p.ttype == thicknessUnset {
		return ErrThicknessTypeUnset
	}
	want := p.net.EdgeCount()
	if p.ttype == PerVertex {
		want = p.net.VertexCount()
	}
	if len(thickness) != want {
		return fmt.Errorf("%w: got %d values, want %d for %s thickness",
			ErrThicknessSize, len(thickness), want, p.ttype)
	}
	for i, t := range thickness {
		if t <= 0 {
			return fmt.Errorf("%w: entry %d is %g", ErrThicknessValue, i, t)
		}
	}
	p.thickness = append([]float64(nil), thickness...)
	return nil
}

// SetProfile overrides the cross-section swept along each edge. The
// default is an 8-sample isotropic profile.
func (p *Periodic) SetProfile(prof *profile.Profile) {
	p.prof = prof
}

// WithRefinement enables subdivision of the inflated mesh before
// periodic wrapping. Scheme names come from the refine package
// registry; zero iterations disables refinement.
func (p *Periodic) WithRefinement(scheme string, iterations int) error {
	if iterations < 0 {
		return refine.ErrBadIterations
	}
	if _, ok := refine.Get(scheme); !ok {
		return fmt.Errorf("%w: %q (have %v)", ErrUnknownScheme, scheme, refine.Names())
	}
	p.refineScheme = scheme
	p.refineIters = iterations
	return nil
}

// Inflate runs the full pipeline: sweep tubes, cap joints, weld
// duplicate vertices, optionally refine, and wrap the geometry into
// the periodic cell. On success the result replaces the previous mesh;
// on failure the previous mesh is left untouched.
func (p *Periodic) Inflate() error {
	if err := p.validate(); err != nil {
		return err
	}

	prof := p.prof
	if prof == nil {
		var err error
		prof, err = profile.CreateIsotropic(8)
		if err != nil {
			return err
		}
	}

	b := newBuilder(p, prof)
	b.sweepEdges()
	if err := b.buildJoints(); err != nil {
		return err
	}

	m, err := weld(b.result())
	if err != nil {
		return err
	}

	if p.refineScheme != "" && p.refineIters > 0 {
		s, _ := refine.Get(p.refineScheme)
		m, err = s.Apply(m, p.refineIters)
		if err != nil {
			return err
		}
	}

	cellMin, cellMax := p.net.Cell()
	wrapIntoCell(m, cellMin, cellMax)

	p.result = m
	return nil
}

// validate runs every preflight check so Inflate fails before any
// geometry is built.
func (p *Periodic) validate() error {
	if p.net == nil {
		return ErrNoNetwork
	}
	if p.net.EdgeCount() == 0 {
		return ErrEmptyNetwork
	}
	if p.ttype == thicknessUnset {
		return ErrThicknessTypeUnset
	}
	if p.thickness == nil {
		return fmt.Errorf("%w: no thickness vector set", ErrThicknessSize)
	}
	for v := 0; v < p.net.VertexCount(); v++ {
		if p.net.Degree(v) == 0 {
			return fmt.Errorf("%w: vertex %d", ErrIsolatedVertex, v)
		}
	}
	for e := 0; e < p.net.EdgeCount(); e++ {
		l := p.net.EdgeLength(e)
		if l < zeroEdgeEps {
			return fmt.Errorf("%w: edge %d", ErrZeroLengthEdge, e)
		}
		ends := p.net.Edge(e)
		if pull := p.pullback(ends[0]) + p.pullback(ends[1]); pull > minEdgeSlack*l {
			return fmt.Errorf("%w: edge %d has length %g but joint pull-backs need %g",
				ErrThicknessTooLarge, e, l, pull)
		}
	}
	return nil
}

// radiusAt returns the tube radius of edge e at wire vertex v.
func (p *Periodic) radiusAt(e, v int) float64 {
	if p.ttype == PerVertex {
		return p.thickness[v] / 2
	}
	return p.thickness[e] / 2
}

// jointRadius is the largest incident tube radius at a vertex; joint
// geometry must clear the fattest tube meeting there.
func (p *Periodic) jointRadius(v int) float64 {
	r := 0.0
	for _, e := range p.net.IncidentEdges(v) {
		if re := p.radiusAt(e, v); re > r {
			r = re
		}
	}
	return r
}

// pullback is the distance edge end rings retreat from vertex v.
// Dangling ends keep their ring on the vertex so the cap is flush.
func (p *Periodic) pullback(v int) float64 {
	if p.net.Degree(v) <= 1 {
		return 0
	}
	return pullbackFactor * p.jointRadius(v)
}

// Mesh returns the most recent successful Inflate result, or nil if
// none has succeeded yet.
func (p *Periodic) Mesh() *mesh.Mesh { return p.result }

// Vertices returns the result's vertex positions, or nil.
func (p *Periodic) Vertices() []v3.Vec {
	if p.result == nil {
		return nil
	}
	return p.result.Vertices
}

// Faces returns the result's triangles, or nil.
func (p *Periodic) Faces() [][3]int {
	if p.result == nil {
		return nil
	}
	return p.result.Faces
}

// FaceSources returns the per-face provenance tags, or nil.
func (p *Periodic) FaceSources() []mesh.FaceSource {
	if p.result == nil {
		return nil
	}
	return p.result.Sources
}
