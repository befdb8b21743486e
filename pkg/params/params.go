// Package params evaluates per-edge/per-vertex thickness fields and
// per-vertex offset fields from symmetry orbits and modifier formulas.
// An orbit groups edges or vertices considered equivalent under the
// cell symmetry; a modifier formula maps a small set of free design
// variables to the orbit's contribution. Formulas are Lisp expressions
// evaluated in a sandboxed zygomys environment.
//
// Orbit/modifier file parsing is out of scope here; orbits are
// configured in memory and only the evaluated numeric arrays leave the
// package.
package params

import (
	"errors"
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/wireforge/pkg/wires"
)

// boundaryEps decides whether a vertex counts as lying on a cell face
// when offset orbits are validated.
const boundaryEps = 1e-9

// TargetType declares which convention an evaluated thickness vector
// uses: one value per edge or one value per vertex.
type TargetType int

const (
	// EdgeTarget produces one thickness value per wire edge.
	EdgeTarget TargetType = iota
	// VertexTarget produces one thickness value per wire vertex.
	VertexTarget
)

func (t TargetType) String() string {
	if t == VertexTarget {
		return "vertex"
	}
	return "edge"
}

// Variables binds free design variable names to values for evaluation.
type Variables map[string]float64

// Sentinel errors for manager configuration.
var (
	// ErrNoNetwork indicates the manager was constructed without a network.
	ErrNoNetwork = errors.New("params: nil network")

	// ErrBadBase indicates a non-positive base thickness.
	ErrBadBase = errors.New("params: base thickness must be positive")

	// ErrMemberOutOfRange indicates an orbit member index outside the network.
	ErrMemberOutOfRange = errors.New("params: orbit member out of range")

	// ErrEmptyOrbit indicates an orbit with no members.
	ErrEmptyOrbit = errors.New("params: orbit has no members")

	// ErrBoundaryOffset indicates an offset orbit containing a cell-boundary
	// vertex. Displacing a boundary vertex independently of its periodic
	// image breaks the period correspondence, so it is rejected up front.
	ErrBoundaryOffset = errors.New("params: offset orbit contains boundary vertex")
)

type thicknessOrbit struct {
	members []int
	formula string
}

type offsetOrbit struct {
	members  []int
	formulas [3]string // per axis; empty string means no displacement
}

// Manager binds a wire network to a set of orbits and modifier formulas
// and evaluates them into plain numeric arrays sized to the network.
type Manager struct {
	net    *wires.Network
	base   float64
	target TargetType

	thickness []thicknessOrbit
	offsets   []offsetOrbit
}

// New creates a manager for the given network. The base thickness is
// the value assigned to every edge or vertex not covered by an orbit;
// target selects the thickness convention the manager produces.
func New(net *wires.Network, base float64, target TargetType) (*Manager, error) {
	if net == nil {
		return nil, ErrNoNetwork
	}
	if base <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadBase, base)
	}
	return &Manager{net: net, base: base, target: target}, nil
}

// ThicknessType returns the convention EvaluateThickness produces.
func (m *Manager) ThicknessType() TargetType { return m.target }

// targetCount is the length of the evaluated thickness vector.
func (m *Manager) targetCount() int {
	if m.target == VertexTarget {
		return m.net.VertexCount()
	}
	return m.net.EdgeCount()
}

// AddThicknessOrbit registers a group of equivalent edges (EdgeTarget)
// or vertices (VertexTarget) sharing one modifier formula. The formula
// evaluates to the orbit's thickness delta on top of the base value.
func (m *Manager) AddThicknessOrbit(members []int, formula string) error {
	if len(members) == 0 {
		return ErrEmptyOrbit
	}
	limit := m.targetCount()
	for _, i := range members {
		if i < 0 || i >= limit {
			return fmt.Errorf("%w: %s %d", ErrMemberOutOfRange, m.target, i)
		}
	}
	m.thickness = append(m.thickness, thicknessOrbit{
		members: append([]int(nil), members...),
		formula: formula,
	})
	return nil
}

// AddOffsetOrbit registers a group of equivalent vertices displaced by
// the same per-axis formulas. Members must be interior vertices.
func (m *Manager) AddOffsetOrbit(members []int, formulas [3]string) error {
	if len(members) == 0 {
		return ErrEmptyOrbit
	}
	for _, i := range members {
		if i < 0 || i >= m.net.VertexCount() {
			return fmt.Errorf("%w: vertex %d", ErrMemberOutOfRange, i)
		}
		if m.net.IsBoundaryVertex(i, boundaryEps) {
			return fmt.Errorf("%w: vertex %d", ErrBoundaryOffset, i)
		}
	}
	m.offsets = append(m.offsets, offsetOrbit{
		members:  append([]int(nil), members...),
		formulas: formulas,
	})
	return nil
}

// EvaluateThickness returns one thickness value per edge or per vertex,
// per ThicknessType. Every member of an orbit receives base + modifier;
// everything outside any orbit receives the base value.
func (m *Manager) EvaluateThickness(vars Variables) ([]float64, error) {
	out := make([]float64, m.targetCount())
	for i := range out {
		out[i] = m.base
	}
	for oi, orbit := range m.thickness {
		delta, err := evalFormula(orbit.formula, vars)
		if err != nil {
			return nil, fmt.Errorf("params: thickness orbit %d: %w", oi, err)
		}
		for _, i := range orbit.members {
			out[i] = m.base + delta
		}
	}
	return out, nil
}

// EvaluateOffset returns one 3D displacement per network vertex.
// Vertices outside any offset orbit get the zero displacement.
func (m *Manager) EvaluateOffset(vars Variables) ([]v3.Vec, error) {
	out := make([]v3.Vec, m.net.VertexCount())
	for oi, orbit := range m.offsets {
		var d [3]float64
		for a := 0; a < 3; a++ {
			if orbit.formulas[a] == "" {
				continue
			}
			val, err := evalFormula(orbit.formulas[a], vars)
			if err != nil {
				return nil, fmt.Errorf("params: offset orbit %d axis %d: %w", oi, a, err)
			}
			d[a] = val
		}
		disp := v3.Vec{X: d[0], Y: d[1], Z: d[2]}
		for _, i := range orbit.members {
			out[i] = out[i].Add(disp)
		}
	}
	return out, nil
}
