// Package meshcheck provides post-hoc predicates over inflated meshes:
// watertightness, manifoldness, periodicity, and provenance validity.
// The inflator must produce meshes satisfying all four; consumers and
// tests use these checks as black-box validation.
package meshcheck

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/wireforge/pkg/mesh"
	"github.com/chazu/wireforge/pkg/wires"
)

// DefaultEps is the coordinate tolerance for periodicity matching.
const DefaultEps = 1e-6

// IsWatertight reports whether every directed triangle edge is used
// exactly once and its opposite is present, so the mesh is a closed,
// consistently oriented surface with no boundary. An empty mesh is not
// watertight.
func IsWatertight(m *mesh.Mesh) bool {
	if m.FaceCount() == 0 {
		return false
	}
	count := make(map[[2]int]int)
	for _, f := range m.Faces {
		for c := 0; c < 3; c++ {
			a, b := f[c], f[(c+1)%3]
			if a == b {
				return false
			}
			count[[2]int{a, b}]++
		}
	}
	for e, n := range count {
		if n != 1 || count[[2]int{e[1], e[0]}] != 1 {
			return false
		}
	}
	return true
}

// IsManifold reports whether every vertex's incident faces form a
// single closed fan: the link of each vertex is one cycle with every
// link vertex of degree exactly 2. Pinch points and bowtie vertices
// fail this check.
func IsManifold(m *mesh.Mesh) bool {
	if m.FaceCount() == 0 {
		return false
	}
	incident := make([][][2]int, m.VertexCount())
	for _, f := range m.Faces {
		for c := 0; c < 3; c++ {
			v := f[c]
			incident[v] = append(incident[v], [2]int{f[(c+1)%3], f[(c+2)%3]})
		}
	}
	for v := range incident {
		if len(incident[v]) == 0 {
			return false // unreferenced vertex
		}
		if !linkIsSingleCycle(incident[v]) {
			return false
		}
	}
	return true
}

// linkIsSingleCycle checks that the given link edges form one closed
// cycle visiting every link vertex exactly once.
func linkIsSingleCycle(link [][2]int) bool {
	adj := make(map[int][]int)
	for _, e := range link {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	for _, nbrs := range adj {
		if len(nbrs) != 2 {
			return false
		}
	}
	// Walk the cycle from an arbitrary start; it must cover all edges.
	var start int
	for v := range adj {
		start = v
		break
	}
	prev, cur := -1, start
	visited := 0
	for {
		nbrs := adj[cur]
		next := nbrs[0]
		if next == prev {
			next = nbrs[1]
		}
		prev, cur = cur, next
		visited++
		if cur == start {
			break
		}
		if visited > len(link) {
			return false
		}
	}
	return visited == len(adj) && len(adj) == len(link)
}

func comp(v v3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

func axisVec(axis int, val float64) v3.Vec {
	switch axis {
	case 0:
		return v3.Vec{X: val}
	case 1:
		return v3.Vec{Y: val}
	}
	return v3.Vec{Z: val}
}

// IsPeriodic reports whether, for each axis, every vertex on the cell's
// min face has a counterpart on the max face displaced by exactly the
// period (within eps), and the triangulations restricted to the two
// faces are identical under that translation.
func IsPeriodic(m *mesh.Mesh, cellMin, cellMax v3.Vec, eps float64) bool {
	for axis := 0; axis < 3; axis++ {
		period := comp(cellMax, axis) - comp(cellMin, axis)
		if period <= 0 {
			return false
		}
		lo := onFace(m, axis, comp(cellMin, axis), eps)
		hi := onFace(m, axis, comp(cellMax, axis), eps)
		if len(lo) != len(hi) {
			return false
		}
		if len(lo) == 0 {
			continue
		}
		shift := axisVec(axis, period)
		pair := make(map[int]int, len(lo)) // lo vertex -> hi vertex
		for _, i := range lo {
			j, ok := findNear(m, hi, m.Vertices[i].Add(shift), eps)
			if !ok {
				return false
			}
			pair[i] = j
		}
		if !facesCorrespond(m, lo, hi, pair) {
			return false
		}
	}
	return true
}

// onFace returns vertex indices within eps of the given axis plane.
func onFace(m *mesh.Mesh, axis int, plane, eps float64) []int {
	var out []int
	for i, v := range m.Vertices {
		if math.Abs(comp(v, axis)-plane) <= eps {
			out = append(out, i)
		}
	}
	return out
}

// findNear locates a vertex among candidates within eps of p.
func findNear(m *mesh.Mesh, candidates []int, p v3.Vec, eps float64) (int, bool) {
	for _, i := range candidates {
		if m.Vertices[i].Sub(p).Length() <= eps {
			return i, true
		}
	}
	return 0, false
}

// facesCorrespond checks that every face lying entirely on the min face
// maps, through the vertex pairing, onto a face lying entirely on the
// max face.
func facesCorrespond(m *mesh.Mesh, lo, hi []int, pair map[int]int) bool {
	loSet := make(map[int]bool, len(lo))
	for _, i := range lo {
		loSet[i] = true
	}
	hiSet := make(map[int]bool, len(hi))
	for _, i := range hi {
		hiSet[i] = true
	}
	hiFaces := make(map[[3]int]bool)
	var loFaces [][3]int
	for _, f := range m.Faces {
		switch {
		case loSet[f[0]] && loSet[f[1]] && loSet[f[2]]:
			loFaces = append(loFaces, f)
		case hiSet[f[0]] && hiSet[f[1]] && hiSet[f[2]]:
			hiFaces[sortedTriple(f)] = true
		}
	}
	for _, f := range loFaces {
		mapped := [3]int{pair[f[0]], pair[f[1]], pair[f[2]]}
		if !hiFaces[sortedTriple(mapped)] {
			return false
		}
	}
	return true
}

func sortedTriple(f [3]int) [3]int {
	a, b, c := f[0], f[1], f[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}

// FaceSourcesValid reports whether the provenance vector runs parallel
// to the faces and every tag names an existing wire edge or an existing
// joint vertex of the input network.
func FaceSourcesValid(m *mesh.Mesh, net *wires.Network) bool {
	if len(m.Sources) != len(m.Faces) {
		return false
	}
	for _, s := range m.Sources {
		if s.IsJoint() {
			if v := s.Vertex(); v < 0 || v >= net.VertexCount() {
				return false
			}
		} else if e := s.Edge(); e < 0 || e >= net.EdgeCount() {
			return false
		}
	}
	return true
}
