package wires

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Network is a graph of 3D vertices connected by straight edges.
// Vertex identity is positional: the i-th vertex is index i, and edges
// store unordered index pairs. Connectivity (vertex to incident edges)
// is derived lazily and cached; the cache is rebuilt on demand after
// any mutation.
type Network struct {
	vertices []v3.Vec
	edges    [][2]int

	cellMin v3.Vec
	cellMax v3.Vec
	hasCell bool

	incident [][]int // vertex -> incident edge indices, nil until computed
}

// New builds a network from vertices and edges, validating structure:
// every endpoint in range, no self-loops, no duplicate unordered pairs.
// Both slices are copied.
func New(vertices []v3.Vec, edges [][2]int) (*Network, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	seen := make(map[[2]int]int, len(edges))
	for i, e := range edges {
		if e[0] < 0 || e[0] >= len(vertices) || e[1] < 0 || e[1] >= len(vertices) {
			return nil, fmt.Errorf("%w: edge %d = (%d, %d)", ErrEdgeOutOfRange, i, e[0], e[1])
		}
		if e[0] == e[1] {
			return nil, fmt.Errorf("%w: edge %d at vertex %d", ErrSelfLoop, i, e[0])
		}
		key := orderedPair(e[0], e[1])
		if first, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: edges %d and %d both connect (%d, %d)",
				ErrDuplicateEdge, first, i, key[0], key[1])
		}
		seen[key] = i
	}

	n := &Network{
		vertices: append([]v3.Vec(nil), vertices...),
		edges:    make([][2]int, len(edges)),
	}
	copy(n.edges, edges)
	return n, nil
}

func orderedPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// VertexCount returns the number of vertices.
func (n *Network) VertexCount() int { return len(n.vertices) }

// EdgeCount returns the number of edges.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Vertex returns the position of vertex i.
func (n *Network) Vertex(i int) v3.Vec { return n.vertices[i] }

// Vertices returns a copy of the vertex positions.
func (n *Network) Vertices() []v3.Vec {
	return append([]v3.Vec(nil), n.vertices...)
}

// Edge returns the endpoint indices of edge i.
func (n *Network) Edge(i int) [2]int { return n.edges[i] }

// Edges returns a copy of the edge list.
func (n *Network) Edges() [][2]int {
	out := make([][2]int, len(n.edges))
	copy(out, n.edges)
	return out
}

// EdgeVector returns the displacement from the first to the second
// endpoint of edge i.
func (n *Network) EdgeVector(i int) v3.Vec {
	e := n.edges[i]
	return n.vertices[e[1]].Sub(n.vertices[e[0]])
}

// EdgeLength returns the length of edge i.
func (n *Network) EdgeLength(i int) float64 {
	return n.EdgeVector(i).Length()
}

// SetVertices replaces all vertex positions. The edge topology (and thus
// the connectivity cache) is unaffected, but the bounding box changes.
func (n *Network) SetVertices(vertices []v3.Vec) error {
	if len(vertices) != len(n.vertices) {
		return fmt.Errorf("%w: got %d vertices, want %d", ErrSizeMismatch, len(vertices), len(n.vertices))
	}
	n.vertices = append([]v3.Vec(nil), vertices...)
	return nil
}

// ApplyOffsets displaces every vertex by the matching offset, one 3D
// displacement per vertex.
func (n *Network) ApplyOffsets(offsets []v3.Vec) error {
	if len(offsets) != len(n.vertices) {
		return fmt.Errorf("%w: got %d offsets, want %d", ErrSizeMismatch, len(offsets), len(n.vertices))
	}
	for i := range n.vertices {
		n.vertices[i] = n.vertices[i].Add(offsets[i])
	}
	return nil
}

// ComputeConnectivity builds the vertex-to-incident-edges map. Safe to
// call repeatedly; queries that need connectivity call it on demand.
func (n *Network) ComputeConnectivity() {
	inc := make([][]int, len(n.vertices))
	for i, e := range n.edges {
		inc[e[0]] = append(inc[e[0]], i)
		inc[e[1]] = append(inc[e[1]], i)
	}
	n.incident = inc
}

// IncidentEdges returns the edge indices incident to vertex v.
func (n *Network) IncidentEdges(v int) []int {
	if n.incident == nil {
		n.ComputeConnectivity()
	}
	return n.incident[v]
}

// Degree returns the number of edges incident to vertex v.
func (n *Network) Degree(v int) int {
	return len(n.IncidentEdges(v))
}

// BoundingBox returns the axis-aligned bounding box of the vertices.
func (n *Network) BoundingBox() (min, max v3.Vec) {
	min = n.vertices[0]
	max = n.vertices[0]
	for _, v := range n.vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Cell returns the periodic cell bounds. If no cell has been set
// (via SetCell or ScaleFit) the vertex bounding box is returned.
func (n *Network) Cell() (min, max v3.Vec) {
	if n.hasCell {
		return n.cellMin, n.cellMax
	}
	return n.BoundingBox()
}

// SetCell declares the periodic cell bounds explicitly.
func (n *Network) SetCell(min, max v3.Vec) error {
	if min.X >= max.X || min.Y >= max.Y || min.Z >= max.Z {
		return ErrBadCell
	}
	n.cellMin = min
	n.cellMax = max
	n.hasCell = true
	return nil
}

// ScaleFit maps the network affinely into the target box and records it
// as the periodic cell. Each axis is scaled independently so that the
// extreme source coordinates land exactly on the target faces: a vertex
// on the source bounding box stays exactly on the corresponding cell
// face, which is what keeps periodic pairs periodic after fitting.
// A source axis with zero extent collapses to the target axis center.
func (n *Network) ScaleFit(min, max v3.Vec) error {
	if err := n.SetCell(min, max); err != nil {
		return err
	}
	srcMin, srcMax := n.BoundingBox()
	src := [3][2]float64{{srcMin.X, srcMax.X}, {srcMin.Y, srcMax.Y}, {srcMin.Z, srcMax.Z}}
	dst := [3][2]float64{{min.X, max.X}, {min.Y, max.Y}, {min.Z, max.Z}}

	for i := range n.vertices {
		p := [3]float64{n.vertices[i].X, n.vertices[i].Y, n.vertices[i].Z}
		for a := 0; a < 3; a++ {
			span := src[a][1] - src[a][0]
			if span == 0 {
				p[a] = (dst[a][0] + dst[a][1]) / 2
				continue
			}
			t := (p[a] - src[a][0]) / span
			switch {
			case t == 0:
				p[a] = dst[a][0]
			case t == 1:
				p[a] = dst[a][1]
			default:
				p[a] = dst[a][0] + t*(dst[a][1]-dst[a][0])
			}
		}
		n.vertices[i] = v3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	return nil
}

// IsBoundaryVertex reports whether vertex i lies within eps of any face
// of the periodic cell.
func (n *Network) IsBoundaryVertex(i int, eps float64) bool {
	min, max := n.Cell()
	v := n.vertices[i]
	return math.Abs(v.X-min.X) <= eps || math.Abs(v.X-max.X) <= eps ||
		math.Abs(v.Y-min.Y) <= eps || math.Abs(v.Y-max.Y) <= eps ||
		math.Abs(v.Z-min.Z) <= eps || math.Abs(v.Z-max.Z) <= eps
}

// BoundaryVertices returns the indices of all vertices within eps of a
// cell face, in index order.
func (n *Network) BoundaryVertices(eps float64) []int {
	var out []int
	for i := range n.vertices {
		if n.IsBoundaryVertex(i, eps) {
			out = append(out, i)
		}
	}
	return out
}
