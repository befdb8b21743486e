package refine

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/wireforge/pkg/mesh"
)

// edgeInfo accumulates per-edge topology during one subdivision pass.
type edgeInfo struct {
	mid       int   // index of the new midpoint vertex
	faces     int   // number of incident faces seen
	opposites []int // the third vertex of each incident face
}

func edgeKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// subdivideOnce performs one 4-way split. With smooth set, Loop
// stencils reposition both the old vertices and the edge midpoints.
func subdivideOnce(m *mesh.Mesh, smooth bool) (*mesh.Mesh, error) {
	nv := len(m.Vertices)
	edges := make(map[[2]int]*edgeInfo)
	order := make([][2]int, 0, len(m.Faces)*3/2)

	for _, f := range m.Faces {
		for c := 0; c < 3; c++ {
			a, b := f[c], f[(c+1)%3]
			opp := f[(c+2)%3]
			key := edgeKey(a, b)
			info := edges[key]
			if info == nil {
				info = &edgeInfo{mid: nv + len(order)}
				edges[key] = info
				order = append(order, key)
			}
			info.faces++
			info.opposites = append(info.opposites, opp)
		}
	}
	for _, key := range order {
		if edges[key].faces != 2 {
			return nil, fmt.Errorf("%w: edge (%d, %d) has %d faces",
				ErrNotClosed, key[0], key[1], edges[key].faces)
		}
	}

	verts := make([]v3.Vec, nv+len(order))
	if smooth {
		smoothOldVertices(m, order, verts)
	} else {
		copy(verts, m.Vertices)
	}
	for _, key := range order {
		info := edges[key]
		a := m.Vertices[key[0]]
		b := m.Vertices[key[1]]
		if smooth {
			c := m.Vertices[info.opposites[0]]
			d := m.Vertices[info.opposites[1]]
			verts[info.mid] = a.Add(b).MulScalar(3.0 / 8.0).Add(c.Add(d).MulScalar(1.0 / 8.0))
		} else {
			verts[info.mid] = a.Add(b).MulScalar(0.5)
		}
	}

	faces := make([][3]int, 0, len(m.Faces)*4)
	sources := make([]mesh.FaceSource, 0, len(m.Faces)*4)
	for fi, f := range m.Faces {
		mab := edges[edgeKey(f[0], f[1])].mid
		mbc := edges[edgeKey(f[1], f[2])].mid
		mca := edges[edgeKey(f[2], f[0])].mid
		faces = append(faces,
			[3]int{f[0], mab, mca},
			[3]int{f[1], mbc, mab},
			[3]int{f[2], mca, mbc},
			[3]int{mab, mbc, mca},
		)
		src := m.Sources[fi]
		sources = append(sources, src, src, src, src)
	}

	return &mesh.Mesh{Vertices: verts, Faces: faces, Sources: sources}, nil
}

// smoothOldVertices writes the Loop-repositioned original vertices into
// the head of verts.
func smoothOldVertices(m *mesh.Mesh, order [][2]int, verts []v3.Vec) {
	neighbors := make([][]int, len(m.Vertices))
	for _, key := range order {
		neighbors[key[0]] = append(neighbors[key[0]], key[1])
		neighbors[key[1]] = append(neighbors[key[1]], key[0])
	}
	for i := range m.Vertices {
		n := len(neighbors[i])
		if n < 3 {
			verts[i] = m.Vertices[i]
			continue
		}
		// Loop vertex stencil: (1-n*beta)*v + beta*sum(neighbors).
		c := 3.0/8.0 + math.Cos(2*math.Pi/float64(n))/4.0
		beta := (5.0/8.0 - c*c) / float64(n)
		sum := v3.Vec{}
		for _, j := range neighbors[i] {
			sum = sum.Add(m.Vertices[j])
		}
		verts[i] = m.Vertices[i].MulScalar(1 - float64(n)*beta).Add(sum.MulScalar(beta))
	}
}
