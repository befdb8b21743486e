package inflator

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/wireforge/pkg/mesh"
)

// weldEps is the coordinate tolerance for deduplicating vertices.
// It is deliberately tight: welding runs before periodic wrapping, so
// it only fuses construction duplicates, never symmetric geometry from
// distinct periodic images (which would pinch the surface).
const weldEps = 1e-9

// wrapEps guards the wrap test so vertices sitting exactly on a cell
// face are left in place rather than translated to the opposite face.
const wrapEps = 1e-9

// weld merges vertices with coinciding coordinates and compacts the
// vertex array, preserving first-seen order for determinism.
func weld(m *mesh.Mesh) (*mesh.Mesh, error) {
	type key [3]int64
	quantize := func(p v3.Vec) key {
		return key{
			int64(math.Round(p.X / weldEps)),
			int64(math.Round(p.Y / weldEps)),
			int64(math.Round(p.Z / weldEps)),
		}
	}

	remap := make([]int, len(m.Vertices))
	index := make(map[key]int, len(m.Vertices))
	var verts []v3.Vec
	for i, p := range m.Vertices {
		k := quantize(p)
		if j, ok := index[k]; ok {
			remap[i] = j
			continue
		}
		index[k] = len(verts)
		remap[i] = len(verts)
		verts = append(verts, p)
	}

	faces := make([][3]int, len(m.Faces))
	for i, f := range m.Faces {
		g := [3]int{remap[f[0]], remap[f[1]], remap[f[2]]}
		if g[0] == g[1] || g[1] == g[2] || g[2] == g[0] {
			return nil, fmt.Errorf("%w: face %d collapsed by welding", ErrGeometryDegenerate, i)
		}
		faces[i] = g
	}
	return &mesh.Mesh{Vertices: verts, Faces: faces, Sources: m.Sources}, nil
}

// wrapIntoCell translates every vertex lying strictly outside the cell
// by whole periods until it lands inside. Only coordinates move; the
// face topology is untouched, so geometry generated from unwrapped
// sweep directions keeps its connectivity across the seam.
func wrapIntoCell(m *mesh.Mesh, cellMin, cellMax v3.Vec) {
	sizes := cellMax.Sub(cellMin)
	for i, p := range m.Vertices {
		c := [3]float64{p.X, p.Y, p.Z}
		lo := [3]float64{cellMin.X, cellMin.Y, cellMin.Z}
		hi := [3]float64{cellMax.X, cellMax.Y, cellMax.Z}
		size := [3]float64{sizes.X, sizes.Y, sizes.Z}
		for a := 0; a < 3; a++ {
			if size[a] <= 0 {
				continue
			}
			for c[a] > hi[a]+wrapEps {
				c[a] -= size[a]
			}
			for c[a] < lo[a]-wrapEps {
				c[a] += size[a]
			}
		}
		m.Vertices[i] = v3.Vec{X: c[0], Y: c[1], Z: c[2]}
	}
}
