// Package mesh defines the inflator's output: an indexed triangle mesh
// with per-face provenance linking every triangle back to the wire edge
// or joint vertex that generated it.
package mesh

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// FaceSource tags a face with its origin. Non-negative values are wire
// edge indices; negative values are joint markers encoding the wire
// vertex the joint was built around.
type FaceSource int

// EdgeSource tags a face as swept from wire edge e.
func EdgeSource(e int) FaceSource { return FaceSource(e) }

// JointSource tags a face as part of the joint around wire vertex v.
func JointSource(v int) FaceSource { return FaceSource(-1 - v) }

// IsJoint reports whether the source is a joint marker.
func (s FaceSource) IsJoint() bool { return s < 0 }

// Edge returns the wire edge index, or -1 for joint faces.
func (s FaceSource) Edge() int {
	if s < 0 {
		return -1
	}
	return int(s)
}

// Vertex returns the wire vertex index for joint faces, or -1 for
// edge-swept faces.
func (s FaceSource) Vertex() int {
	if s >= 0 {
		return -1
	}
	return int(-1 - s)
}

// Mesh is an indexed triangle mesh. Faces index into Vertices and are
// consistently oriented (outward normals). Sources runs parallel to
// Faces, one provenance tag per triangle.
type Mesh struct {
	Vertices []v3.Vec
	Faces    [][3]int
	Sources  []FaceSource
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool { return len(m.Vertices) == 0 }

// BoundingBox returns the axis-aligned bounding box of the vertices.
// The zero vector pair is returned for an empty mesh.
func (m *Mesh) BoundingBox() (min, max v3.Vec) {
	if len(m.Vertices) == 0 {
		return v3.Vec{}, v3.Vec{}
	}
	min = m.Vertices[0]
	max = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices: append([]v3.Vec(nil), m.Vertices...),
		Faces:    make([][3]int, len(m.Faces)),
		Sources:  append([]FaceSource(nil), m.Sources...),
	}
	copy(out.Faces, m.Faces)
	return out
}

// Triangles expands the indexed mesh into sdfx triangles, so the result
// can be handed straight to sdfx mesh writers (render.SaveSTL and
// friends).
func (m *Mesh) Triangles() []*sdf.Triangle3 {
	out := make([]*sdf.Triangle3, 0, len(m.Faces))
	for _, f := range m.Faces {
		t := sdf.Triangle3{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
		out = append(out, &t)
	}
	return out
}
