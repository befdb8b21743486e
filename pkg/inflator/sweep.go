package inflator

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/wireforge/pkg/mesh"
	"github.com/chazu/wireforge/pkg/profile"
)

// endRing is one placed copy of the profile at an edge endpoint. Vertex
// indices are global (into the builder) in profile order, winding CCW
// about the edge tangent.
type endRing struct {
	verts  []int
	center v3.Vec
}

// builder accumulates the output mesh during one Inflate call. It is
// discarded on failure so a failed call never disturbs prior results.
type builder struct {
	p    *Periodic
	prof *profile.Profile

	verts   []v3.Vec
	faces   [][3]int
	sources []mesh.FaceSource

	// rings[e][0] sits at edge e's first endpoint, rings[e][1] at the
	// second, matching the network's edge vertex order.
	rings [][2]endRing
}

func newBuilder(p *Periodic, prof *profile.Profile) *builder {
	return &builder{
		p:     p,
		prof:  prof,
		rings: make([][2]endRing, p.net.EdgeCount()),
	}
}

func (b *builder) addVertex(pos v3.Vec) int {
	b.verts = append(b.verts, pos)
	return len(b.verts) - 1
}

func (b *builder) addFace(f [3]int, src mesh.FaceSource) {
	b.faces = append(b.faces, f)
	b.sources = append(b.sources, src)
}

func (b *builder) result() *mesh.Mesh {
	return &mesh.Mesh{Vertices: b.verts, Faces: b.faces, Sources: b.sources}
}

// sweepEdges places the two end rings of every edge and emits the
// lateral tube faces connecting them, tagged with the edge index.
// End rings are pulled back from the wire vertices to reserve room for
// joint geometry; per-vertex thickness shows up as differing end-ring
// radii, which makes the lateral faces interpolate linearly.
func (b *builder) sweepEdges() {
	net := b.p.net
	n := b.prof.Size()

	for e := 0; e < net.EdgeCount(); e++ {
		ends := net.Edge(e)
		p0 := net.Vertex(ends[0])
		p1 := net.Vertex(ends[1])
		d := p1.Sub(p0).Normalize()
		u, w := frameFor(d)

		c0 := p0.Add(d.MulScalar(b.p.pullback(ends[0])))
		c1 := p1.Sub(d.MulScalar(b.p.pullback(ends[1])))
		r0 := b.p.radiusAt(e, ends[0])
		r1 := b.p.radiusAt(e, ends[1])

		b.rings[e][0] = b.placeRing(c0, u, w, r0)
		b.rings[e][1] = b.placeRing(c1, u, w, r1)

		a := b.rings[e][0].verts
		bb := b.rings[e][1].verts
		for j := 0; j < n; j++ {
			k := (j + 1) % n
			b.addFace([3]int{a[j], a[k], bb[k]}, mesh.EdgeSource(e))
			b.addFace([3]int{a[j], bb[k], bb[j]}, mesh.EdgeSource(e))
		}
	}
}

// placeRing instantiates the profile at the given center and frame.
func (b *builder) placeRing(center, u, w v3.Vec, radius float64) endRing {
	ring := endRing{center: center, verts: make([]int, b.prof.Size())}
	for j := 0; j < b.prof.Size(); j++ {
		q := b.prof.Point(j)
		pos := center.Add(u.MulScalar(q.X * radius)).Add(w.MulScalar(q.Y * radius))
		ring.verts[j] = b.addVertex(pos)
	}
	return ring
}

// ringAt returns edge e's ring at wire vertex v and whether v is the
// edge's first endpoint.
func (b *builder) ringAt(e, v int) (endRing, bool) {
	if b.p.net.Edge(e)[0] == v {
		return b.rings[e][0], true
	}
	return b.rings[e][1], false
}
