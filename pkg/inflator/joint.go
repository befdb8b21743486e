package inflator

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/wireforge/pkg/mesh"
)

// jointPoint maps a convex hull input point back to its origin: either
// a ring vertex (global index + ring ordinal) or the wire vertex itself
// (both fields -1).
type jointPoint struct {
	global int
	ring   int
}

// buildJoints resolves every wire vertex into manifold cap geometry:
// a flat disk for dangling ends, a convex-hull patch for junctions.
func (b *builder) buildJoints() error {
	net := b.p.net
	for v := 0; v < net.VertexCount(); v++ {
		switch net.Degree(v) {
		case 0:
			// Rejected in preflight; keep the invariant visible.
			return fmt.Errorf("%w: vertex %d", ErrIsolatedVertex, v)
		case 1:
			b.capEnd(v)
		default:
			if err := b.buildJoint(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// capEnd closes a degree-1 vertex with a triangle fan over the ring
// center. The ring sits directly on the vertex (zero pull-back), so the
// cap is a flat disk at the wire end.
func (b *builder) capEnd(v int) {
	e := b.p.net.IncidentEdges(v)[0]
	ring, atStart := b.ringAt(e, v)
	apex := b.addVertex(ring.center)
	n := len(ring.verts)
	for j := 0; j < n; j++ {
		k := (j + 1) % n
		if atStart {
			// Outward normal faces away from the tube, against the tangent.
			b.addFace([3]int{apex, ring.verts[k], ring.verts[j]}, mesh.JointSource(v))
		} else {
			b.addFace([3]int{apex, ring.verts[j], ring.verts[k]}, mesh.JointSource(v))
		}
	}
}

// buildJoint caps a junction vertex: the convex hull of all incident
// end rings (plus the wire vertex itself) is computed, hull faces lying
// entirely within one ring are the ring's flat cap and are dropped, and
// what remains is the joint skin stitched to every tube. The open
// boundary of the skin must then match the ring boundaries exactly;
// anything else means the rings interpenetrate and the joint is
// reported as degenerate.
func (b *builder) buildJoint(v int) error {
	net := b.p.net
	incident := net.IncidentEdges(v)

	var pts []jointPoint
	var positions []v3.Vec
	rings := make([]endRing, len(incident))
	for ri, e := range incident {
		ring, _ := b.ringAt(e, v)
		rings[ri] = ring
		for _, gi := range ring.verts {
			pts = append(pts, jointPoint{global: gi, ring: ri})
			positions = append(positions, b.verts[gi])
		}
	}
	pts = append(pts, jointPoint{global: -1, ring: -1})
	positions = append(positions, net.Vertex(v))

	hullFaces, err := convexHull(positions)
	if err != nil {
		return fmt.Errorf("%w: vertex %d: %v", ErrGeometryDegenerate, v, err)
	}

	apex := -1
	var jointFaces [][3]int
	for _, hf := range hullFaces {
		r0, r1, r2 := pts[hf[0]].ring, pts[hf[1]].ring, pts[hf[2]].ring
		if r0 >= 0 && r0 == r1 && r1 == r2 {
			continue // flat end cap over a tube opening
		}
		var f [3]int
		for c, li := range hf {
			if pts[li].global >= 0 {
				f[c] = pts[li].global
				continue
			}
			if apex < 0 {
				apex = b.addVertex(net.Vertex(v))
			}
			f[c] = apex
		}
		jointFaces = append(jointFaces, f)
	}

	if err := checkJointBoundary(v, rings, jointFaces); err != nil {
		return err
	}
	for _, f := range jointFaces {
		b.addFace(f, mesh.JointSource(v))
	}
	return nil
}

// checkJointBoundary verifies that the joint skin's open boundary is
// exactly the union of the incident ring boundaries, each ring edge
// used once. A mismatch means a ring point fell inside the hull or a
// cap face sealed a tube opening.
func checkJointBoundary(v int, rings []endRing, jointFaces [][3]int) error {
	count := make(map[[2]int]int)
	for _, f := range jointFaces {
		for c := 0; c < 3; c++ {
			count[orderPair(f[c], f[(c+1)%3])]++
		}
	}
	expected := make(map[[2]int]bool)
	for _, ring := range rings {
		n := len(ring.verts)
		for j := 0; j < n; j++ {
			expected[orderPair(ring.verts[j], ring.verts[(j+1)%n])] = true
		}
	}
	boundary := 0
	for e, n := range count {
		switch n {
		case 2:
			// interior joint edge
		case 1:
			if !expected[e] {
				return fmt.Errorf("%w: vertex %d: stray boundary edge", ErrGeometryDegenerate, v)
			}
			boundary++
		default:
			return fmt.Errorf("%w: vertex %d: edge shared by %d joint faces", ErrGeometryDegenerate, v, n)
		}
	}
	if boundary != len(expected) {
		return fmt.Errorf("%w: vertex %d: joint boundary does not match tube rings", ErrGeometryDegenerate, v)
	}
	return nil
}
