package inflator

import (
	"errors"
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Errors from convex hull construction. Callers wrap these into
// ErrGeometryDegenerate; a degenerate hull means the joint's end rings
// are in a configuration no manifold cap can cover.
var (
	errHullTooFew     = errors.New("hull: fewer than 4 points")
	errHullDegenerate = errors.New("hull: degenerate point set")
)

// hullTri is one oriented hull face: unit outward normal n with plane
// offset d = n dot point.
type hullTri struct {
	a, b, c int
	n       v3.Vec
	d       float64
}

// convexHull computes the convex hull of the points by incremental
// insertion and returns outward-oriented triangles as index triples.
// Points on a face plane (within tolerance) are inserted rather than
// discarded, so flat polygonal patches like profile end rings keep all
// their vertices on the hull.
func convexHull(pts []v3.Vec) ([][3]int, error) {
	if len(pts) < 4 {
		return nil, errHullTooFew
	}
	eps := hullEps(pts)

	t0, t1, t2, t3, err := initialTetra(pts, eps)
	if err != nil {
		return nil, err
	}
	centroid := pts[t0].Add(pts[t1]).Add(pts[t2]).Add(pts[t3]).DivScalar(4)

	var faces []hullTri
	alive := []bool{}
	addFace := func(a, b, c int) error {
		t, err := makeTri(pts, a, b, c, eps)
		if err != nil {
			return err
		}
		// Orient outward relative to the running interior point.
		if t.n.Dot(centroid)-t.d > 0 {
			t = makeTriFlipped(pts, a, c, b)
		}
		faces = append(faces, t)
		alive = append(alive, true)
		return nil
	}
	for _, f := range [][3]int{{t0, t1, t2}, {t0, t1, t3}, {t0, t2, t3}, {t1, t2, t3}} {
		if err := addFace(f[0], f[1], f[2]); err != nil {
			return nil, err
		}
	}

	used := map[int]bool{t0: true, t1: true, t2: true, t3: true}
	for p := range pts {
		if used[p] {
			continue
		}
		if err := insertPoint(pts, p, &faces, &alive, eps); err != nil {
			return nil, err
		}
	}

	var out [][3]int
	for i, f := range faces {
		if alive[i] {
			out = append(out, [3]int{f.a, f.b, f.c})
		}
	}
	if len(out) < 4 {
		return nil, errHullDegenerate
	}
	return out, nil
}

// insertPoint extends the hull with point p: faces that see p (or hold
// it in their plane) are removed and the horizon is coned to p.
func insertPoint(pts []v3.Vec, p int, faces *[]hullTri, alive *[]bool, eps float64) error {
	visible := make([]int, 0, 8)
	for i, f := range *faces {
		if !(*alive)[i] {
			continue
		}
		if f.n.Dot(pts[p])-f.d > -eps {
			visible = append(visible, i)
		}
	}
	if len(visible) == 0 {
		return nil // interior point
	}

	// Horizon: directed edges of visible faces whose undirected pair is
	// traversed only once within the visible set.
	undirected := make(map[[2]int]int)
	for _, i := range visible {
		f := (*faces)[i]
		for _, e := range [][2]int{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}} {
			undirected[orderPair(e[0], e[1])]++
		}
	}
	var horizon [][2]int
	for _, i := range visible {
		f := (*faces)[i]
		for _, e := range [][2]int{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}} {
			if undirected[orderPair(e[0], e[1])] == 1 {
				horizon = append(horizon, e)
			}
		}
	}
	if len(horizon) == 0 {
		return errHullDegenerate
	}
	for _, i := range visible {
		(*alive)[i] = false
	}
	for _, e := range horizon {
		t, err := makeTri(pts, e[0], e[1], p, eps)
		if err != nil {
			return err
		}
		*faces = append(*faces, t)
		*alive = append(*alive, true)
	}
	return nil
}

func orderPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// makeTri builds an oriented face, rejecting near-zero area.
func makeTri(pts []v3.Vec, a, b, c int, eps float64) (hullTri, error) {
	n := pts[b].Sub(pts[a]).Cross(pts[c].Sub(pts[a]))
	ln := n.Length()
	if ln <= eps*eps {
		return hullTri{}, fmt.Errorf("%w: collinear face (%d, %d, %d)", errHullDegenerate, a, b, c)
	}
	n = n.DivScalar(ln)
	return hullTri{a: a, b: b, c: c, n: n, d: n.Dot(pts[a])}, nil
}

// makeTriFlipped is makeTri with a winding already known to be valid.
func makeTriFlipped(pts []v3.Vec, a, b, c int) hullTri {
	n := pts[b].Sub(pts[a]).Cross(pts[c].Sub(pts[a])).Normalize()
	return hullTri{a: a, b: b, c: c, n: n, d: n.Dot(pts[a])}
}

// initialTetra picks four affinely independent points: an extreme
// point, the farthest point from it, the farthest from that line, and
// the farthest from that plane.
func initialTetra(pts []v3.Vec, eps float64) (int, int, int, int, error) {
	i0 := 0
	for i, p := range pts {
		q := pts[i0]
		if p.X < q.X || (p.X == q.X && (p.Y < q.Y || (p.Y == q.Y && p.Z < q.Z))) {
			i0 = i
		}
	}
	i1, best := -1, eps
	for i, p := range pts {
		if d := p.Sub(pts[i0]).Length(); d > best {
			i1, best = i, d
		}
	}
	if i1 < 0 {
		return 0, 0, 0, 0, errHullDegenerate
	}
	dir := pts[i1].Sub(pts[i0]).Normalize()
	i2, best := -1, eps
	for i, p := range pts {
		if d := p.Sub(pts[i0]).Cross(dir).Length(); d > best {
			i2, best = i, d
		}
	}
	if i2 < 0 {
		return 0, 0, 0, 0, errHullDegenerate
	}
	n := dir.Cross(pts[i2].Sub(pts[i0])).Normalize()
	i3, best := -1, eps
	for i, p := range pts {
		if d := abs(n.Dot(p.Sub(pts[i0]))); d > best {
			i3, best = i, d
		}
	}
	if i3 < 0 {
		return 0, 0, 0, 0, errHullDegenerate
	}
	return i0, i1, i2, i3, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// hullEps scales the tolerance to the point cloud extent.
func hullEps(pts []v3.Vec) float64 {
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	diag := max.Sub(min).Length()
	if diag < 1e-12 {
		return 1e-12
	}
	return 1e-9 * diag
}
