package wires

import v3 "github.com/deadsy/sdfx/vec/v3"

// Canonical unit-cell networks. All generators emit coordinates in the
// unit cube [0,1]^3; callers normally follow up with ScaleFit to place
// the network in the physical cell.

// Cube returns the cube wireframe: 8 corner vertices joined by the 12
// cube edges. Every vertex lies on the cell boundary with degree 3.
func Cube() *Network {
	var verts []v3.Vec
	for z := 0; z <= 1; z++ {
		for y := 0; y <= 1; y++ {
			for x := 0; x <= 1; x++ {
				verts = append(verts, v3.Vec{X: float64(x), Y: float64(y), Z: float64(z)})
			}
		}
	}
	// Corner index is x + 2y + 4z; edges connect corners differing in
	// exactly one bit, lower index first so sweep directions match
	// across periodic images.
	var edges [][2]int
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			j := i | bit
			if j != i {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	n, err := New(verts, edges)
	if err != nil {
		panic("wires: cube generator: " + err.Error())
	}
	return n
}

// Diamond returns the diamond cubic cell skeleton: the 8 corners and 6
// face centers of the cube plus the 8 interior tetrahedral sites (both
// orientation families), each site bonded to its 4 nearest neighbors.
// Carrying both families gives every corner an in-cell bond; all 32
// bonds have length sqrt(3)/4.
func Diamond() *Network {
	verts := []v3.Vec{
		// Corners 0-7, index x + 2y + 4z.
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
		// Face centers 8-13.
		{X: 0.5, Y: 0.5, Z: 0}, {X: 0.5, Y: 0.5, Z: 1},
		{X: 0.5, Y: 0, Z: 0.5}, {X: 0.5, Y: 1, Z: 0.5},
		{X: 0, Y: 0.5, Z: 0.5}, {X: 1, Y: 0.5, Z: 0.5},
		// Tetrahedral sites 14-17.
		{X: 0.25, Y: 0.25, Z: 0.25}, {X: 0.75, Y: 0.75, Z: 0.25},
		{X: 0.75, Y: 0.25, Z: 0.75}, {X: 0.25, Y: 0.75, Z: 0.75},
		// Tetrahedral sites 18-21, the inverted family.
		{X: 0.75, Y: 0.25, Z: 0.25}, {X: 0.25, Y: 0.75, Z: 0.25},
		{X: 0.25, Y: 0.25, Z: 0.75}, {X: 0.75, Y: 0.75, Z: 0.75},
	}
	edges := [][2]int{
		{0, 14}, {8, 14}, {10, 14}, {12, 14},
		{3, 15}, {8, 15}, {11, 15}, {13, 15},
		{5, 16}, {9, 16}, {10, 16}, {13, 16},
		{6, 17}, {9, 17}, {11, 17}, {12, 17},
		{1, 18}, {8, 18}, {10, 18}, {13, 18},
		{2, 19}, {8, 19}, {11, 19}, {12, 19},
		{4, 20}, {9, 20}, {10, 20}, {12, 20},
		{7, 21}, {9, 21}, {11, 21}, {13, 21},
	}
	n, err := New(verts, edges)
	if err != nil {
		panic("wires: diamond generator: " + err.Error())
	}
	return n
}

// Brick5 returns the brick cell: the cube wireframe plus a body center
// strutted to the 6 face centers. The face centers dangle with degree 1,
// the center carries an orthogonal 6-way joint.
func Brick5() *Network {
	verts := []v3.Vec{
		// Corners 0-7, index x + 2y + 4z.
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
		// Face centers 8-13.
		{X: 0.5, Y: 0.5, Z: 0}, {X: 0.5, Y: 0.5, Z: 1},
		{X: 0.5, Y: 0, Z: 0.5}, {X: 0.5, Y: 1, Z: 0.5},
		{X: 0, Y: 0.5, Z: 0.5}, {X: 1, Y: 0.5, Z: 0.5},
		// Body center.
		{X: 0.5, Y: 0.5, Z: 0.5},
	}
	var edges [][2]int
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			j := i | bit
			if j != i {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	for fc := 8; fc < 14; fc++ {
		edges = append(edges, [2]int{fc, 14})
	}
	n, err := New(verts, edges)
	if err != nil {
		panic("wires: brick5 generator: " + err.Error())
	}
	return n
}

// Star returns the 3D star: a center vertex joined to all 8 cube
// corners. The center is the only interior vertex.
func Star() *Network {
	verts := []v3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
		{X: 0.5, Y: 0.5, Z: 0.5},
	}
	var edges [][2]int
	for i := 0; i < 8; i++ {
		edges = append(edges, [2]int{i, 8})
	}
	n, err := New(verts, edges)
	if err != nil {
		panic("wires: star generator: " + err.Error())
	}
	return n
}
