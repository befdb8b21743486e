// Package wires defines the wire network data structure: a graph of 3D
// points connected by straight edges, living inside a periodic unit cell.
// Networks are built once, normalized into a target cell with ScaleFit,
// and then consumed read-only by the inflator.
package wires
