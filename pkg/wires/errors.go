package wires

import "errors"

// Sentinel errors for network construction and mutation.
var (
	// ErrNoVertices indicates a network was constructed with an empty vertex set.
	ErrNoVertices = errors.New("wires: network has no vertices")

	// ErrEdgeOutOfRange indicates an edge references a vertex index that
	// does not exist.
	ErrEdgeOutOfRange = errors.New("wires: edge endpoint out of range")

	// ErrSelfLoop indicates an edge connects a vertex to itself.
	ErrSelfLoop = errors.New("wires: self-loop edge")

	// ErrDuplicateEdge indicates the same unordered vertex pair appears twice.
	ErrDuplicateEdge = errors.New("wires: duplicate edge")

	// ErrVertexOutOfRange indicates a vertex index query outside the network.
	ErrVertexOutOfRange = errors.New("wires: vertex index out of range")

	// ErrSizeMismatch indicates a per-vertex array whose length does not
	// match the vertex count.
	ErrSizeMismatch = errors.New("wires: array size does not match network")

	// ErrBadCell indicates a degenerate target cell (min not strictly
	// below max on every axis).
	ErrBadCell = errors.New("wires: degenerate cell bounds")
)
