package adjacency

import "errors"

// Sentinel errors for adjacency operations.
var (
	// ErrNotSquare indicates a matrix whose rows do not all have len(m) entries.
	ErrNotSquare = errors.New("adjacency: matrix must be square")
	// ErrSparseVertices indicates vertex codes that are not exactly 0..V-1.
	ErrSparseVertices = errors.New("adjacency: vertex codes must be dense 0..V-1")
	// ErrUnknownVertex indicates a neighbor that is not itself a vertex of the list.
	ErrUnknownVertex = errors.New("adjacency: neighbor is not a vertex")
	// ErrSelfLoop indicates a vertex listed as its own neighbor.
	ErrSelfLoop = errors.New("adjacency: self-loop not allowed")
	// ErrAsymmetric indicates an undirected edge recorded in one direction only.
	ErrAsymmetric = errors.New("adjacency: list is not symmetric")
	// ErrDuplicateVertex indicates a vertex declared twice in the text format.
	ErrDuplicateVertex = errors.New("adjacency: vertex declared twice")
)
