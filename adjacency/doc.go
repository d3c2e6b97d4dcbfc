// Package adjacency provides the plain interchange representations used across
// rdynamic: adjacency lists keyed by integer vertex codes and dense 0/1 adjacency
// matrices.
//
// What:
//
//   - List maps a vertex to its neighbor list. Graphs handled here are simple;
//     a neighbor appearing twice is a defect that HasRepeatedEdges reports.
//   - Matrix is a square matrix whose non-zero entry (i,j) means "edge i–j".
//   - Edges, Degrees and Vertices give deterministic (sorted) views.
//   - Fingerprint hashes the canonical edge set (xxhash), so graphs with equal
//     edge sets compare equal regardless of neighbor order.
//   - ParseText reads a compact text format ("0: 1 2; 1: 0 2; 2: 0 1").
//
// Conversions:
//
//   - FromMatrix: edge i–j exists iff m[i][j] != 0.
//   - ToMatrix:   requires dense codes 0..V-1.
//
// Round trip: FromMatrix(ToMatrix(l)) reproduces the edge set of l.
//
// Errors:
//
//   - ErrNotSquare:       matrix rows differ in length from the row count.
//   - ErrSparseVertices:  list vertices are not exactly 0..V-1.
//   - ErrUnknownVertex:   a neighbor is not a key of the list.
//   - ErrSelfLoop:        a vertex lists itself.
//   - ErrAsymmetric:      u lists v but v does not list u.
//   - ErrDuplicateVertex: the text format declares a vertex twice.
package adjacency
