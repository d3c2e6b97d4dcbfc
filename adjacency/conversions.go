package adjacency

import "fmt"

// FromMatrix converts a square adjacency matrix to a List. Row i becomes vertex
// i and j is a neighbor of i iff m[i][j] != 0, so weighted matrices convert by
// edge existence. Neighbors are listed in ascending column order.
// Complexity: O(V²).
func FromMatrix(m Matrix) (List, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("adjacency: FromMatrix: row %d has %d entries, want %d: %w", i, len(row), n, ErrNotSquare)
		}
	}
	out := make(List, n)
	for i := 0; i < n; i++ {
		ns := make([]int, 0)
		for j := 0; j < n; j++ {
			if m[i][j] != 0 {
				ns = append(ns, j)
			}
		}
		out[i] = ns
	}

	return out, nil
}

// ToMatrix converts l to a dense 0/1 matrix indexed by vertex code. The codes
// must be exactly 0..V-1.
// Complexity: O(V² + E).
func ToMatrix(l List) (Matrix, error) {
	n := len(l)
	for v := range l {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("adjacency: ToMatrix: vertex %d outside [0,%d): %w", v, n, ErrSparseVertices)
		}
	}
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for u, ns := range l {
		for _, v := range ns {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("adjacency: ToMatrix: neighbor %d of %d: %w", v, u, ErrUnknownVertex)
			}
			m[u][v] = 1
		}
	}

	return m, nil
}
