package adjacency

// List maps a vertex code to its neighbors. Neighbor order is preserved
// exactly as inserted; every view that needs a stable order sorts.
type List map[int][]int

// Matrix is a square adjacency matrix; a non-zero entry means an edge.
type Matrix [][]int

// Edge is an undirected edge stored canonically with Edge[0] < Edge[1].
type Edge [2]int

// NewEdge returns the canonical (sorted) form of the pair {u, v}.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{u, v}
}
