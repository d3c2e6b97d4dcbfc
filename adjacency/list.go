package adjacency

import (
	"fmt"
	"sort"
)

// Len returns the number of vertices.
func (l List) Len() int { return len(l) }

// Vertices returns all vertex codes in ascending order.
// Complexity: O(V log V).
func (l List) Vertices() []int {
	out := make([]int, 0, len(l))
	for v := range l {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// AddVertex registers v with no neighbors. Existing vertices are left untouched.
func (l List) AddVertex(v int) {
	if _, ok := l[v]; !ok {
		l[v] = []int{}
	}
}

// AddEdge appends v to u's neighbors and u to v's neighbors. It does not check
// for an existing edge: callers that must stay simple check HasEdge first.
func (l List) AddEdge(u, v int) {
	l[u] = append(l[u], v)
	l[v] = append(l[v], u)
}

// HasEdge reports whether v appears in the neighbor list of u.
// Complexity: O(deg(u)).
func (l List) HasEdge(u, v int) bool {
	for _, w := range l[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Degree returns the adjacency-list length of v (duplicates included).
func (l List) Degree(v int) int { return len(l[v]) }

// Degrees returns the degree of every vertex.
func (l List) Degrees() map[int]int {
	out := make(map[int]int, len(l))
	for v, ns := range l {
		out[v] = len(ns)
	}

	return out
}

// Edges returns every undirected edge once, canonical and sorted
// lexicographically.
// Complexity: O(E log E).
func (l List) Edges() []Edge {
	seen := make(map[Edge]struct{})
	out := make([]Edge, 0)
	for u, ns := range l {
		for _, v := range ns {
			e := NewEdge(u, v)
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out
}

// Clone returns a deep copy: neighbor slices are never shared.
// Complexity: O(V + E).
func (l List) Clone() List {
	out := make(List, len(l))
	for v, ns := range l {
		cp := make([]int, len(ns))
		copy(cp, ns)
		out[v] = cp
	}

	return out
}

// Symmetrize returns a copy of l in which every edge is recorded in both
// directions exactly once. Neighbor order follows first appearance.
func Symmetrize(l List) List {
	out := make(List, len(l))
	for v := range l {
		out.AddVertex(v)
	}
	for _, e := range l.Edges() {
		if e[0] == e[1] {
			continue
		}
		out.AddEdge(e[0], e[1])
	}

	return out
}

// Validate checks that l describes a simple undirected graph: every neighbor is
// a vertex, no vertex lists itself, and each edge is recorded in both directions.
// Duplicate neighbors are not rejected here; use HasRepeatedEdges.
func Validate(l List) error {
	for _, u := range l.Vertices() {
		for _, v := range l[u] {
			if u == v {
				return fmt.Errorf("adjacency: Validate: vertex %d: %w", u, ErrSelfLoop)
			}
			if _, ok := l[v]; !ok {
				return fmt.Errorf("adjacency: Validate: edge %d-%d: %w", u, v, ErrUnknownVertex)
			}
			if !l.HasEdge(v, u) {
				return fmt.Errorf("adjacency: Validate: edge %d-%d: %w", u, v, ErrAsymmetric)
			}
		}
	}

	return nil
}

func sortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i][0] != es[j][0] {
			return es[i][0] < es[j][0]
		}
		return es[i][1] < es[j][1]
	})
}
