package adjacency

// HasRepeatedEdges reports whether some undirected edge is recorded more than
// once. Only pairs with vertex < neighbor are counted, so an edge listed in both
// directions is not a repeat; a neighbor listed twice in the same list is.
// Complexity: O(V + E).
func HasRepeatedEdges(l List) bool {
	return RepeatedEdgeCount(l) > 0
}

// RepeatedEdgeCount returns how many extra copies of already-seen edges l holds,
// counted in the vertex < neighbor direction. Structural anomalies are reported
// as this count rather than raised.
func RepeatedEdgeCount(l List) int {
	count := 0
	for v, ns := range l {
		seen := make(map[int]struct{}, len(ns))
		for _, u := range ns {
			if v > u {
				continue
			}
			if _, dup := seen[u]; dup {
				count++
				continue
			}
			seen[u] = struct{}{}
		}
	}

	return count
}
