// Package: rdynamic/builder
//
// impl_circulant.go - Circulant(n, jumps...) and Antiprism(n) constructors.
//
// Contract:
//   - Circulant: n ≥ 2; vertex i is joined to i±s (mod n) for every jump s.
//     Jumps outside 0 < s ≤ n/2 are ignored and repeated jumps count once.
//   - Neighbor lists are ascending, the order produced by adjacency.FromMatrix
//     on the equivalent circulant matrix.
//   - Antiprism(n) = Circulant(2n, 1, 2), n ≥ 3.
//
// Complexity: O(n·|jumps|) edges plus O(n·d log d) for ordering neighbors.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rdynamic/adjacency"
)

// Circulant returns a Constructor that builds the circulant graph Ci_n(jumps).
func Circulant(n int, jumps ...int) Constructor {
	return func(l adjacency.List, _ builderConfig) error {
		if n < MinCirculantNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCirculant, n, MinCirculantNodes, ErrTooFewVertices)
		}
		// keep only meaningful, distinct jumps
		set := make(map[int]struct{}, len(jumps))
		for _, s := range jumps {
			if s > 0 && s <= n/2 {
				set[s] = struct{}{}
			}
		}

		base := addVertices(l, n)
		for i := 0; i < n; i++ {
			nbrs := make(map[int]struct{}, 2*len(set))
			for s := range set {
				nbrs[(i+s)%n] = struct{}{}
				nbrs[(i-s+n)%n] = struct{}{}
			}
			row := make([]int, 0, len(nbrs))
			for j := range nbrs {
				row = append(row, base+j)
			}
			sort.Ints(row)
			l[base+i] = row
		}

		return nil
	}
}

// Antiprism returns a Constructor for the n-antiprism graph, which is
// isomorphic to the circulant graph Ci_2n(1,2).
func Antiprism(n int) Constructor {
	return func(l adjacency.List, cfg builderConfig) error {
		if n < MinAntiprismOrder {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodAntiprism, n, MinAntiprismOrder, ErrTooFewVertices)
		}

		return Circulant(2*n, 1, 2)(l, cfg)
	}
}
