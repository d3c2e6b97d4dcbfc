// Package: rdynamic/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits edges (i,j) for i<j in lexicographic order.
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/adjacency"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(l adjacency.List, _ builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		base := addVertices(l, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				l.AddEdge(base+i, base+j)
			}
		}

		return nil
	}
}
