// Package: rdynamic/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices base..base+n-1 in ascending order.
//   - Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/adjacency"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(l adjacency.List, _ builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base := addVertices(l, n)
		// close the ring with i = n-1 -> 0
		for i := 0; i < n; i++ {
			l.AddEdge(base+i, base+(i+1)%n)
		}

		return nil
	}
}
