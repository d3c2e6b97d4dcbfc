// Package: rdynamic/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   - Wₙ = Cₙ₋₁ + hub, i.e. a cycle of size (n-1) plus one hub vertex.
//   - The hub takes the last code (base + n - 1).
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Spokes are emitted in rim index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/adjacency"
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(l adjacency.List, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		base := len(l)
		if err := Cycle(n-1)(l, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		hub := addVertices(l, 1)
		for i := 0; i < n-1; i++ {
			l.AddEdge(hub, base+i)
		}

		return nil
	}
}
