// Package: rdynamic/builder
//
// impl_planar3.go - implementation of Planar3Tree(iterations) constructor.
//
// Construction:
//   - Start from K3 with one inner face (0,1,2).
//   - Each iteration inserts a new vertex z into every current face (u,v,w),
//     joins z to u, v and w, and replaces the face by (u,v,z), (v,w,z), (w,u,z).
//   - After t iterations: V = 3 + (3^t - 1)/2.
//
// Contract:
//   - iterations ≥ 0 (else ErrTooFewVertices).
//   - New vertices are numbered in face order within each iteration.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/adjacency"
)

type face [3]int

// Planar3Tree returns a Constructor for the iterated planar 3-tree.
func Planar3Tree(iterations int) Constructor {
	return func(l adjacency.List, cfg builderConfig) error {
		if iterations < MinPlanar3TreeIterations {
			return fmt.Errorf("%s: iterations=%d < min=%d: %w",
				MethodPlanar3Tree, iterations, MinPlanar3TreeIterations, ErrTooFewVertices)
		}
		base := len(l)
		if err := Complete(3)(l, cfg); err != nil {
			return fmt.Errorf("%s: seed K3: %w", MethodPlanar3Tree, err)
		}

		faces := []face{{base, base + 1, base + 2}}
		for it := 0; it < iterations; it++ {
			next := make([]face, 0, 3*len(faces))
			for _, f := range faces {
				z := addVertices(l, 1)
				l.AddEdge(f[0], z)
				l.AddEdge(f[1], z)
				l.AddEdge(f[2], z)
				next = append(next, face{f[0], f[1], z}, face{f[1], f[2], z}, face{f[2], f[0], z})
			}
			faces = next
		}

		return nil
	}
}
