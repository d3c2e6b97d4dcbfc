// Package builder provides deterministic "functional constructor" building
// blocks that produce adjacency lists for the coloring solver and the batch
// sweeps.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:  appends one topology to an adjacency.List.
//     – BuildGraph:   runs constructors in order; results form a disjoint union.
//     – BuilderOption: WithSortedNeighbors, WithValidation.
//   - Topologies:
//     – Cycle(n), Complete(n), Wheel(n).
//     – Circulant(n, jumps...), Antiprism(n) = Circulant(2n, 1, 2).
//     – Planar3Tree(iterations): iterated face insertion starting from K3.
//   - Shared constants:
//     – MinCycleNodes, MinCompleteNodes, MinWheelNodes, MinCirculantNodes, ...
//     – MethodCycle, MethodWheel, ... tokens used as error prefixes.
//
// Guarantees:
//
//   - Vertices are dense integer codes; each constructor numbers its vertices
//     after those already present.
//   - Simple graphs only: no self-loops, no repeated edges.
//   - Structured runtime errors (ErrTooFewVertices, ErrConstructFailed)
//     wrapped with the constructor name for easy filtering.
package builder
