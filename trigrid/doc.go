// Package trigrid models the triangular grid graph T_n as a pair of synced
// views: integer codes and lattice coordinates.
//
// What:
//
//   - Vertices are the lattice points (x, y) with x, y ≥ 0 and x + y ≤ n,
//     generated row by row along the anti-diagonals (x, nᵢ-x), nᵢ = 0..n.
//     Codes are dense indices in generation order.
//   - Two vertices are adjacent iff their Manhattan distance is 1, or
//     |Δx| = |Δy| = 1 with Δx ≠ Δy (the lattice diagonal).
//   - The border is the outer face as one simple cycle of length 3n:
//     (0,0) → (n,0) along the x axis, back to (0,n) along the hypotenuse,
//     then down the y axis to (0,1).
//   - Triad candidates are all cyclically consecutive border triples.
//
// Complexity:
//
//   - New: O(V log V) with V = (n+1)(n+2)/2; memory O(V).
//   - AddEdges: O(E' + V).
//   - Clone, Materialize: O(V + E).
//
// Mutation:
//
//   - AddEdges is the only in-place mutator. It keeps both views and the
//     degree map in sync but leaves the border and triad candidates as they
//     were; call it before handing the grid to the star generator.
//
// Errors:
//
//   - ErrNegativeOrder: New with n < 0.
//   - ErrUnknownCoordinate: AddEdges with a coordinate outside the grid.
//   - ErrUnknownVertex: Materialize with a code outside the grid.
package trigrid
