// Package coloring builds and solves the r-dynamic coloring integer program.
//
// An r-dynamic coloring is a proper coloring in which every vertex v sees at
// least min(r, deg(v)) distinct colors among its neighbors. For a color
// budget K the model uses three binary families:
//
//	w[k]    color k is used
//	x[v,k]  vertex v has color k
//	q[v,k]  some neighbor of v has color k
//
// and minimizes Σ w[k] subject to
//
//	1. Σ_k x[v,k] = 1                              every v
//	2. x[u,k] + x[v,k] ≤ w[k]   (≤ 1 for -H)       every edge, every k
//	3. w[k] ≤ Σ_v x[v,k]                           ACR, ACR-R
//	4. w[k-1] ≥ w[k]                               ACR, ACR-R
//	5. Σ_k q[v,k] ≥ min(r, deg(v))                 every v
//	6. Σ_{u∈N(v)} x[u,k] ≥ q[v,k]                  every v, k
//	7. q[v,k] ≥ x[u,k]                             every v, u ∈ N(v), k
//
// The -R variants accept the solution of a smaller graph whose vertices are a
// subset of the current ones and pin the leading used colors and the old
// vertices' colors (warm start). Solving goes through any lp.Solver.
//
// Errors:
//
//   - ErrUnknownMethod: method name outside ACR, ACR-H, ACR-R, ACR-RH.
//   - ErrInvalidParams: K < 1 or R < 0 (wrapped in *ParamError).
//   - ErrInvalidGraph: adjacency fails adjacency.Validate.
//   - ErrWarmStartMismatch: previous solution not compatible with the graph.
//   - ErrNotOptimal: returned by RequireOptimal for non-optimal results.
package coloring
