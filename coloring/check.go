package coloring

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/adjacency"
)

// CheckResult reports the first violated model constraint.
type CheckResult struct {
	OK bool
	// Constraint is the violated constraint number (1..7), 0 when OK.
	Constraint int
	// Expression is the violated relation with values substituted.
	Expression string
}

func violated(n int, format string, args ...any) CheckResult {
	return CheckResult{Constraint: n, Expression: fmt.Sprintf(format, args...)}
}

// Check verifies sol against constraints 1–7 of params.Method on adj.
// sol.Vertices must list the vertices of adj in sorted order.
func Check(adj adjacency.List, params Params, sol *Solution) CheckResult {
	k := len(sol.W)
	pos := make(map[int]int, len(sol.Vertices))
	for i, v := range sol.Vertices {
		pos[v] = i
	}
	x := func(v, c int) float64 { return sol.X[pos[v]][c] }
	q := func(v, c int) float64 { return sol.Q[pos[v]][c] }

	for _, v := range sol.Vertices {
		if s := sum(sol.X[pos[v]]); s != 1 {
			return violated(1, "sum(x[%d]) = %g == 1", v, s)
		}
	}

	for _, e := range adj.Edges() {
		for c := 0; c < k; c++ {
			lhs := x(e[0], c) + x(e[1], c)
			bound := sol.W[c]
			if params.Method.Hard() {
				bound = 1
			}
			if lhs > bound {
				return violated(2, "x[%d,%d] + x[%d,%d] = %g <= %g", e[0], c, e[1], c, lhs, bound)
			}
		}
	}

	if !params.Method.Hard() {
		for c := 0; c < k; c++ {
			col := 0.0
			for _, v := range sol.Vertices {
				col += x(v, c)
			}
			if sol.W[c] > col {
				return violated(3, "w[%d] = %g <= sum(x[:,%d]) = %g", c, sol.W[c], c, col)
			}
		}
		for c := 1; c < k; c++ {
			if sol.W[c-1] < sol.W[c] {
				return violated(4, "w[%d] = %g >= w[%d] = %g", c-1, sol.W[c-1], c, sol.W[c])
			}
		}
	}

	for _, v := range sol.Vertices {
		need := float64(min(params.R, len(adj[v])))
		if s := sum(sol.Q[pos[v]]); s < need {
			return violated(5, "sum(q[%d]) = %g >= %g", v, s, need)
		}
	}

	for _, v := range sol.Vertices {
		for c := 0; c < k; c++ {
			seen := 0.0
			for _, u := range adj[v] {
				seen += x(u, c)
			}
			if seen < q(v, c) {
				return violated(6, "sum(x[N(%d),%d]) = %g >= q[%d,%d] = %g", v, c, seen, v, c, q(v, c))
			}
			for _, u := range adj[v] {
				if q(v, c) < x(u, c) {
					return violated(7, "q[%d,%d] = %g >= x[%d,%d] = %g", v, c, q(v, c), u, c, x(u, c))
				}
			}
		}
	}

	return CheckResult{OK: true}
}

func sum(vals []float64) float64 {
	s := 0.0
	for _, v := range vals {
		s += v
	}

	return s
}

// IsRDynamic reports whether colors is a proper coloring of adj in which
// every vertex sees at least min(r, deg) distinct colors among its neighbors.
// Uncolored vertices fail the check.
func IsRDynamic(adj adjacency.List, colors map[int]int, r int) bool {
	for v, nbrs := range adj {
		cv, ok := colors[v]
		if !ok {
			return false
		}
		seen := make(map[int]struct{}, len(nbrs))
		for _, u := range nbrs {
			cu, ok := colors[u]
			if !ok || cu == cv {
				return false
			}
			seen[cu] = struct{}{}
		}
		if len(seen) < min(r, len(nbrs)) {
			return false
		}
	}

	return true
}
