package coloring

import (
	"context"
	"fmt"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/lp"
)

// Result is the outcome of solving one model.
type Result struct {
	Status lp.Status
	// Colors maps vertex to color index; nil when no values are available.
	Colors map[int]int
	// UsedColors is the number of distinct colors in Colors.
	UsedColors int
	// Objective is Σ w[k] as reported by the solver.
	Objective float64
	// Solution holds the raw family values, usable as a warm start.
	Solution *Solution
	Duration time.Duration
}

// Solve hands m to solver and extracts the coloring. A non-optimal status
// is not an error; see RequireOptimal. Solver errors are returned together
// with whatever result could be extracted.
func Solve(ctx context.Context, solver lp.Solver, m *Model) (*Result, error) {
	start := time.Now()
	sol, err := solver.Solve(ctx, m.LP)
	res := &Result{Status: lp.Undefined, Duration: time.Since(start)}
	if sol != nil {
		res.Status = sol.Status
		res.Objective = sol.Objective
		if sol.Values != nil {
			res.Solution = m.extract(sol)
			res.Colors, res.UsedColors = res.Solution.colors()
		}
	}
	klog.V(2).Infof("coloring: %s %s K=%d R=%d V=%d status=%s colors=%d in %v",
		m.LP.Name, m.Params.Method, m.Params.K, m.Params.R, len(m.Vertices), res.Status, res.UsedColors, res.Duration)
	if err != nil {
		return res, fmt.Errorf("coloring: solve %s: %w", m.LP.Name, err)
	}

	return res, nil
}

// Color builds and solves the model of adj without warm start.
func Color(ctx context.Context, solver lp.Solver, adj adjacency.List, params Params) (*Result, error) {
	m, err := Build(adj, params, nil)
	if err != nil {
		return nil, err
	}

	return Solve(ctx, solver, m)
}

// RequireOptimal turns a non-optimal result into ErrNotOptimal.
func RequireOptimal(res *Result) error {
	if res == nil {
		return fmt.Errorf("coloring: no result: %w", ErrNotOptimal)
	}
	if res.Status != lp.Optimal {
		return fmt.Errorf("coloring: status %q: %w", res.Status, ErrNotOptimal)
	}

	return nil
}

func (m *Model) extract(sol *lp.Solution) *Solution {
	out := &Solution{
		Vertices: append([]int(nil), m.Vertices...),
		W:        make([]float64, len(m.W)),
		X:        make([][]float64, len(m.X)),
		Q:        make([][]float64, len(m.Q)),
	}
	for c, v := range m.W {
		out.W[c] = sol.Value(v)
	}
	for i := range m.Vertices {
		out.X[i] = make([]float64, len(m.W))
		out.Q[i] = make([]float64, len(m.W))
		for c := range m.W {
			out.X[i][c] = sol.Value(m.X[i][c])
			out.Q[i][c] = sol.Value(m.Q[i][c])
		}
	}

	return out
}

// colors reads the vertex colors from x and counts the distinct ones.
func (s *Solution) colors() (map[int]int, int) {
	out := make(map[int]int, len(s.Vertices))
	used := make(map[int]struct{})
	for i, v := range s.Vertices {
		for c, val := range s.X[i] {
			if val >= 0.5 {
				out[v] = c
				used[c] = struct{}{}
				break
			}
		}
	}

	return out, len(used)
}
