package batch

import (
	"context"
	"fmt"
	"sort"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/builder"
	"github.com/katalvlaran/rdynamic/coloring"
	"github.com/katalvlaran/rdynamic/lp"
	"github.com/katalvlaran/rdynamic/star"
	"github.com/katalvlaran/rdynamic/trigrid"
)

// color solves one model, records the solve and requires optimality.
func (r *Runner) color(ctx context.Context, solver lp.Solver, adj adjacency.List, params coloring.Params) (*coloring.Result, error) {
	res, err := coloring.Color(ctx, solver, adj, params)
	if res != nil {
		r.metrics.RecordSolve(params.Method.String(), res.Status.String(), res.Duration)
	}
	if err != nil {
		return nil, err
	}
	if err := coloring.RequireOptimal(res); err != nil {
		return nil, err
	}

	return res, nil
}

// KRUnit colors adj with Key.A as K and Key.B as R.
func (r *Runner) KRUnit(solver lp.Solver, adj adjacency.List, method coloring.Method) Unit {
	return func(ctx context.Context, k Key) (map[int]int, error) {
		res, err := r.color(ctx, solver, adj, coloring.Params{
			Method: method,
			K:      k.A,
			R:      k.B,
			Name:   fmt.Sprintf("KR_%d_%d", k.A, k.B),
		})
		if err != nil {
			return nil, err
		}
		return res.Colors, nil
	}
}

// SweepKR colors adj for every k in kRange and r in rRange.
// Results are keyed {k: {r: coloring}}.
func (r *Runner) SweepKR(ctx context.Context, solver lp.Solver, adj adjacency.List, method coloring.Method, kRange, rRange Range) *Report {
	return r.Run(ctx, kRange, rRange, r.KRUnit(solver, adj, method))
}

// graphUnit builds the graph of Key.B and colors it with Key.A as R.
func (r *Runner) graphUnit(solver lp.Solver, method coloring.Method, k int, name string, build func(n int) builder.Constructor) Unit {
	return func(ctx context.Context, key Key) (map[int]int, error) {
		adj, err := builder.Build(build(key.B))
		if err != nil {
			return nil, err
		}
		res, err := r.color(ctx, solver, adj, coloring.Params{
			Method: method,
			K:      k,
			R:      key.A,
			Name:   fmt.Sprintf("%s_%d_%d", name, key.B, key.A),
		})
		if err != nil {
			return nil, err
		}
		return res.Colors, nil
	}
}

// AntiprismSweep colors the antiprism on 2n vertices for every r in rRange
// and n in nRange with a fixed budget k. Results are keyed {r: {n: coloring}}.
func (r *Runner) AntiprismSweep(ctx context.Context, solver lp.Solver, method coloring.Method, k int, rRange, nRange Range) *Report {
	return r.Run(ctx, rRange, nRange, r.graphUnit(solver, method, k, "Antiprism", builder.Antiprism))
}

// CirculantSweep colors C_n(jumps) for every r in rRange and n in nRange
// with a fixed budget k. Results are keyed {r: {n: coloring}}.
func (r *Runner) CirculantSweep(ctx context.Context, solver lp.Solver, method coloring.Method, k int, rRange, nRange Range, jumps ...int) *Report {
	build := func(n int) builder.Constructor { return builder.Circulant(n, jumps...) }

	return r.Run(ctx, rRange, nRange, r.graphUnit(solver, method, k, "Circulant", build))
}

// StarFamily selects the star graphs colored by StarSweep.
type StarFamily string

const (
	// FullSet colors every star graph the generator records.
	FullSet StarFamily = "full"
	// MaxDegree colors the single maximum-degree star graph.
	MaxDegree StarFamily = "max_degree"
)

// StarSweep colors star graphs of T_n for every n in orders. Graphs with
// repeated edges are skipped. Results are keyed {n: {graph index: coloring}};
// Counts and Skipped are filled per order. Generation errors are recorded
// under Key{A: n, B: -1}.
func (r *Runner) StarSweep(ctx context.Context, solver lp.Solver, family StarFamily, params coloring.Params, orders Range, opts ...star.Option) (*Report, error) {
	if family != FullSet && family != MaxDegree {
		return nil, fmt.Errorf("%w: star family %q", ErrInvalidConfig, family)
	}

	var (
		keys    []Key
		graphs  = make(map[Key]adjacency.List)
		skipped = make(map[int]int)
		failed  = make(map[Key]error)
	)
	for _, n := range orders.Values() {
		gs, err := starGraphs(ctx, family, n, opts)
		if err != nil {
			failed[Key{A: n, B: -1}] = err
			continue
		}
		for i, g := range gs {
			adj := g.Adjacency()
			if adjacency.HasRepeatedEdges(adj) {
				skipped[n]++
				klog.Warningf("batch: star n=%d graph %d has %d repeated edges, skipped",
					n, i, adjacency.RepeatedEdgeCount(adj))
				continue
			}
			k := Key{A: n, B: i}
			keys = append(keys, k)
			graphs[k] = adj
		}
	}

	unit := func(ctx context.Context, k Key) (map[int]int, error) {
		p := params
		p.Name = fmt.Sprintf("Star_%d_%d", k.A, k.B)
		res, err := r.color(ctx, solver, graphs[k], p)
		if err != nil {
			return nil, err
		}
		return res.Colors, nil
	}
	out := r.RunKeys(ctx, keys, unit)
	out.Skipped = skipped
	out.Counts = make(map[int][]int)
	for k, err := range failed {
		out.Errors[k] = &UnitError{Key: k, Err: err}
	}

	for n, row := range out.Results {
		seen := make(map[int]struct{})
		for _, colors := range row {
			used := coloring.UsedColors(colors)
			if _, ok := seen[used]; ok {
				continue
			}
			seen[used] = struct{}{}
			out.Counts[n] = append(out.Counts[n], used)
		}
		sort.Ints(out.Counts[n])
	}

	return out, nil
}

func starGraphs(ctx context.Context, family StarFamily, n int, opts []star.Option) ([]*trigrid.Grid, error) {
	if family == MaxDegree {
		g, err := star.MaxDegree(n)
		if err != nil {
			return nil, err
		}
		return []*trigrid.Grid{g}, nil
	}
	base, err := trigrid.New(n)
	if err != nil {
		return nil, err
	}
	res, err := star.New(base, opts...).Generate(ctx)
	if err != nil {
		return nil, err
	}

	return res.Graphs, nil
}
