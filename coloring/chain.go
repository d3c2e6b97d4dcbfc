package coloring

import (
	"context"
	"fmt"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/lp"
)

// Chain solves graphs in order. For -R variants each optimal solution warm
// starts the next model, so graphs must grow monotonically (T_1, T_2, …,
// whose codes extend each other). Chain stops at the first error or
// non-optimal result and returns the results gathered so far.
func Chain(ctx context.Context, solver lp.Solver, graphs []adjacency.List, params Params) ([]*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	out := make([]*Result, 0, len(graphs))
	var prev *Solution
	for i, adj := range graphs {
		p := params
		if p.Name == "" {
			p.Name = fmt.Sprintf("%s_%d", DefaultModelName, i)
		}
		m, err := Build(adj, p, prev)
		if err != nil {
			return out, fmt.Errorf("coloring: chain step %d: %w", i, err)
		}
		res, err := Solve(ctx, solver, m)
		if err != nil {
			return out, fmt.Errorf("coloring: chain step %d: %w", i, err)
		}
		out = append(out, res)
		if err := RequireOptimal(res); err != nil {
			return out, fmt.Errorf("coloring: chain step %d: %w", i, err)
		}
		klog.V(1).Infof("coloring: chain step %d V=%d colors=%d", i, len(m.Vertices), res.UsedColors)
		if params.Method.Incremental() {
			prev = res.Solution
		}
	}

	return out, nil
}
