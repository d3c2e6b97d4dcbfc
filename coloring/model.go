package coloring

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/lp"
)

// Model is the integer program of one (graph, params) pair together with its
// variable families. X and Q are indexed by vertex position in Vertices.
type Model struct {
	LP       *lp.Model
	Params   Params
	Vertices []int
	W        []lp.Var
	X        [][]lp.Var
	Q        [][]lp.Var

	pos map[int]int
}

// Position returns the index of vertex v in Vertices.
func (m *Model) Position(v int) (int, bool) {
	i, ok := m.pos[v]

	return i, ok
}

// Solution holds the values of the three families after a solve, in the
// same layout as Model.
type Solution struct {
	Vertices []int
	W        []float64
	X        [][]float64
	Q        [][]float64
}

// K returns the color budget of the solution.
func (s *Solution) K() int { return len(s.W) }

// Build validates params and adj and emits the model. For -R variants a
// non-nil prev pins the leading used colors of prev and the colors of every
// vertex of prev; other variants ignore prev.
func Build(adj adjacency.List, params Params, prev *Solution) (*Model, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := adjacency.Validate(adj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	k := params.K
	m := &Model{
		LP:       lp.NewModel(params.name()),
		Params:   params,
		Vertices: adj.Vertices(),
		W:        make([]lp.Var, k),
	}
	m.pos = make(map[int]int, len(m.Vertices))
	for i, v := range m.Vertices {
		m.pos[v] = i
	}

	for c := 0; c < k; c++ {
		m.W[c] = m.LP.Binary(fmt.Sprintf("w_%d", c))
	}
	m.X = m.family("x", k)
	m.Q = m.family("q", k)

	if err := m.LP.Minimize(lp.Sum(m.W...)); err != nil {
		return nil, err
	}
	if params.Method.Incremental() && prev != nil {
		if err := m.warmStart(prev); err != nil {
			return nil, err
		}
	}
	if err := m.constrain(adj); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Model) family(prefix string, k int) [][]lp.Var {
	out := make([][]lp.Var, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = make([]lp.Var, k)
		for c := 0; c < k; c++ {
			out[i][c] = m.LP.Binary(fmt.Sprintf("%s_%d_%d", prefix, v, c))
		}
	}

	return out
}

// warmStart pins values of prev after checking that prev fits the model.
func (m *Model) warmStart(prev *Solution) error {
	if prev.K() > m.Params.K {
		return fmt.Errorf("coloring: previous K=%d > K=%d: %w", prev.K(), m.Params.K, ErrWarmStartMismatch)
	}
	if len(prev.X) != len(prev.Vertices) {
		return fmt.Errorf("coloring: previous solution has %d vertices and %d x rows: %w",
			len(prev.Vertices), len(prev.X), ErrWarmStartMismatch)
	}
	for i, row := range prev.X {
		if len(row) > m.Params.K {
			return fmt.Errorf("coloring: previous x row of vertex %d has %d colors > K=%d: %w",
				prev.Vertices[i], len(row), m.Params.K, ErrWarmStartMismatch)
		}
	}
	for _, v := range prev.Vertices {
		if _, ok := m.pos[v]; !ok {
			return fmt.Errorf("coloring: previous vertex %d not in graph: %w", v, ErrWarmStartMismatch)
		}
	}

	for c, val := range prev.W {
		if val < 0.5 {
			break
		}
		if err := m.LP.AddConstraint(fmt.Sprintf("WS_w_%d", c), lp.Sum(m.W[c]), lp.EQ, 1); err != nil {
			return err
		}
	}
	for i, v := range prev.Vertices {
		row := m.X[m.pos[v]]
		for c, val := range prev.X[i] {
			if err := m.LP.AddConstraint(fmt.Sprintf("WS_x_%d_%d", v, c), lp.Sum(row[c]), lp.EQ, round(val)); err != nil {
				return err
			}
		}
	}

	return nil
}

func (m *Model) constrain(adj adjacency.List) error {
	k := m.Params.K
	method := m.Params.Method
	add := m.LP.AddConstraint

	// 1: exactly one color
	for i, v := range m.Vertices {
		if err := add(fmt.Sprintf("C1_%d", v), lp.Sum(m.X[i]...), lp.EQ, 1); err != nil {
			return err
		}
	}

	// 2: no monochromatic edge
	for _, e := range adj.Edges() {
		xu, xv := m.X[m.pos[e[0]]], m.X[m.pos[e[1]]]
		for c := 0; c < k; c++ {
			label := fmt.Sprintf("C2_%d_%d_%d", e[0], e[1], c)
			var err error
			if method.Hard() {
				err = add(label, lp.Sum(xu[c], xv[c]), lp.LE, 1)
			} else {
				err = add(label, lp.Sum(xu[c], xv[c]).Minus(m.W[c]), lp.LE, 0)
			}
			if err != nil {
				return err
			}
		}
	}

	if !method.Hard() {
		// 3: used colors have a vertex
		for c := 0; c < k; c++ {
			col := make([]lp.Var, len(m.Vertices))
			for i := range m.Vertices {
				col[i] = m.X[i][c]
			}
			if err := add(fmt.Sprintf("C3_%d", c), lp.Sum(m.W[c]).Add(negSum(col)), lp.LE, 0); err != nil {
				return err
			}
		}
		// 4: used colors are front-packed
		for c := 1; c < k; c++ {
			if err := add(fmt.Sprintf("C4_%d", c), lp.Sum(m.W[c-1]).Minus(m.W[c]), lp.GE, 0); err != nil {
				return err
			}
		}
	}

	for i, v := range m.Vertices {
		nbrs := adj[v]
		// 5: dynamic demand
		if err := add(fmt.Sprintf("C5_%d", v), lp.Sum(m.Q[i]...), lp.GE, float64(min(m.Params.R, len(nbrs)))); err != nil {
			return err
		}
		for c := 0; c < k; c++ {
			// 6: q needs a neighbor of that color
			seen := make([]lp.Var, 0, len(nbrs))
			for _, u := range nbrs {
				seen = append(seen, m.X[m.pos[u]][c])
			}
			if err := add(fmt.Sprintf("C6_%d_%d", v, c), lp.Sum(seen...).Minus(m.Q[i][c]), lp.GE, 0); err != nil {
				return err
			}
			// 7: a neighbor of that color sets q
			for _, u := range nbrs {
				label := fmt.Sprintf("C7_%d_%d_%d", v, u, c)
				if err := add(label, lp.Sum(m.Q[i][c]).Minus(m.X[m.pos[u]][c]), lp.GE, 0); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func negSum(vars []lp.Var) lp.Expr {
	e := lp.Expr{Terms: make([]lp.Term, len(vars))}
	for i, v := range vars {
		e.Terms[i] = lp.Term{Var: v, Coef: -1}
	}

	return e
}

func round(v float64) float64 {
	if v >= 0.5 {
		return 1
	}

	return 0
}
