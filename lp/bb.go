package lp

import (
	"context"
	"math"
	"time"

	"github.com/plan-systems/klog"
)

const (
	eps        = 1e-9
	checkEvery = 1023 // mask: context/deadline checked every 1024 nodes
)

// BranchAndBound is an exact depth-first solver for pure binary models.
// The zero value is ready to use and has no limits.
type BranchAndBound struct {
	timeLimit time.Duration
	nodeLimit int
}

// NewBranchAndBound returns a solver configured by opts.
func NewBranchAndBound(opts ...Option) *BranchAndBound {
	b := &BranchAndBound{}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// row is a normalized constraint: Σ coef[i]·x[vars[i]] sense rhs.
type row struct {
	vars  []int
	coefs []float64
	sense Sense
	rhs   float64
}

// bbEngine holds the search data of one Solve call.
type bbEngine struct {
	ctx       context.Context
	deadline  time.Time
	nodeLimit int
	nodes     int
	stopped   bool
	ctxErr    error

	rows   []row
	watch  [][]int // var -> rows containing it
	cost   []float64
	assign []int8 // -1 free, 0, 1
	trail  []int

	best     []float64
	bestCost float64
	found    bool
}

// Solve runs the search. Time or node limits yield NotSolved with the
// incumbent (if any) and a nil error; context expiry yields the same
// solution plus ctx.Err().
func (b *BranchAndBound) Solve(ctx context.Context, m *Model) (*Solution, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := ctx.Err(); err != nil {
		return &Solution{Status: NotSolved}, err
	}
	n := m.NumVars()
	e := &bbEngine{
		ctx:       ctx,
		nodeLimit: b.nodeLimit,
		watch:     make([][]int, n),
		cost:      make([]float64, n),
		assign:    make([]int8, n),
		bestCost:  math.Inf(1),
	}
	if b.timeLimit > 0 {
		e.deadline = time.Now().Add(b.timeLimit)
	}
	for i := range e.assign {
		e.assign[i] = -1
	}
	for _, t := range m.objective.Terms {
		e.cost[t.Var] += t.Coef
	}
	for _, c := range m.constraints {
		e.addRow(c)
	}

	start := time.Now()
	all := make([]int, len(e.rows))
	for i := range all {
		all[i] = i
	}
	if e.propagate(all) {
		e.dfs()
	}
	klog.V(2).Infof("lp: %s vars=%d rows=%d nodes=%d found=%v stopped=%v in %v",
		m.Name, n, len(e.rows), e.nodes, e.found, e.stopped, time.Since(start))

	sol := &Solution{Status: Infeasible}
	if e.found {
		sol.Values = e.best
		sol.Objective = e.bestCost + m.objective.Const
		sol.Status = Optimal
	}
	if e.stopped {
		sol.Status = NotSolved
	}

	return sol, e.ctxErr
}

// addRow merges repeated variables and drops zero coefficients.
func (e *bbEngine) addRow(c Constraint) {
	merged := make(map[int]float64, len(c.Expr.Terms))
	order := make([]int, 0, len(c.Expr.Terms))
	for _, t := range c.Expr.Terms {
		v := int(t.Var)
		if _, ok := merged[v]; !ok {
			order = append(order, v)
		}
		merged[v] += t.Coef
	}
	r := row{sense: c.Sense, rhs: c.RHS - c.Expr.Const}
	for _, v := range order {
		if merged[v] == 0 {
			continue
		}
		r.vars = append(r.vars, v)
		r.coefs = append(r.coefs, merged[v])
	}
	idx := len(e.rows)
	e.rows = append(e.rows, r)
	for _, v := range r.vars {
		e.watch[v] = append(e.watch[v], idx)
	}
}

// interrupted performs the sparse limit checks.
func (e *bbEngine) interrupted() bool {
	if e.stopped {
		return true
	}
	e.nodes++
	if e.nodeLimit > 0 && e.nodes > e.nodeLimit {
		e.stopped = true
		return true
	}
	if e.nodes&checkEvery != 0 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.stopped, e.ctxErr = true, err
		return true
	}
	if !e.deadline.IsZero() && time.Now().After(e.deadline) {
		e.stopped = true
		return true
	}

	return false
}

// fix assigns val to v and records it for undo.
func (e *bbEngine) fix(v int, val int8) {
	e.assign[v] = val
	e.trail = append(e.trail, v)
}

// undo frees every variable fixed after trail position mark.
func (e *bbEngine) undo(mark int) {
	for i := len(e.trail) - 1; i >= mark; i-- {
		e.assign[e.trail[i]] = -1
	}
	e.trail = e.trail[:mark]
}

// activity returns the minimum and maximum of the row's left-hand side over
// all completions of the current partial assignment.
func (e *bbEngine) activity(r *row) (lo, hi float64) {
	for i, v := range r.vars {
		a := r.coefs[i]
		switch e.assign[v] {
		case 1:
			lo += a
			hi += a
		case 0:
		default:
			if a < 0 {
				lo += a
			} else {
				hi += a
			}
		}
	}

	return lo, hi
}

// propagate runs bound propagation from the given rows to a fixpoint.
// It returns false when some row cannot be satisfied.
func (e *bbEngine) propagate(pending []int) bool {
	queued := make(map[int]bool, len(pending))
	for _, ri := range pending {
		queued[ri] = true
	}
	for len(pending) > 0 {
		ri := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		queued[ri] = false

		r := &e.rows[ri]
		lo, hi := e.activity(r)
		upper := r.sense == LE || r.sense == EQ
		lower := r.sense == GE || r.sense == EQ
		if (upper && lo > r.rhs+eps) || (lower && hi < r.rhs-eps) {
			return false
		}
		for i, v := range r.vars {
			if e.assign[v] != -1 {
				continue
			}
			a := r.coefs[i]
			var forced int8 = -1
			switch {
			case upper && a > 0 && lo+a > r.rhs+eps:
				forced = 0
			case upper && a < 0 && lo-a > r.rhs+eps:
				forced = 1
			case lower && a > 0 && hi-a < r.rhs-eps:
				forced = 1
			case lower && a < 0 && hi+a < r.rhs-eps:
				forced = 0
			}
			if forced == -1 {
				continue
			}
			e.fix(v, forced)
			for _, wi := range e.watch[v] {
				if !queued[wi] {
					queued[wi] = true
					pending = append(pending, wi)
				}
			}
		}
	}

	return true
}

// lowerBound is the best objective any completion can reach.
func (e *bbEngine) lowerBound() float64 {
	lb := 0.0
	for v, c := range e.cost {
		switch e.assign[v] {
		case 1:
			lb += c
		case -1:
			if c < 0 {
				lb += c
			}
		}
	}

	return lb
}

func (e *bbEngine) dfs() {
	if e.interrupted() {
		return
	}
	if e.found && e.lowerBound() >= e.bestCost-eps {
		return
	}

	branch := -1
	for v, a := range e.assign {
		if a == -1 {
			branch = v
			break
		}
	}
	if branch == -1 {
		e.record()
		return
	}

	first, second := int8(1), int8(0)
	if e.cost[branch] > 0 {
		first, second = 0, 1
	}
	for _, val := range [2]int8{first, second} {
		mark := len(e.trail)
		e.fix(branch, val)
		if e.propagate(append([]int(nil), e.watch[branch]...)) {
			e.dfs()
		}
		e.undo(mark)
		if e.stopped {
			return
		}
	}
}

// record stores a complete assignment if it beats the incumbent.
func (e *bbEngine) record() {
	cost := 0.0
	for v, c := range e.cost {
		if e.assign[v] == 1 {
			cost += c
		}
	}
	if e.found && cost >= e.bestCost-eps {
		return
	}
	e.best = make([]float64, len(e.assign))
	for v, a := range e.assign {
		e.best[v] = float64(a)
	}
	e.bestCost = cost
	e.found = true
}
