package star

import (
	"context"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/search"
	"github.com/katalvlaran/rdynamic/trigrid"
)

// Result is the outcome of one enumeration.
type Result struct {
	// Graphs are the completed star graphs in recording order.
	Graphs []*trigrid.Grid
	// Histories[i] lists the vertices clipped from the border to reach Graphs[i].
	Histories [][]int
	// QueueSizes holds the queue length after every pop.
	QueueSizes []int
	// Truncated is set when the graph budget stopped a non-empty search.
	Truncated bool
	// Duplicates counts completed states dropped as already recorded.
	Duplicates int
}

// Generator enumerates star graphs of one base grid.
type Generator struct {
	base *trigrid.Grid
	cfg  config
	// hash buckets expanded configurations; nil means stateKey
	hash func(*search.State) uint64
}

// New returns a Generator over base. The base grid is never mutated.
func New(base *trigrid.Grid, opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Generator{base: base, cfg: cfg}
}

// VerifyNotAdjacent reports whether contracting t would add a new chord, i.e.
// t.Prev and t.Next are distinct and not adjacent in adj.
func VerifyNotAdjacent(t search.Triad, adj adjacency.List) bool {
	return t.Prev != t.Next && !adj.HasEdge(t.Prev, t.Next)
}

// IsTerminal reports whether g's border is a triangle that admits no
// further contraction.
func IsTerminal(g *trigrid.Grid) bool {
	border := g.Border()
	if len(border) != 3 {
		return false
	}
	adj := g.Adjacency()
	for _, t := range search.Triads(border) {
		if VerifyNotAdjacent(t, adj) {
			return false
		}
	}

	return true
}

// run holds the mutable bookkeeping of one Generate call.
type run struct {
	g      *Generator
	queue  search.Queue
	res    *Result
	seen   map[uint64][]seenState      // pushed configurations by state hash
	graphs map[uint64][]adjacency.List // recorded edge sets by fingerprint
	hash   func(*search.State) uint64
}

// seenState is a private snapshot of a pushed configuration.
type seenState struct {
	adj    adjacency.List
	border []int
	target int
}

func (p seenState) matches(s *search.State) bool {
	return p.target == s.TargetIndex &&
		slices.Equal(p.border, s.Border) &&
		adjacency.EqualEdges(p.adj, s.Adjacency)
}

// Generate runs the enumeration. On context cancellation the graphs recorded
// so far are returned together with ctx.Err().
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if g.base == nil {
		return nil, ErrNilGrid
	}
	queue, err := search.New(g.cfg.strategy)
	if err != nil {
		return nil, fmt.Errorf("star: Generate: %w", err)
	}
	r := &run{
		g:      g,
		queue:  queue,
		res:    &Result{},
		seen:   make(map[uint64][]seenState),
		graphs: make(map[uint64][]adjacency.List),
		hash:   g.hash,
	}
	if r.hash == nil {
		r.hash = stateKey
	}

	border := g.base.Border()
	if len(border) <= 3 {
		r.record(&search.State{Adjacency: g.base.Adjacency(), Border: border, ClipHistory: []int{}})
		return r.res, nil
	}

	seed := &search.State{Adjacency: g.base.Adjacency(), Border: border, ClipHistory: []int{}}
	for i, t := range g.base.TriadCandidates() {
		if VerifyNotAdjacent(t, seed.Adjacency) {
			seed.TargetIndex = i
			r.push(seed)
		}
	}
	klog.V(2).Infof("star: n=%d seeded %d states", g.base.N(), queue.Len())

	for !queue.IsEmpty() {
		if err := ctx.Err(); err != nil {
			klog.Warningf("star: n=%d stopped after %d graphs: %v", g.base.N(), len(r.res.Graphs), err)
			return r.res, err
		}
		if g.cfg.maxGraphs != Unbounded && len(r.res.Graphs) >= g.cfg.maxGraphs {
			r.res.Truncated = true
			break
		}

		s, err := queue.Pop()
		if err != nil {
			return r.res, fmt.Errorf("star: Generate: %w", err)
		}
		r.res.QueueSizes = append(r.res.QueueSizes, queue.Len())
		g.cfg.metrics.RecordStateExpanded()
		g.cfg.metrics.SetQueueSize(queue.Len())

		if len(s.Border) <= 3 {
			r.record(s)
			continue
		}
		if err := r.expand(s); err != nil {
			return r.res, err
		}
	}

	klog.V(1).Infof("star: n=%d graphs=%d duplicates=%d pops=%d truncated=%v",
		g.base.N(), len(r.res.Graphs), r.res.Duplicates, len(r.res.QueueSizes), r.res.Truncated)

	return r.res, nil
}

// expand contracts the target triad of s and pushes every admissible child.
// s is owned by the caller after Pop and is reused as the child template.
func (r *run) expand(s *search.State) error {
	t, err := s.Triad()
	if err != nil {
		return fmt.Errorf("star: expand: %w", err)
	}
	if !VerifyNotAdjacent(t, s.Adjacency) {
		return nil
	}
	klog.V(2).Infof("star: contract %v border=%d", t, len(s.Border))

	s.Adjacency.AddEdge(t.Prev, t.Next)
	s.Border = append(s.Border[:s.TargetIndex:s.TargetIndex], s.Border[s.TargetIndex+1:]...)
	s.ClipHistory = append(s.ClipHistory, t.Middle)

	if len(s.Border) == 3 {
		s.TargetIndex = 0
		r.push(s)
		return nil
	}
	for i := range s.Border {
		if VerifyNotAdjacent(search.TriadAt(s.Border, i), s.Adjacency) {
			s.TargetIndex = i
			r.push(s)
		}
	}

	return nil
}

// push enqueues s unless distinct mode has already seen its configuration.
func (r *run) push(s *search.State) {
	if r.g.cfg.distinct {
		key := r.hash(s)
		for _, prev := range r.seen[key] {
			if prev.matches(s) {
				return
			}
		}
		r.seen[key] = append(r.seen[key], seenState{
			adj:    s.Adjacency.Clone(),
			border: slices.Clone(s.Border),
			target: s.TargetIndex,
		})
	}
	r.queue.Push(s)
}

// record materializes a terminal state and appends it to the result.
func (r *run) record(s *search.State) {
	if r.g.cfg.distinct {
		fp := adjacency.Fingerprint(s.Adjacency)
		for _, prev := range r.graphs[fp] {
			if adjacency.EqualEdges(prev, s.Adjacency) {
				r.res.Duplicates++
				return
			}
		}
		r.graphs[fp] = append(r.graphs[fp], s.Adjacency)
	}

	grid, err := r.g.base.Materialize(s.Adjacency, s.Border)
	if err != nil {
		// states only ever hold base vertices
		klog.Errorf("star: materialize terminal state: border=%v: %v", s.Border, err)
		return
	}
	r.res.Graphs = append(r.res.Graphs, grid)
	r.res.Histories = append(r.res.Histories, append([]int{}, s.ClipHistory...))
	r.g.cfg.metrics.RecordStarGraph()
}

// stateKey hashes the edge set, border and target of s.
func stateKey(s *search.State) uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}
	put(int(adjacency.Fingerprint(s.Adjacency)))
	for _, b := range s.Border {
		put(b)
	}
	put(-1)
	put(s.TargetIndex)

	return h.Sum64()
}
