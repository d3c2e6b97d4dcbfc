package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/rdynamic/metrics"
)

// Key identifies one unit of a sweep.
type Key struct {
	A int
	B int
}

// Range is an inclusive integer range.
type Range struct {
	From int `yaml:"from" json:"from"`
	To   int `yaml:"to" json:"to" validate:"gtefield=From"`
}

// Values lists From..To; empty when To < From.
func (r Range) Values() []int {
	if r.To < r.From {
		return nil
	}
	out := make([]int, 0, r.To-r.From+1)
	for v := r.From; v <= r.To; v++ {
		out = append(out, v)
	}

	return out
}

// Unit computes one coloring for key.
type Unit func(ctx context.Context, key Key) (map[int]int, error)

// Report collects the outcome of one run.
type Report struct {
	RunID uuid.UUID
	// Results[a][b] is the coloring of unit (a, b).
	Results map[int]map[int]map[int]int
	// Errors holds a *UnitError for every failed unit.
	Errors   map[Key]error
	Duration time.Duration

	// Counts[n] lists the distinct used-color counts over T_n, ascending.
	// Only StarSweep fills it.
	Counts map[int][]int
	// Skipped[n] counts star graphs dropped for repeated edges.
	Skipped map[int]int

	mu sync.Mutex
}

func newReport() *Report {
	return &Report{
		RunID:   uuid.New(),
		Results: make(map[int]map[int]map[int]int),
		Errors:  make(map[Key]error),
	}
}

func (r *Report) set(k Key, colors map[int]int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.Errors[k] = &UnitError{Key: k, Err: err}
		return
	}
	row, ok := r.Results[k.A]
	if !ok {
		row = make(map[int]map[int]int)
		r.Results[k.A] = row
	}
	row[k.B] = colors
}

// Result returns the coloring of unit k.
func (r *Report) Result(k Key) (map[int]int, bool) {
	row, ok := r.Results[k.A]
	if !ok {
		return nil, false
	}
	colors, ok := row[k.B]

	return colors, ok
}

// Len counts successful units.
func (r *Report) Len() int {
	n := 0
	for _, row := range r.Results {
		n += len(row)
	}

	return n
}

// Err joins all unit errors in key order; nil when every unit succeeded.
func (r *Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	keys := make([]Key, 0, len(r.Errors))
	for k := range r.Errors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	errs := make([]error, len(keys))
	for i, k := range keys {
		errs[i] = r.Errors[k]
	}

	return errors.Join(errs...)
}

// Runner executes units on a bounded worker pool.
type Runner struct {
	workers     int
	unitTimeout time.Duration
	metrics     *metrics.Registry
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of concurrent units. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("batch: WithWorkers(%d): must be positive", n))
	}
	return func(r *Runner) { r.workers = n }
}

// WithUnitTimeout bounds every unit; zero disables the bound.
// Panics if d < 0.
func WithUnitTimeout(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("batch: WithUnitTimeout(%v): must be non-negative", d))
	}
	return func(r *Runner) { r.unitTimeout = d }
}

// WithMetrics records unit and solve outcomes into reg.
func WithMetrics(reg *metrics.Registry) Option {
	return func(r *Runner) { r.metrics = reg }
}

// NewRunner returns a Runner with one worker per CPU by default.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes unit for every pair in a × b.
func (r *Runner) Run(ctx context.Context, a, b Range, unit Unit) *Report {
	return r.RunGrid(ctx, a.Values(), b.Values(), unit)
}

// RunGrid executes unit for every pair in as × bs.
func (r *Runner) RunGrid(ctx context.Context, as, bs []int, unit Unit) *Report {
	keys := make([]Key, 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			keys = append(keys, Key{A: a, B: b})
		}
	}

	return r.RunKeys(ctx, keys, unit)
}

// RunKeys executes unit once per key. Units never cancel each other; a unit
// that has not started when ctx ends records ctx.Err().
func (r *Runner) RunKeys(ctx context.Context, keys []Key, unit Unit) *Report {
	rep := newReport()
	start := time.Now()

	pool := NewWorkerPool(r.workers, func(k Key, err error) {
		rep.set(k, nil, err)
		r.observe(rep.RunID, k, err)
	})
	for _, k := range keys {
		k := k // per-iteration copy; module targets go1.21 loop semantics
		pool.Submit(k, func() {
			colors, err := r.exec(ctx, k, unit)
			rep.set(k, colors, err)
			r.observe(rep.RunID, k, err)
		})
	}
	pool.Close()

	rep.Duration = time.Since(start)
	klog.V(1).Infof("batch: run %s units=%d ok=%d failed=%d in %v",
		rep.RunID, len(keys), rep.Len(), len(rep.Errors), rep.Duration)

	return rep
}

// exec runs one unit; panics propagate to the pool.
func (r *Runner) exec(ctx context.Context, k Key, unit Unit) (map[int]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.unitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.unitTimeout)
		defer cancel()
	}

	return unit(ctx, k)
}

func (r *Runner) observe(id uuid.UUID, k Key, err error) {
	if err != nil {
		r.metrics.RecordUnit(metrics.StatusError)
		klog.Errorf("batch: unit failed run=%s a=%d b=%d: %v", id, k.A, k.B, err)
		return
	}
	r.metrics.RecordUnit(metrics.StatusOK)
	klog.V(2).Infof("batch: unit done run=%s a=%d b=%d", id, k.A, k.B)
}
