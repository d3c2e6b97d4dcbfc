package star

import (
	"fmt"

	"github.com/katalvlaran/rdynamic/metrics"
	"github.com/katalvlaran/rdynamic/search"
)

// Unbounded disables the graph budget.
const Unbounded = -1

// Option configures a Generator.
type Option func(*config)

type config struct {
	maxGraphs int
	strategy  search.Strategy
	distinct  bool
	metrics   *metrics.Registry
}

func defaultConfig() config {
	return config{
		maxGraphs: Unbounded,
		strategy:  search.Priority,
		distinct:  true,
	}
}

// WithMaxGraphs stops the search once n graphs are recorded.
// Panics if n < -1.
func WithMaxGraphs(n int) Option {
	if n < Unbounded {
		panic(fmt.Sprintf("star: WithMaxGraphs(%d): must be -1 or non-negative", n))
	}
	return func(c *config) { c.maxGraphs = n }
}

// WithStrategy selects the queue expansion order.
func WithStrategy(s search.Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithDistinct toggles duplicate suppression.
func WithDistinct(on bool) Option {
	return func(c *config) { c.distinct = on }
}

// WithMetrics records generator progress into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(c *config) { c.metrics = r }
}
