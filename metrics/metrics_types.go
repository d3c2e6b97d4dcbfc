// Package metrics exposes Prometheus instruments for the star generator,
// the coloring solver and batch sweeps. Every recorder is safe on a nil
// *Registry, which turns recording off.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics of one process or test.
type Registry struct {
	// Star generator metrics
	StarStatesExpanded prometheus.Counter
	StarGraphsTotal    prometheus.Counter
	StarQueueSize      prometheus.Gauge

	// Solver metrics
	SolveDuration    *prometheus.HistogramVec
	SolveStatusTotal *prometheus.CounterVec

	// Batch metrics
	BatchUnitsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry backed by a private prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initStarMetrics()
	r.initSolveMetrics()
	r.initBatchMetrics()

	return r
}

// Gatherer returns the underlying registry for exposition.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
