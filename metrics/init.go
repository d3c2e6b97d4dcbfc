package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initStarMetrics() {
	r.StarStatesExpanded = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "rdynamic_star_states_expanded_total",
			Help: "Total number of search states popped by the star generator",
		},
	)

	r.StarGraphsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "rdynamic_star_graphs_total",
			Help: "Total number of completed star graphs recorded",
		},
	)

	r.StarQueueSize = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "rdynamic_star_queue_size",
			Help: "Current number of pending search states",
		},
	)
}

func (r *Registry) initSolveMetrics() {
	r.SolveDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rdynamic_solve_duration_seconds",
			Help:    "Duration of coloring model solves in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
		},
		[]string{"method"}, // ACR, ACR-H, ACR-R, ACR-RH
	)

	r.SolveStatusTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rdynamic_solve_status_total",
			Help: "Total number of solves by solver status",
		},
		[]string{"status"},
	)
}

func (r *Registry) initBatchMetrics() {
	r.BatchUnitsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "rdynamic_batch_units_total",
			Help: "Total number of batch units by outcome",
		},
		[]string{"status"}, // ok, error
	)
}
