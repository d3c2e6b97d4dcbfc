package metrics

import "time"

// Batch unit outcomes.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// RecordStateExpanded counts one popped search state.
func (r *Registry) RecordStateExpanded() {
	if r == nil {
		return
	}
	r.StarStatesExpanded.Inc()
}

// RecordStarGraph counts one recorded star graph.
func (r *Registry) RecordStarGraph() {
	if r == nil {
		return
	}
	r.StarGraphsTotal.Inc()
}

// SetQueueSize sets the pending-state gauge.
func (r *Registry) SetQueueSize(n int) {
	if r == nil {
		return
	}
	r.StarQueueSize.Set(float64(n))
}

// RecordSolve records a model solve with its method, final status and duration.
func (r *Registry) RecordSolve(method, status string, duration time.Duration) {
	if r == nil {
		return
	}
	r.SolveDuration.WithLabelValues(method).Observe(duration.Seconds())
	r.SolveStatusTotal.WithLabelValues(status).Inc()
}

// RecordUnit counts one finished batch unit.
func (r *Registry) RecordUnit(status string) {
	if r == nil {
		return
	}
	r.BatchUnitsTotal.WithLabelValues(status).Inc()
}
