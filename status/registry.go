// Package status holds lock-free counters shared between the event loop and the renderers
package status

import (
	"sync/atomic"
	"time"
)

// Metric keys written by the dashboard
const (
	KeyEvents        = "events.handled"
	KeyRecomputes    = "recompute.count"
	KeyRecomputeTime = "recompute.time"
	KeyCoalesced     = "input.coalesced_moves"
	KeySelected      = "view.selected"
	KeyDropped       = "input.dropped"
)

// Registry holds the session counters and timings
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Timings  *MetricMap[Timing]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Timings:  NewMetricMap[Timing](),
	}
}

// Count returns the counter for key
func (r *Registry) Count(key string) *atomic.Int64 {
	return r.Counters.Get(key)
}

// Timing returns the timing for key
func (r *Registry) Timing(key string) *Timing {
	return r.Timings.Get(key)
}

// ObserveDuration records d under key
func (r *Registry) ObserveDuration(key string, d time.Duration) {
	r.Timings.Get(key).Observe(d)
}

// Snapshot flattens the registry for the exit log. Timings expand into
// <key>.last_ms and <key>.peak_ms
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Counters.Len()+2*r.Timings.Len())
	for key, c := range r.Counters.All() {
		out[key] = c.Load()
	}
	for key, t := range r.Timings.All() {
		out[key+".last_ms"] = Millis(t.Last())
		out[key+".peak_ms"] = Millis(t.Peak())
	}
	return out
}

// Len returns the number of metrics across both maps
func (r *Registry) Len() int {
	return r.Counters.Len() + r.Timings.Len()
}
