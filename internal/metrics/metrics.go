// Package metrics provides a Prometheus-backed implementation of
// signals.Instrumentation, for processes that want to export engine
// activity (recomputations, cache hits, dirty propagations, reentrancy
// violations) rather than pay nothing for it via the default no-op.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Counters groups the four counters the engine reports through, each
// labelled by node name (unnamed nodes report under the empty label).
type Counters struct {
	Recomputations       *prometheus.CounterVec
	CacheHits            *prometheus.CounterVec
	DirtyPropagations    *prometheus.CounterVec
	ReentrancyViolations *prometheus.CounterVec
}

// NewCounters builds a fresh Counters set and registers it with reg.
func NewCounters(reg prometheus.Registerer) *Counters {
	c := &Counters{
		Recomputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signals",
			Name:      "recomputations_total",
			Help:      "Number of times a derived node actually ran its compute function.",
		}, []string{"node"}),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signals",
			Name:      "cache_hits_total",
			Help:      "Number of reads (Get calls or pulls by downstream nodes) served from the cached value without recomputation.",
		}, []string{"node"}),
		DirtyPropagations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signals",
			Name:      "dirty_propagations_total",
			Help:      "Number of times an input write marked a reader node DIRTY.",
		}, []string{"node"}),
		ReentrancyViolations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signals",
			Name:      "nonreactive_access_total",
			Help:      "Number of NonReactiveAccess violations raised by the reentrancy guard.",
		}, []string{"node"}),
	}
	reg.MustRegister(c.Recomputations, c.CacheHits, c.DirtyPropagations, c.ReentrancyViolations)
	return c
}

// Prometheus builds a Counters set registered against the default
// Prometheus registry, for callers that just want engine activity exported
// without managing their own Registerer.
func Prometheus() *Counters {
	return NewCounters(prometheus.DefaultRegisterer)
}

// Recomputed implements signals.Instrumentation.
func (c *Counters) Recomputed(name string) { c.Recomputations.WithLabelValues(name).Inc() }

// CacheHit implements signals.Instrumentation.
func (c *Counters) CacheHit(name string) { c.CacheHits.WithLabelValues(name).Inc() }

// DirtyPropagated implements signals.Instrumentation.
func (c *Counters) DirtyPropagated(name string) { c.DirtyPropagations.WithLabelValues(name).Inc() }

// NonReactiveAccess implements signals.Instrumentation.
func (c *Counters) NonReactiveAccess(name string) {
	c.ReentrancyViolations.WithLabelValues(name).Inc()
}
