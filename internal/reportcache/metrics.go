package reportcache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts cache decisions. A nil *Metrics records nothing.
type Metrics struct {
	hits      *prometheus.CounterVec
	misses    *prometheus.CounterVec
	evictions *prometheus.CounterVec
}

// NewMetrics registers the cache counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "donation_report",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Cached reports served without a rebuild.",
		}, []string{"period"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "donation_report",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Cache lookups that required a rebuild, by reason.",
		}, []string{"period", "reason"}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "donation_report",
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Cache entries evicted during evaluation, by reason.",
		}, []string{"period", "reason"}),
	}
	if reg != nil {
		reg.MustRegister(m.hits, m.misses, m.evictions)
	}
	return m
}

func (m *Metrics) observe(period string, d Decision) {
	if m == nil {
		return
	}
	if d.Hit {
		m.hits.WithLabelValues(period).Inc()
		return
	}
	m.misses.WithLabelValues(period, string(d.Reason)).Inc()
}

func (m *Metrics) evicted(period string, reason Reason) {
	if m == nil {
		return
	}
	m.evictions.WithLabelValues(period, string(reason)).Inc()
}
