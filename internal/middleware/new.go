package middleware

import (
	"donation-report-srv/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
)

type Middleware struct {
	l        log.Logger
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the shared middleware set. reg may be nil, in which case the
// request metrics are collected but never exposed.
func New(l log.Logger, reg prometheus.Registerer) Middleware {
	m := Middleware{
		l: l,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "donation_report",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "donation_report",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}
