package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the gateway.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RemoteCallDuration *prometheus.HistogramVec
	RemoteCallFailures *prometheus.CounterVec
	CacheHits          *prometheus.CounterVec
}

// NewMetrics registers the gateway metrics on the given registerer. A
// dedicated registry keeps tests from tripping over duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	namespace := "mispgate"
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"path", "status"},
		),
		RemoteCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "remote_call_duration_seconds",
				Help:      "MISP call duration by operation",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
			},
			[]string{"component", "operation"},
		),
		RemoteCallFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "remote_call_failures_total",
				Help:      "Failed MISP calls by operation and kind",
			},
			[]string{"component", "operation", "kind"},
		),
		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Read cache hits by path",
			},
			[]string{"path"},
		),
	}
}
