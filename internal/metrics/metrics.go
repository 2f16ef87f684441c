package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	// Properties
	PropertyMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "property_mutations_total",
			Help: "Successful property mutations",
		},
		[]string{"action"}, // created|updated|deleted
	)
	AccessDenied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_denied_total",
			Help: "Mutations rejected by the role or ownership gate",
		},
		[]string{"operation"},
	)

	// Auth
	AuthAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Login and registration attempts by outcome",
		},
		[]string{"kind", "outcome"},
	)

	// Audit worker queue
	AuditQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "audit_queue_depth",
			Help: "Audit entries waiting to be written",
		},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal, RequestLatency, PropertyMutations, AccessDenied, AuthAttempts, AuditQueueDepth)
	})
}
