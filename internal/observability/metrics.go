package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every custom metric the service exports.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	UsersRegisteredTotal prometheus.Counter
	ThoughtsCreatedTotal prometheus.Counter
	AuthRejectionsTotal  prometheus.Counter
}

// NewMetrics registers all metrics against the given registerer. Tests pass a
// fresh registry so repeated construction never double-registers.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		UsersRegisteredTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "users_registered_total",
				Help: "Total number of successfully registered users",
			},
		),

		ThoughtsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "thoughts_created_total",
				Help: "Total number of thoughts posted",
			},
		),

		AuthRejectionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "auth_rejections_total",
				Help: "Total number of requests rejected by the token authenticator",
			},
		),
	}
}
