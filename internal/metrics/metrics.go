package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the flight board
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Flight API Metrics
	FetchRequestsTotal *prometheus.CounterVec
	FetchCycleDuration *prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	FlightsIngestedTotal *prometheus.CounterVec
	RecordErrorsTotal    *prometheus.CounterVec
	BoardSize            *prometheus.GaugeVec
}

// NewMetricsRegistry registers all metrics on reg. Pass
// prometheus.DefaultRegisterer to expose them on /metrics.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightboard_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightboard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flightboard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Flight API Metrics
		FetchRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightboard_fetch_requests_total",
				Help: "Page requests sent to the flight API by direction and result",
			},
			[]string{"direction", "result"},
		),
		FetchCycleDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightboard_fetch_cycle_duration_seconds",
				Help:    "Duration of complete fetch cycles in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"direction", "stop_reason"},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightboard_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightboard_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		FlightsIngestedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightboard_flights_ingested_total",
				Help: "Flight payloads ingested by direction and outcome",
			},
			[]string{"direction", "outcome"},
		),
		RecordErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightboard_record_errors_total",
				Help: "Flight payloads skipped because of data errors",
			},
			[]string{"direction", "reason"},
		),
		BoardSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flightboard_board_size",
				Help: "Number of flights currently held per board",
			},
			[]string{"direction"},
		),
	}
}
