package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ParsesTotal         *prometheus.CounterVec
	ParseDuration       prometheus.Histogram
	GenerativeCalls     *prometheus.CounterVec
	GenerativeDuration  prometheus.Histogram
	SearchesTotal       *prometheus.CounterVec
)

func Init() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ParsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_parses_total",
			Help: "Total number of broadcast parses by winning tier.",
		},
		[]string{"tier"}, // rules, grammar, generative
	)

	ParseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "broadcast_parse_duration_seconds",
			Help:    "Duration of full pipeline parses, generative tier included.",
			Buckets: []float64{.005, .05, .5, 1, 5, 15, 30, 60},
		},
	)

	GenerativeCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generative_calls_total",
			Help: "Total number of generative backend calls.",
		},
		[]string{"status"}, // success, failure
	)

	GenerativeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "generative_call_duration_seconds",
			Help:    "Duration of generative backend calls.",
			Buckets: []float64{1, 5, 10, 15, 30, 60},
		},
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "book_searches_total",
			Help: "Total number of book research searches.",
		},
		[]string{"status"}, // success, failure, cache_hit
	)
}
