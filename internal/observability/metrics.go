package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tayo_location"

// Metrics holds the Prometheus counters and histograms for origin/destination resolution.
type Metrics struct {
	// Resolution workflow metrics.
	OriginResolutions      *prometheus.CounterVec // labels: outcome={resolved,service_disabled,permission_denied,...}
	DestinationSubmissions *prometheus.CounterVec // labels: outcome={handed_off,ignored,no_match,geocode_failed,handoff_failed}
	HandoffsPublished      prometheus.Counter
	HandoffPublishErrors   prometheus.Counter

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec   // labels: method={forward,reverse}, outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec   // labels: method={forward,reverse}, result={hit,miss}
	GeocodeAPIDuration *prometheus.HistogramVec // labels: method={forward,reverse}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		OriginResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "origin_resolutions_total",
			Help:      "Origin resolutions by terminal outcome.",
		}, []string{"outcome"}),
		DestinationSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "destination_submissions_total",
			Help:      "Destination submissions by outcome.",
		}, []string{"outcome"}),
		HandoffsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handoffs_published_total",
			Help:      "Handoff payloads delivered to the pickup flow.",
		}),
		HandoffPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handoff_publish_errors_total",
			Help:      "Handoff payloads the pickup flow did not accept.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by method and outcome.",
		}, []string{"method", "outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by method and result.",
		}, []string{"method", "result"}),
		GeocodeAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "geocode_api_duration_seconds",
			Help:      "Mapbox API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method"}),
	}

	prometheus.MustRegister(
		m.OriginResolutions,
		m.DestinationSubmissions,
		m.HandoffsPublished,
		m.HandoffPublishErrors,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		OriginResolutions:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "origin_resolutions_total"}, []string{"outcome"}),
		DestinationSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "destination_submissions_total"}, []string{"outcome"}),
		HandoffsPublished:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "handoffs_published_total"}),
		HandoffPublishErrors:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "handoff_publish_errors_total"}),
		GeocodeRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "geocode_requests_total"}, []string{"method", "outcome"}),
		GeocodeCache:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "geocode_cache_total"}, []string{"method", "result"}),
		GeocodeAPIDuration:     prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "geocode_api_duration_seconds"}, []string{"method"}),
	}
}
