package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jwebster45206/portal-router/pkg/route"
)

// Registry holds all metrics for the application
type Registry struct {
	registry *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Route Metrics
	SearchesTotal    *prometheus.CounterVec
	SearchDuration   prometheus.Histogram
	PathHops         prometheus.Histogram
	CacheLookups     *prometheus.CounterVec
	DatasetEdges     prometheus.Gauge
	DatasetLocations prometheus.Gauge
}

// NewRegistry creates a registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initHTTPMetrics()
	r.initRouteMetrics()

	return r
}

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_router_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_router_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
}

func (r *Registry) initRouteMetrics() {
	r.SearchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_router_searches_total",
			Help: "Total number of route searches by outcome",
		},
		[]string{"outcome"},
	)

	r.SearchDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portal_router_search_duration_seconds",
			Help:    "Route search duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		},
	)

	r.PathHops = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portal_router_path_hops",
			Help:    "Number of steps in routes that were found",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16},
		},
	)

	r.CacheLookups = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_router_cache_lookups_total",
			Help: "Route cache lookups by result",
		},
		[]string{"result"},
	)

	r.DatasetEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_router_dataset_edges",
			Help: "Number of edges in the loaded dataset",
		},
	)

	r.DatasetLocations = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "portal_router_dataset_locations",
			Help: "Number of distinct locations in the loaded dataset",
		},
	)
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSearch records a completed route search
func (r *Registry) RecordSearch(res route.Result, duration time.Duration) {
	r.SearchesTotal.WithLabelValues(res.Outcome.String()).Inc()
	r.SearchDuration.Observe(duration.Seconds())
	if res.Outcome == route.OutcomeFound {
		r.PathHops.Observe(float64(res.Hops()))
	}
}

// RecordCacheLookup records a cache hit, miss or error
func (r *Registry) RecordCacheLookup(result string) {
	r.CacheLookups.WithLabelValues(result).Inc()
}

// SetDataset publishes the size of the loaded dataset
func (r *Registry) SetDataset(ds *route.Dataset) {
	r.DatasetEdges.Set(float64(ds.Len()))
	r.DatasetLocations.Set(float64(len(ds.Locations())))
}

// Handler serves the registry in the Prometheus exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
