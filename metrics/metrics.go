// Package metrics exposes Prometheus instruments for route searches, graph
// regenerations and the HTTP API.
//
// Every Registry owns its own prometheus.Registry, so tests and multiple
// navigators never collide on metric names.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route outcome label values.
const (
	StatusFound    = "found"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

// Registry holds all routenav instruments.
type Registry struct {
	// Route metrics
	RoutesTotal       *prometheus.CounterVec
	RouteDuration     *prometheus.HistogramVec
	RouteNodesVisited *prometheus.HistogramVec

	// Graph metrics
	GraphRegenerations prometheus.Counter
	GraphNodes         prometheus.Gauge
	GraphEdges         prometheus.Gauge

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every instrument registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	factory := promauto.With(r.registry)

	r.RoutesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routenav_routes_total",
			Help: "Total number of route searches by algorithm and outcome",
		},
		[]string{"algorithm", "status"},
	)
	r.RouteDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routenav_route_duration_seconds",
			Help:    "Route search duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"algorithm"},
	)
	r.RouteNodesVisited = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routenav_route_nodes_visited",
			Help:    "Number of nodes finalized per route search",
			Buckets: []float64{1, 5, 10, 20, 50, 100, 1000},
		},
		[]string{"algorithm"},
	)

	r.GraphRegenerations = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "routenav_graph_regenerations_total",
			Help: "Total number of road network regenerations",
		},
	)
	r.GraphNodes = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "routenav_graph_nodes",
			Help: "Number of nodes in the current road network",
		},
	)
	r.GraphEdges = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "routenav_graph_edges",
			Help: "Number of roads in the current road network",
		},
	)

	r.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routenav_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	r.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routenav_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	return r
}

// Prometheus returns the underlying Prometheus registry.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// RecordRoute records one route search.
func (r *Registry) RecordRoute(algorithm, status string, duration time.Duration, visited int) {
	r.RoutesTotal.WithLabelValues(algorithm, status).Inc()
	r.RouteDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.RouteNodesVisited.WithLabelValues(algorithm).Observe(float64(visited))
}

// RecordRegeneration records a new road network of the given size.
func (r *Registry) RecordRegeneration(nodes, edges int) {
	r.GraphRegenerations.Inc()
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// RecordHTTPRequest records one HTTP request.
func (r *Registry) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
