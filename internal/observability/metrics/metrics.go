package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServerMetrics records request counts, latency and search outcomes on
// its own registry so tests can construct isolated instances.
type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	searchesTotal   *prometheus.CounterVec
}

// NewHTTPServerMetrics creates and registers the metric set.
func NewHTTPServerMetrics() *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	m := &HTTPServerMetrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		searchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "searches_total",
			Help: "Completed searches by match type.",
		}, []string{"match_type"}),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.searchesTotal)
	return m
}

// Middleware instruments each request. The templated route path keeps
// cardinality bounded.
func (m *HTTPServerMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(c.Request.Method, route,
			strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}

// RecordSearch counts a completed search by its match type.
func (m *HTTPServerMetrics) RecordSearch(matchType string) {
	m.searchesTotal.WithLabelValues(matchType).Inc()
}

// Handler exposes the registry for scraping.
func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
