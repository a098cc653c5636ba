// Package metrics collects and exposes Prometheus metrics for the frontend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the registry and the HTTP instruments.
type Collector struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	inFlight        prometheus.Gauge
	backendRequests *prometheus.CounterVec
	backendLatency  prometheus.Histogram
	guardRedirects  prometheus.Counter
}

// New creates a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitrina_http_requests_total",
			Help: "Inbound HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vitrina_http_request_duration_seconds",
			Help:    "Inbound HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vitrina_http_requests_in_flight",
			Help: "Inbound HTTP requests currently being served.",
		}),
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitrina_backend_requests_total",
			Help: "Outbound backend API calls by method and status.",
		}, []string{"method", "status"}),
		backendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vitrina_backend_request_duration_seconds",
			Help:    "Outbound backend API call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		guardRedirects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vitrina_route_guard_redirects_total",
			Help: "Requests redirected to the auth page by the route guard.",
		}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.requests,
		c.duration,
		c.inFlight,
		c.backendRequests,
		c.backendLatency,
		c.guardRedirects,
	)

	return c
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// RecordBackendCall records one outbound backend API call.
func (c *Collector) RecordBackendCall(method string, status int, duration time.Duration) {
	c.backendRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.backendLatency.Observe(duration.Seconds())
}

// RecordGuardRedirect records one route-guard redirect to the auth page.
func (c *Collector) RecordGuardRedirect() {
	c.guardRedirects.Inc()
}

// GinMiddleware instruments inbound requests.
func GinMiddleware(c *Collector) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		c.inFlight.Inc()
		defer c.inFlight.Dec()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unknown"
		}
		c.requests.WithLabelValues(route, ctx.Request.Method, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.duration.WithLabelValues(route, ctx.Request.Method).Observe(time.Since(start).Seconds())
	}
}
