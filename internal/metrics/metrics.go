package metrics

import (
	"net/http"
	"strconv"
	"time"

	httpclient "gas-estimator/internal/client/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gas_estimator"

// Collector owns every metric the service exports. Each Collector has its own
// registry so tests and multiple servers in one process never collide.
type Collector struct {
	registry *prometheus.Registry

	estimates       *prometheus.CounterVec
	estimateErrors  *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	upstreamCalls   *prometheus.CounterVec
	upstreamErrors  *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

var _ httpclient.MetricsCollector = (*Collector)(nil)

// New creates a Collector with Go runtime and process metrics registered
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		estimates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_total",
			Help:      "Successful gas estimates by method.",
		}, []string{"method"}),
		estimateErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimate_errors_total",
			Help:      "Failed gas estimates by error kind.",
		}, []string{"kind"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Inbound HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Inbound HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Outbound RPC requests by host and status.",
		}, []string{"method", "host", "status"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "Outbound RPC requests that failed or returned an error status.",
		}, []string{"method", "host"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Outbound RPC request latency.",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"method", "host", "status"}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.estimates,
		c.estimateErrors,
		c.httpRequests,
		c.httpDuration,
		c.upstreamCalls,
		c.upstreamErrors,
		c.upstreamLatency,
	)

	return c
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// RecordEstimate counts a successful estimate for the given method
func (c *Collector) RecordEstimate(method string) {
	c.estimates.WithLabelValues(method).Inc()
}

// RecordEstimateError counts a failed estimate for the given error kind
func (c *Collector) RecordEstimateError(kind string) {
	c.estimateErrors.WithLabelValues(kind).Inc()
}

// RecordHTTPRequest records one inbound request
func (c *Collector) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

func (c *Collector) RecordRequestDuration(method, host string, statusCode int, duration time.Duration) {
	c.upstreamLatency.WithLabelValues(method, host, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

func (c *Collector) RecordRequestCount(method, host string, statusCode int) {
	c.upstreamCalls.WithLabelValues(method, host, strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordRequestError(method, host string) {
	c.upstreamErrors.WithLabelValues(method, host).Inc()
}
