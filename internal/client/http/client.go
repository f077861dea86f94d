package http

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"gas-estimator/internal/logger"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

//go:generate mockgen -source=client.go -destination=../../mocks/mock_metrics_collector.go -package=mocks

// ClientOption represents a function that can modify the HTTP client
type ClientOption func(*HTTPClient)

// Middleware represents a function that wraps an http.RoundTripper
type Middleware func(http.RoundTripper) http.RoundTripper

// HTTPClient builds a pooled *http.Client shared by every outbound call
type HTTPClient struct {
	httpClient  *http.Client
	transport   *http.Transport
	retryConfig *RetryConfig
	middlewares []Middleware
	metrics     MetricsCollector
}

// RetryConfig configures the retry behavior
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// MetricsCollector defines an interface for collecting metrics
type MetricsCollector interface {
	RecordRequestDuration(method, host string, statusCode int, duration time.Duration)
	RecordRequestCount(method, host string, statusCode int)
	RecordRequestError(method, host string)
}

// Pool defaults
const (
	DefaultTimeout             = 10 * time.Second
	DefaultKeepAlive           = 30 * time.Second
	DefaultMaxIdleConnsPerHost = 10
	DefaultIdleConnTimeout     = 90 * time.Second
)

// DefaultRetryConfig provides sensible defaults for retries
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          2 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       DefaultTimeout,
		RetryableStatusCodes: []int{429, 502, 503, 504},
	}
}

// NewHTTPClient creates a new HTTPClient with the given options
func NewHTTPClient(options ...ClientOption) *HTTPClient {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   DefaultTimeout,
			KeepAlive: DefaultKeepAlive,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   DefaultMaxIdleConnsPerHost,
		IdleConnTimeout:       DefaultIdleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	client := &HTTPClient{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		transport:  transport,
		metrics:    &NoopMetricsCollector{},
	}

	// Apply all client options
	for _, option := range options {
		option(client)
	}

	// Retries sit closest to the wire; metrics and logging see one call per request
	var rt http.RoundTripper = client.transport
	if client.retryConfig != nil && client.retryConfig.MaxRetries > 0 {
		rt = RetryMiddleware(client.retryConfig)(rt)
	}
	rt = MetricsMiddleware(client.metrics)(rt)

	// Apply middlewares in reverse order so the first one is outermost
	for i := len(client.middlewares) - 1; i >= 0; i-- {
		rt = client.middlewares[i](rt)
	}
	client.httpClient.Transport = rt

	return client
}

// WithTimeout sets the timeout for all requests
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithKeepAlive sets the TCP keep-alive period of pooled connections
func WithKeepAlive(keepAlive time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.transport.DialContext = (&net.Dialer{
			Timeout:   DefaultTimeout,
			KeepAlive: keepAlive,
		}).DialContext
	}
}

// WithMaxIdleConnsPerHost bounds the idle connections kept per upstream host
func WithMaxIdleConnsPerHost(n int) ClientOption {
	return func(c *HTTPClient) {
		c.transport.MaxIdleConnsPerHost = n
	}
}

// WithRetryConfig sets the retry configuration
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *HTTPClient) {
		c.retryConfig = config
	}
}

// WithMiddleware adds a middleware to the client
func WithMiddleware(middleware Middleware) ClientOption {
	return func(c *HTTPClient) {
		c.middlewares = append(c.middlewares, middleware)
	}
}

// WithMetricsCollector sets the metrics collector
func WithMetricsCollector(collector MetricsCollector) ClientOption {
	return func(c *HTTPClient) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

// StandardClient returns the configured *http.Client
func (c *HTTPClient) StandardClient() *http.Client {
	return c.httpClient
}

// Transport returns the underlying pooled transport
func (c *HTTPClient) Transport() *http.Transport {
	return c.transport
}

// NoopMetricsCollector is a metrics collector that does nothing
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordRequestDuration(method, host string, statusCode int, duration time.Duration) {
}
func (n *NoopMetricsCollector) RecordRequestCount(method, host string, statusCode int) {}
func (n *NoopMetricsCollector) RecordRequestError(method, host string)                 {}

// LoggingMiddleware creates a middleware that logs requests and responses.
// Only the host is logged; RPC URLs commonly embed API keys in the path.
func LoggingMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &loggingRoundTripper{next: next}
	}
}

type loggingRoundTripper struct {
	next http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host))

	resp, err := l.next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		logger.Error("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("host", req.URL.Host),
			zap.Error(err),
			zap.Duration("duration", duration))
		return resp, err
	}

	if resp.StatusCode >= 400 {
		logger.Warn("HTTP error response",
			zap.String("method", req.Method),
			zap.String("host", req.URL.Host),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration))
		return resp, nil
	}

	logger.Debug("HTTP response received",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}

// MetricsMiddleware records count, duration and errors of every round trip
func MetricsMiddleware(collector MetricsCollector) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &metricsRoundTripper{next: next, metrics: collector}
	}
}

type metricsRoundTripper struct {
	next    http.RoundTripper
	metrics MetricsCollector
}

func (m *metricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := m.next.RoundTrip(req)
	duration := time.Since(start)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	m.metrics.RecordRequestDuration(req.Method, req.URL.Host, statusCode, duration)
	m.metrics.RecordRequestCount(req.Method, req.URL.Host, statusCode)
	if err != nil || statusCode >= 400 {
		m.metrics.RecordRequestError(req.Method, req.URL.Host)
	}

	return resp, err
}

// RetryMiddleware retries transport errors and retryable status codes with
// exponential backoff. Requests whose body cannot be replayed are sent once.
func RetryMiddleware(config *RetryConfig) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &retryRoundTripper{next: next, config: config}
	}
}

type retryRoundTripper struct {
	next   http.RoundTripper
	config *RetryConfig
}

func (r *retryRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		return r.next.RoundTrip(req)
	}

	var resp *http.Response
	attempt := 0

	operation := func() error {
		attempt++

		attemptReq := req
		if attempt > 1 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return backoff.Permanent(err)
			}
			attemptReq = req.Clone(req.Context())
			attemptReq.Body = body
		}

		var err error
		// nolint:bodyclose // Body is closed below for retried attempts or handed to the caller
		resp, err = r.next.RoundTrip(attemptReq)
		if err != nil {
			if req.Context().Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}

		if statusCode := resp.StatusCode; r.isRetryable(statusCode) && attempt <= r.config.MaxRetries {
			// Read and close the body to avoid connection leaks
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			resp = nil
			return fmt.Errorf("retryable status code: %d", statusCode)
		}

		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = r.config.InitialInterval
	expBackoff.MaxInterval = r.config.MaxInterval
	expBackoff.Multiplier = r.config.Multiplier
	expBackoff.MaxElapsedTime = r.config.MaxElapsedTime

	policy := backoff.WithContext(
		backoff.WithMaxRetries(expBackoff, uint64(r.config.MaxRetries)),
		req.Context(),
	)

	if err := backoff.Retry(operation, policy); err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return nil, err
	}

	return resp, nil
}

func (r *retryRoundTripper) isRetryable(statusCode int) bool {
	for _, code := range r.config.RetryableStatusCodes {
		if statusCode == code {
			return true
		}
	}
	return false
}
