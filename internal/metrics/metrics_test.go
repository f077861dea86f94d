package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gas-estimator/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Estimates(t *testing.T) {
	c := metrics.New()

	c.RecordEstimate("static")
	c.RecordEstimate("static")
	c.RecordEstimate("rpc")
	c.RecordEstimateError("upstream_failure")

	assertCount(t, c, "gas_estimator_estimates_total", 2)
	assertCount(t, c, "gas_estimator_estimate_errors_total", 1)
}

func TestCollector_Upstream(t *testing.T) {
	c := metrics.New()

	c.RecordRequestCount(http.MethodPost, "node.example:443", http.StatusOK)
	c.RecordRequestDuration(http.MethodPost, "node.example:443", http.StatusOK, 20*time.Millisecond)
	c.RecordRequestError(http.MethodPost, "node.example:443")

	assertCount(t, c, "gas_estimator_upstream_requests_total", 1)
	assertCount(t, c, "gas_estimator_upstream_errors_total", 1)
	assertCount(t, c, "gas_estimator_upstream_request_duration_seconds", 1)
}

func TestCollector_Handler(t *testing.T) {
	c := metrics.New()
	c.RecordEstimate("static")
	c.RecordHTTPRequest("/api/estimate-gas", http.MethodPost, http.StatusOK, 5*time.Millisecond)

	server := httptest.NewServer(c.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `gas_estimator_estimates_total{method="static"} 1`)
	assert.Contains(t, string(body), `gas_estimator_http_requests_total{method="POST",route="/api/estimate-gas",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestCollector_Independent(t *testing.T) {
	first := metrics.New()
	second := metrics.New()

	first.RecordEstimate("rpc")

	assertCount(t, first, "gas_estimator_estimates_total", 1)
	assertCount(t, second, "gas_estimator_estimates_total", 0)
}

func assertCount(t *testing.T, c *metrics.Collector, name string, want int) {
	t.Helper()
	got, err := testutil.GatherAndCount(c.Registry(), name)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
