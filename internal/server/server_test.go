package server_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gas-estimator/internal/config"
	"gas-estimator/internal/logger"
	"gas-estimator/internal/metrics"
	"gas-estimator/internal/middleware"
	"gas-estimator/internal/mocks"
	"gas-estimator/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Stage: "test",
		Port:  "3000",
		RPC: config.RPCConfig{
			URL:                 "http://127.0.0.1:8545",
			Timeout:             config.DefaultRPCTimeout,
			KeepAlive:           config.DefaultRPCKeepAlive,
			MaxIdleConnsPerHost: config.DefaultMaxIdleConnsPerHost,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Origin", "Content-Type"},
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*gin.Engine, *mocks.MockSimulator) {
	t.Helper()
	sim := mocks.NewMockSimulatorForTest(t)
	h := server.NewHandlers(cfg, sim, metrics.New())
	t.Cleanup(h.Close)
	return server.NewRouter(cfg, h), sim
}

func do(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoutes_Health(t *testing.T) {
	router, _ := newTestServer(t, testConfig())

	w := do(router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"gas-estimator"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.CorrelationIDHeader))
}

func TestRoutes_EstimateGas(t *testing.T) {
	router, sim := newTestServer(t, testConfig())

	t.Run("static", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/estimate-gas",
			`{"to":"0x0000000000000000000000000000000000000002","value":"0x1"}`, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"gasLimit":"0x5208","method":"static"}`, w.Body.String())
	})

	t.Run("rpc", func(t *testing.T) {
		sim.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint256.NewInt(65000), nil)

		w := do(router, http.MethodPost, "/api/estimate-gas",
			`{"to":"0x0000000000000000000000000000000000000002","data":"0xa9059cbb"}`, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"gasLimit":"0xfde8","method":"rpc"}`, w.Body.String())
	})

	t.Run("upstream failure", func(t *testing.T) {
		sim.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

		w := do(router, http.MethodPost, "/api/estimate-gas",
			`{"to":"0x0000000000000000000000000000000000000002","data":"0x01"}`, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"RPC call failed: connection refused"}`, w.Body.String())
	})

	t.Run("malformed", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/estimate-gas", `{"to":42}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body")
	})
}

func TestRoutes_Metrics(t *testing.T) {
	router, _ := newTestServer(t, testConfig())

	do(router, http.MethodPost, "/api/estimate-gas", `{"to":"0x0000000000000000000000000000000000000002"}`, nil)
	do(router, http.MethodPost, "/api/estimate-gas", `nope`, nil)

	w := do(router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `gas_estimator_estimates_total{method="static"} 1`)
	assert.Contains(t, body, `gas_estimator_estimate_errors_total{kind="malformed_request"} 1`)
	assert.Contains(t, body, `gas_estimator_http_requests_total{method="POST",route="/api/estimate-gas",status="400"} 1`)
}

func TestRoutes_CORS(t *testing.T) {
	router, _ := newTestServer(t, testConfig())

	w := do(router, http.MethodOptions, "/api/estimate-gas", "", map[string]string{
		"Origin":                        "https://wallet.example",
		"Access-Control-Request-Method": "POST",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_Swagger(t *testing.T) {
	router, _ := newTestServer(t, testConfig())

	w := do(router, http.MethodGet, "/swagger/doc.json", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/estimate-gas")
}

func TestRoutes_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RPS: 1, Burst: 1}
	router, _ := newTestServer(t, cfg)

	body := `{"to":"0x0000000000000000000000000000000000000002"}`
	assert.Equal(t, http.StatusOK, do(router, http.MethodPost, "/api/estimate-gas", body, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(router, http.MethodPost, "/api/estimate-gas", body, nil).Code)

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/metrics", "", nil).Code)
}
