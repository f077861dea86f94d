package server

import (
	"context"

	_ "gas-estimator/docs" // swagger spec
	"gas-estimator/internal/client/rpc"
	"gas-estimator/internal/config"
	"gas-estimator/internal/estimator"
	"gas-estimator/internal/handlers"
	"gas-estimator/internal/logger"
	"gas-estimator/internal/metrics"
	"gas-estimator/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	healthPath   = "/health"
	metricsPath  = "/metrics"
	estimatePath = "/api/estimate-gas"
)

// Handlers holds everything the routes need. One Handlers is built at
// startup and shared by all requests.
type Handlers struct {
	health      *handlers.HealthHandler
	gas         *handlers.GasHandler
	metrics     *metrics.Collector
	rateLimiter *middleware.RateLimiter
	closers     []func()
}

// InitializeHandlers dials the RPC node and builds the handlers on top of it
func InitializeHandlers(ctx context.Context, cfg *config.Config) (*Handlers, error) {
	collector := metrics.New()

	rpcClient, err := rpc.NewClient(ctx, rpc.Config{
		URL:                 cfg.RPC.URL,
		Timeout:             cfg.RPC.Timeout,
		KeepAlive:           cfg.RPC.KeepAlive,
		MaxIdleConnsPerHost: cfg.RPC.MaxIdleConnsPerHost,
		MaxRetries:          cfg.RPC.MaxRetries,
		Metrics:             collector,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create RPC client")
	}

	logger.Info("RPC client ready",
		zap.String("host", cfg.RPCHost()),
		zap.Duration("timeout", cfg.RPC.Timeout),
		zap.Int("max_idle_conns_per_host", cfg.RPC.MaxIdleConnsPerHost),
		zap.Int("max_retries", cfg.RPC.MaxRetries),
	)

	h := NewHandlers(cfg, rpcClient, collector)
	h.closers = append(h.closers, rpcClient.Close)
	return h, nil
}

// NewHandlers builds handlers around an existing simulator
func NewHandlers(cfg *config.Config, simulator estimator.Simulator, collector *metrics.Collector) *Handlers {
	if collector == nil {
		collector = metrics.New()
	}

	h := &Handlers{
		health:  handlers.NewHealthHandler(),
		gas:     handlers.NewGasHandler(estimator.NewGasEstimator(simulator), collector),
		metrics: collector,
	}

	if cfg.RateLimit.Enabled() {
		h.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, healthPath, metricsPath)
		h.closers = append(h.closers, h.rateLimiter.Close)
	}

	return h
}

// Close releases the RPC connection pool and background workers
func (h *Handlers) Close() {
	for i := len(h.closers) - 1; i >= 0; i-- {
		h.closers[i]()
	}
	h.closers = nil
}

// NewRouter creates a gin engine with every route installed
func NewRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	InitializeRoutes(router, cfg, h)
	return router
}

func InitializeRoutes(router *gin.Engine, cfg *config.Config, h *Handlers) {
	router.Use(
		middleware.CorrelationIDMiddleware(),
		middleware.RequestLoggingMiddleware(h.metrics, healthPath, metricsPath),
		configureCORS(cfg.CORS),
	)
	if h.rateLimiter != nil {
		router.Use(h.rateLimiter.Middleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(metricsPath, gin.WrapH(h.metrics.Handler()))
	router.GET(healthPath, h.health.Health)

	router.POST(estimatePath, h.gas.EstimateGas)
}

// configureCORS returns a configured CORS middleware
func configureCORS(c config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if c.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = c.AllowedOrigins
	}
	if len(c.AllowedMethods) > 0 {
		corsConfig.AllowMethods = c.AllowedMethods
	}
	if len(c.AllowedHeaders) > 0 {
		corsConfig.AllowHeaders = c.AllowedHeaders
	}
	corsConfig.ExposeHeaders = c.ExposedHeaders
	corsConfig.AllowCredentials = c.AllowCredentials

	return cors.New(corsConfig)
}
