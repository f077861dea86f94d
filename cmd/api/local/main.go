//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gas-estimator/internal/config"
	"gas-estimator/internal/constants"
	"gas-estimator/internal/logger"
	"gas-estimator/internal/server"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// @title           Gas Estimator API
// @version         1.0
// @description     Estimates gas for Ethereum transaction calls, statically where safe and through eth_estimateGas otherwise.

// @host      localhost:3000
// @BasePath  /
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	logger.InitLogger(os.Getenv(constants.StageEnv))
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	h, err := server.InitializeHandlers(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize handlers", zap.Error(err))
	}
	defer h.Close()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           server.NewRouter(cfg, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr), zap.String("stage", cfg.Stage))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("Server failed", zap.Error(err))
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
