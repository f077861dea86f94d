//go:build lambda
// +build lambda

package main

import (
	"context"
	"os"

	"gas-estimator/internal/config"
	"gas-estimator/internal/constants"
	"gas-estimator/internal/logger"
	"gas-estimator/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

// @title           Gas Estimator API
// @version         1.0
// @description     Estimates gas for Ethereum transaction calls, statically where safe and through eth_estimateGas otherwise.

// @BasePath  /

var ginLambda *ginadapter.GinLambda

func init() {
	ctx := context.Background()

	logger.InitLogger(os.Getenv(constants.StageEnv))

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// Handlers live for the lifetime of the execution environment
	h, err := server.InitializeHandlers(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize handlers", zap.Error(err))
	}

	ginLambda = ginadapter.New(server.NewRouter(cfg, h))
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
