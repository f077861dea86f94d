package estimator

import (
	"context"

	"gas-estimator/internal/logger"

	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

//go:generate mockgen -source=estimator.go -destination=../mocks/mock_simulator.go -package=mocks

// Simulator asks a node to execute a call and report the gas it used.
// Implementations must bound each call with their own timeout.
type Simulator interface {
	EstimateGas(ctx context.Context, req *CallRequest) (*uint256.Int, error)
}

// GasEstimator routes each request to the static formula or the Simulator
type GasEstimator struct {
	simulator Simulator
	logger    *zap.Logger
}

// NewGasEstimator creates a new gas estimator backed by simulator. The
// simulator is shared by all requests and must be safe for concurrent use.
func NewGasEstimator(simulator Simulator) *GasEstimator {
	return &GasEstimator{
		simulator: simulator,
		logger:    logger.Log,
	}
}

// Estimate returns the gas limit for req and the method that produced it.
// Only the simulation path can fail; its errors are returned as
// KindUpstreamFailure and never fall back to the static formula.
func (e *GasEstimator) Estimate(ctx context.Context, req *CallRequest) (*Result, error) {
	if req == nil {
		return nil, MalformedRequest("missing transaction call", nil)
	}

	strategy := Classify(req)

	if strategy == StrategyStatic {
		gas := StaticGas(req)
		e.logger.Debug("Estimated gas statically",
			zap.Uint64("gas_limit", gas),
			zap.Bool("contract_creation", req.IsContractCreation()),
			zap.Int("data_len", len(req.DataBytes())),
		)
		return &Result{
			GasLimit: uint256.NewInt(gas),
			Method:   MethodStatic,
		}, nil
	}

	if e.simulator == nil {
		return nil, UpstreamFailure("RPC call failed", errNoSimulator)
	}

	gas, err := e.simulator.EstimateGas(ctx, req)
	if err != nil {
		e.logger.Warn("RPC gas estimation failed",
			zap.Bool("blob_tx", IsBlobTransaction(req)),
			zap.Error(err),
		)
		return nil, UpstreamFailure("RPC call failed", err)
	}
	if gas == nil {
		return nil, UpstreamFailure("RPC call failed", errEmptyEstimate)
	}

	e.logger.Debug("Estimated gas via RPC",
		zap.String("gas_limit", gas.Dec()),
		zap.Bool("blob_tx", IsBlobTransaction(req)),
	)

	return &Result{
		GasLimit: gas,
		Method:   MethodRPC,
	}, nil
}
