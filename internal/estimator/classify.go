package estimator

import (
	"github.com/ethereum/go-ethereum/core/types"
)

// Strategy is the estimation path chosen for a request
type Strategy int

const (
	// StrategyStatic prices the request with the intrinsic gas formula
	StrategyStatic Strategy = iota
	// StrategySimulate defers to the node's eth_estimateGas
	StrategySimulate
)

func (s Strategy) String() string {
	switch s {
	case StrategyStatic:
		return "static"
	case StrategySimulate:
		return "simulate"
	default:
		return "unknown"
	}
}

// Classify decides whether the static formula is enough for req or whether
// the node has to execute it. Any execution signal routes to simulation.
//
// A value transfer without a data field stays static even when the recipient
// is a contract with a receive or fallback function.
func Classify(req *CallRequest) Strategy {
	if IsBlobTransaction(req) || NeedsSimulation(req) {
		return StrategySimulate
	}
	return StrategyStatic
}

// IsBlobTransaction reports whether req carries the EIP-4844 envelope type
func IsBlobTransaction(req *CallRequest) bool {
	return req.Type != nil && *req.Type == types.BlobTxType
}

// NeedsSimulation reports whether req may run contract code
func NeedsSimulation(req *CallRequest) bool {
	if req.Data == nil {
		return false
	}

	// Function call or constructor input
	if len(*req.Data) > 0 {
		return true
	}

	// Value with an (empty) data field can hit receive/fallback
	return req.Value != nil && !req.Value.IsZero()
}
