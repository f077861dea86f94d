package estimator

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Method identifies which path produced a gas estimate
type Method string

const (
	MethodStatic Method = "static"
	MethodRPC    Method = "rpc"
)

// CallRequest describes one candidate transaction. A nil field means the
// caller did not supply it. Data distinguishes absent (nil) from present but
// empty (non-nil, zero length).
type CallRequest struct {
	From  *common.Address
	To    *common.Address
	Value *uint256.Int
	Data  *hexutil.Bytes
	Type  *uint8

	// Forwarded to the node untouched, never used for classification.
	Gas                  *uint64
	GasPrice             *uint256.Int
	MaxFeePerGas         *uint256.Int
	MaxPriorityFeePerGas *uint256.Int
}

// IsContractCreation reports whether the request has no recipient
func (r *CallRequest) IsContractCreation() bool {
	return r.To == nil
}

// DataBytes returns the call data, or nil when absent
func (r *CallRequest) DataBytes() []byte {
	if r.Data == nil {
		return nil
	}
	return *r.Data
}

// Result is the outcome of a single estimation
type Result struct {
	GasLimit *uint256.Int
	Method   Method
}
