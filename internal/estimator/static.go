package estimator

import (
	"github.com/ethereum/go-ethereum/params"
)

// Intrinsic gas schedule (Yellow Paper, EIP-2028). These are protocol values
// and must not be made configurable.
const (
	BaseTxGas             uint64 = params.TxGas                                // 21000
	ContractCreationGas   uint64 = params.TxGasContractCreation - params.TxGas // 32000
	ZeroByteGas           uint64 = params.TxDataZeroGas                        // 4
	NonZeroByteGas        uint64 = params.TxDataNonZeroGasEIP2028              // 16
	CodeDepositGasPerByte uint64 = params.CreateDataGas                        // 200
)

// StaticGas computes the gas for a request routed to StrategyStatic.
// It is pure and total.
func StaticGas(req *CallRequest) uint64 {
	gas := BaseTxGas

	creation := req.IsContractCreation()
	if creation {
		gas += ContractCreationGas
	}

	data := req.DataBytes()
	for _, b := range data {
		if b == 0 {
			gas += ZeroByteGas
		} else {
			gas += NonZeroByteGas
		}
	}

	if creation && req.Data != nil {
		gas += uint64(len(data)) * CodeDepositGasPerByte
	}

	return gas
}
