package handlers

import (
	"context"
	"math/big"
	"net/http"

	"gas-estimator/internal/estimator"
	"gas-estimator/internal/middleware"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

//go:generate mockgen -source=gas_handlers.go -destination=../mocks/mock_gas_handlers.go -package=mocks

// Estimator produces a gas estimate for one transaction call
type Estimator interface {
	Estimate(ctx context.Context, req *estimator.CallRequest) (*estimator.Result, error)
}

// EstimateRecorder counts estimate outcomes
type EstimateRecorder interface {
	RecordEstimate(method string)
	RecordEstimateError(kind string)
}

// GasHandler serves gas estimation requests
type GasHandler struct {
	estimator Estimator
	recorder  EstimateRecorder
}

// NewGasHandler creates a GasHandler. recorder may be nil.
func NewGasHandler(est Estimator, recorder EstimateRecorder) *GasHandler {
	return &GasHandler{
		estimator: est,
		recorder:  recorder,
	}
}

// EstimateGasRequest is the transaction call to estimate. Quantities accept
// 0x-prefixed hex or decimal, as strings or bare JSON numbers.
type EstimateGasRequest struct {
	From                 *common.Address       `json:"from,omitempty" swaggertype:"string" example:"0x0000000000000000000000000000000000000001"`
	To                   *common.Address       `json:"to,omitempty" swaggertype:"string" example:"0x0000000000000000000000000000000000000002"`
	Value                *math.HexOrDecimal256 `json:"value,omitempty" swaggertype:"string" example:"0xde0b6b3a7640000"`
	Data                 *hexutil.Bytes        `json:"data,omitempty" swaggertype:"string" example:"0x"`
	Type                 *math.HexOrDecimal64  `json:"type,omitempty" swaggertype:"string" example:"0x2"`
	Gas                  *math.HexOrDecimal64  `json:"gas,omitempty" swaggertype:"string"`
	GasPrice             *math.HexOrDecimal256 `json:"gasPrice,omitempty" swaggertype:"string"`
	MaxFeePerGas         *math.HexOrDecimal256 `json:"maxFeePerGas,omitempty" swaggertype:"string"`
	MaxPriorityFeePerGas *math.HexOrDecimal256 `json:"maxPriorityFeePerGas,omitempty" swaggertype:"string"`
}

// EstimateGasResponse carries the estimate and the path that produced it
type EstimateGasResponse struct {
	GasLimit string `json:"gasLimit" example:"0x5208"`
	Method   string `json:"method" example:"static" enums:"static,rpc"`
}

// ToCallRequest validates r and converts it to the estimator's input
func (r *EstimateGasRequest) ToCallRequest() (*estimator.CallRequest, error) {
	req := &estimator.CallRequest{
		From: r.From,
		To:   r.To,
		Data: r.Data,
	}

	var err error
	if req.Value, err = toUint256("value", r.Value); err != nil {
		return nil, err
	}
	if req.GasPrice, err = toUint256("gasPrice", r.GasPrice); err != nil {
		return nil, err
	}
	if req.MaxFeePerGas, err = toUint256("maxFeePerGas", r.MaxFeePerGas); err != nil {
		return nil, err
	}
	if req.MaxPriorityFeePerGas, err = toUint256("maxPriorityFeePerGas", r.MaxPriorityFeePerGas); err != nil {
		return nil, err
	}

	if r.Type != nil {
		if uint64(*r.Type) > 0xff {
			return nil, estimator.MalformedRequest("invalid type: must fit in one byte", nil)
		}
		txType := uint8(*r.Type)
		req.Type = &txType
	}
	if r.Gas != nil {
		gas := uint64(*r.Gas)
		req.Gas = &gas
	}

	return req, nil
}

func toUint256(field string, v *math.HexOrDecimal256) (*uint256.Int, error) {
	if v == nil {
		return nil, nil
	}
	b := (*big.Int)(v)
	if b.Sign() < 0 {
		return nil, estimator.MalformedRequest("invalid "+field+": must not be negative", nil)
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		return nil, estimator.MalformedRequest("invalid "+field+": exceeds 256 bits", nil)
	}
	return u, nil
}

// EstimateGas godoc
// @Summary      Estimate gas for a transaction
// @Description  Prices plain transfers and contract deployments without code execution statically.
// @Description  Calls with input data, value sent alongside a data field, and blob transactions are simulated on the RPC node.
// @Tags         gas
// @Accept       json
// @Produce      json
// @Param        request  body      EstimateGasRequest   true  "Transaction call"
// @Success      200      {object}  EstimateGasResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/estimate-gas [post]
func (h *GasHandler) EstimateGas(c *gin.Context) {
	var body EstimateGasRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.recordError(estimator.KindMalformedRequest)
		sendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	req, err := body.ToCallRequest()
	if err != nil {
		h.recordError(estimator.KindMalformedRequest)
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := h.estimator.Estimate(c.Request.Context(), req)
	if err != nil {
		kind := estimator.KindOf(err)
		if kind == 0 {
			kind = estimator.KindUpstreamFailure
		}
		h.recordError(kind)

		status := http.StatusInternalServerError
		if kind == estimator.KindMalformedRequest {
			status = http.StatusBadRequest
		}
		sendError(c, status, err.Error(), err)
		return
	}

	if h.recorder != nil {
		h.recorder.RecordEstimate(string(result.Method))
	}

	middleware.LogWithCorrelationID(c.Request.Context()).Debug("Gas estimated",
		zap.String("method", string(result.Method)),
		zap.String("gas_limit", result.GasLimit.Dec()),
	)

	c.JSON(http.StatusOK, EstimateGasResponse{
		GasLimit: result.GasLimit.Hex(),
		Method:   string(result.Method),
	})
}

func (h *GasHandler) recordError(kind estimator.Kind) {
	if h.recorder != nil {
		h.recorder.RecordEstimateError(kind.String())
	}
}
