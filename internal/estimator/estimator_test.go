package estimator_test

import (
	"context"
	"errors"
	"testing"

	"gas-estimator/internal/estimator"
	"gas-estimator/internal/logger"
	"gas-estimator/internal/mocks"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

var testAddress = common.HexToAddress("0xc0ffee254729296a45a3885639AC7E10F9d54979")

func addr() *common.Address {
	a := testAddress
	return &a
}

func data(b ...byte) *hexutil.Bytes {
	d := hexutil.Bytes(b)
	return &d
}

func txType(t uint8) *uint8 {
	return &t
}

func TestGasEstimator_Estimate_Static(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Any simulator call fails the test
	mockSimulator := mocks.NewMockSimulator(ctrl)
	service := estimator.NewGasEstimator(mockSimulator)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *estimator.CallRequest
		wantGas uint64
	}{
		{
			name:    "simple value transfer",
			req:     &estimator.CallRequest{From: addr(), To: addr(), Value: uint256.NewInt(1)},
			wantGas: 21000,
		},
		{
			name:    "contract creation without data",
			req:     &estimator.CallRequest{},
			wantGas: 53000,
		},
		{
			name:    "contract creation with empty data and no value",
			req:     &estimator.CallRequest{Data: data()},
			wantGas: 53000,
		},
		{
			name:    "empty data with zero value",
			req:     &estimator.CallRequest{To: addr(), Value: uint256.NewInt(0), Data: data()},
			wantGas: 21000,
		},
		{
			name:    "large value without data stays static",
			req:     &estimator.CallRequest{To: addr(), Value: new(uint256.Int).SetAllOne()},
			wantGas: 21000,
		},
		{
			name:    "non blob type tag",
			req:     &estimator.CallRequest{To: addr(), Type: txType(2)},
			wantGas: 21000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Estimate(ctx, tt.req)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, estimator.MethodStatic, result.Method)
			assert.Equal(t, tt.wantGas, result.GasLimit.Uint64())
		})
	}
}

func TestGasEstimator_Estimate_RPC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSimulator := mocks.NewMockSimulator(ctrl)
	service := estimator.NewGasEstimator(mockSimulator)
	ctx := context.Background()

	tests := []struct {
		name        string
		req         *estimator.CallRequest
		setupMocks  func(req *estimator.CallRequest)
		wantGas     uint64
		wantErr     bool
		errorString string
	}{
		{
			name: "contract call returns node estimate",
			req:  &estimator.CallRequest{To: addr(), Data: data(0xa9, 0x05, 0x9c, 0xbb)},
			setupMocks: func(req *estimator.CallRequest) {
				mockSimulator.EXPECT().EstimateGas(ctx, req).Return(uint256.NewInt(51234), nil)
			},
			wantGas: 51234,
		},
		{
			name: "empty data with value may hit fallback",
			req:  &estimator.CallRequest{To: addr(), Value: uint256.NewInt(1), Data: data()},
			setupMocks: func(req *estimator.CallRequest) {
				mockSimulator.EXPECT().EstimateGas(ctx, req).Return(uint256.NewInt(23000), nil)
			},
			wantGas: 23000,
		},
		{
			name: "blob transaction without data",
			req:  &estimator.CallRequest{To: addr(), Type: txType(3)},
			setupMocks: func(req *estimator.CallRequest) {
				mockSimulator.EXPECT().EstimateGas(ctx, req).Return(uint256.NewInt(21000), nil)
			},
			wantGas: 21000,
		},
		{
			name: "constructor execution",
			req:  &estimator.CallRequest{Data: data(0x60, 0x80, 0x60, 0x40)},
			setupMocks: func(req *estimator.CallRequest) {
				mockSimulator.EXPECT().EstimateGas(ctx, req).Return(uint256.NewInt(120000), nil)
			},
			wantGas: 120000,
		},
		{
			name: "node failure is an upstream failure",
			req:  &estimator.CallRequest{To: addr(), Data: data(0x01)},
			setupMocks: func(req *estimator.CallRequest) {
				mockSimulator.EXPECT().EstimateGas(ctx, req).Return(nil, errors.New("execution reverted"))
			},
			wantErr:     true,
			errorString: "RPC call failed: execution reverted",
		},
		{
			name: "nil estimate is an upstream failure",
			req:  &estimator.CallRequest{To: addr(), Data: data(0x01)},
			setupMocks: func(req *estimator.CallRequest) {
				mockSimulator.EXPECT().EstimateGas(ctx, req).Return(nil, nil)
			},
			wantErr:     true,
			errorString: "RPC call failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks(tt.req)

			result, err := service.Estimate(ctx, tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.True(t, estimator.IsUpstreamFailure(err))
				assert.Contains(t, err.Error(), tt.errorString)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, estimator.MethodRPC, result.Method)
			assert.Equal(t, tt.wantGas, result.GasLimit.Uint64())
		})
	}
}

func TestGasEstimator_Estimate_PreservesUpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSimulator := mocks.NewMockSimulator(ctrl)
	service := estimator.NewGasEstimator(mockSimulator)

	cause := context.DeadlineExceeded
	mockSimulator.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(nil, cause)

	_, err := service.Estimate(context.Background(), &estimator.CallRequest{To: addr(), Data: data(0xff)})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, estimator.KindUpstreamFailure, estimator.KindOf(err))
}

func TestGasEstimator_Estimate_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSimulator := mocks.NewMockSimulator(ctrl)
	service := estimator.NewGasEstimator(mockSimulator)
	ctx := context.Background()

	rpcReq := &estimator.CallRequest{To: addr(), Data: data(0x12, 0x34)}
	mockSimulator.EXPECT().EstimateGas(ctx, rpcReq).Return(uint256.NewInt(45000), nil).Times(2)

	first, err := service.Estimate(ctx, rpcReq)
	require.NoError(t, err)
	second, err := service.Estimate(ctx, rpcReq)
	require.NoError(t, err)
	assert.Equal(t, first.Method, second.Method)
	assert.True(t, first.GasLimit.Eq(second.GasLimit))

	staticReq := &estimator.CallRequest{To: addr(), Value: uint256.NewInt(7)}
	first, err = service.Estimate(ctx, staticReq)
	require.NoError(t, err)
	second, err = service.Estimate(ctx, staticReq)
	require.NoError(t, err)
	assert.Equal(t, *first, *second)
}

func TestGasEstimator_Estimate_InvalidInput(t *testing.T) {
	t.Run("nil request is malformed", func(t *testing.T) {
		service := estimator.NewGasEstimator(nil)
		result, err := service.Estimate(context.Background(), nil)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, estimator.IsMalformedRequest(err))
	})

	t.Run("simulation without simulator is an upstream failure", func(t *testing.T) {
		service := estimator.NewGasEstimator(nil)
		result, err := service.Estimate(context.Background(), &estimator.CallRequest{Data: data(0x01)})
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, estimator.IsUpstreamFailure(err))
	})

	t.Run("static path does not need a simulator", func(t *testing.T) {
		service := estimator.NewGasEstimator(nil)
		result, err := service.Estimate(context.Background(), &estimator.CallRequest{To: addr()})
		require.NoError(t, err)
		assert.Equal(t, estimator.MethodStatic, result.Method)
	})
}
