package estimator_test

import (
	"testing"

	"gas-estimator/internal/estimator"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		req  *estimator.CallRequest
		want estimator.Strategy
	}{
		{
			name: "absent data and no value",
			req:  &estimator.CallRequest{To: addr()},
			want: estimator.StrategyStatic,
		},
		{
			name: "absent data with value",
			req:  &estimator.CallRequest{To: addr(), Value: uint256.NewInt(1_000_000)},
			want: estimator.StrategyStatic,
		},
		{
			name: "absent data contract creation with value",
			req:  &estimator.CallRequest{Value: uint256.NewInt(5)},
			want: estimator.StrategyStatic,
		},
		{
			name: "empty data without value",
			req:  &estimator.CallRequest{To: addr(), Data: data()},
			want: estimator.StrategyStatic,
		},
		{
			name: "empty data with zero value",
			req:  &estimator.CallRequest{To: addr(), Data: data(), Value: uint256.NewInt(0)},
			want: estimator.StrategyStatic,
		},
		{
			name: "empty data with non-zero value",
			req:  &estimator.CallRequest{To: addr(), Data: data(), Value: uint256.NewInt(1)},
			want: estimator.StrategySimulate,
		},
		{
			name: "non-empty data without value",
			req:  &estimator.CallRequest{To: addr(), Data: data(0x00)},
			want: estimator.StrategySimulate,
		},
		{
			name: "non-empty data with value",
			req:  &estimator.CallRequest{To: addr(), Data: data(0x01, 0x00, 0x02), Value: uint256.NewInt(3)},
			want: estimator.StrategySimulate,
		},
		{
			name: "non-empty data with zero value",
			req:  &estimator.CallRequest{To: addr(), Data: data(0x01), Value: uint256.NewInt(0)},
			want: estimator.StrategySimulate,
		},
		{
			name: "blob transaction regardless of other fields",
			req:  &estimator.CallRequest{To: addr(), Type: txType(3)},
			want: estimator.StrategySimulate,
		},
		{
			name: "blob transaction with empty request",
			req:  &estimator.CallRequest{Type: txType(3)},
			want: estimator.StrategySimulate,
		},
		{
			name: "dynamic fee type stays static",
			req:  &estimator.CallRequest{To: addr(), Type: txType(2)},
			want: estimator.StrategyStatic,
		},
		{
			name: "legacy type stays static",
			req:  &estimator.CallRequest{To: addr(), Type: txType(0)},
			want: estimator.StrategyStatic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimator.Classify(tt.req))
		})
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "static", estimator.StrategyStatic.String())
	assert.Equal(t, "simulate", estimator.StrategySimulate.String())
	assert.Equal(t, "unknown", estimator.Strategy(42).String())
}
