package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockSimulatorForTest creates a new mock Simulator for testing
func NewMockSimulatorForTest(t *testing.T) *MockSimulator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSimulator(ctrl)
}

// NewMockEstimatorForTest creates a new mock Estimator for testing
func NewMockEstimatorForTest(t *testing.T) *MockEstimator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEstimator(ctrl)
}

// NewMockEstimateRecorderForTest creates a new mock EstimateRecorder for testing
func NewMockEstimateRecorderForTest(t *testing.T) *MockEstimateRecorder {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEstimateRecorder(ctrl)
}

// NewMockMetricsCollectorForTest creates a new mock MetricsCollector for testing
func NewMockMetricsCollectorForTest(t *testing.T) *MockMetricsCollector {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockMetricsCollector(ctrl)
}
