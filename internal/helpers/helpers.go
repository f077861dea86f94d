package helpers

import "gas-estimator/internal/constants"

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case constants.ProdEnvironment, constants.DevEnvironment, constants.LocalEnvironment, constants.TestEnvironment:
		return true
	default:
		return false
	}
}
