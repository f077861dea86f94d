package handlers

import (
	"net/http"

	"gas-estimator/internal/constants"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"gas-estimator"`
}

// Health godoc
// @Summary      Health check
// @Description  Reports that the service is up. Does not contact the RPC node.
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse   "Returns health status"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  constants.HealthyStatus,
		Service: constants.ServiceName,
	})
}
