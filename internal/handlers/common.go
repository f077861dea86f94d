package handlers

import (
	"gas-estimator/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// sendError logs err against the request and writes message as a JSON error body
func sendError(c *gin.Context, statusCode int, message string, err error) {
	log := middleware.LogWithCorrelationID(c.Request.Context())
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if statusCode >= 500 {
		log.Error(message, fields...)
	} else {
		log.Debug(message, fields...)
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}
