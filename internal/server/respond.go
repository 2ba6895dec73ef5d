package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// respondError logs and sends a standardized error response.
func respondError(c *gin.Context, log *zap.Logger, status int, code, message string, details any) {
	requestLogger(c, log).Warn("http error",
		zap.Int("status", status),
		zap.String("code", code),
		zap.String("message", message),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
