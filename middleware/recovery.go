package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mcp-playground/helper"
)

// Recovery turns a panic into a 500 failure envelope.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "panic recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString("request_id"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, helper.Response{
			Success: false,
			Error:   "Internal server error",
		})
	})
}
