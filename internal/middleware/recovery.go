package middleware

import (
	"fmt"

	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns panics into an unexpected problem response.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString("request_id")),
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)
		response.Error(c, apperror.Internal(fmt.Errorf("panic: %v", recovered)))
	})
}

// NoRoute answers unknown paths with a not found problem.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, apperror.New(apperror.KindNotFound, "No handler for "+c.Request.Method+" "+c.Request.URL.Path))
	}
}
