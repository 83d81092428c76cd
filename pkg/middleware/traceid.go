package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"raahi/pkg/utils"
)

func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		c.Set("trace_id", traceID)
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Request = c.Request.WithContext(utils.WithTraceID(c.Request.Context(), traceID))
		c.Next()
	}
}
