package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"farmtotable-be/internal/logger"
)

// RequestID honors an incoming X-Request-ID or generates one, injects it
// into the request context and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		ctx := logger.WithRequestID(c.Request.Context(), reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-ID", reqID)

		c.Next()
	}
}
