package middleware

import (
	"time"

	"tareas/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates or creates the request id and stores it in the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// RequestLogger logs every request with a level matching its status.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logger.DebugContext(c.Request.Context(), "Request started", "method", c.Request.Method, "path", c.Request.URL.Path)

		c.Next()

		status := c.Writer.Status()
		logFunc := logger.InfoContext
		if status >= 500 {
			logFunc = logger.ErrorContext
		} else if status >= 400 {
			logFunc = logger.WarnContext
		}

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"bytes", c.Writer.Size(),
		}
		if principal, ok := CurrentUser(c); ok {
			args = append(args, "user_id", principal.UserID.String())
		}
		logFunc(c.Request.Context(), "Request completed", args...)
	}
}
