package middleware

import (
	"time"

	"blogform-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Logger ghi 1 log line cho mỗi request, đi qua pkg/logger wrapper
// để request log và domain log (submission service) ra cùng 1 sink
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("HTTP Request", map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		})
	}
}
