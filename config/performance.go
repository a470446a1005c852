package config

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Tag the request so log lines from one request can be correlated
		reqID := uuid.NewString()
		c.Set("requestId", reqID)
		c.Writer.Header().Set("X-Request-Id", reqID)

		// Process request
		c.Next()

		// Calculate latency
		latency := time.Since(start)

		// Log all requests with timing
		log.Printf("[PERF] %s %s %s | Status: %d | Time: %v",
			reqID,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		// Alert for slow requests
		if latency > 200*time.Millisecond {
			log.Printf("🐌 SLOW REQUEST: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
