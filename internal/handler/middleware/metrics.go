package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/metrics"
)

// MetricsMiddleware records request counts and latency per route template,
// so /items/42 and /items/7 land in the same series.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
