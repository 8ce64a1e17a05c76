package middleware

import (
	"strconv"
	"time"

	"appointment-booking/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware labels requests by route template so that ids in paths do
// not explode label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
