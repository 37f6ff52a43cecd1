package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/navbryce/next-blog-be/metrics"
)

// Metrics labels requests by route template so ids do not explode the label space
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.IncInFlight()
		defer metrics.DecInFlight()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
