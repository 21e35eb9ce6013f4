package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type HTTPMetrics interface {
	RecordHTTPRequest(method, route string, status int, d time.Duration)
}

// Metrics labels requests by route template so that path ids do not
// explode label cardinality.
func Metrics(m HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
