package middleware

import (
	"strconv"

	"parcel-registry/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics counts requests by route template, so path ids do not explode the
// label cardinality. Unmatched routes are grouped under "unmatched".
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.IncHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
	}
}
