package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLog logs one line per request with method, path, status, and
// latency.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.l.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
