package middleware

import (
	"github.com/gin-gonic/gin"

	"issue-intelligence/pkg/response"
)

// RateLimit rejects requests over the configured ingest rate with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter != nil && !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded: %s %s", c.Request.Method, c.Request.URL.Path)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
