package middleware

import (
	"golang.org/x/time/rate"

	"issue-intelligence/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. rateLimitPerMin caps event ingest
// across all clients; zero or negative disables the limiter.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	var limiter *rate.Limiter
	if rateLimitPerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(rateLimitPerMin)/60), rateLimitPerMin)
	}
	return Middleware{l: l, limiter: limiter}
}
