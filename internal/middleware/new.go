package middleware

import (
	"classroom-occupancy/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l               log.Logger
	rateLimitPerMin int
	limiter         *clientLimiter
}

// New creates the middleware set. rateLimitPerMin <= 0 disables API rate
// limiting.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	var limiter *clientLimiter
	if rateLimitPerMin > 0 {
		limiter = newClientLimiter(rateLimitPerMin)
	}
	return Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
		limiter:         limiter,
	}
}
