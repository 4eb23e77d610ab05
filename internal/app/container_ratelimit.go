package app

import (
	"go.uber.org/dig"

	"rider-dispatch/internal/config"
	"rider-dispatch/internal/http/middleware/ratelimit"
	"rider-dispatch/internal/http/router"
	"rider-dispatch/internal/logx"
)

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

type rateLimitIn struct {
	dig.In
	Logger     logx.Logger
	Collectors *collectors
	Limiter    ratelimit.Limiter
}

// newRateLimitMiddleware buckets location pings per rider rather than per client address.
func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Collectors.RateLimited, in.Limiter,
		ratelimit.WithKeyFunc(router.RiderKey))
}
