package ratelimit

import "time"

// Limiter takes one token for key. When it refuses, wait is the time until a token frees up.
type Limiter interface {
	Allow(key string) (ok bool, wait time.Duration)
}
