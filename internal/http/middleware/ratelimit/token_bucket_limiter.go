package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Config stores TokenBucketLimiter settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than this are dropped, 0 keeps them
	MaxBuckets int           // 0 means unbounded
}

// TokenBucketLimiter keeps one token bucket per key, e.g. per rider.
type TokenBucketLimiter struct {
	cfg   Config
	clock Clock

	mu        sync.Mutex
	buckets   map[string]*bucket
	nextSweep time.Time
}

type bucket struct {
	tokens float64
	at     time.Time
}

// NewTokenBucketLimiter creates a limiter. Non-positive Rate and Burst fall back to 1.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// Allow implements Limiter.
func (l *TokenBucketLimiter) Allow(key string) (bool, time.Duration) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
			// table full of active keys; refuse new ones until the next sweep
			return false, l.sweepWait(now)
		}
		b = &bucket{tokens: float64(l.cfg.Burst), at: now}
		l.buckets[key] = b
	}

	b.refill(now, l.cfg.Rate, float64(l.cfg.Burst))
	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	missing := 1 - b.tokens
	return false, time.Duration(math.Ceil(missing / l.cfg.Rate * float64(time.Second)))
}

// Len returns the number of tracked keys.
func (l *TokenBucketLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (b *bucket) refill(now time.Time, rate, burst float64) {
	if dt := now.Sub(b.at); dt > 0 {
		b.tokens = math.Min(burst, b.tokens+dt.Seconds()*rate)
		b.at = now
	}
}

// sweep drops idle buckets at most once per TTL/2. A bucket idle for TTL is full again anyway
// whenever TTL >= Burst/Rate.
func (l *TokenBucketLimiter) sweep(now time.Time) {
	if l.cfg.TTL <= 0 || now.Before(l.nextSweep) {
		return
	}
	l.nextSweep = now.Add(l.cfg.TTL / 2)
	for k, b := range l.buckets {
		if now.Sub(b.at) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}

func (l *TokenBucketLimiter) sweepWait(now time.Time) time.Duration {
	if l.cfg.TTL <= 0 {
		return time.Second
	}
	if w := l.nextSweep.Sub(now); w > 0 {
		return w
	}
	return time.Second
}
