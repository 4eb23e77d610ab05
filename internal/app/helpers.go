package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"rider-dispatch/internal/config"
	"rider-dispatch/internal/logx"
	"rider-dispatch/internal/repository"
)

var newPool = repository.NewPool

func connectDbWithRetry(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	var lastErr error
	const attemptTimeout = 3 * time.Second
	for i := 1; i <= retries; i++ {
		retriesCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		pool, err := newPool(retriesCtx, dsn)
		cancel()
		if err == nil {
			logger.Info("db connected", logx.Int("attempt", i))
			return pool, nil
		}
		lastErr = err
		logger.Warn("db connect failed",
			logx.Int("attempt", i),
			logx.Int("retries", retries),
			logx.Err(err),
		)
		if i < retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}

var newRedisClient = redis.NewClient

// connectRedis returns nil when the geo index is disabled or unreachable.
func connectRedis(ctx context.Context, cfg *config.Config, logger logx.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Info("redis not configured, geo index disabled")
		return nil
	}
	rdb := newRedisClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, geo index disabled",
			logx.String("addr", cfg.Redis.Addr),
			logx.Err(err),
		)
		_ = rdb.Close()
		return nil
	}
	return rdb
}
