package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"rider-dispatch/internal/config"
	"rider-dispatch/internal/logx"
	"rider-dispatch/internal/service/assignment"
	"rider-dispatch/internal/transport/kafka"
)

// WorkerRunner runs the order event consumer and the pending assignment sweeper.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun runs the worker until its context is cancelled. Other errors panic.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(
		ctx context.Context,
		cfg *config.Config,
		logger logx.Logger,
		consumer *kafka.Consumer,
		as *assignment.Service,
		res resources,
	) error {
		defer res.close(logger)
		return workerRun(ctx, logger, consumer, as, cfg.Dispatch)
	})
}

type expirer interface {
	ExpirePending(ctx context.Context, olderThan time.Duration) (int, error)
}

func workerRun(ctx context.Context, logger logx.Logger, consumer *kafka.Consumer, sweeper expirer, cfg config.Dispatch) error {
	if consumer == nil && sweeper == nil {
		return fmt.Errorf("nothing to run: worker container misconfigured")
	}

	g, ctx := errgroup.WithContext(ctx)
	if consumer != nil {
		g.Go(func() error {
			defer func() {
				if err := consumer.Close(); err != nil {
					logger.Error("kafka close error", logx.Err(err))
				}
			}()
			return consumer.Run(ctx)
		})
	} else {
		logger.Warn("kafka not configured, order events are not consumed")
	}
	if sweeper != nil {
		g.Go(func() error {
			return runSweeper(ctx, sweeper, cfg.SweepInterval, cfg.PendingTimeout, logger)
		})
	}

	logger.Info("service-dispatch-worker started",
		logx.Duration("sweep_interval", cfg.SweepInterval),
		logx.Duration("pending_timeout", cfg.PendingTimeout),
	)
	return g.Wait()
}

// runSweeper expires stale pending assignments every interval until ctx is done.
func runSweeper(ctx context.Context, e expirer, interval, olderThan time.Duration, logger logx.Logger) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			n, err := e.ExpirePending(ctx, olderThan)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Error("pending sweep failed", logx.String("event", "sweep_failed"), logx.Err(err))
				continue
			}
			if n > 0 {
				logger.Info("pending assignments expired", logx.String("event", "sweep_expired"), logx.Int("count", n))
			}
		}
	}
}
