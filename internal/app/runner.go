package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"rider-dispatch/internal/logx"
	"rider-dispatch/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// MustRun starts the HTTP server using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(ctx context.Context, server *http.Server, res resources, logger logx.Logger) error {
		defer res.close(logger)

		errCh := startServer(server, logger)
		select {
		case <-ctx.Done():
			logger.Info("shutting down service-dispatch")
		case err := <-errCh:
			return err
		}
		gracefulShutdown(server, logger, shutdownTimeout)
		return nil
	})
}

// resources are the long-lived connections closed on exit.
type resources struct {
	dig.In
	Stores   *Stores
	Redis    *redis.Client
	Producer *kafka.Producer
}

func (r resources) close(logger logx.Logger) {
	if r.Producer != nil {
		if err := r.Producer.Close(); err != nil {
			logger.Error("kafka producer close error", logx.Err(err))
		}
	}
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			logger.Error("redis close error", logx.Err(err))
		}
	}
	r.Stores.Close()
}

func startServer(server *http.Server, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("service-dispatch listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
		if err := srv.Close(); err != nil {
			logger.Error("server close error", logx.Err(err))
		}
	}
}
