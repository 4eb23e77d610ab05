package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/dig"

	"rider-dispatch/internal/app"
	"rider-dispatch/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	build := func(ctx context.Context) (*dig.Container, error) {
		return app.NewContainerBuilder().
			WithConfig(func() (*config.Config, error) { return config.LoadArgs(nil) }).
			Build(ctx)
	}
	if err := newRootCmd(build).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
