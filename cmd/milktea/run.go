package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
)

// lifecycle is the subset of *fx.App driven by run.
type lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
}

func run(ctx context.Context, app lifecycle) int {
	return runWithOutput(ctx, app, os.Stderr)
}

func runWithOutput(ctx context.Context, app lifecycle, stderr io.Writer) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "failed to start application: %v\n", err)
		return 1
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(stderr, "failed to stop application: %v\n", err)
		return 1
	}
	return 0
}

var _ lifecycle = (*fx.App)(nil)
