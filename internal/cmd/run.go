package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tapwright/tapwright/injector"
)

// withInjector runs fn with a platform injector under a signal-cancelled
// context, after an optional countdown that gives the user time to focus the
// target window.
func withInjector(logger *slog.Logger, wait time.Duration, fn func(ctx context.Context, in *injector.Injector) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, err := injector.New(injector.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	if err := countdown(ctx, wait, logger); err != nil {
		return err
	}
	return fn(ctx, in)
}

// countdown suspends for d before injection starts. Per-second progress is
// printed only when stderr is a terminal.
func countdown(ctx context.Context, d time.Duration, logger *slog.Logger) error {
	if d <= 0 {
		return ctx.Err()
	}
	logger.Info("waiting before injecting", "wait", d)

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return sleep(ctx, d)
	}

	for remaining := d; remaining > 0; remaining -= time.Second {
		fmt.Fprintf(os.Stderr, "\rinjecting in %-6s", remaining.Round(time.Second))
		step := time.Second
		if remaining < step {
			step = remaining
		}
		if err := sleep(ctx, step); err != nil {
			fmt.Fprintln(os.Stderr)
			return err
		}
	}
	fmt.Fprint(os.Stderr, "\r                \r")
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
