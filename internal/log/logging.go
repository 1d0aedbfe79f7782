// Package log builds the configured slog.Logger for the CLI.
//
// Without a log file, non-error records go to stdout and errors to stderr so
// the error stream can be redirected independently. With a log file, records
// go to the file and stderr.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger builds the logger for the given level and optional file path.
// The returned closer is nil when no file sink was opened.
func SetupLogger(level, file string) (*slog.Logger, io.Closer, error) {
	lv := ParseLevel(level)

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		h := slog.NewTextHandler(io.MultiWriter(os.Stderr, f), &slog.HandlerOptions{Level: lv})
		return slog.New(h), f, nil
	}

	return slog.New(&splitHandler{
		out: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lv}),
		err: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}),
	}), nil, nil
}

// splitHandler routes records below error level to one handler and the rest
// to another.
type splitHandler struct {
	out slog.Handler
	err slog.Handler
}

func (h *splitHandler) pick(level slog.Level) slog.Handler {
	if level >= slog.LevelError {
		return h.err
	}
	return h.out
}

func (h *splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.pick(level).Enabled(ctx, level)
}

func (h *splitHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.pick(r.Level).Handle(ctx, r)
}

func (h *splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &splitHandler{out: h.out.WithAttrs(attrs), err: h.err.WithAttrs(attrs)}
}

func (h *splitHandler) WithGroup(name string) slog.Handler {
	return &splitHandler{out: h.out.WithGroup(name), err: h.err.WithGroup(name)}
}
