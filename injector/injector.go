// Package injector simulates keyboard input through each platform's native
// event injection facility: SendInput on Windows, CoreGraphics events on
// macOS and XTest on Linux/X11. Injection is best effort; whether the
// focused application receives or honors the events is up to the OS.
package injector

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/tapwright/tapwright/key"
)

// Injector drives a platform backend. Operations are sequential: one
// shortcut or typing run completes (including its delays) before the next
// starts, because keyboard focus and the display connection are not safe
// for interleaved use.
type Injector struct {
	backend Backend
	log     *slog.Logger
}

// Option configures an Injector.
type Option func(*Injector)

// WithLogger sets the logger used for debug output. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(in *Injector) {
		if l != nil {
			in.log = l
		}
	}
}

// New selects the backend for the current platform. It fails with
// ErrUnsupportedPlatform on hosts that are none of windows, darwin or linux.
func New(opts ...Option) (*Injector, error) {
	b, err := newPlatformBackend()
	if err != nil {
		return nil, err
	}
	return NewWithBackend(b, opts...), nil
}

// NewWithBackend wires an explicit backend. This is the seam tests use to
// substitute a recording backend for the native one.
func NewWithBackend(b Backend, opts ...Option) *Injector {
	in := &Injector{backend: b, log: slog.Default()}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// SendKey resolves a logical key and posts a single press or release event.
func (in *Injector) SendKey(k key.Key, pressed bool) error {
	code, err := in.backend.Resolve(k)
	if err != nil {
		return err
	}
	if err := in.backend.Inject(code, pressed); err != nil {
		return fmt.Errorf("inject %s (code 0x%X, pressed=%t): %w", k, code, pressed, err)
	}
	return nil
}

// SendRaw posts an event for a native code directly, bypassing the logical
// key mapping. Escape hatch for codes outside the logical key space.
func (in *Injector) SendRaw(code uint32, pressed bool) error {
	if err := in.backend.Inject(code, pressed); err != nil {
		return fmt.Errorf("inject raw code 0x%X (pressed=%t): %w", code, pressed, err)
	}
	return nil
}

// Tap presses and immediately releases a logical key.
func (in *Injector) Tap(k key.Key) error {
	if err := in.SendKey(k, true); err != nil {
		return err
	}
	return in.SendKey(k, false)
}

// Close releases the backend's platform handle (the X display connection on
// Linux; a no-op elsewhere or when no handle was ever opened). The Injector
// is single-use: do not call Close twice or inject after closing.
func (in *Injector) Close() error {
	return in.backend.Close()
}

// PrimaryModifier returns the platform's canonical shortcut modifier:
// command on macOS, control everywhere else.
func PrimaryModifier() key.Key {
	if runtime.GOOS == "darwin" {
		return key.LeftCommand
	}
	return key.LeftControl
}

// wait suspends for d, honoring context cancellation. Cancellation is not an
// injection failure and triggers no key cleanup.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
