package injector_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapwright/tapwright/injector"
	"github.com/tapwright/tapwright/key"
	"github.com/tapwright/tapwright/keymap"
)

// quickShortcut builds a shortcut with zero delays so tests run instantly.
func quickShortcut(main key.Key, mods ...key.Key) injector.Shortcut {
	return injector.Shortcut{Key: main, Modifiers: mods}
}

func TestShortcutOrdering(t *testing.T) {
	b := &recordingBackend{}
	in := injector.NewWithBackend(b)

	err := in.SendShortcut(context.Background(), quickShortcut(key.A, key.LeftControl, key.LeftShift))
	require.NoError(t, err)

	// Presses in modifier order then main, releases main first then
	// modifiers in reverse order.
	assert.Equal(t, []event{
		press(key.LeftControl),
		press(key.LeftShift),
		press(key.A),
		release(key.A),
		release(key.LeftShift),
		release(key.LeftControl),
	}, b.events)
}

func TestShortcutNoModifiers(t *testing.T) {
	b := &recordingBackend{}
	in := injector.NewWithBackend(b)

	require.NoError(t, in.SendShortcut(context.Background(), quickShortcut(key.Escape)))
	assert.Equal(t, []event{press(key.Escape), release(key.Escape)}, b.events)
}

func TestShortcutCleanupOnMainKeyFailure(t *testing.T) {
	boom := errors.New("injection rejected")
	b := &recordingBackend{}
	b.failInject = func(code uint32, pressed bool) error {
		if code == keymap.WindowsVK[key.A] && pressed {
			return boom
		}
		return nil
	}
	in := injector.NewWithBackend(b)

	err := in.SendShortcut(context.Background(), quickShortcut(key.A, key.LeftControl, key.LeftShift))
	require.ErrorIs(t, err, boom)

	// Both modifiers were pressed, then the failed main press triggers
	// best-effort releases of every modifier and the main key.
	assert.Equal(t, []event{
		press(key.LeftControl),
		press(key.LeftShift),
		release(key.LeftControl),
		release(key.LeftShift),
		release(key.A),
	}, b.events)
}

func TestShortcutCleanupIgnoresCleanupErrors(t *testing.T) {
	boom := errors.New("injection rejected")
	b := &recordingBackend{}
	b.failInject = func(code uint32, pressed bool) error {
		if code == keymap.WindowsVK[key.A] {
			return boom // fails the main press and its cleanup release
		}
		if code == keymap.WindowsVK[key.LeftControl] && !pressed {
			return errors.New("cleanup failure, must not mask the original")
		}
		return nil
	}
	in := injector.NewWithBackend(b)

	err := in.SendShortcut(context.Background(), quickShortcut(key.A, key.LeftControl))
	require.ErrorIs(t, err, boom)
}

func TestShortcutCancellation(t *testing.T) {
	b := &recordingBackend{}
	in := injector.NewWithBackend(b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc := injector.NewShortcut(key.A, key.LeftControl) // non-zero delays
	err := in.SendShortcut(ctx, sc)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewShortcutDefaults(t *testing.T) {
	sc := injector.NewShortcut(key.S, key.LeftControl)
	assert.Equal(t, key.S, sc.Key)
	assert.Equal(t, []key.Key{key.LeftControl}, sc.Modifiers)
	assert.Equal(t, injector.DefaultHold, sc.Hold)
	assert.Equal(t, injector.DefaultInterKey, sc.InterKey)
	assert.Equal(t, injector.DefaultSettle, sc.Settle)
}

func TestPrimaryModifier(t *testing.T) {
	if runtime.GOOS == "darwin" {
		assert.Equal(t, key.LeftCommand, injector.PrimaryModifier())
	} else {
		assert.Equal(t, key.LeftControl, injector.PrimaryModifier())
	}
}
