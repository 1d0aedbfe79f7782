package injector

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapwright/tapwright/key"
	"github.com/tapwright/tapwright/keymap"
)

// fakeDisplay stands in for the Xlib connection. Keycode translation is
// fixed (keycode = keysym + 8) so resolution results are deterministic.
type fakeDisplay struct {
	translations int
	injections   int
	closes       int
}

func (d *fakeDisplay) KeycodeForKeysym(sym uint32) (uint32, error) {
	d.translations++
	return sym + 8, nil
}

func (d *fakeDisplay) SendKeyEvent(code uint32, pressed bool) error {
	d.injections++
	return nil
}

func (d *fakeDisplay) Close() error {
	d.closes++
	return nil
}

func TestX11ConnectionOpenedLazily(t *testing.T) {
	opened := 0
	display := &fakeDisplay{}
	b := &x11Backend{open: func() (displayConn, error) {
		opened++
		return display, nil
	}}

	assert.Equal(t, 0, opened, "construction must not open a connection")

	code, err := b.Resolve(key.A)
	require.NoError(t, err)
	assert.Equal(t, keymap.X11Keysym[key.A]+8, code)
	assert.Equal(t, 1, opened)

	_, err = b.Resolve(key.B)
	require.NoError(t, err)
	assert.Equal(t, 1, opened, "connection is cached across resolves")
}

func TestX11KeycodesNotCached(t *testing.T) {
	display := &fakeDisplay{}
	b := &x11Backend{open: func() (displayConn, error) { return display, nil }}

	first, err := b.Resolve(key.Q)
	require.NoError(t, err)
	second, err := b.Resolve(key.Q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// The keyboard layout can change at runtime, so every resolve goes
	// back to the display.
	assert.Equal(t, 2, display.translations)
}

func TestX11DisplayUnavailable(t *testing.T) {
	b := &x11Backend{open: func() (displayConn, error) {
		return nil, fmt.Errorf("no display: %w", ErrDisplayUnavailable)
	}}

	_, err := b.Resolve(key.A)
	assert.ErrorIs(t, err, ErrDisplayUnavailable)

	err = b.Inject(42, true)
	assert.ErrorIs(t, err, ErrDisplayUnavailable)
}

func TestX11CloseWithoutConnection(t *testing.T) {
	b := &x11Backend{open: func() (displayConn, error) {
		return nil, errors.New("open must not be called by Close")
	}}
	assert.NoError(t, b.Close())
}

func TestX11CloseReleasesOnce(t *testing.T) {
	display := &fakeDisplay{}
	b := &x11Backend{open: func() (displayConn, error) { return display, nil }}

	_, err := b.Resolve(key.A)
	require.NoError(t, err)

	require.NoError(t, b.Close())
	assert.Equal(t, 1, display.closes)

	require.NoError(t, b.Close())
	assert.Equal(t, 1, display.closes, "second close must not release again")
}

func TestTableBackendUnknownKey(t *testing.T) {
	b := &tableBackend{platform: "test", table: map[key.Key]uint32{}}
	_, err := b.Resolve(key.A)
	assert.ErrorIs(t, err, ErrUnknownKey)
}
