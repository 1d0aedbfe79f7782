package injector

import (
	"fmt"

	"github.com/tapwright/tapwright/key"
	"github.com/tapwright/tapwright/keymap"
)

// Backend resolves logical keys to native codes and posts synthetic key
// events for a single platform. One backend is selected at construction;
// callers never branch on the platform afterwards.
type Backend interface {
	// Resolve returns the native code the platform expects for k.
	Resolve(k key.Key) (uint32, error)
	// Inject posts a key event for an already-resolved native code.
	Inject(code uint32, pressed bool) error
	// Close releases any platform handle the backend holds. Single-use.
	Close() error
}

// tableBackend serves platforms whose codes come straight from a static
// table (Windows virtual-key codes, macOS key codes).
type tableBackend struct {
	platform string
	table    map[key.Key]uint32
	inject   func(code uint32, pressed bool) error
}

func (b *tableBackend) Resolve(k key.Key) (uint32, error) {
	code, ok := b.table[k]
	if !ok {
		return 0, fmt.Errorf("%s: %s: %w", b.platform, k, ErrUnknownKey)
	}
	return code, nil
}

func (b *tableBackend) Inject(code uint32, pressed bool) error {
	return b.inject(code, pressed)
}

func (b *tableBackend) Close() error { return nil }

// displayConn is the runtime X connection used to translate keysyms into
// device keycodes and to post synthetic events. The cgo implementation wraps
// Xlib/XTest; tests substitute a fake.
type displayConn interface {
	KeycodeForKeysym(sym uint32) (uint32, error)
	SendKeyEvent(code uint32, pressed bool) error
	Close() error
}

// x11Backend resolves keys in two steps: a static keysym table lookup, then
// a keysym-to-keycode translation through a lazily opened display connection.
// Keycodes depend on the active keyboard layout, so translations are never
// cached; only the connection is.
type x11Backend struct {
	open func() (displayConn, error)
	conn displayConn
}

func (b *x11Backend) display() (displayConn, error) {
	if b.conn == nil {
		conn, err := b.open()
		if err != nil {
			return nil, err
		}
		b.conn = conn
	}
	return b.conn, nil
}

func (b *x11Backend) Resolve(k key.Key) (uint32, error) {
	sym, ok := keymap.X11Keysym[k]
	if !ok {
		return 0, fmt.Errorf("x11: %s: %w", k, ErrUnknownKey)
	}
	conn, err := b.display()
	if err != nil {
		return 0, err
	}
	return conn.KeycodeForKeysym(sym)
}

func (b *x11Backend) Inject(code uint32, pressed bool) error {
	conn, err := b.display()
	if err != nil {
		return err
	}
	return conn.SendKeyEvent(code, pressed)
}

func (b *x11Backend) Close() error {
	if b.conn == nil {
		return nil
	}
	conn := b.conn
	b.conn = nil
	return conn.Close()
}
