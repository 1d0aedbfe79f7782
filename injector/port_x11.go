//go:build linux && cgo

package injector

/*
#cgo LDFLAGS: -lX11 -lXtst

#include <X11/Xlib.h>
#include <X11/extensions/XTest.h>
*/
import "C"

import "fmt"

// xlibConn is the real display connection: Xlib for keysym translation,
// XTest for event injection.
type xlibConn struct {
	dpy *C.Display
}

func openDisplay() (displayConn, error) {
	dpy := C.XOpenDisplay(nil)
	if dpy == nil {
		return nil, fmt.Errorf("cannot open X display: %w", ErrDisplayUnavailable)
	}
	return &xlibConn{dpy: dpy}, nil
}

func (c *xlibConn) KeycodeForKeysym(sym uint32) (uint32, error) {
	code := C.XKeysymToKeycode(c.dpy, C.KeySym(sym))
	if code == 0 {
		return 0, fmt.Errorf("keysym 0x%X has no keycode in the active layout: %w", sym, ErrUnknownKey)
	}
	return uint32(code), nil
}

func (c *xlibConn) SendKeyEvent(code uint32, pressed bool) error {
	var isPress C.int
	if pressed {
		isPress = C.True
	}
	if C.XTestFakeKeyEvent(c.dpy, C.uint(code), isPress, C.CurrentTime) == 0 {
		return fmt.Errorf("XTestFakeKeyEvent rejected keycode %d (pressed=%t)", code, pressed)
	}
	C.XFlush(c.dpy)
	return nil
}

func (c *xlibConn) Close() error {
	C.XCloseDisplay(c.dpy)
	return nil
}

func newPlatformBackend() (Backend, error) {
	return &x11Backend{open: openDisplay}, nil
}
