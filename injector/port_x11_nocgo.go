//go:build linux && !cgo

package injector

import "fmt"

func newPlatformBackend() (Backend, error) {
	return &x11Backend{open: func() (displayConn, error) {
		return nil, fmt.Errorf("built without cgo, no Xlib available: %w", ErrDisplayUnavailable)
	}}, nil
}
