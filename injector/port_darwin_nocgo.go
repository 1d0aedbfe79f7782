//go:build darwin && !cgo

package injector

import "fmt"

func newPlatformBackend() (Backend, error) {
	return nil, fmt.Errorf("darwin injection requires cgo (CoreGraphics): %w", ErrUnsupportedPlatform)
}
