//go:build !windows && !darwin && !linux

package injector

import (
	"fmt"
	"runtime"
)

func newPlatformBackend() (Backend, error) {
	return nil, fmt.Errorf("%s: %w", runtime.GOOS, ErrUnsupportedPlatform)
}
