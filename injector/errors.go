package injector

import "errors"

var (
	// ErrUnsupportedPlatform is returned when the host is none of windows,
	// darwin or linux, or the build lacks the native injection support for it.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrUnknownKey is returned when a logical key has no entry in the active
	// platform's code table. This indicates a table defect, not a condition
	// callers should retry.
	ErrUnknownKey = errors.New("no native code for key")

	// ErrDisplayUnavailable is returned on Linux when no X display connection
	// can be established.
	ErrDisplayUnavailable = errors.New("display unavailable")
)
