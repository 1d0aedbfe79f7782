//go:build darwin && cgo

package injector

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation

#include <stdbool.h>
#include <CoreGraphics/CoreGraphics.h>

static void postKeyEvent(CGKeyCode code, bool pressed) {
	CGEventRef event = CGEventCreateKeyboardEvent(NULL, code, pressed);
	CGEventPost(kCGSessionEventTap, event);
	CFRelease(event);
}
*/
import "C"

import "github.com/tapwright/tapwright/keymap"

func postKeyEvent(code uint32, pressed bool) error {
	// CGEventPost reports no per-event status; failures (e.g. missing
	// accessibility permission) surface as silently dropped events.
	C.postKeyEvent(C.CGKeyCode(code), C.bool(pressed))
	return nil
}

func newPlatformBackend() (Backend, error) {
	return &tableBackend{platform: "darwin", table: keymap.MacKeyCode, inject: postKeyEvent}, nil
}
