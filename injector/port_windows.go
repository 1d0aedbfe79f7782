//go:build windows

package injector

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/tapwright/tapwright/keymap"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard = 1

	keyEventFExtendedKey = 0x0001
	keyEventFKeyUp       = 0x0002
)

// KEYBDINPUT wrapped in the INPUT union layout SendInput expects. The padding
// keeps the struct at the size of the largest union member (MOUSEINPUT).
type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type winInput struct {
	inputType uint32
	ki        keyboardInput
	padding   uint64
}

// extendedKeys are virtual-key codes that only register when sent with
// KEYEVENTF_EXTENDEDKEY (arrows and the right-side modifiers).
var extendedKeys = map[uint32]bool{
	0x25: true, 0x26: true, 0x27: true, 0x28: true, // arrows
	0xA3: true, 0xA5: true, // VK_RCONTROL, VK_RMENU
	0x5B: true, 0x5C: true, // VK_LWIN, VK_RWIN
}

func sendInput(code uint32, pressed bool) error {
	var flags uint32
	if !pressed {
		flags |= keyEventFKeyUp
	}
	if extendedKeys[code] {
		flags |= keyEventFExtendedKey
	}
	in := winInput{
		inputType: inputKeyboard,
		ki:        keyboardInput{wVk: uint16(code), dwFlags: flags},
	}
	n, _, callErr := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if n == 0 {
		return fmt.Errorf("SendInput rejected vk 0x%X: %w", code, callErr)
	}
	return nil
}

func newPlatformBackend() (Backend, error) {
	return &tableBackend{platform: "windows", table: keymap.WindowsVK, inject: sendInput}, nil
}
