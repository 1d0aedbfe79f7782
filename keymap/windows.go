package keymap

import "github.com/tapwright/tapwright/key"

// WindowsVK maps logical keys to Windows virtual-key codes (winuser.h).
// Reference: https://docs.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
//
// The command keys have no Windows equivalent and degrade to the Windows
// (GUI) keys, mirroring how the meta keys map to command on macOS.
var WindowsVK = map[key.Key]uint32{
	key.A: 0x41, key.B: 0x42, key.C: 0x43, key.D: 0x44, key.E: 0x45,
	key.F: 0x46, key.G: 0x47, key.H: 0x48, key.I: 0x49, key.J: 0x4A,
	key.K: 0x4B, key.L: 0x4C, key.M: 0x4D, key.N: 0x4E, key.O: 0x4F,
	key.P: 0x50, key.Q: 0x51, key.R: 0x52, key.S: 0x53, key.T: 0x54,
	key.U: 0x55, key.V: 0x56, key.W: 0x57, key.X: 0x58, key.Y: 0x59,
	key.Z: 0x5A,

	key.Num0: 0x30, key.Num1: 0x31, key.Num2: 0x32, key.Num3: 0x33,
	key.Num4: 0x34, key.Num5: 0x35, key.Num6: 0x36, key.Num7: 0x37,
	key.Num8: 0x38, key.Num9: 0x39,

	key.Enter:     0x0D, // VK_RETURN
	key.Escape:    0x1B, // VK_ESCAPE
	key.Space:     0x20, // VK_SPACE
	key.Backspace: 0x08, // VK_BACK
	key.Tab:       0x09, // VK_TAB

	key.LeftShift:    0xA0, // VK_LSHIFT
	key.RightShift:   0xA1, // VK_RSHIFT
	key.LeftControl:  0xA2, // VK_LCONTROL
	key.RightControl: 0xA3, // VK_RCONTROL
	key.LeftAlt:      0xA4, // VK_LMENU
	key.RightAlt:     0xA5, // VK_RMENU

	key.Up:    0x26, // VK_UP
	key.Down:  0x28, // VK_DOWN
	key.Left:  0x25, // VK_LEFT
	key.Right: 0x27, // VK_RIGHT

	key.LeftMeta:     0x5B, // VK_LWIN
	key.RightMeta:    0x5C, // VK_RWIN
	key.LeftCommand:  0x5B,
	key.RightCommand: 0x5C,
}
