package keymap

import "github.com/tapwright/tapwright/key"

// MacKeyCode maps logical keys to macOS virtual key codes (CGKeyCode, ANSI
// layout) as consumed by CGEventCreateKeyboardEvent.
// Reference: Carbon HIToolbox Events.h (kVK_ANSI_*).
//
// The meta keys have no macOS equivalent and degrade to the command keys.
var MacKeyCode = map[key.Key]uint32{
	key.A: 0x00, key.B: 0x0B, key.C: 0x08, key.D: 0x02, key.E: 0x0E,
	key.F: 0x03, key.G: 0x05, key.H: 0x04, key.I: 0x22, key.J: 0x26,
	key.K: 0x28, key.L: 0x25, key.M: 0x2E, key.N: 0x2D, key.O: 0x1F,
	key.P: 0x23, key.Q: 0x0C, key.R: 0x0F, key.S: 0x01, key.T: 0x11,
	key.U: 0x20, key.V: 0x09, key.W: 0x0D, key.X: 0x07, key.Y: 0x10,
	key.Z: 0x06,

	key.Num0: 0x1D, key.Num1: 0x12, key.Num2: 0x13, key.Num3: 0x14,
	key.Num4: 0x15, key.Num5: 0x17, key.Num6: 0x16, key.Num7: 0x1A,
	key.Num8: 0x1C, key.Num9: 0x19,

	key.Enter:     0x24, // kVK_Return
	key.Escape:    0x35, // kVK_Escape
	key.Space:     0x31, // kVK_Space
	key.Backspace: 0x33, // kVK_Delete
	key.Tab:       0x30, // kVK_Tab

	key.LeftShift:    0x38, // kVK_Shift
	key.RightShift:   0x3C, // kVK_RightShift
	key.LeftControl:  0x3B, // kVK_Control
	key.RightControl: 0x3E, // kVK_RightControl
	key.LeftAlt:      0x3A, // kVK_Option
	key.RightAlt:     0x3D, // kVK_RightOption

	key.Up:    0x7E, // kVK_UpArrow
	key.Down:  0x7D, // kVK_DownArrow
	key.Left:  0x7B, // kVK_LeftArrow
	key.Right: 0x7C, // kVK_RightArrow

	key.LeftMeta:     0x37, // kVK_Command
	key.RightMeta:    0x36, // kVK_RightCommand
	key.LeftCommand:  0x37,
	key.RightCommand: 0x36,
}
