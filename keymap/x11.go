package keymap

import "github.com/tapwright/tapwright/key"

// X11Keysym maps logical keys to X11 keysyms (X11/keysymdef.h). Keysyms are
// layout-independent symbols; the injector translates them to device keycodes
// at runtime through the X connection, because the active keyboard layout can
// change while the process runs.
//
// The command keys degrade to Super, the conventional X11 equivalent.
var X11Keysym = map[key.Key]uint32{
	key.A: 0x0061, key.B: 0x0062, key.C: 0x0063, key.D: 0x0064, key.E: 0x0065,
	key.F: 0x0066, key.G: 0x0067, key.H: 0x0068, key.I: 0x0069, key.J: 0x006A,
	key.K: 0x006B, key.L: 0x006C, key.M: 0x006D, key.N: 0x006E, key.O: 0x006F,
	key.P: 0x0070, key.Q: 0x0071, key.R: 0x0072, key.S: 0x0073, key.T: 0x0074,
	key.U: 0x0075, key.V: 0x0076, key.W: 0x0077, key.X: 0x0078, key.Y: 0x0079,
	key.Z: 0x007A,

	key.Num0: 0x0030, key.Num1: 0x0031, key.Num2: 0x0032, key.Num3: 0x0033,
	key.Num4: 0x0034, key.Num5: 0x0035, key.Num6: 0x0036, key.Num7: 0x0037,
	key.Num8: 0x0038, key.Num9: 0x0039,

	key.Enter:     0xFF0D, // XK_Return
	key.Escape:    0xFF1B, // XK_Escape
	key.Space:     0x0020, // XK_space
	key.Backspace: 0xFF08, // XK_BackSpace
	key.Tab:       0xFF09, // XK_Tab

	key.LeftShift:    0xFFE1, // XK_Shift_L
	key.RightShift:   0xFFE2, // XK_Shift_R
	key.LeftControl:  0xFFE3, // XK_Control_L
	key.RightControl: 0xFFE4, // XK_Control_R
	key.LeftAlt:      0xFFE9, // XK_Alt_L
	key.RightAlt:     0xFFEA, // XK_Alt_R

	key.Up:    0xFF52, // XK_Up
	key.Down:  0xFF54, // XK_Down
	key.Left:  0xFF51, // XK_Left
	key.Right: 0xFF53, // XK_Right

	key.LeftMeta:     0xFFEB, // XK_Super_L
	key.RightMeta:    0xFFEC, // XK_Super_R
	key.LeftCommand:  0xFFEB,
	key.RightCommand: 0xFFEC,
}
