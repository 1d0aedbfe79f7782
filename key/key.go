// Package key defines the platform-neutral logical key space shared by all
// injection backends. The enumeration is closed: every key listed here has an
// entry in each platform code table, and nothing outside it can be resolved.
package key

import (
	"fmt"
	"strings"
)

// Key identifies a logical keyboard key independent of any platform encoding.
type Key uint8

const (
	// Letters
	A Key = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	// Digits (top row)
	Num0
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9

	// Control keys
	Enter
	Escape
	Space
	Backspace
	Tab

	// Modifiers
	LeftShift
	RightShift
	LeftControl
	RightControl
	LeftAlt
	RightAlt

	// Arrows
	Up
	Down
	Left
	Right

	// OS meta (Windows/Super) and command keys
	LeftMeta
	RightMeta
	LeftCommand
	RightCommand

	numKeys // sentinel, keep last
)

// names maps each key to its canonical lowercase name, used for String and
// for CLI flag parsing via Parse.
var names = map[Key]string{
	A: "a", B: "b", C: "c", D: "d", E: "e", F: "f", G: "g",
	H: "h", I: "i", J: "j", K: "k", L: "l", M: "m", N: "n",
	O: "o", P: "p", Q: "q", R: "r", S: "s", T: "t", U: "u",
	V: "v", W: "w", X: "x", Y: "y", Z: "z",

	Num0: "0", Num1: "1", Num2: "2", Num3: "3", Num4: "4",
	Num5: "5", Num6: "6", Num7: "7", Num8: "8", Num9: "9",

	Enter:     "enter",
	Escape:    "escape",
	Space:     "space",
	Backspace: "backspace",
	Tab:       "tab",

	LeftShift:    "lshift",
	RightShift:   "rshift",
	LeftControl:  "lctrl",
	RightControl: "rctrl",
	LeftAlt:      "lalt",
	RightAlt:     "ralt",

	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",

	LeftMeta:     "lmeta",
	RightMeta:    "rmeta",
	LeftCommand:  "lcmd",
	RightCommand: "rcmd",
}

// aliases are accepted by Parse in addition to canonical names.
var aliases = map[string]Key{
	"return":  Enter,
	"esc":     Escape,
	"shift":   LeftShift,
	"ctrl":    LeftControl,
	"control": LeftControl,
	"alt":     LeftAlt,
	"option":  LeftAlt,
	"meta":    LeftMeta,
	"super":   LeftMeta,
	"win":     LeftMeta,
	"cmd":     LeftCommand,
	"command": LeftCommand,
}

var byName = func() map[string]Key {
	m := make(map[string]Key, len(names)+len(aliases))
	for k, n := range names {
		m[n] = k
	}
	for n, k := range aliases {
		m[n] = k
	}
	return m
}()

func (k Key) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// Parse resolves a key name (canonical or alias, case-insensitive) to a Key.
func Parse(name string) (Key, error) {
	if k, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown key name %q", name)
}

// IsModifier reports whether k is a modifier key (shift, control, alt, meta
// or command).
func (k Key) IsModifier() bool {
	switch k {
	case LeftShift, RightShift, LeftControl, RightControl, LeftAlt, RightAlt,
		LeftMeta, RightMeta, LeftCommand, RightCommand:
		return true
	}
	return false
}

// All returns every logical key in enumeration order.
func All() []Key {
	out := make([]Key, 0, numKeys)
	for k := Key(0); k < numKeys; k++ {
		out = append(out, k)
	}
	return out
}
