package injector

import (
	"context"
	"time"

	"github.com/tapwright/tapwright/key"
)

// Default shortcut timing. OS shortcut recognition is timing sensitive;
// these values approximate a human-speed key chord.
const (
	DefaultHold     = 100 * time.Millisecond
	DefaultInterKey = 50 * time.Millisecond
	DefaultSettle   = 200 * time.Millisecond
)

// Shortcut describes one main key tapped while modifiers are held, with the
// pauses the receiving side needs to register the chord.
type Shortcut struct {
	Key       key.Key
	Modifiers []key.Key // pressed in order, released in reverse
	Hold      time.Duration
	InterKey  time.Duration
	Settle    time.Duration
}

// NewShortcut builds a Shortcut with default timing. Modifiers are pressed
// in the order given.
func NewShortcut(main key.Key, modifiers ...key.Key) Shortcut {
	return Shortcut{
		Key:       main,
		Modifiers: modifiers,
		Hold:      DefaultHold,
		InterKey:  DefaultInterKey,
		Settle:    DefaultSettle,
	}
}

// SendShortcut performs the ordered press/hold/release sequence for sc:
// each modifier is pressed with an InterKey pause after it so the OS
// registers it as held, the main key is tapped with the Hold pause, then
// the modifiers are released in reverse order, again InterKey apart, and a
// final Settle pause lets the receiver finish processing.
//
// If an injection step fails mid-sequence, every modifier and the main key
// get best-effort release events (errors ignored) before the original error
// is returned, so no key is left logically held by this call.
func (in *Injector) SendShortcut(ctx context.Context, sc Shortcut) error {
	in.log.Debug("sending shortcut", "key", sc.Key, "modifiers", sc.Modifiers)

	for _, m := range sc.Modifiers {
		if err := in.SendKey(m, true); err != nil {
			in.releaseAll(sc)
			return err
		}
		if err := wait(ctx, sc.InterKey); err != nil {
			return err
		}
	}

	if err := in.SendKey(sc.Key, true); err != nil {
		in.releaseAll(sc)
		return err
	}
	if err := wait(ctx, sc.Hold); err != nil {
		return err
	}
	if err := in.SendKey(sc.Key, false); err != nil {
		in.releaseAll(sc)
		return err
	}
	if err := wait(ctx, sc.InterKey); err != nil {
		return err
	}

	for i := len(sc.Modifiers) - 1; i >= 0; i-- {
		if err := in.SendKey(sc.Modifiers[i], false); err != nil {
			in.releaseAll(sc)
			return err
		}
		if err := wait(ctx, sc.InterKey); err != nil {
			return err
		}
	}

	return wait(ctx, sc.Settle)
}

// releaseAll sends release events for every key sc may have left down.
// Errors are ignored: the caller reports the failure that got us here, and a
// failed release during cleanup adds nothing actionable.
func (in *Injector) releaseAll(sc Shortcut) {
	in.log.Warn("shortcut failed mid-sequence, releasing held keys", "key", sc.Key)
	for _, m := range sc.Modifiers {
		_ = in.SendKey(m, false)
	}
	_ = in.SendKey(sc.Key, false)
}

// SelectAll sends the platform's select-all chord (control/command + A).
func (in *Injector) SelectAll(ctx context.Context) error {
	return in.SendShortcut(ctx, NewShortcut(key.A, PrimaryModifier()))
}

// CommandPalette sends the editor command-palette chord
// (control/command + shift + P).
func (in *Injector) CommandPalette(ctx context.Context) error {
	return in.SendShortcut(ctx, NewShortcut(key.P, PrimaryModifier(), key.LeftShift))
}
