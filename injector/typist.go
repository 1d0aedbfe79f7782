package injector

import (
	"context"
	"time"

	"github.com/tapwright/tapwright/key"
)

// DefaultTypeDelay is the default pause between typed characters.
const DefaultTypeDelay = 100 * time.Millisecond

// TypeText types an ASCII string character by character. Letters get a shift
// wrap when uppercase, digits and spaces map directly, and anything else is
// skipped silently (no Unicode or punctuation composition). Each character is
// a press immediately followed by a release, then a delay so the receiving
// application's input buffer is not overwhelmed.
//
// An injection error aborts the remaining characters. Characters are
// atomic enough that no per-character cleanup is attempted.
func (in *Injector) TypeText(ctx context.Context, text string, delay time.Duration) error {
	in.log.Debug("typing text", "chars", len(text), "delay", delay)

	for i := 0; i < len(text); i++ {
		k, shift, ok := key.ForChar(text[i])
		if !ok {
			continue
		}
		if shift {
			if err := in.SendKey(key.LeftShift, true); err != nil {
				return err
			}
		}
		if err := in.SendKey(k, true); err != nil {
			return err
		}
		if err := in.SendKey(k, false); err != nil {
			return err
		}
		if shift {
			if err := in.SendKey(key.LeftShift, false); err != nil {
				return err
			}
		}
		if err := wait(ctx, delay); err != nil {
			return err
		}
	}
	return nil
}
