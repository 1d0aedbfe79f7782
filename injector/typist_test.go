package injector_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapwright/tapwright/injector"
	"github.com/tapwright/tapwright/key"
	"github.com/tapwright/tapwright/keymap"
)

func TestTypeTextShiftWrapsOnlyUppercase(t *testing.T) {
	b := &recordingBackend{}
	in := injector.NewWithBackend(b)

	require.NoError(t, in.TypeText(context.Background(), "Hello", 0))

	assert.Equal(t, []event{
		press(key.LeftShift),
		press(key.H),
		release(key.H),
		release(key.LeftShift),
		press(key.E), release(key.E),
		press(key.L), release(key.L),
		press(key.L), release(key.L),
		press(key.O), release(key.O),
	}, b.events)
}

func TestTypeTextDigitsAndSpace(t *testing.T) {
	b := &recordingBackend{}
	in := injector.NewWithBackend(b)

	require.NoError(t, in.TypeText(context.Background(), "a 1", 0))

	assert.Equal(t, []event{
		press(key.A), release(key.A),
		press(key.Space), release(key.Space),
		press(key.Num1), release(key.Num1),
	}, b.events)
}

func TestTypeTextSkipsUnsupportedCharacters(t *testing.T) {
	b := &recordingBackend{}
	in := injector.NewWithBackend(b)

	require.NoError(t, in.TypeText(context.Background(), "#", 0))
	assert.Empty(t, b.events, "unsupported character must produce no events")

	require.NoError(t, in.TypeText(context.Background(), "a#b", 0))
	assert.Equal(t, []event{
		press(key.A), release(key.A),
		press(key.B), release(key.B),
	}, b.events, "typing continues past the skipped character")
}

func TestTypeTextAbortsOnInjectionError(t *testing.T) {
	boom := errors.New("injection rejected")
	b := &recordingBackend{}
	b.failInject = func(code uint32, pressed bool) error {
		if code == keymap.WindowsVK[key.B] && pressed {
			return boom
		}
		return nil
	}
	in := injector.NewWithBackend(b)

	err := in.TypeText(context.Background(), "abc", 0)
	require.ErrorIs(t, err, boom)

	// "a" completed, "b" failed on press, "c" never attempted.
	assert.Equal(t, []event{press(key.A), release(key.A)}, b.events)
}

func TestTypeTextCancellation(t *testing.T) {
	b := &recordingBackend{}
	in := injector.NewWithBackend(b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := in.TypeText(ctx, "abc", injector.DefaultTypeDelay)
	assert.ErrorIs(t, err, context.Canceled)
}
