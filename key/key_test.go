package key_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapwright/tapwright/key"
)

func TestForChar(t *testing.T) {
	tests := []struct {
		char  byte
		want  key.Key
		shift bool
		ok    bool
	}{
		{'a', key.A, false, true},
		{'z', key.Z, false, true},
		{'A', key.A, true, true},
		{'Z', key.Z, true, true},
		{'0', key.Num0, false, true},
		{'9', key.Num9, false, true},
		{' ', key.Space, false, true},
		{'#', 0, false, false},
		{'!', 0, false, false},
		{'\n', 0, false, false},
		{'\t', 0, false, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.char), func(t *testing.T) {
			k, shift, ok := key.ForChar(tt.char)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, k)
				assert.Equal(t, tt.shift, shift)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, k := range key.All() {
		got, err := key.Parse(k.String())
		require.NoError(t, err, "key %s", k)
		assert.Equal(t, k, got)
	}
}

func TestParseAliases(t *testing.T) {
	tests := []struct {
		name string
		want key.Key
	}{
		{"ctrl", key.LeftControl},
		{"control", key.LeftControl},
		{"shift", key.LeftShift},
		{"alt", key.LeftAlt},
		{"option", key.LeftAlt},
		{"cmd", key.LeftCommand},
		{"command", key.LeftCommand},
		{"super", key.LeftMeta},
		{"win", key.LeftMeta},
		{"esc", key.Escape},
		{"return", key.Enter},
		{" CTRL ", key.LeftControl}, // case and whitespace insensitive
	}
	for _, tt := range tests {
		got, err := key.Parse(tt.name)
		require.NoError(t, err, "alias %q", tt.name)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := key.Parse("f13")
	assert.Error(t, err)
}

func TestIsModifier(t *testing.T) {
	mods := 0
	for _, k := range key.All() {
		if k.IsModifier() {
			mods++
		}
	}
	// shift, control, alt, meta and command, left and right each
	assert.Equal(t, 10, mods)
	assert.True(t, key.LeftShift.IsModifier())
	assert.False(t, key.A.IsModifier())
	assert.False(t, key.Enter.IsModifier())
}

func TestEveryKeyHasName(t *testing.T) {
	seen := map[string]key.Key{}
	for _, k := range key.All() {
		name := k.String()
		assert.NotContains(t, name, "key(", "key %d has no name", uint8(k))
		if prev, dup := seen[name]; dup {
			t.Errorf("name %q used by both %d and %d", name, prev, k)
		}
		seen[name] = k
	}
}
