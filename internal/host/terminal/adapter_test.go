package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/input/key"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		key   key.Key
		mods  key.Modifier
		known bool
	}{
		{"lower letter", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), key.KeyW, 0, true},
		{"upper letter", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), key.KeyW, key.ModShift, true},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), key.Key7, 0, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), key.KeySpace, 0, true},
		{"punctuation", tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModNone), key.KeySlash, 0, true},
		{"shifted symbol", tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone), key.KeySlash, key.ModShift, true},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), key.KeyX, key.ModAlt, true},
		{"meta is logo", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModMeta), key.KeyX, key.ModLogo, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.KeyEscape, 0, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.KeyEnter, 0, true},
		{"arrow with shift", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), key.KeyUp, key.ModShift, true},
		{"function", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.KeyF5, 0, true},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), key.KeyTab, key.ModShift, true},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), key.KeyQ, key.ModCtrl, true},
		{"non-ascii", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), key.KeyNone, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, mods, ok := Translate(tt.ev)
			require.Equal(t, tt.known, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.key, k)
			assert.Equal(t, tt.mods, mods)
		})
	}
}

func TestEventsTap(t *testing.T) {
	evs, ok := Events(tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModCtrl))
	require.True(t, ok)
	require.Len(t, evs, 2)

	press, release := evs[0], evs[1]
	assert.True(t, press.IsPressed())
	assert.True(t, release.IsReleased())
	for _, e := range evs {
		assert.Equal(t, key.KeyA, e.Key)
		assert.Equal(t, key.ScanCode(30), e.ScanCode)
		assert.Equal(t, key.ModShift|key.ModCtrl, e.Modifiers)
	}
	assert.Equal(t, press.Timestamp, release.Timestamp)

	_, ok = Events(tcell.NewEventKey(tcell.KeyRune, '€', tcell.ModNone))
	assert.False(t, ok)
}
