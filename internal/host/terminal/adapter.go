package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/input/key"
)

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
	tcell.KeyPause:      key.KeyPause,
	tcell.KeyPrint:      key.KeyPrintScreen,
}

// runeKeys maps unshifted characters on a US layout.
var runeKeys = map[rune]key.Key{
	' ':  key.KeySpace,
	'-':  key.KeyMinus,
	'=':  key.KeyEquals,
	'[':  key.KeyLBracket,
	']':  key.KeyRBracket,
	'\\': key.KeyBackslash,
	';':  key.KeySemicolon,
	'\'': key.KeyApostrophe,
	'`':  key.KeyGrave,
	',':  key.KeyComma,
	'.':  key.KeyPeriod,
	'/':  key.KeySlash,
}

// shiftedRunes maps characters typed with shift on a US layout.
var shiftedRunes = map[rune]key.Key{
	'!': key.Key1,
	'@': key.Key2,
	'#': key.Key3,
	'$': key.Key4,
	'%': key.Key5,
	'^': key.Key6,
	'&': key.Key7,
	'*': key.Key8,
	'(': key.Key9,
	')': key.Key0,
	'_': key.KeyMinus,
	'+': key.KeyEquals,
	'{': key.KeyLBracket,
	'}': key.KeyRBracket,
	'|': key.KeyBackslash,
	':': key.KeySemicolon,
	'"': key.KeyApostrophe,
	'~': key.KeyGrave,
	'<': key.KeyComma,
	'>': key.KeyPeriod,
	'?': key.KeySlash,
}

// Translate maps a tcell key event to a virtual key and modifiers.
// It returns false for input with no key equivalent, such as non-ASCII
// runes.
func Translate(ev *tcell.EventKey) (key.Key, key.Modifier, bool) {
	mods := convertMod(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		k, shifted, ok := translateRune(ev.Rune())
		if shifted {
			mods = mods.With(key.ModShift)
		}
		return k, mods, ok
	}

	if ev.Key() == tcell.KeyBacktab {
		return key.KeyTab, mods.With(key.ModShift), true
	}
	if k, ok := specialKeys[ev.Key()]; ok {
		return k, mods, true
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return key.KeyA + key.Key(ev.Key()-tcell.KeyCtrlA), mods.With(key.ModCtrl), true
	}
	if ev.Key() == tcell.KeyCtrlSpace {
		return key.KeySpace, mods.With(key.ModCtrl), true
	}
	return key.KeyNone, 0, false
}

func translateRune(r rune) (k key.Key, shifted, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return key.KeyA + key.Key(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return key.KeyA + key.Key(r-'A'), true, true
	case r >= '0' && r <= '9':
		return key.Key0 + key.Key(r-'0'), false, true
	}
	if k, ok := runeKeys[r]; ok {
		return k, false, true
	}
	if k, ok := shiftedRunes[r]; ok {
		return k, true, true
	}
	return key.KeyNone, false, false
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModLogo
	}
	return mods
}

// Events converts one terminal key tap into a press and a release.
func Events(ev *tcell.EventKey) ([]key.Event, bool) {
	k, mods, ok := Translate(ev)
	if !ok {
		return nil, false
	}
	scan, _ := key.ScanCodeOf(k)
	press := key.NewEvent(scan, key.Pressed, k, mods)
	release := press
	release.State = key.Released
	if when := ev.When(); !when.IsZero() {
		press.Timestamp = when
		release.Timestamp = when
	}
	return []key.Event{press, release}, true
}
