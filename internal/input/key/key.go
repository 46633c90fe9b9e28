package key

import (
	"fmt"
	"strings"
)

// Key is a virtual key code. It identifies a key independent of the
// keyboard layout; KeyNone means the host reported no virtual code.
type Key uint16

const (
	// KeyNone represents no virtual key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Other special keys
	KeySpace
	KeyPause
	KeyPrintScreen
	KeyScrollLock
	KeyNumLock
	KeyCapsLock

	// Keypad keys
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPAdd
	KeyKPSubtract
	KeyKPMultiply
	KeyKPDivide
	KeyKPDecimal
	KeyKPEnter

	// Modifier keys, as keys in their own right
	KeyLShift
	KeyRShift
	KeyLCtrl
	KeyRCtrl
	KeyLAlt
	KeyRAlt
	KeyLLogo
	KeyRLogo

	// Punctuation
	KeyMinus
	KeyEquals
	KeyLBracket
	KeyRBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash

	// Digit row
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	keyCount
)

// keyNames holds the canonical display name of each key.
var keyNames = [keyCount]string{
	KeyNone:        "None",
	KeyEscape:      "Escape",
	KeyEnter:       "Enter",
	KeyTab:         "Tab",
	KeyBackspace:   "Backspace",
	KeyDelete:      "Delete",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyPageUp:      "PageUp",
	KeyPageDown:    "PageDown",
	KeyUp:          "Up",
	KeyDown:        "Down",
	KeyLeft:        "Left",
	KeyRight:       "Right",
	KeyF1:          "F1",
	KeyF2:          "F2",
	KeyF3:          "F3",
	KeyF4:          "F4",
	KeyF5:          "F5",
	KeyF6:          "F6",
	KeyF7:          "F7",
	KeyF8:          "F8",
	KeyF9:          "F9",
	KeyF10:         "F10",
	KeyF11:         "F11",
	KeyF12:         "F12",
	KeySpace:       "Space",
	KeyPause:       "Pause",
	KeyPrintScreen: "PrintScreen",
	KeyScrollLock:  "ScrollLock",
	KeyNumLock:     "NumLock",
	KeyCapsLock:    "CapsLock",
	KeyKP0:         "KP0",
	KeyKP1:         "KP1",
	KeyKP2:         "KP2",
	KeyKP3:         "KP3",
	KeyKP4:         "KP4",
	KeyKP5:         "KP5",
	KeyKP6:         "KP6",
	KeyKP7:         "KP7",
	KeyKP8:         "KP8",
	KeyKP9:         "KP9",
	KeyKPAdd:       "KP+",
	KeyKPSubtract:  "KP-",
	KeyKPMultiply:  "KP*",
	KeyKPDivide:    "KP/",
	KeyKPDecimal:   "KP.",
	KeyKPEnter:     "KPEnter",
	KeyLShift:      "LShift",
	KeyRShift:      "RShift",
	KeyLCtrl:       "LCtrl",
	KeyRCtrl:       "RCtrl",
	KeyLAlt:        "LAlt",
	KeyRAlt:        "RAlt",
	KeyLLogo:       "LLogo",
	KeyRLogo:       "RLogo",
	KeyMinus:       "Minus",
	KeyEquals:      "Equals",
	KeyLBracket:    "LBracket",
	KeyRBracket:    "RBracket",
	KeyBackslash:   "Backslash",
	KeySemicolon:   "Semicolon",
	KeyApostrophe:  "Apostrophe",
	KeyGrave:       "Grave",
	KeyComma:       "Comma",
	KeyPeriod:      "Period",
	KeySlash:       "Slash",
}

func init() {
	for i := Key0; i <= Key9; i++ {
		keyNames[i] = string(rune('0' + (i - Key0)))
	}
	for i := KeyA; i <= KeyZ; i++ {
		keyNames[i] = string(rune('A' + (i - KeyA)))
	}
	for k := Key(0); k < keyCount; k++ {
		name := strings.ToLower(keyNames[k])
		if _, exists := keyNameMap[name]; !exists {
			keyNameMap[name] = k
		}
	}
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsValid returns true if k is a known virtual key (including KeyNone).
func (k Key) IsValid() bool {
	return k < keyCount
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsKeypadKey returns true if this is a keypad key.
func (k Key) IsKeypadKey() bool {
	return k >= KeyKP0 && k <= KeyKPEnter
}

// IsModifierKey returns true for the Shift, Ctrl, Alt and Logo keys themselves.
func (k Key) IsModifierKey() bool {
	return k >= KeyLShift && k <= KeyRLogo
}

// IsLetter returns true for A-Z.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true for the digit row 0-9.
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// keyNameMap maps key names (lowercase) to Key values. Canonical names are
// added in init; the entries below are aliases.
var keyNameMap = map[string]Key{
	"esc":        KeyEscape,
	"return":     KeyEnter,
	"cr":         KeyEnter,
	"bs":         KeyBackspace,
	"del":        KeyDelete,
	"ins":        KeyInsert,
	"pgup":       KeyPageUp,
	"pgdn":       KeyPageDown,
	"kpplus":     KeyKPAdd,
	"kpminus":    KeyKPSubtract,
	"kpmultiply": KeyKPMultiply,
	"kpdivide":   KeyKPDivide,
	"kpdecimal":  KeyKPDecimal,
	"lsuper":     KeyLLogo,
	"rsuper":     KeyRLogo,
	"lwin":       KeyLLogo,
	"rwin":       KeyRLogo,
	"lcontrol":   KeyLCtrl,
	"rcontrol":   KeyRCtrl,
	"-":          KeyMinus,
	"=":          KeyEquals,
	"[":          KeyLBracket,
	"]":          KeyRBracket,
	"\\":         KeyBackslash,
	";":          KeySemicolon,
	"'":          KeyApostrophe,
	"`":          KeyGrave,
	",":          KeyComma,
	".":          KeyPeriod,
	"/":          KeySlash,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone and false if the name is not recognized.
func KeyFromName(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	k, ok := keyNameMap[name]
	return k, ok
}
