package key

import "fmt"

// ScanCode is the hardware code of a physical key. Values follow the PC
// scan code set 1; extended keys carry the 0xE0 prefix in the high byte.
type ScanCode uint32

// String returns the decimal scan code.
func (s ScanCode) String() string {
	return fmt.Sprintf("%d", uint32(s))
}

var scanCodes = map[Key]ScanCode{
	KeyEscape:     0x01,
	Key1:          0x02,
	Key2:          0x03,
	Key3:          0x04,
	Key4:          0x05,
	Key5:          0x06,
	Key6:          0x07,
	Key7:          0x08,
	Key8:          0x09,
	Key9:          0x0A,
	Key0:          0x0B,
	KeyMinus:      0x0C,
	KeyEquals:     0x0D,
	KeyBackspace:  0x0E,
	KeyTab:        0x0F,
	KeyQ:          0x10,
	KeyW:          0x11,
	KeyE:          0x12,
	KeyR:          0x13,
	KeyT:          0x14,
	KeyY:          0x15,
	KeyU:          0x16,
	KeyI:          0x17,
	KeyO:          0x18,
	KeyP:          0x19,
	KeyLBracket:   0x1A,
	KeyRBracket:   0x1B,
	KeyEnter:      0x1C,
	KeyLCtrl:      0x1D,
	KeyA:          0x1E,
	KeyS:          0x1F,
	KeyD:          0x20,
	KeyF:          0x21,
	KeyG:          0x22,
	KeyH:          0x23,
	KeyJ:          0x24,
	KeyK:          0x25,
	KeyL:          0x26,
	KeySemicolon:  0x27,
	KeyApostrophe: 0x28,
	KeyGrave:      0x29,
	KeyLShift:     0x2A,
	KeyBackslash:  0x2B,
	KeyZ:          0x2C,
	KeyX:          0x2D,
	KeyC:          0x2E,
	KeyV:          0x2F,
	KeyB:          0x30,
	KeyN:          0x31,
	KeyM:          0x32,
	KeyComma:      0x33,
	KeyPeriod:     0x34,
	KeySlash:      0x35,
	KeyRShift:     0x36,
	KeyKPMultiply: 0x37,
	KeyLAlt:       0x38,
	KeySpace:      0x39,
	KeyCapsLock:   0x3A,
	KeyF1:         0x3B,
	KeyF2:         0x3C,
	KeyF3:         0x3D,
	KeyF4:         0x3E,
	KeyF5:         0x3F,
	KeyF6:         0x40,
	KeyF7:         0x41,
	KeyF8:         0x42,
	KeyF9:         0x43,
	KeyF10:        0x44,
	KeyNumLock:    0x45,
	KeyScrollLock: 0x46,
	KeyKP7:        0x47,
	KeyKP8:        0x48,
	KeyKP9:        0x49,
	KeyKPSubtract: 0x4A,
	KeyKP4:        0x4B,
	KeyKP5:        0x4C,
	KeyKP6:        0x4D,
	KeyKPAdd:      0x4E,
	KeyKP1:        0x4F,
	KeyKP2:        0x50,
	KeyKP3:        0x51,
	KeyKP0:        0x52,
	KeyKPDecimal:  0x53,
	KeyF11:        0x57,
	KeyF12:        0x58,

	KeyKPEnter:     0xE01C,
	KeyRCtrl:       0xE01D,
	KeyKPDivide:    0xE035,
	KeyPrintScreen: 0xE037,
	KeyRAlt:        0xE038,
	KeyPause:       0xE045,
	KeyHome:        0xE047,
	KeyUp:          0xE048,
	KeyPageUp:      0xE049,
	KeyLeft:        0xE04B,
	KeyRight:       0xE04D,
	KeyEnd:         0xE04F,
	KeyDown:        0xE050,
	KeyPageDown:    0xE051,
	KeyInsert:      0xE052,
	KeyDelete:      0xE053,
	KeyLLogo:       0xE05B,
	KeyRLogo:       0xE05C,
}

var keysByScanCode = func() map[ScanCode]Key {
	m := make(map[ScanCode]Key, len(scanCodes))
	for k, s := range scanCodes {
		m[s] = k
	}
	return m
}()

// ScanCodeOf returns the US-layout scan code of a virtual key.
// Returns 0 and false for KeyNone and keys without a scan code.
func ScanCodeOf(k Key) (ScanCode, bool) {
	s, ok := scanCodes[k]
	return s, ok
}

// KeyOfScanCode returns the US-layout virtual key for a scan code.
func KeyOfScanCode(s ScanCode) (Key, bool) {
	k, ok := keysByScanCode[s]
	return k, ok
}
