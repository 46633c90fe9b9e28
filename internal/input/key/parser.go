package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec    = errors.New("empty key specification")
	ErrInvalidSpec  = errors.New("invalid key specification")
	ErrInvalidEvent = errors.New("invalid key event")
)

// ParseKeySpec parses a key specification into a virtual key and the
// modifiers written with it.
//
// Supported formats:
//   - Key names: "a", "Enter", "Escape", "F4", "KP+", "LShift"
//   - Uppercase letters imply Shift: "A" is Shift+A
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>", "C-S-a"
func ParseKeySpec(spec string) (Key, Modifier, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return KeyNone, ModNone, ErrEmptySpec
	}

	runes := []rune(spec)
	if len(runes) == 1 && unicode.IsUpper(runes[0]) {
		if k, ok := KeyFromName(spec); ok {
			return k, ModShift, nil
		}
	}

	if k, ok := KeyFromName(spec); ok {
		return k, ModNone, nil
	}

	// Vim-style <...> notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Modifier+key format (Ctrl+S, Alt+F4)
	if strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	if strings.Contains(spec, "-") {
		return parseVimStyle(spec)
	}

	return KeyNone, ModNone, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, spec)
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc"
func parseVimStyle(inner string) (Key, Modifier, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return KeyNone, ModNone, ErrInvalidSpec
	}

	// A trailing "-" is the minus key itself: "C--"
	var parts []string
	if strings.HasSuffix(inner, "--") {
		parts = append(strings.Split(inner[:len(inner)-2], "-"), "-")
	} else {
		parts = strings.Split(inner, "-")
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d", "l":
			mods = mods.With(ModLogo)
		default:
			return KeyNone, ModNone, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseModifierStyle parses "Ctrl+S" style notation
func parseModifierStyle(spec string) (Key, Modifier, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return KeyNone, ModNone, ErrInvalidSpec
	}

	var mods Modifier

	// All but the last part are modifiers
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return KeyNone, ModNone, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(parts[len(parts)-1], mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Key, Modifier, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return KeyNone, ModNone, ErrInvalidSpec
	}

	// Vim aliases not covered by the key name table
	switch strings.ToLower(keyPart) {
	case "lt":
		return KeyComma, mods.With(ModShift), nil
	case "gt":
		return KeyPeriod, mods.With(ModShift), nil
	case "bar":
		return KeyBackslash, mods.With(ModShift), nil
	case "bslash":
		return KeyBackslash, mods, nil
	}

	k, ok := KeyFromName(keyPart)
	if !ok {
		return KeyNone, ModNone, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}
	return k, mods, nil
}

// ParseScanCode parses a decimal or 0x-prefixed hexadecimal scan code.
// Leading zeros are decimal: "030" is 30.
func ParseScanCode(s string) (ScanCode, error) {
	digits, base := strings.TrimSpace(s), 10
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits, base = digits[2:], 16
	}
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("scan code %q: %w", s, err)
	}
	return ScanCode(n), nil
}

// ParseEvent parses one line of event text.
//
// The first word is the state ("press" or "release"). The remaining words
// are, in any order:
//   - a key specification accepted by ParseKeySpec
//   - key=<name> (or virtual=<name>) to set the virtual key explicitly
//   - scan=<code> to set the scan code explicitly
//   - modifier names: shift, ctrl, alt, logo and their long aliases
//
// When no scan code is given it is looked up from the virtual key.
func ParseEvent(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Event{}, fmt.Errorf("%w: empty line", ErrInvalidEvent)
	}

	state, ok := StateFromName(fields[0])
	if !ok {
		return Event{}, fmt.Errorf("%w: unknown state %q", ErrInvalidEvent, fields[0])
	}

	var (
		k       = KeyNone
		mods    Modifier
		scan    ScanCode
		hasKey  bool
		hasScan bool
	)

	for _, tok := range fields[1:] {
		name, value, isAttr := strings.Cut(tok, "=")
		if isAttr {
			switch strings.ToLower(name) {
			case "scan":
				s, err := ParseScanCode(value)
				if err != nil {
					return Event{}, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
				}
				scan, hasScan = s, true
			case "key", "virtual":
				vk, ok := KeyFromName(value)
				if !ok {
					return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidEvent, value)
				}
				if hasKey {
					return Event{}, fmt.Errorf("%w: more than one key in %q", ErrInvalidEvent, line)
				}
				k, hasKey = vk, true
			default:
				return Event{}, fmt.Errorf("%w: unknown attribute %q", ErrInvalidEvent, name)
			}
			continue
		}

		// Bare modifier words; single letters are keys, not modifiers.
		if len(tok) > 1 {
			if mod := ModifierFromName(tok); mod != ModNone {
				mods = mods.With(mod)
				continue
			}
		}

		vk, specMods, err := ParseKeySpec(tok)
		if err != nil {
			return Event{}, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
		}
		if hasKey {
			return Event{}, fmt.Errorf("%w: more than one key in %q", ErrInvalidEvent, line)
		}
		k, hasKey = vk, true
		mods = mods.With(specMods)
	}

	if !hasScan {
		if s, ok := ScanCodeOf(k); ok {
			scan = s
		} else if !hasKey {
			return Event{}, fmt.Errorf("%w: no key or scan code in %q", ErrInvalidEvent, line)
		}
	}

	return NewEvent(scan, state, k, mods), nil
}

// MustParseEvent parses event text and panics on error.
// Use only for known-valid text in tests and initialization code.
func MustParseEvent(line string) Event {
	e, err := ParseEvent(line)
	if err != nil {
		panic("invalid key event: " + line + ": " + err.Error())
	}
	return e
}
