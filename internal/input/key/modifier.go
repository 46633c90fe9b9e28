package key

import "strings"

// Modifier is the set of modifier keys held during an event.
type Modifier uint8

// Modifier flags. The order matches the modifier attributes of a key pattern.
const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModLogo

	ModNone Modifier = 0
)

type modifierName struct {
	mod   Modifier
	word  string // event text and keymap attribute name
	long  string
	short string
}

// modifierNames lists the modifiers in display order.
var modifierNames = [...]modifierName{
	{ModCtrl, "ctrl", "Ctrl", "C"},
	{ModAlt, "alt", "Alt", "A"},
	{ModShift, "shift", "Shift", "S"},
	{ModLogo, "logo", "Logo", "L"},
}

// modifierAliases maps lowercase names accepted on input to modifiers.
// "d" is Vim's name for the command key.
var modifierAliases = map[string]Modifier{
	"c": ModCtrl, "control": ModCtrl,
	"a": ModAlt, "option": ModAlt, "opt": ModAlt,
	"s": ModShift,
	"l": ModLogo, "m": ModLogo, "meta": ModLogo, "super": ModLogo, "win": ModLogo, "cmd": ModLogo, "command": ModLogo, "d": ModLogo,
}

func init() {
	for _, n := range modifierNames {
		modifierAliases[n.word] = n.mod
	}
}

// Has reports whether every flag in mod is set.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

func (m Modifier) HasShift() bool { return m.Has(ModShift) }
func (m Modifier) HasCtrl() bool  { return m.Has(ModCtrl) }
func (m Modifier) HasAlt() bool   { return m.Has(ModAlt) }
func (m Modifier) HasLogo() bool  { return m.Has(ModLogo) }

// With returns m plus mod.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m minus mod.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// Set adds mod when on is true and removes it otherwise.
func (m Modifier) Set(mod Modifier, on bool) Modifier {
	if on {
		return m.With(mod)
	}
	return m.Without(mod)
}

// IsEmpty reports whether no modifier is held.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Words returns the lowercase names of the held modifiers, e.g.
// ["ctrl", "shift"]. ParseEvent accepts each of them as a bare word.
func (m Modifier) Words() []string {
	return m.names(func(n modifierName) string { return n.word })
}

// String returns a form like "Ctrl+Alt".
func (m Modifier) String() string {
	return strings.Join(m.names(func(n modifierName) string { return n.long }), "+")
}

// ShortString returns the compact Vim-like form, e.g. "C-A-S-L".
func (m Modifier) ShortString() string {
	return strings.Join(m.names(func(n modifierName) string { return n.short }), "-")
}

func (m Modifier) names(pick func(modifierName) string) []string {
	var out []string
	for _, n := range modifierNames {
		if m.Has(n.mod) {
			out = append(out, pick(n))
		}
	}
	return out
}

// ModifierFromName returns the modifier called name, ignoring case, or
// ModNone when the name is unknown.
func ModifierFromName(name string) Modifier {
	return modifierAliases[strings.ToLower(strings.TrimSpace(name))]
}

// ParseModifiers parses a list such as "Ctrl+Alt" or "C-A". Unknown parts
// are ignored.
func ParseModifiers(s string) Modifier {
	sep := "+"
	if !strings.Contains(s, sep) {
		sep = "-"
	}
	var m Modifier
	for _, part := range strings.Split(s, sep) {
		m = m.With(ModifierFromName(part))
	}
	return m
}
