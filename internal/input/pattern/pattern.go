package pattern

import (
	"strings"

	"github.com/dshills/keychord/internal/input/key"
)

// Pattern is an immutable, partially specified filter over key events.
// The zero value is the fully wildcard pattern.
type Pattern struct {
	scanCode Field[key.ScanCode]
	state    Field[key.State]
	virtual  Field[key.Key]
	shift    Field[bool]
	ctrl     Field[bool]
	alt      Field[bool]
	logo     Field[bool]
}

// Wildcard returns the pattern that matches every event.
func Wildcard() Pattern {
	return Pattern{}
}

// FromEvent returns the fully concrete pattern describing e.
func FromEvent(e key.Event) Pattern {
	return Pattern{
		scanCode: Exactly(e.ScanCode),
		state:    Exactly(e.State),
		virtual:  Exactly(e.Key),
		shift:    Exactly(e.Modifiers.HasShift()),
		ctrl:     Exactly(e.Modifiers.HasCtrl()),
		alt:      Exactly(e.Modifiers.HasAlt()),
		logo:     Exactly(e.Modifiers.HasLogo()),
	}
}

// WithScanCode returns a copy constrained to scan code s.
func (p Pattern) WithScanCode(s key.ScanCode) Pattern {
	p.scanCode = Exactly(s)
	return p
}

// WithState returns a copy constrained to state s.
func (p Pattern) WithState(s key.State) Pattern {
	p.state = Exactly(s)
	return p
}

// WithKey returns a copy constrained to virtual key k.
func (p Pattern) WithKey(k key.Key) Pattern {
	p.virtual = Exactly(k)
	return p
}

// WithShift returns a copy constrained to the given Shift flag.
func (p Pattern) WithShift(on bool) Pattern {
	p.shift = Exactly(on)
	return p
}

// WithCtrl returns a copy constrained to the given Ctrl flag.
func (p Pattern) WithCtrl(on bool) Pattern {
	p.ctrl = Exactly(on)
	return p
}

// WithAlt returns a copy constrained to the given Alt flag.
func (p Pattern) WithAlt(on bool) Pattern {
	p.alt = Exactly(on)
	return p
}

// WithLogo returns a copy constrained to the given Logo flag.
func (p Pattern) WithLogo(on bool) Pattern {
	p.logo = Exactly(on)
	return p
}

// WithModifiers returns a copy with all four modifier flags made concrete
// from mods.
func (p Pattern) WithModifiers(mods key.Modifier) Pattern {
	return p.
		WithShift(mods.HasShift()).
		WithCtrl(mods.HasCtrl()).
		WithAlt(mods.HasAlt()).
		WithLogo(mods.HasLogo())
}

// Fields is the field set of a Pattern, for code that builds patterns
// field by field. Zero-valued fields are wildcards.
type Fields struct {
	ScanCode Field[key.ScanCode]
	State    Field[key.State]
	Virtual  Field[key.Key]
	Shift    Field[bool]
	Ctrl     Field[bool]
	Alt      Field[bool]
	Logo     Field[bool]
}

// New builds a pattern from its fields.
func New(f Fields) Pattern {
	return Pattern{
		scanCode: f.ScanCode,
		state:    f.State,
		virtual:  f.Virtual,
		shift:    f.Shift,
		ctrl:     f.Ctrl,
		alt:      f.Alt,
		logo:     f.Logo,
	}
}

// Fields returns the pattern's fields.
func (p Pattern) Fields() Fields {
	return Fields{
		ScanCode: p.scanCode,
		State:    p.state,
		Virtual:  p.virtual,
		Shift:    p.shift,
		Ctrl:     p.ctrl,
		Alt:      p.alt,
		Logo:     p.logo,
	}
}

// ScanCode returns the scan code field.
func (p Pattern) ScanCode() Field[key.ScanCode] { return p.scanCode }

// State returns the state field.
func (p Pattern) State() Field[key.State] { return p.state }

// Key returns the virtual key field.
func (p Pattern) Key() Field[key.Key] { return p.virtual }

// Shift returns the Shift field.
func (p Pattern) Shift() Field[bool] { return p.shift }

// Ctrl returns the Ctrl field.
func (p Pattern) Ctrl() Field[bool] { return p.ctrl }

// Alt returns the Alt field.
func (p Pattern) Alt() Field[bool] { return p.alt }

// Logo returns the Logo field.
func (p Pattern) Logo() Field[bool] { return p.logo }

// IsWildcard returns true if no field is constrained.
func (p Pattern) IsWildcard() bool {
	return p == Pattern{}
}

// Specificity returns the number of concrete fields.
func (p Pattern) Specificity() int {
	n := 0
	for _, set := range []bool{
		p.scanCode.set, p.state.set, p.virtual.set,
		p.shift.set, p.ctrl.set, p.alt.set, p.logo.set,
	} {
		if set {
			n++
		}
	}
	return n
}

// Equal reports structural equality: every field equal, wildcards included.
func (p Pattern) Equal(other Pattern) bool {
	return p == other
}

// Subsumes returns true if p is at least as general as other: every
// concrete field of p is concrete in other with the same value.
func (p Pattern) Subsumes(other Pattern) bool {
	return p.scanCode.Subsumes(other.scanCode) &&
		p.state.Subsumes(other.state) &&
		p.virtual.Subsumes(other.virtual) &&
		p.shift.Subsumes(other.shift) &&
		p.ctrl.Subsumes(other.ctrl) &&
		p.alt.Subsumes(other.alt) &&
		p.logo.Subsumes(other.logo)
}

// Matches returns true if the concrete event e satisfies every concrete
// field of p.
func (p Pattern) Matches(e key.Event) bool {
	return p.scanCode.Admits(e.ScanCode) &&
		p.state.Admits(e.State) &&
		p.virtual.Admits(e.Key) &&
		p.shift.Admits(e.Modifiers.HasShift()) &&
		p.ctrl.Admits(e.Modifiers.HasCtrl()) &&
		p.alt.Admits(e.Modifiers.HasAlt()) &&
		p.logo.Admits(e.Modifiers.HasLogo())
}

// String returns the concrete fields in a fixed order, e.g.
// "{scan=30 state=pressed shift=true}", or "{*}" for the wildcard.
func (p Pattern) String() string {
	var parts []string
	if v, ok := p.scanCode.Get(); ok {
		parts = append(parts, "scan="+v.String())
	}
	if v, ok := p.state.Get(); ok {
		parts = append(parts, "state="+v.String())
	}
	if v, ok := p.virtual.Get(); ok {
		parts = append(parts, "key="+v.String())
	}
	if !p.shift.IsAny() {
		parts = append(parts, "shift="+p.shift.String())
	}
	if !p.ctrl.IsAny() {
		parts = append(parts, "ctrl="+p.ctrl.String())
	}
	if !p.alt.IsAny() {
		parts = append(parts, "alt="+p.alt.String())
	}
	if !p.logo.IsAny() {
		parts = append(parts, "logo="+p.logo.String())
	}
	if len(parts) == 0 {
		return "{*}"
	}
	return "{" + strings.Join(parts, " ") + "}"
}
