package keymap

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/pattern"
)

// Attribute names understood by ParsePattern.
const (
	AttrScan    = "scan"
	AttrVirtual = "virtual"
	AttrState   = "state"
	AttrShift   = "shift"
	AttrCtrl    = "ctrl"
	AttrAlt     = "alt"
	AttrLogo    = "logo"
	AttrAction  = "action"
)

const wildcard = "*"

var knownAttrs = map[string]bool{
	AttrScan:    true,
	AttrVirtual: true,
	AttrState:   true,
	AttrShift:   true,
	AttrCtrl:    true,
	AttrAlt:     true,
	AttrLogo:    true,
}

// Attrs is the attribute set of one key entry, as decoded from a document.
type Attrs map[string]any

// Unknown returns the attribute names ParsePattern ignores, sorted.
func (a Attrs) Unknown() []string {
	var out []string
	for name := range a {
		if !knownAttrs[strings.ToLower(name)] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// lookup finds an attribute by case-insensitive name.
func (a Attrs) lookup(name string) (any, bool) {
	if v, ok := a[name]; ok {
		return v, true
	}
	for k, v := range a {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// attrFault is an attribute-level failure before it is placed in a document.
type attrFault struct {
	attr  string
	value any
	err   error
}

// ParsePattern converts one key's attributes into a pattern.
//
// Missing attributes take their defaults: scan and virtual are wildcards,
// state is pressed and every modifier is false. Every bad attribute is
// reported; the pattern is only valid when the error slice is empty. The
// errors carry no document position (Control and Key are -1).
func ParsePattern(a Attrs) (pattern.Pattern, []error) {
	faults := parseAttrs(a)
	if len(faults) == 0 {
		return buildPattern(a), nil
	}
	errs := make([]error, len(faults))
	for i, f := range faults {
		errs[i] = &AttrError{Control: -1, Key: -1, Attr: f.attr, Value: f.value, Err: f.err}
	}
	return pattern.Pattern{}, errs
}

func parseAttrs(a Attrs) []attrFault {
	var faults []attrFault
	check := func(name string, parse func(any) error) {
		v, ok := a.lookup(name)
		if !ok {
			return
		}
		if err := parse(v); err != nil {
			faults = append(faults, attrFault{attr: name, value: v, err: err})
		}
	}
	check(AttrScan, func(v any) error { _, err := scanField(v); return err })
	check(AttrVirtual, func(v any) error { _, err := virtualField(v); return err })
	check(AttrState, func(v any) error { _, err := stateField(v); return err })
	for _, m := range []string{AttrShift, AttrCtrl, AttrAlt, AttrLogo} {
		check(m, func(v any) error { _, err := boolField(v); return err })
	}
	return faults
}

// buildPattern assumes parseAttrs reported no faults.
func buildPattern(a Attrs) pattern.Pattern {
	f := pattern.Fields{
		ScanCode: pattern.Any[key.ScanCode](),
		State:    pattern.Exactly(key.Pressed),
		Virtual:  pattern.Any[key.Key](),
		Shift:    pattern.Exactly(false),
		Ctrl:     pattern.Exactly(false),
		Alt:      pattern.Exactly(false),
		Logo:     pattern.Exactly(false),
	}
	if v, ok := a.lookup(AttrScan); ok {
		f.ScanCode, _ = scanField(v)
	}
	if v, ok := a.lookup(AttrVirtual); ok {
		f.Virtual, _ = virtualField(v)
	}
	if v, ok := a.lookup(AttrState); ok {
		f.State, _ = stateField(v)
	}
	mods := []struct {
		name string
		dst  *pattern.Field[bool]
	}{
		{AttrShift, &f.Shift},
		{AttrCtrl, &f.Ctrl},
		{AttrAlt, &f.Alt},
		{AttrLogo, &f.Logo},
	}
	for _, m := range mods {
		if v, ok := a.lookup(m.name); ok {
			*m.dst, _ = boolField(v)
		}
	}
	return pattern.New(f)
}

// token normalizes a literal value to its string form. Selectors (tables)
// are rejected; so are values of types no attribute accepts.
func token(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return strings.ToLower(strings.TrimSpace(t)), nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) {
			return "", fmt.Errorf("%w: non-integral number", ErrMalformedToken)
		}
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case map[string]any, map[any]any:
		return "", ErrUnsupportedSelector
	case nil:
		return "", fmt.Errorf("%w: empty value", ErrMalformedToken)
	default:
		return "", fmt.Errorf("%w: unexpected %T", ErrMalformedToken, v)
	}
}

func scanField(v any) (pattern.Field[key.ScanCode], error) {
	tok, err := token(v)
	if err != nil {
		return pattern.Field[key.ScanCode]{}, err
	}
	if tok == wildcard {
		return pattern.Any[key.ScanCode](), nil
	}
	code, err := key.ParseScanCode(tok)
	if err != nil {
		return pattern.Field[key.ScanCode]{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return pattern.Exactly(code), nil
}

func virtualField(v any) (pattern.Field[key.Key], error) {
	tok, err := token(v)
	if err != nil {
		return pattern.Field[key.Key]{}, err
	}
	if tok == wildcard {
		return pattern.Any[key.Key](), nil
	}
	k, ok := key.KeyFromName(tok)
	if !ok {
		return pattern.Field[key.Key]{}, fmt.Errorf("%w: unknown key %q", ErrMalformedToken, tok)
	}
	return pattern.Exactly(k), nil
}

func stateField(v any) (pattern.Field[key.State], error) {
	tok, err := token(v)
	if err != nil {
		return pattern.Field[key.State]{}, err
	}
	if tok == wildcard {
		return pattern.Any[key.State](), nil
	}
	s, ok := key.StateFromName(tok)
	if !ok {
		return pattern.Field[key.State]{}, fmt.Errorf("%w: unknown state %q", ErrMalformedToken, tok)
	}
	return pattern.Exactly(s), nil
}

func boolField(v any) (pattern.Field[bool], error) {
	tok, err := token(v)
	if err != nil {
		return pattern.Field[bool]{}, err
	}
	switch tok {
	case wildcard:
		return pattern.Any[bool](), nil
	case "true", "1", "yes", "on":
		return pattern.Exactly(true), nil
	case "false", "0", "no", "off":
		return pattern.Exactly(false), nil
	}
	return pattern.Field[bool]{}, fmt.Errorf("%w: not a boolean %q", ErrMalformedToken, tok)
}
