package keymap

import (
	"github.com/dshills/keychord/internal/input/pattern"
)

// Document is a decoded keymap file.
type Document struct {
	// Name identifies the keymap in logs. Defaults to the file name.
	Name string `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`

	// Controls lists the action bindings in declaration order.
	Controls []Control `toml:"control" yaml:"control" json:"control"`

	// Source is the file the document was loaded from, if any.
	Source string `toml:"-" yaml:"-" json:"-"`
}

// Control binds one action to a list of keys.
type Control struct {
	// Action is the label reported when any of the keys fires.
	Action string `toml:"action" yaml:"action" json:"action"`

	// Keys are the attribute sets, one pattern each.
	Keys []Attrs `toml:"key" yaml:"key" json:"key"`
}

// Binding is one pattern paired with its action.
type Binding struct {
	Action  string
	Pattern pattern.Pattern

	// Control and Key locate the binding in its document.
	Control int
	Key     int
}

// NewDocument creates an empty document with the given name.
func NewDocument(name string) *Document {
	return &Document{Name: name}
}

// Add appends a control and returns it for chaining keys.
func (d *Document) Add(action string, keys ...Attrs) *Document {
	d.Controls = append(d.Controls, Control{Action: action, Keys: keys})
	return d
}

// Bindings converts every key of every control into a binding.
//
// Keys with bad attributes are skipped and reported as *AttrError; a
// control without an action is reported once and skipped. The returned
// bindings are in document order.
func (d *Document) Bindings() ([]Binding, []error) {
	var (
		out  []Binding
		errs []error
	)
	for ci, c := range d.Controls {
		if c.Action == "" {
			errs = append(errs, &AttrError{
				Control: ci,
				Key:     -1,
				Attr:    AttrAction,
				Err:     ErrMissingRequiredAttribute,
			})
			continue
		}
		for ki, attrs := range c.Keys {
			if faults := parseAttrs(attrs); len(faults) > 0 {
				for _, f := range faults {
					errs = append(errs, &AttrError{
						Control: ci,
						Action:  c.Action,
						Key:     ki,
						Attr:    f.attr,
						Value:   f.value,
						Err:     f.err,
					})
				}
				continue
			}
			out = append(out, Binding{
				Action:  c.Action,
				Pattern: buildPattern(attrs),
				Control: ci,
				Key:     ki,
			})
		}
	}
	return out, errs
}

// Actions returns the distinct action names in declaration order.
func (d *Document) Actions() []string {
	seen := make(map[string]bool, len(d.Controls))
	var out []string
	for _, c := range d.Controls {
		if c.Action == "" || seen[c.Action] {
			continue
		}
		seen[c.Action] = true
		out = append(out, c.Action)
	}
	return out
}
