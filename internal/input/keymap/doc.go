// Package keymap loads declarative key bindings and registers them with a
// chord tracker.
//
// A keymap document is a list of controls. Each control names one action
// and lists the keys that trigger it; every key is a set of attributes
// that becomes one pattern:
//
//	[[control]]
//	action = "jump"
//
//	  [[control.key]]
//	  scan = "57"
//
//	  [[control.key]]
//	  virtual = "w"
//	  shift = "*"
//
// # Attributes
//
//	scan     scan code, decimal or 0x hex        default *
//	virtual  virtual key name ("a", "Escape")    default *
//	state    pressed | released                  default pressed
//	shift    boolean                             default false
//	ctrl     boolean                             default false
//	alt      boolean                             default false
//	logo     boolean                             default false
//
// "*" makes any attribute a wildcard. Strings are case-insensitive, and
// native booleans and integers are accepted where they make sense. Other
// attributes are ignored. A table value (shift = { select = "..." }) is a
// selector, which is not supported.
//
// # Errors
//
// Problems are reported per key as *AttrError values wrapping
// ErrMalformedToken, ErrUnsupportedSelector or ErrMissingRequiredAttribute.
// A key with any bad attribute is skipped entirely; the rest of the
// document still loads.
//
// # Formats
//
// Documents can be TOML, YAML or JSON; Loader picks the decoder from the
// file extension.
package keymap
