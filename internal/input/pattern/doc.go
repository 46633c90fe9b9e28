// Package pattern provides partially specified key event filters.
//
// A Pattern has seven independently optional fields: scan code, state,
// virtual key, and the Shift, Ctrl, Alt and Logo modifier flags. A field
// left as a wildcard matches any value; a concrete field must equal the
// event's value.
//
// # Subsumption
//
// Pattern A subsumes pattern B when every concrete field of A is also
// concrete in B with the same value. Subsumption is a partial order: it is
// reflexive and transitive, and two patterns that subsume each other are
// structurally equal. The fully wildcard pattern subsumes every pattern and
// is subsumed only by itself.
//
// Patterns are values. The With* methods return modified copies:
//
//	jump := pattern.Wildcard().
//	    WithScanCode(57).
//	    WithState(key.Pressed)
//
//	jump.Matches(key.Press(key.KeySpace, key.ModShift)) // true
package pattern
