package key

import (
	"fmt"
	"strings"
	"time"
)

// Event is one concrete key transition. Every field is populated; Key is
// KeyNone when the host did not report a virtual code.
type Event struct {
	// ScanCode is the hardware code of the key.
	ScanCode ScanCode

	// State is Pressed or Released.
	State State

	// Key is the virtual key code, or KeyNone.
	Key Key

	// Modifiers holds the modifier flags reported with the event.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(scan ScanCode, state State, k Key, mods Modifier) Event {
	return Event{
		ScanCode:  scan,
		State:     state,
		Key:       k,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// Press creates a Pressed event for a virtual key, taking the scan code
// from the US layout table.
func Press(k Key, mods Modifier) Event {
	scan, _ := ScanCodeOf(k)
	return NewEvent(scan, Pressed, k, mods)
}

// Release creates a Released event for a virtual key, taking the scan code
// from the US layout table.
func Release(k Key, mods Modifier) Event {
	scan, _ := ScanCodeOf(k)
	return NewEvent(scan, Released, k, mods)
}

// IsPressed returns true if the key went down.
func (e Event) IsPressed() bool {
	return e.State == Pressed
}

// IsReleased returns true if the key went up.
func (e Event) IsReleased() bool {
	return e.State == Released
}

// Pressed returns a copy of the event with the state forced to Pressed.
// All other fields, modifiers included, are unchanged.
func (e Event) Pressed() Event {
	e.State = Pressed
	return e
}

// WithModifier returns a copy with the specified modifier added.
func (e Event) WithModifier(mod Modifier) Event {
	e.Modifiers = e.Modifiers.With(mod)
	return e
}

// Equals returns true if two events describe the same transition.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.ScanCode == other.ScanCode &&
		e.State == other.State &&
		e.Key == other.Key &&
		e.Modifiers == other.Modifiers
}

// String returns the event in the text form read by ParseEvent,
// e.g. "press ctrl shift key=A scan=30".
func (e Event) String() string {
	parts := make([]string, 0, 7)
	if e.State == Released {
		parts = append(parts, "release")
	} else {
		parts = append(parts, "press")
	}
	parts = append(parts, e.Modifiers.Words()...)
	if e.Key != KeyNone {
		parts = append(parts, "key="+e.Key.String())
	}
	parts = append(parts, "scan="+e.ScanCode.String())
	return strings.Join(parts, " ")
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{ScanCode: %d, State: %s, Key: %s, Modifiers: %s}",
		e.ScanCode, e.State, e.Key, e.Modifiers)
}
