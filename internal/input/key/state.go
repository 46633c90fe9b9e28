package key

import (
	"fmt"
	"strings"
)

// State is the direction of a key transition.
type State uint8

const (
	// Pressed means the key went down.
	Pressed State = iota

	// Released means the key went up.
	Released
)

// String returns "pressed" or "released".
func (s State) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// StateFromName parses a state name (case-insensitive).
// Accepts "pressed", "press", "down", "released", "release" and "up".
func StateFromName(name string) (State, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pressed", "press", "down":
		return Pressed, true
	case "released", "release", "up":
		return Released, true
	default:
		return Pressed, false
	}
}
