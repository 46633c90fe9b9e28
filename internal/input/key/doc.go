// Package key provides the concrete key event types consumed by the chord
// matcher.
//
// This package defines the fundamental value types for keyboard input:
//
//   - ScanCode: the hardware (PC set 1) code of a physical key
//   - Key: a layout-independent virtual key code
//   - State: whether the key went down (Pressed) or up (Released)
//   - Modifier: the Shift, Ctrl, Alt and Logo modifier flags
//   - Event: one fully populated key transition
//
// # Event Text
//
// Events can be written as text for replay files and tests:
//
//	press a                 - A pressed, scan code looked up from the key
//	release C-S-a           - A released with Ctrl and Shift held
//	press Ctrl+Space        - readable modifier notation
//	press scan=30 shift     - explicit scan code, no virtual key
//	release key=Escape scan=1 ctrl
//
// Event.String produces text that ParseEvent reads back.
package key
