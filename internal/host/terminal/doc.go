// Package terminal feeds terminal key input into a chord session.
//
// Terminals report key taps, not transitions: there is no release event
// and holding a key produces repeated taps. Each tap is therefore turned
// into a Pressed event followed by a Released event with the same
// modifiers. Modifier keys are never reported on their own, so bindings on
// bare Shift or Ctrl cannot fire from a terminal.
package terminal
