// Package tracker turns a stream of key events into the set of actions
// currently held down.
//
// A Tracker owns a chordtree.Tree of bindings and an active set. For each
// event HandleKey fires the actions of every most-specific matching node.
// A press adds the fired actions to the active set. A release removes the
// actions found by re-querying with the release event's state pinned to
// Pressed, so a binding authored against the pressed chord is deactivated
// by its release whether its own state field was a wildcard or Pressed.
//
// # Modifier Drift
//
// The release re-query uses the modifiers reported on the release event.
// If the modifiers changed between press and release (Shift let go before
// the key), the press-time binding may not be found and its action stays
// active until a release with the original modifiers arrives. This sticky
// behavior is kept as is; hosts that need otherwise can call Deactivate or
// Reset.
//
// Tracker is not safe for concurrent use. Session wraps a Tracker behind a
// single mutex for hosts that dispatch events from several goroutines.
package tracker
