// Package input groups the key chord matching packages.
//
// The pieces build on each other bottom-up:
//
//   - key: physical keys, modifiers and raw key events
//   - pattern: wildcard key patterns and the subsumption order between them
//   - chordtree: the pattern tree that keeps general patterns above specific ones
//   - keymap: declarative keymap documents and the binding registry
//   - tracker: the per-session state that turns key events into actions
//
// A host translates its native events into key.Event values and feeds them to
// a tracker.Session, which reports the actions whose chords became active.
package input
