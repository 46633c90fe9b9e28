// Package chordtree indexes key patterns in a tree ordered by subsumption
// and answers most-specific-match queries for concrete key events.
//
// # Structure
//
// The tree is an arena of nodes addressed by NodeID. The root (NodeID 0)
// holds the fully wildcard pattern, so every insertion finds a place and
// every query matches at least the root. Each node carries one pattern,
// the set of action labels bound to it, and its children. A child's
// pattern is always strictly subsumed by its parent's, and no two nodes on
// one root path are structurally equal.
//
// # Insertion
//
// FindOrInsert merges the action into the node whose pattern equals the new
// one, wherever it sits. Otherwise it descends through the first child
// whose pattern subsumes the new pattern and attaches a new child there;
// any siblings the new pattern subsumes are moved beneath it. Siblings stay
// mutually incomparable, but a pattern can still be subsumed by a node in
// another branch: {ctrl} and {scan=30} are siblings, and {ctrl scan=30}
// lives under only one of them.
//
// # Queries
//
// AllNearest returns every deepest matching node: a matching node is
// reported only when none of its children match, and a candidate is dropped
// when another candidate is strictly more specific. The second rule covers
// the cross-branch case above, so the answer does not depend on the order
// bindings were registered in. Siblings that constrain different fields
// (one only Shift, another only Ctrl) can both match a single event; both
// are returned, and callers fire the actions of each.
//
// The tree is built once and then read. It does no locking; callers that
// insert while querying from other goroutines must synchronize.
package chordtree
