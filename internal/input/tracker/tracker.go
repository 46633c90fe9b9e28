package tracker

import (
	"sort"

	"github.com/dshills/keychord/internal/input/chordtree"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/pattern"
)

// Tracker maintains the active action set for one input session.
type Tracker struct {
	tree   *chordtree.Tree
	active map[string]struct{}
}

// New creates a tracker with an empty binding tree.
func New() *Tracker {
	return NewWithTree(chordtree.New())
}

// NewWithTree creates a tracker over an already built tree.
func NewWithTree(tree *chordtree.Tree) *Tracker {
	if tree == nil {
		tree = chordtree.New()
	}
	return &Tracker{
		tree:   tree,
		active: make(map[string]struct{}),
	}
}

// Insert binds action to p. Call it while configuring, not between events.
func (t *Tracker) Insert(p pattern.Pattern, action string) chordtree.NodeID {
	return t.tree.FindOrInsert(p, action)
}

// HandleKey processes one event and returns the actions bound to its
// most-specific matches, in discovery order. An action bound to several
// matching nodes appears once per node.
func (t *Tracker) HandleKey(e key.Event) []string {
	fired := t.collect(e)

	switch e.State {
	case key.Pressed:
		for _, a := range fired {
			t.active[a] = struct{}{}
		}
	case key.Released:
		for _, a := range t.collect(e.Pressed()) {
			delete(t.active, a)
		}
	}

	return fired
}

func (t *Tracker) collect(e key.Event) []string {
	var actions []string
	for _, id := range t.tree.AllNearest(e) {
		actions = append(actions, t.tree.Actions(id)...)
	}
	return actions
}

// Active returns a sorted snapshot of the active set.
func (t *Tracker) Active() []string {
	out := make([]string, 0, len(t.active))
	for a := range t.active {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// IsActive returns true if action is currently held.
func (t *Tracker) IsActive(action string) bool {
	_, ok := t.active[action]
	return ok
}

// Deactivate removes action from the active set. It is the host's escape
// hatch for actions left stuck by modifier drift.
func (t *Tracker) Deactivate(action string) {
	delete(t.active, action)
}

// Reset clears the active set. Bindings are kept.
func (t *Tracker) Reset() {
	clear(t.active)
}

// Tree returns the binding tree.
func (t *Tracker) Tree() *chordtree.Tree {
	return t.tree
}

// SetTree replaces the binding tree. Active actions that are no longer
// bound anywhere in the new tree are dropped; the rest stay active until
// released.
func (t *Tracker) SetTree(tree *chordtree.Tree) {
	if tree == nil {
		tree = chordtree.New()
	}
	t.tree = tree

	bound := make(map[string]bool)
	for _, a := range tree.Labels() {
		bound[a] = true
	}
	for a := range t.active {
		if !bound[a] {
			delete(t.active, a)
		}
	}
}
