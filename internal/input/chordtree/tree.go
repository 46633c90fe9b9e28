package chordtree

import (
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/pattern"
)

// NodeID addresses a node in a Tree. IDs are stable for the tree's life.
type NodeID int

// Root is the ID of the wildcard root node.
const Root NodeID = 0

// noParent marks the root's parent.
const noParent NodeID = -1

type node struct {
	pattern  pattern.Pattern
	actions  []string
	parent   NodeID
	children []NodeID
}

// Tree is a subsumption-ordered index of patterns and their actions.
type Tree struct {
	nodes []node
}

// New creates a tree containing only the wildcard root with no actions.
func New() *Tree {
	return &Tree{
		nodes: []node{{pattern: pattern.Wildcard(), parent: noParent}},
	}
}

// FindOrInsert locates the node whose pattern equals p, creating it if
// needed, and adds action to its action set. It returns the node's ID.
func (t *Tree) FindOrInsert(p pattern.Pattern, action string) NodeID {
	id := t.find(p)
	n := &t.nodes[id]
	for _, a := range n.actions {
		if a == action {
			return id
		}
	}
	n.actions = append(n.actions, action)
	return id
}

// find returns the node equal to p. When there is none it descends from
// the root and attaches p where the descent ends.
func (t *Tree) find(p pattern.Pattern) NodeID {
	for i := range t.nodes {
		if t.nodes[i].pattern.Equal(p) {
			return NodeID(i)
		}
	}
	cur := Root
	for {
		if t.nodes[cur].pattern.Equal(p) {
			return cur
		}
		next, ok := t.subsumingChild(cur, p)
		if !ok {
			return t.attach(cur, p)
		}
		cur = next
	}
}

func (t *Tree) subsumingChild(id NodeID, p pattern.Pattern) (NodeID, bool) {
	for _, c := range t.nodes[id].children {
		if t.nodes[c].pattern.Subsumes(p) {
			return c, true
		}
	}
	return 0, false
}

// attach adds a child for p under parent and moves beneath it every
// existing sibling that p subsumes.
func (t *Tree) attach(parent NodeID, p pattern.Pattern) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{pattern: p, parent: parent})

	siblings := t.nodes[parent].children
	kept := siblings[:0]
	for _, c := range siblings {
		if p.Subsumes(t.nodes[c].pattern) {
			t.nodes[c].parent = id
			t.nodes[id].children = append(t.nodes[id].children, c)
			continue
		}
		kept = append(kept, c)
	}
	t.nodes[parent].children = append(kept, id)
	return id
}

// AllNearest returns every most-specific node matching e, in depth-first
// discovery order. A node is left out when another node in the result is
// strictly more specific, even if the two sit in different branches. The
// result is never empty: the root is returned when nothing more specific
// matches.
func (t *Tree) AllNearest(e key.Event) []NodeID {
	found := t.nearest(Root, e, nil)
	if len(found) < 2 {
		return found
	}
	out := found[:0:0]
	for _, id := range found {
		if !t.coversAny(id, found) {
			out = append(out, id)
		}
	}
	return out
}

// coversAny reports whether id's pattern strictly subsumes the pattern of
// another node in ids. Patterns are unique per tree, so any other node it
// subsumes is strictly more specific.
func (t *Tree) coversAny(id NodeID, ids []NodeID) bool {
	p := t.nodes[id].pattern
	for _, other := range ids {
		if other != id && p.Subsumes(t.nodes[other].pattern) {
			return true
		}
	}
	return false
}

func (t *Tree) nearest(id NodeID, e key.Event, out []NodeID) []NodeID {
	matched := false
	for _, c := range t.nodes[id].children {
		if t.nodes[c].pattern.Matches(e) {
			matched = true
			out = t.nearest(c, e, out)
		}
	}
	if !matched {
		out = append(out, id)
	}
	return out
}

// Actions returns the action labels bound to a node, in the order they
// were first inserted. The slice must not be modified.
func (t *Tree) Actions(id NodeID) []string {
	return t.nodes[id].actions
}

// Pattern returns a node's pattern.
func (t *Tree) Pattern(id NodeID) pattern.Pattern {
	return t.nodes[id].pattern
}

// Children returns a node's children. The slice must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].children
}

// Parent returns a node's parent, or false for the root.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	p := t.nodes[id].parent
	return p, p != noParent
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Labels returns every action label bound anywhere in the tree, each once,
// in node creation order.
func (t *Tree) Labels() []string {
	seen := make(map[string]bool)
	var labels []string
	for i := range t.nodes {
		for _, a := range t.nodes[i].actions {
			if !seen[a] {
				seen[a] = true
				labels = append(labels, a)
			}
		}
	}
	return labels
}
