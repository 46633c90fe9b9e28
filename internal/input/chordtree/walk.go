package chordtree

import (
	"fmt"
	"io"
	"strings"
)

// Walk visits every node depth-first, parents before children, passing
// each node's depth (root is 0). Returning false from fn skips the node's
// subtree.
func (t *Tree) Walk(fn func(id NodeID, depth int) bool) {
	t.walk(Root, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn func(NodeID, int) bool) {
	if !fn(id, depth) {
		return
	}
	for _, c := range t.nodes[id].children {
		t.walk(c, depth+1, fn)
	}
}

// Format writes an indented dump of the tree, one node per line:
//
//	{*}
//	  {scan=57 state=pressed} -> jump
//	    {scan=57 state=pressed shift=true} -> dash, jump.high
func (t *Tree) Format(w io.Writer) error {
	var err error
	t.Walk(func(id NodeID, depth int) bool {
		if err != nil {
			return false
		}
		line := strings.Repeat("  ", depth) + t.nodes[id].pattern.String()
		if actions := t.nodes[id].actions; len(actions) > 0 {
			line += " -> " + strings.Join(actions, ", ")
		}
		_, err = fmt.Fprintln(w, line)
		return true
	})
	return err
}

// String returns the Format dump.
func (t *Tree) String() string {
	var b strings.Builder
	_ = t.Format(&b)
	return b.String()
}
