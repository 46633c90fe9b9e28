package chordtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/pattern"
)

var (
	space       = pattern.Wildcard().WithScanCode(57).WithState(key.Pressed)
	spaceShift  = space.WithShift(true)
	onlyCtrl    = pattern.Wildcard().WithCtrl(true)
	onlyShift   = pattern.Wildcard().WithShift(true)
	releaseOnly = pattern.Wildcard().WithState(key.Released)
)

func actionsOf(t *Tree, ids []NodeID) []string {
	var out []string
	for _, id := range ids {
		out = append(out, t.Actions(id)...)
	}
	return out
}

func TestNewTree(t *testing.T) {
	tree := New()

	assert.Equal(t, 1, tree.Len())
	assert.True(t, tree.Pattern(Root).IsWildcard())
	assert.Empty(t, tree.Actions(Root))
	assert.Empty(t, tree.Children(Root))

	_, ok := tree.Parent(Root)
	assert.False(t, ok)
}

func TestFindOrInsertWildcardUsesRoot(t *testing.T) {
	tree := New()

	id := tree.FindOrInsert(pattern.Wildcard(), "any")

	assert.Equal(t, Root, id)
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, []string{"any"}, tree.Actions(Root))
}

func TestFindOrInsertIdempotent(t *testing.T) {
	tree := New()

	first := tree.FindOrInsert(space, "jump")
	before := tree.String()
	second := tree.FindOrInsert(space, "jump")

	assert.Equal(t, first, second)
	assert.Equal(t, before, tree.String())
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, []string{"jump"}, tree.Actions(first))
}

func TestFindOrInsertMergesEqualPatterns(t *testing.T) {
	tree := New()

	a := tree.FindOrInsert(space, "jump")
	b := tree.FindOrInsert(pattern.Wildcard().WithState(key.Pressed).WithScanCode(57), "confirm")

	assert.Equal(t, a, b)
	assert.Equal(t, 2, tree.Len())
	assert.ElementsMatch(t, []string{"jump", "confirm"}, tree.Actions(a))
}

func TestFindOrInsertNestsSpecificUnderGeneral(t *testing.T) {
	tree := New()

	general := tree.FindOrInsert(space, "jump")
	specific := tree.FindOrInsert(spaceShift, "dash")

	parent, ok := tree.Parent(specific)
	require.True(t, ok)
	assert.Equal(t, general, parent)
	assert.Equal(t, []NodeID{general}, tree.Children(Root))
}

func TestFindOrInsertReparentsWhenGeneralComesLater(t *testing.T) {
	tree := New()

	specific := tree.FindOrInsert(spaceShift, "dash")
	general := tree.FindOrInsert(space, "jump")

	parent, ok := tree.Parent(specific)
	require.True(t, ok)
	assert.Equal(t, general, parent)
	assert.Equal(t, []NodeID{general}, tree.Children(Root))
	assert.Equal(t, []NodeID{specific}, tree.Children(general))
}

func TestChildrenStrictlySubsumedByParent(t *testing.T) {
	tree := New()
	patterns := []pattern.Pattern{
		spaceShift,
		onlyShift,
		space.WithShift(true).WithCtrl(true),
		space,
		onlyCtrl,
		onlyCtrl.WithShift(true),
		pattern.Wildcard().WithState(key.Pressed),
		releaseOnly,
	}
	for i, p := range patterns {
		tree.FindOrInsert(p, strings.Repeat("x", i+1))
	}

	tree.Walk(func(id NodeID, _ int) bool {
		parent, ok := tree.Parent(id)
		if !ok {
			return true
		}
		pp, cp := tree.Pattern(parent), tree.Pattern(id)
		assert.True(t, pp.Subsumes(cp), "%v should subsume child %v", pp, cp)
		assert.False(t, pp.Equal(cp), "child %v equals its parent", cp)

		siblings := tree.Children(parent)
		for _, s := range siblings {
			if s != id {
				assert.False(t, tree.Pattern(s).Subsumes(cp), "sibling %v subsumes %v", tree.Pattern(s), cp)
			}
		}
		return true
	})
	assert.Equal(t, len(patterns)+1, tree.Len())
}

func TestAllNearestRootFallback(t *testing.T) {
	tree := New()
	tree.FindOrInsert(space, "jump")

	got := tree.AllNearest(key.Press(key.KeyA, key.ModNone))

	assert.Equal(t, []NodeID{Root}, got)
}

func TestAllNearestNeverEmpty(t *testing.T) {
	tree := New()
	tree.FindOrInsert(space, "jump")
	tree.FindOrInsert(onlyCtrl, "crouch")
	tree.FindOrInsert(releaseOnly, "lift")

	for _, k := range []key.Key{key.KeyA, key.KeySpace, key.KeyEscape, key.KeyNone} {
		for _, mods := range []key.Modifier{key.ModNone, key.ModCtrl, key.ModShift | key.ModAlt} {
			assert.NotEmpty(t, tree.AllNearest(key.Press(k, mods)))
			assert.NotEmpty(t, tree.AllNearest(key.Release(k, mods)))
		}
	}
}

func TestAllNearestDeepestMatch(t *testing.T) {
	for _, order := range [][]pattern.Pattern{{space, spaceShift}, {spaceShift, space}} {
		tree := New()
		for _, p := range order {
			action := "jump"
			if p.Equal(spaceShift) {
				action = "dash"
			}
			tree.FindOrInsert(p, action)
		}

		shifted := tree.AllNearest(key.Press(key.KeySpace, key.ModShift))
		assert.Equal(t, []string{"dash"}, actionsOf(tree, shifted))

		plain := tree.AllNearest(key.Press(key.KeySpace, key.ModNone))
		assert.Equal(t, []string{"jump"}, actionsOf(tree, plain))
	}
}

func TestAllNearestIncomparableSiblings(t *testing.T) {
	tree := New()
	a := tree.FindOrInsert(onlyCtrl, "A")
	b := tree.FindOrInsert(onlyShift, "B")

	both := tree.AllNearest(key.Press(key.KeyQ, key.ModCtrl|key.ModShift))
	assert.ElementsMatch(t, []NodeID{a, b}, both)
	assert.ElementsMatch(t, []string{"A", "B"}, actionsOf(tree, both))

	ctrl := tree.AllNearest(key.Press(key.KeyQ, key.ModCtrl))
	assert.Equal(t, []NodeID{a}, ctrl)
}

func TestAllNearestMultipleBranchesDepth(t *testing.T) {
	tree := New()
	shiftNode := tree.FindOrInsert(onlyShift, "shifted")
	deep := tree.FindOrInsert(onlyShift.WithCtrl(true), "chord")
	ctrlNode := tree.FindOrInsert(onlyCtrl, "ctrl")
	altNode := tree.FindOrInsert(pattern.Wildcard().WithAlt(true), "alt")

	got := tree.AllNearest(key.Press(key.KeyQ, key.ModCtrl|key.ModShift|key.ModAlt))

	assert.ElementsMatch(t, []NodeID{deep, altNode}, got)
	assert.NotContains(t, got, shiftNode)
	assert.NotContains(t, got, ctrlNode)
}

func TestAllNearestAcrossBranches(t *testing.T) {
	ctrl := pattern.Wildcard().WithCtrl(true)
	scan := pattern.Wildcard().WithScanCode(30)
	both := ctrl.WithScanCode(30)
	ev := key.NewEvent(30, key.Pressed, key.KeyNone, key.ModCtrl)

	orders := [][]pattern.Pattern{
		{ctrl, both, scan},
		{scan, ctrl, both},
		{both, ctrl, scan},
		{scan, both, ctrl},
	}
	for _, order := range orders {
		tree := New()
		for _, p := range order {
			tree.FindOrInsert(p, p.String())
		}

		got := tree.AllNearest(ev)
		require.Len(t, got, 1, "order %v", order)
		assert.True(t, tree.Pattern(got[0]).Equal(both), "order %v gave %v", order, tree.Pattern(got[0]))
		assert.Equal(t, []string{both.String()}, tree.Actions(got[0]))

		ctrlOnly := tree.AllNearest(key.NewEvent(31, key.Pressed, key.KeyNone, key.ModCtrl))
		require.Len(t, ctrlOnly, 1)
		assert.True(t, tree.Pattern(ctrlOnly[0]).Equal(ctrl))

		scanOnly := tree.AllNearest(key.NewEvent(30, key.Pressed, key.KeyNone, key.ModNone))
		require.Len(t, scanOnly, 1)
		assert.True(t, tree.Pattern(scanOnly[0]).Equal(scan))
	}
}

func TestFindOrInsertMergesAcrossBranches(t *testing.T) {
	ctrlAlt := pattern.Wildcard().WithCtrl(true).WithAlt(true)
	scan := pattern.Wildcard().WithScanCode(30)
	deep := ctrlAlt.WithScanCode(30)

	tree := New()
	tree.FindOrInsert(ctrlAlt, "a")
	tree.FindOrInsert(scan, "b")
	first := tree.FindOrInsert(deep, "c")
	// onlyCtrl moves ctrlAlt, and deep with it, behind scan.
	tree.FindOrInsert(onlyCtrl, "d")
	again := tree.FindOrInsert(deep, "e")

	assert.Equal(t, first, again)
	assert.Equal(t, []string{"c", "e"}, tree.Actions(first))
	assert.Equal(t, 5, tree.Len())
}

func TestActionsInsertionOrder(t *testing.T) {
	tree := New()
	id := tree.FindOrInsert(space, "c")
	tree.FindOrInsert(space, "a")
	tree.FindOrInsert(space, "b")
	tree.FindOrInsert(space, "a")

	assert.Equal(t, []string{"c", "a", "b"}, tree.Actions(id))
}

func TestLabels(t *testing.T) {
	tree := New()
	tree.FindOrInsert(space, "jump")
	tree.FindOrInsert(onlyCtrl, "crouch")
	tree.FindOrInsert(spaceShift, "jump")

	assert.Equal(t, []string{"jump", "crouch"}, tree.Labels())
	assert.Empty(t, New().Labels())
}

func TestWalkSkipsSubtree(t *testing.T) {
	tree := New()
	general := tree.FindOrInsert(space, "jump")
	tree.FindOrInsert(spaceShift, "dash")
	tree.FindOrInsert(onlyCtrl, "crouch")

	var visited []NodeID
	tree.Walk(func(id NodeID, _ int) bool {
		visited = append(visited, id)
		return id != general
	})

	assert.Len(t, visited, 3)
}

func TestFormat(t *testing.T) {
	tree := New()
	tree.FindOrInsert(space, "jump")
	tree.FindOrInsert(spaceShift, "dash")

	want := "{*}\n" +
		"  {scan=57 state=pressed} -> jump\n" +
		"    {scan=57 state=pressed shift=true} -> dash\n"
	assert.Equal(t, want, tree.String())
}
