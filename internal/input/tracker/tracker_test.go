package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/keychord/internal/input/chordtree"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/pattern"
)

// jumpPattern is {scan=30, state=pressed}: modifiers are wildcards.
var jumpPattern = pattern.Wildcard().WithScanCode(30).WithState(key.Pressed)

func press(scan key.ScanCode, mods key.Modifier) key.Event {
	return key.NewEvent(scan, key.Pressed, key.KeyNone, mods)
}

func release(scan key.ScanCode, mods key.Modifier) key.Event {
	return key.NewEvent(scan, key.Released, key.KeyNone, mods)
}

func TestNewTrackerEmpty(t *testing.T) {
	tr := New()

	assert.Empty(t, tr.Active())
	assert.Equal(t, 1, tr.Tree().Len())
	assert.Empty(t, tr.HandleKey(press(30, key.ModNone)))
	assert.Empty(t, tr.Active())
}

func TestNewWithNilTree(t *testing.T) {
	tr := NewWithTree(nil)
	require.NotNil(t, tr.Tree())
	assert.Equal(t, 1, tr.Tree().Len())
}

func TestPressReleaseSymmetry(t *testing.T) {
	tr := New()
	tr.Insert(jumpPattern, "jump")

	fired := tr.HandleKey(press(30, key.ModShift))
	assert.Equal(t, []string{"jump"}, fired)
	assert.Equal(t, []string{"jump"}, tr.Active())
	assert.True(t, tr.IsActive("jump"))

	fired = tr.HandleKey(release(30, key.ModShift))
	assert.Empty(t, fired, "the release event itself does not match a pressed-state binding")
	assert.Empty(t, tr.Active())
	assert.False(t, tr.IsActive("jump"))
}

func TestModifierDriftLeavesActionStuck(t *testing.T) {
	tr := New()
	tr.Insert(jumpPattern.WithShift(true), "jump")

	tr.HandleKey(press(30, key.ModShift))
	require.True(t, tr.IsActive("jump"))

	// Shift was let go before the key: the re-query sees shift=false and
	// does not find the press-time binding.
	tr.HandleKey(release(30, key.ModNone))
	assert.True(t, tr.IsActive("jump"), "release with different modifiers keeps the action active")

	// A release carrying the original modifiers clears it.
	tr.HandleKey(release(30, key.ModShift))
	assert.False(t, tr.IsActive("jump"))
}

func TestModifierDriftWithWildcardModifiers(t *testing.T) {
	tr := New()
	tr.Insert(jumpPattern, "jump")

	tr.HandleKey(press(30, key.ModShift))
	tr.HandleKey(release(30, key.ModNone))

	assert.False(t, tr.IsActive("jump"), "wildcard modifiers are found again on release")
}

func TestModifierDriftToMoreSpecificBinding(t *testing.T) {
	tr := New()
	tr.Insert(jumpPattern, "jump")
	tr.Insert(jumpPattern.WithCtrl(true), "crouch.jump")

	tr.HandleKey(press(30, key.ModNone))
	require.Equal(t, []string{"jump"}, tr.Active())

	// Ctrl went down before release: the re-query lands on the more
	// specific node, so "jump" is not removed.
	tr.HandleKey(release(30, key.ModCtrl))
	assert.Equal(t, []string{"jump"}, tr.Active())
}

func TestMultiBindingIndependence(t *testing.T) {
	tr := New()
	tr.Insert(pattern.Wildcard().WithCtrl(true), "A")
	tr.Insert(pattern.Wildcard().WithShift(true), "B")

	fired := tr.HandleKey(press(16, key.ModCtrl|key.ModShift))

	assert.ElementsMatch(t, []string{"A", "B"}, fired)
	assert.Equal(t, []string{"A", "B"}, tr.Active())

	tr.HandleKey(release(16, key.ModCtrl|key.ModShift))
	assert.Empty(t, tr.Active())
}

func TestFiredKeepsRepeatsAcrossNodes(t *testing.T) {
	tr := New()
	tr.Insert(pattern.Wildcard().WithCtrl(true), "both")
	tr.Insert(pattern.Wildcard().WithShift(true), "both")

	fired := tr.HandleKey(press(16, key.ModCtrl|key.ModShift))

	assert.Equal(t, []string{"both", "both"}, fired)
	assert.Equal(t, []string{"both"}, tr.Active())
}

func TestStateWildcardBindingFiresOnBothEdges(t *testing.T) {
	tr := New()
	tr.Insert(pattern.Wildcard().WithScanCode(57), "any.edge")

	assert.Equal(t, []string{"any.edge"}, tr.HandleKey(press(57, key.ModNone)))
	assert.True(t, tr.IsActive("any.edge"))

	assert.Equal(t, []string{"any.edge"}, tr.HandleKey(release(57, key.ModNone)))
	assert.False(t, tr.IsActive("any.edge"))
}

func TestReleasedBindingIsNeverActivated(t *testing.T) {
	tr := New()
	tr.Insert(pattern.Wildcard().WithScanCode(57).WithState(key.Released), "on.release")

	assert.Empty(t, tr.HandleKey(press(57, key.ModNone)))
	assert.Equal(t, []string{"on.release"}, tr.HandleKey(release(57, key.ModNone)))
	assert.Empty(t, tr.Active(), "releases fire but only presses activate")
}

func TestDeepestBindingWins(t *testing.T) {
	tr := New()
	tr.Insert(jumpPattern, "jump")
	tr.Insert(jumpPattern.WithShift(true), "dash")

	assert.Equal(t, []string{"dash"}, tr.HandleKey(press(30, key.ModShift)))
	assert.Equal(t, []string{"dash"}, tr.Active())

	assert.Equal(t, []string{"jump"}, tr.HandleKey(press(30, key.ModNone)))
	assert.Equal(t, []string{"dash", "jump"}, tr.Active())

	tr.HandleKey(release(30, key.ModShift))
	assert.Equal(t, []string{"jump"}, tr.Active())
}

func TestRootBindingIsFallback(t *testing.T) {
	tr := New()
	tr.Insert(pattern.Wildcard(), "anykey")
	tr.Insert(jumpPattern, "jump")

	assert.Equal(t, []string{"anykey"}, tr.HandleKey(press(99, key.ModNone)))
	assert.Equal(t, []string{"jump"}, tr.HandleKey(press(30, key.ModNone)))
}

func TestDeactivateAndReset(t *testing.T) {
	tr := New()
	tr.Insert(pattern.Wildcard().WithCtrl(true), "A")
	tr.Insert(pattern.Wildcard().WithShift(true), "B")
	tr.HandleKey(press(16, key.ModCtrl|key.ModShift))

	tr.Deactivate("A")
	assert.Equal(t, []string{"B"}, tr.Active())

	tr.Reset()
	assert.Empty(t, tr.Active())
	assert.Equal(t, 3, tr.Tree().Len(), "Reset keeps bindings")
}

func TestSetTreeDropsUnboundActions(t *testing.T) {
	tr := New()
	tr.Insert(pattern.Wildcard().WithCtrl(true), "A")
	tr.Insert(pattern.Wildcard().WithShift(true), "B")
	tr.HandleKey(press(16, key.ModCtrl|key.ModShift))

	next := chordtree.New()
	next.FindOrInsert(pattern.Wildcard().WithAlt(true), "B")
	tr.SetTree(next)

	assert.Equal(t, []string{"B"}, tr.Active())
	assert.Same(t, next, tr.Tree())

	tr.SetTree(nil)
	assert.Empty(t, tr.Active())
	assert.Equal(t, 1, tr.Tree().Len())
}
