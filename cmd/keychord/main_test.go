package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validKeymap = `
[[control]]
action = "jump"
  [[control.key]]
  virtual = "space"
  [[control.key]]
  scan = "0x39"
  shift = true
`

const invalidKeymap = `
[[control]]
action = "jump"
  [[control.key]]
  virtual = "spacebar"

[[control]]
  [[control.key]]
  scan = "1"
`

// isolatedConfig writes a config file whose search path is empty, so the
// built-in keymap is used unless a command names one.
func isolatedConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[keymap]\nsearch_paths = [\"" + filepath.ToSlash(filepath.Join(dir, "keymaps")) + "\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", isolatedConfig(t), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.toml", validKeymap)
	out, err := execute(t, "", "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "2 bindings, 1 actions, 0 errors")

	bad := writeFile(t, "bad.toml", invalidKeymap)
	out, err = execute(t, "", "check", good, bad)
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "malformed token")
	assert.Contains(t, out, "missing required attribute")
	assert.Contains(t, out, "0 bindings, 1 actions, 2 errors")

	broken := writeFile(t, "broken.yaml", "control: [")
	out, err = execute(t, "", "check", broken)
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "parse error")

	_, err = execute(t, "", "check")
	assert.Error(t, err)
}

func TestTree(t *testing.T) {
	path := writeFile(t, "keys.toml", validKeymap)
	out, err := execute(t, "", "tree", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "{*}", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  {"))
	assert.Contains(t, out, "-> jump")
	assert.Equal(t, "3 nodes, 1 actions", lines[3])

	out, err = execute(t, "", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "-> move.forward")
}

func TestReplay(t *testing.T) {
	events := `
# jump and land
press key=space
release key=space

press ctrl key=q
`
	out, err := execute(t, events, "replay")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "fired=[jump] active=[jump]")
	assert.Contains(t, lines[1], "fired=[jump.land] active=[]")
	assert.Contains(t, lines[2], "fired=[quit] active=[quit]")

	path := writeFile(t, "keys.toml", validKeymap)
	eventsFile := writeFile(t, "events.txt", "press shift scan=57\n")
	out, err = execute(t, "", "replay", "--keymap", path, eventsFile)
	require.NoError(t, err)
	assert.Contains(t, out, "fired=[jump]")

	_, err = execute(t, "press\nexplode key=a\n", "replay")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestRunExitCode(t *testing.T) {
	cfg := isolatedConfig(t)
	good := writeFile(t, "good.toml", validKeymap)
	bad := writeFile(t, "bad.toml", invalidKeymap)

	assert.Equal(t, 0, run([]string{"--config", cfg, "--log-level", "error", "check", good}))
	assert.Equal(t, 1, run([]string{"--config", cfg, "--log-level", "error", "check", bad}))
	assert.Equal(t, 1, run([]string{"--config", cfg, "--log-format", "xml", "tree"}))
}
