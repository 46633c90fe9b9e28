package loader

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

const testTOML = `
[log]
level = "debug"

[keymap]
path = "keys.toml"
watch = true
search_paths = ["a", "b"]
`

func TestTOMLLoader_Load(t *testing.T) {
	fsys := fstest.MapFS{"config.toml": {Data: []byte(testTOML)}}

	config, err := NewTOMLLoaderWithFS(fsys, "config.toml").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	log, ok := config["log"].(map[string]any)
	if !ok {
		t.Fatalf("log section = %T, want map", config["log"])
	}
	if log["level"] != "debug" {
		t.Errorf("log.level = %v, want debug", log["level"])
	}

	keymap := config["keymap"].(map[string]any)
	if keymap["watch"] != true {
		t.Errorf("keymap.watch = %v, want true", keymap["watch"])
	}
	if got := keymap["search_paths"]; !reflect.DeepEqual(got, []any{"a", "b"}) {
		t.Errorf("keymap.search_paths = %#v", got)
	}
}

func TestTOMLLoader_LoadMissing(t *testing.T) {
	for _, path := range []string{"", "missing.toml"} {
		config, err := NewTOMLLoaderWithFS(fstest.MapFS{}, path).Load()
		if err != nil {
			t.Errorf("Load(%q) error = %v", path, err)
		}
		if config != nil {
			t.Errorf("Load(%q) = %v, want nil", path, config)
		}
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	fsys := fstest.MapFS{"bad.toml": {Data: []byte("[log]\nlevel = \n")}}

	_, err := NewTOMLLoaderWithFS(fsys, "bad.toml").Load()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if pe.Path != "bad.toml" {
		t.Errorf("Path = %q, want bad.toml", pe.Path)
	}
	if pe.Line != 2 {
		t.Errorf("Line = %d, want 2", pe.Line)
	}
	if !strings.Contains(pe.Error(), "bad.toml at line 2") {
		t.Errorf("Error() = %q", pe.Error())
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader(`[metrics]
enabled = true`))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if config["metrics"].(map[string]any)["enabled"] != true {
		t.Errorf("metrics.enabled not loaded: %v", config)
	}

	_, err = NewTOMLLoader("").LoadFromReader(strings.NewReader("= 1"))
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Path != "<reader>" {
		t.Errorf("LoadFromReader() error = %v, want parse error from <reader>", err)
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"log":    map[string]any{"level": "info", "format": "text"},
		"keymap": map[string]any{"path": "a.toml"},
		"other":  1,
	}
	src := map[string]any{
		"log":    map[string]any{"level": "debug"},
		"keymap": "flat",
		"extra":  true,
	}

	got := DeepMerge(dst, src)
	want := map[string]any{
		"log":    map[string]any{"level": "debug", "format": "text"},
		"keymap": "flat",
		"other":  1,
		"extra":  true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DeepMerge() = %v, want %v", got, want)
	}

	if got := DeepMerge(nil, nil); got == nil || len(got) != 0 {
		t.Errorf("DeepMerge(nil, nil) = %v, want empty map", got)
	}
}
