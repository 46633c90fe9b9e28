package loader

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvPrefix is the prefix of every keychord environment variable.
const EnvPrefix = "KEYCHORD_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "KEYCHORD_")
	mapping map[string]string // Env var -> config path
	environ func() []string
}

// NewEnvLoader creates an environment loader with the default mappings.
// The prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		environ: os.Environ,
	}
}

// defaultEnvMapping returns the short names that don't follow the
// SECTION_KEY convention.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"KEYCHORD_KEYMAP":  "keymap.path",
		"KEYCHORD_WATCH":   "keymap.watch",
		"KEYCHORD_METRICS": "metrics.enabled",
	}
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Load reads prefixed environment variables into a configuration map.
// Mapped names go to their configured path; others are converted with
// the SECTION_KEY convention (KEYCHORD_LOG_LEVEL is log.level). Empty
// values are kept.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setByPath(config, path, parseValue(path, value))
	}
	return config, nil
}

// envToPath converts KEYCHORD_KEYMAP_SEARCH_PATHS to keymap.search_paths.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, rest, ok := strings.Cut(name, "_")
	if !ok || section == "" || rest == "" {
		return ""
	}
	return section + "." + rest
}

// parseValue turns boolean words into bools and splits list-valued
// settings (names ending in "paths") on the OS path list separator.
// Everything else stays a string; typed decoding happens later.
func parseValue(path, s string) any {
	if strings.HasSuffix(path, "paths") {
		var out []any
		for _, p := range filepath.SplitList(s) {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
