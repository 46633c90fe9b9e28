package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/dshills/keychord/internal/config/loader"
)

// Config is the complete runtime configuration.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Keymap  KeymapConfig  `toml:"keymap"`
	Metrics MetricsConfig `toml:"metrics"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	// Level is a logrus level name.
	Level string `toml:"level"`
	// Format is "text" or "json".
	Format string `toml:"format"`
	// File receives log output; empty means stderr.
	File string `toml:"file"`
}

// KeymapConfig says where bindings come from.
type KeymapConfig struct {
	// Path is a single keymap file. When empty, SearchPaths are scanned
	// and the built-in defaults are used if nothing is found.
	Path string `toml:"path"`
	// SearchPaths are directories of keymap files, loaded in order.
	SearchPaths []string `toml:"search_paths"`
	// Watch reloads bindings when a keymap file changes.
	Watch bool `toml:"watch"`
	// Debounce is how long a file must be quiet before reloading.
	Debounce Duration `toml:"debounce"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
}

// Duration is a time.Duration that reads and writes as "150ms".
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
		Keymap: KeymapConfig{
			SearchPaths: DefaultSearchPaths(),
			Debounce:    Duration(100 * time.Millisecond),
		},
		Metrics: MetricsConfig{
			Addr: "127.0.0.1:9464",
		},
	}
}

// DefaultSearchPaths returns the per-user keymap directory, if the
// platform has one.
func DefaultSearchPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "keychord", "keymaps")}
}

// DefaultPath returns the per-user config file path, or "".
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keychord", "config.toml")
}

// Load builds the configuration from defaults, the TOML file at path and
// the environment. A missing file at the default path is not an error;
// a missing file the caller named explicitly is.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	} else if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return LoadFrom(loader.NewTOMLLoader(path), loader.NewEnvLoader(loader.EnvPrefix))
}

// LoadFrom merges sources in order over the defaults and validates the
// result.
func LoadFrom(sources ...loader.Loader) (*Config, error) {
	merged := make(map[string]any)
	for _, src := range sources {
		m, err := src.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg := Default()
	if err := cfg.apply(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply decodes a merged settings map over c. Settings c has no field
// for are ignored.
func (c *Config) apply(settings map[string]any) error {
	if len(settings) == 0 {
		return nil
	}
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding merged config: %w", err)
	}
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(c); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{Path: "log.level", Message: "unknown log level", Value: c.Log.Level})
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		errs = append(errs, &ValidationError{Path: "log.format", Message: `must be "text" or "json"`, Value: c.Log.Format})
	}
	if c.Keymap.Debounce < 0 {
		errs = append(errs, &ValidationError{Path: "keymap.debounce", Message: "must not be negative", Value: c.Keymap.Debounce.Std()})
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		errs = append(errs, &ValidationError{Path: "metrics.addr", Message: "required when metrics are enabled", Value: ""})
	}
	return errors.Join(errs...)
}
