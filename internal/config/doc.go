// Package config holds keychord's runtime configuration.
//
// Configuration is layered, lowest precedence first:
//
//  1. Built-in defaults (Default)
//  2. The TOML config file, if it exists
//  3. KEYCHORD_* environment variables
//  4. Command-line flags, applied by the caller after Load
//
// Example config.toml:
//
//	[log]
//	level = "debug"
//	format = "json"
//
//	[keymap]
//	path = "~/.config/keychord/keys.toml"
//	watch = true
//	debounce = "200ms"
//
//	[metrics]
//	enabled = true
//	addr = "127.0.0.1:9464"
package config
