// Package config provides layered configuration for xlgrid.
//
// Settings are resolved from, in increasing priority:
//
//  1. Built-in defaults (Default)
//  2. The config file, TOML or YAML by extension
//     (default ~/.config/xlgrid/config.toml; a missing default file is fine)
//  3. XLGRID_* environment variables, e.g. XLGRID_LOG_LEVEL=debug
//  4. Command-line flags, applied by the caller after Load
//
// # Example
//
//	[log]
//	level = "debug"
//
//	[grid]
//	default_width = 12
//
//	[keys.browse]
//	"C-q" = "app.quit"
//	"C-w" = "none"
//
// Key tables override or extend the default keymap of their mode; binding a
// key to "none" removes it.
package config
