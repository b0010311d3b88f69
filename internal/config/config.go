package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

// EnvPrefix is the prefix of environment variables read as settings.
const EnvPrefix = "XLGRID_"

// EnvConfigPath names the variable that points at the config file.
const EnvConfigPath = EnvPrefix + "CONFIG"

// Config holds every xlgrid setting.
type Config struct {
	Log       LogConfig       `toml:"log"`
	Grid      GridConfig      `toml:"grid"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Session   SessionConfig   `toml:"session"`
	UI        UIConfig        `toml:"ui"`
	Watch     WatchConfig     `toml:"watch"`

	// Keys maps a mode name to key spec -> action overrides.
	Keys map[string]map[string]string `toml:"keys"`

	// Source is the config file that was read, empty when none was.
	Source string `toml:"-"`
}

// LogConfig controls the log file.
type LogConfig struct {
	// Level is one of debug, info, warn, error or off.
	Level string `toml:"level"`
	// File is where log lines are written.
	File string `toml:"file"`
}

// GridConfig bounds column widths.
type GridConfig struct {
	DefaultWidth int `toml:"default_width"`
	WidthStep    int `toml:"width_step"`
	MinWidth     int `toml:"min_width"`
	MaxWidth     int `toml:"max_width"`
}

// ClipboardConfig controls the system clipboard mirror.
type ClipboardConfig struct {
	// System mirrors every copy to the OS clipboard as tab-separated text.
	System bool `toml:"system"`
}

// SessionConfig controls view restore between runs.
type SessionConfig struct {
	RestoreView bool   `toml:"restore_view"`
	StateDir    string `toml:"state_dir"`
}

// UIConfig holds interaction settings.
type UIConfig struct {
	// ConfirmQuit asks for a second quit when there are unsaved changes.
	ConfirmQuit bool `toml:"confirm_quit"`
}

// WatchConfig controls external change notices for the open workbook.
type WatchConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	state := DefaultStateDir()
	return &Config{
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(state, "xlgrid.log"),
		},
		Grid: GridConfig{
			DefaultWidth: workbook.DefaultColumnWidth,
			WidthStep:    workbook.ColumnWidthStep,
			MinWidth:     workbook.MinColumnWidth,
			MaxWidth:     workbook.MaxColumnWidth,
		},
		Clipboard: ClipboardConfig{System: true},
		Session:   SessionConfig{RestoreView: true, StateDir: state},
		UI:        UIConfig{ConfirmQuit: true},
		Watch:     WatchConfig{Enabled: true},
		Keys:      make(map[string]map[string]string),
	}
}

// WidthPolicy returns the grid settings as a column width policy.
func (c *Config) WidthPolicy() workbook.WidthPolicy {
	return workbook.WidthPolicy{
		Default: c.Grid.DefaultWidth,
		Step:    c.Grid.WidthStep,
		Min:     c.Grid.MinWidth,
		Max:     c.Grid.MaxWidth,
	}
}

// ViewStateDir is the directory holding saved view positions.
func (c *Config) ViewStateDir() string {
	return filepath.Join(c.Session.StateDir, "views")
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/xlgrid/config.toml or ~/.config/xlgrid/config.toml.
func DefaultPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", "~/.config"), "xlgrid", "config.toml")
}

// DefaultStateDir returns $XDG_STATE_HOME/xlgrid or ~/.local/state/xlgrid.
func DefaultStateDir() string {
	return filepath.Join(xdgDir("XDG_STATE_HOME", "~/.local/state"), "xlgrid")
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	dir, err := homedir.Expand(fallback)
	if err != nil {
		return filepath.Join(os.TempDir(), filepath.Base(fallback))
	}
	return dir
}

// expandPaths resolves a leading ~ in path settings.
func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Log.File, &c.Session.StateDir} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}
