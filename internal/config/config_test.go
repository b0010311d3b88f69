package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envMap map[string]any

func (e envMap) Load() (map[string]any, error) { return e, nil }

func noEnv(string) string { return "" }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	p := cfg.WidthPolicy()
	if p.Default != 10 || p.Step != 2 || p.Min != 3 || p.Max != 50 {
		t.Errorf("WidthPolicy() = %+v", p)
	}
	if !cfg.UI.ConfirmQuit || !cfg.Clipboard.System || !cfg.Session.RestoreView {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadTOMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.toml", `
[log]
level = "DEBUG"

[grid]
default_width = 12
max_width = 40

[ui]
confirm_quit = false

[keys.browse]
"C-q" = "app.quit"
"C-w" = "none"
`)
	cfg, err := Load(Options{Path: path, Env: envMap{}, Getenv: noEnv})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Grid.DefaultWidth != 12 || cfg.Grid.MaxWidth != 40 || cfg.Grid.MinWidth != 3 {
		t.Errorf("Grid = %+v", cfg.Grid)
	}
	if cfg.UI.ConfirmQuit {
		t.Error("UI.ConfirmQuit should be false")
	}
	if cfg.Keys["browse"]["C-q"] != "app.quit" || cfg.Keys["browse"]["C-w"] != "none" {
		t.Errorf("Keys = %v", cfg.Keys)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
grid:
  width_step: 3
clipboard:
  system: false
`)
	cfg, err := Load(Options{Path: path, Env: envMap{}, Getenv: noEnv})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.WidthStep != 3 || cfg.Clipboard.System {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.toml", "[log]\nlevel = \"warn\"\n")
	env := envMap{"log": map[string]any{"level": "error"}}

	cfg, err := Load(Options{Path: path, Env: env, Getenv: noEnv})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
}

func TestConfigPathFromEnv(t *testing.T) {
	path := writeFile(t, "alt.toml", "[watch]\nenabled = false\n")
	getenv := func(k string) string {
		if k == EnvConfigPath {
			return path
		}
		return ""
	}
	cfg, err := Load(Options{Env: envMap{}, Getenv: getenv})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Watch.Enabled {
		t.Error("Watch.Enabled should be false")
	}
}

func TestExplicitMissingFile(t *testing.T) {
	_, err := Load(Options{Path: filepath.Join(t.TempDir(), "none.toml"), Env: envMap{}, Getenv: noEnv})
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Load() error = %v, want ErrFileNotFound", err)
	}
}

func TestUnknownSetting(t *testing.T) {
	path := writeFile(t, "config.toml", "[grid]\nwidht = 3\n")
	_, err := Load(Options{Path: path, Env: envMap{}, Getenv: noEnv})
	if !errors.Is(err, ErrUnknownSetting) {
		t.Errorf("Load() error = %v, want ErrUnknownSetting", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"inverted bounds", func(c *Config) { c.Grid.MaxWidth = 2 }, "grid.max_width"},
		{"default outside", func(c *Config) { c.Grid.DefaultWidth = 60 }, "grid.default_width"},
		{"zero step", func(c *Config) { c.Grid.WidthStep = 0 }, "grid.width_step"},
		{"unknown mode", func(c *Config) { c.Keys["visual"] = map[string]string{"x": "app.quit"} }, "unknown mode"},
		{"bad key", func(c *Config) { c.Keys["browse"] = map[string]string{"Hyper-x": "app.quit"} }, "keys.browse"},
		{"wrong mode action", func(c *Config) { c.Keys["edit"] = map[string]string{"C-s": "file.save"} }, "unknown action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() = %v, want ErrValidationFailed", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestExpandPaths(t *testing.T) {
	cfg := Default()
	cfg.Log.File = "~/x.log"
	if err := cfg.expandPaths(); err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(cfg.Log.File, "~") {
		t.Errorf("Log.File = %q, want expanded", cfg.Log.File)
	}
}
