package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/xlgrid/internal/input/key"
	"github.com/dshills/xlgrid/internal/input/keymap"
)

// LogLevels lists the accepted log levels.
var LogLevels = []string{"debug", "info", "warn", "error", "off"}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrValidationFailed}, args...)...))
	}

	if !validLevel(c.Log.Level) {
		fail("log.level %q is not one of %v", c.Log.Level, LogLevels)
	}

	g := c.Grid
	switch {
	case g.MinWidth < 1:
		fail("grid.min_width %d must be at least 1", g.MinWidth)
	case g.MaxWidth < g.MinWidth:
		fail("grid.max_width %d is below grid.min_width %d", g.MaxWidth, g.MinWidth)
	case g.DefaultWidth < g.MinWidth || g.DefaultWidth > g.MaxWidth:
		fail("grid.default_width %d is outside [%d, %d]", g.DefaultWidth, g.MinWidth, g.MaxWidth)
	}
	if g.WidthStep < 1 {
		fail("grid.width_step %d must be at least 1", g.WidthStep)
	}

	modes := make([]string, 0, len(c.Keys))
	for mode := range c.Keys {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for _, mode := range modes {
		if keymap.Actions(mode) == nil {
			fail("keys.%s: unknown mode", mode)
			continue
		}
		specs := make([]string, 0, len(c.Keys[mode]))
		for spec := range c.Keys[mode] {
			specs = append(specs, spec)
		}
		sort.Strings(specs)
		for _, spec := range specs {
			if _, err := key.Parse(spec); err != nil {
				fail("keys.%s: %v", mode, err)
				continue
			}
			action := keymap.Action(c.Keys[mode][spec])
			if action != keymap.ActionNone && !keymap.ValidAction(mode, action) {
				fail("keys.%s.%q: unknown action %q", mode, spec, action)
			}
		}
	}
	return errors.Join(errs...)
}

func validLevel(level string) bool {
	for _, l := range LogLevels {
		if l == level {
			return true
		}
	}
	return false
}
