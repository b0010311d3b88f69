package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/xlgrid/internal/config/loader"
)

// Options controls where Load reads from.
type Options struct {
	// Path is the config file. Empty means $XLGRID_CONFIG, then DefaultPath.
	// An explicit path that does not exist is an error; a missing default is not.
	Path string

	// FS overrides the file system, for tests.
	FS loader.FileSystem

	// Env supplies environment variables; nil reads the process environment.
	Env loader.Loader

	// Getenv looks up XLGRID_CONFIG; nil uses os.Getenv.
	Getenv func(string) string
}

// Load resolves defaults, the config file and the environment into a
// validated Config.
func Load(opts Options) (*Config, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}

	path, explicit, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}
	if explicit {
		if _, err := fsys.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
	}

	fileLayer, err := loader.ForPath(fsys, path).Load()
	if err != nil {
		return nil, err
	}

	env := opts.Env
	if env == nil {
		env = loader.NewEnvLoader(EnvPrefix, EnvConfigPath)
	}
	envLayer, err := env.Load()
	if err != nil {
		return nil, err
	}

	merged := loader.DeepMerge(loader.DeepMerge(nil, fileLayer), envLayer)
	cfg := Default()
	if err := decode(merged, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if fileLayer != nil {
		cfg.Source = path
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolvePath(opts Options) (path string, explicit bool, err error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	switch {
	case opts.Path != "":
		path, explicit = opts.Path, true
	case getenv(EnvConfigPath) != "":
		path, explicit = getenv(EnvConfigPath), true
	default:
		return DefaultPath(), false, nil
	}
	path, err = homedir.Expand(path)
	return path, explicit, err
}

// decode applies a merged settings map on top of cfg. Unknown keys are
// rejected so that typos do not pass silently.
func decode(m map[string]any, cfg *Config) error {
	if len(m) == 0 {
		return nil
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return err
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrUnknownSetting, strings.TrimSpace(strict.String()))
		}
		return err
	}
	return nil
}

// normalize canonicalises free-form values.
func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Keys == nil {
		c.Keys = make(map[string]map[string]string)
	}
}
