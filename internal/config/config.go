// Package config persists the environment map: named groups of application
// identifiers that are launched together.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Sentinel errors shared by the editing and launching layers.
var (
	ErrEnvironmentNotFound = errors.New("environment does not exist")
	ErrEnvironmentExists   = errors.New("environment already exists")
	ErrAppAlreadyPresent   = errors.New("application already in environment")
	ErrAppNotPresent       = errors.New("application not found in environment")
	ErrInvalidAction       = errors.New("invalid action")
)

// configFileName is the name of the config file
const configFileName = "config.yaml"

// Config maps environment names to ordered lists of application identifiers.
// App order within an environment is insertion order and is preserved across
// edits and through Load/Save round-trips.
type Config struct {
	Environments map[string][]string `yaml:"environments"`
}

// Empty returns a usable zero-environment Config.
func Empty() *Config {
	return &Config{Environments: map[string][]string{}}
}

// Dir returns the directory containing clovis config files.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "clovis")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(Dir(), configFileName)
}

// Load reads the config from path. Callers are expected to fall back to
// Empty() on any error; a broken or missing file is never fatal.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Environments == nil {
		cfg.Environments = map[string][]string{}
	}
	return &cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
// The file is written to a temp file first and renamed into place so a
// failed write never leaves a truncated config behind.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, configFileName+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Bytes returns the serialized form of the config. Used for diff previews.
func (c *Config) Bytes() ([]byte, error) {
	return yaml.Marshal(c)
}

// Names returns environment names sorted alphabetically.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Environments))
	for name := range c.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apps returns the app sequence for name in insertion order.
func (c *Config) Apps(name string) ([]string, bool) {
	apps, ok := c.Environments[name]
	return apps, ok
}

// Has reports whether the environment exists.
func (c *Config) Has(name string) bool {
	_, ok := c.Environments[name]
	return ok
}

// Clone returns a deep copy. Edits preview diffs against the original.
func (c *Config) Clone() *Config {
	clone := Empty()
	for name, apps := range c.Environments {
		clone.Environments[name] = slices.Clone(apps)
	}
	return clone
}
