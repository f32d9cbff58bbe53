// Package project loads the optional chordr.toml configuration file with
// the defaults a user does not want to repeat on every invocation.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the working directory and its parents.
const ConfigFileName = "chordr.toml"

// Config mirrors the chordr.toml layout.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// DefaultsConfig holds conversion defaults, overridable by CLI flags.
type DefaultsConfig struct {
	Format    string `toml:"format"`
	BNotation string `toml:"b_notation"`
}

// CatalogConfig configures the catalog build.
type CatalogConfig struct {
	SourceDir string `toml:"source_dir"`
	Output    string `toml:"output"`
}

// Load parses a chordr.toml file. Unknown keys are rejected so typos do not
// silently disable a setting.
func Load(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Discover walks from dir upwards until it finds a chordr.toml. A missing
// config is not an error; callers get the zero Config.
func Discover(dir string) (Config, string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, "", err
	}
	for {
		candidate := filepath.Join(current, ConfigFileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			cfg, loadErr := Load(candidate)
			if loadErr != nil {
				return Config{}, "", loadErr
			}
			return cfg, candidate, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return Config{}, "", statErr
		}
		parent := filepath.Dir(current)
		if parent == current {
			return Config{}, "", nil
		}
		current = parent
	}
}
