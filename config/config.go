// Package config loads chomp settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/dhamidi/chomp/calc"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "CHOMP_CONFIG"

// Config holds CLI and language server settings.
type Config struct {
	Format   string            `toml:"format"`
	Color    bool              `toml:"color"`
	Log      LogConfig         `toml:"log"`
	Bindings map[string]string `toml:"bindings"`
}

// LogConfig configures commonlog.
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Default returns the settings used when no file is found.
func Default() *Config {
	return &Config{
		Format: "text",
		Color:  true,
	}
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(os.ExpandEnv(path), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by CHOMP_CONFIG, then ./chomp.toml,
// then the user config directory. Missing files yield the defaults.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	candidates := []string{"chomp.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "chomp", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
	}
	return Default(), nil
}

// Env evaluates the configured bindings in name order. Each binding may
// refer to bindings that sort before it.
func (c *Config) Env() (calc.Env, error) {
	names := make([]string, 0, len(c.Bindings))
	for name := range c.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	env := calc.Env{}
	for _, name := range names {
		v, err := calc.Evaluate(c.Bindings[name], env)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
		env[name] = v
	}
	return env, nil
}
