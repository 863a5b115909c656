package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/chomp/calc"
	"github.com/dhamidi/chomp/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chomp.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
format = "json"

[log]
verbosity = 2
file = "/tmp/chomp.log"

[bindings]
a = "2"
b = "a * 21"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Color, "unset keys keep their defaults")
	assert.Equal(t, LogConfig{Verbosity: 2, File: "/tmp/chomp.log"}, cfg.Log)

	env, err := cfg.Env()
	require.NoError(t, err)
	assert.Equal(t, "42", env["b"].String())
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "format = \n"))
	assert.Error(t, err)
}

func TestEnvReportsBindingErrors(t *testing.T) {
	cfg := Default()
	cfg.Bindings = map[string]string{"x": "1 +"}

	_, err := cfg.Env()
	require.Error(t, err)
	var des parser.DeadEnds[calc.Context, calc.Problem]
	assert.True(t, errors.As(err, &des))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvVar, writeConfig(t, `color = false`))
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Color)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
