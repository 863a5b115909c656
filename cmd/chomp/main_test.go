package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/chomp/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, configText string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "chomp.toml")
	require.NoError(t, os.WriteFile(path, []byte(configText), 0o644))
	t.Setenv(config.EnvVar, path)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalExpression(t *testing.T) {
	out, err := run(t, "color = false\n", "eval", "1 + 2 *", "3")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestEvalUsesBindings(t *testing.T) {
	out, err := run(t, "color = false\n[bindings]\nrate = \"0.5\"\n", "eval", "rate * 4")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEvalFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "prog.calc")
	require.NoError(t, os.WriteFile(src, []byte("let x = 3 in x ^ 2\n"), 0o644))

	out, err := run(t, "color = false\n", "eval", "-f", src)
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

func TestEvalReportsDiagnostics(t *testing.T) {
	out, err := run(t, "color = false\n", "eval", "1 / 0")
	assert.ErrorIs(t, err, reportedError{})
	assert.Equal(t, "<expr>:1:3: division by zero\n  1 / 0\n    ^\n", out)
}

func TestEvalFloatOverflow(t *testing.T) {
	out, err := run(t, "color = false\n", "eval", "1e400")
	assert.ErrorIs(t, err, reportedError{})
	assert.Equal(t, "<expr>:1:1: invalid number literal\n  1e400\n  ^\n", out)
}

func TestEvalJSONOutput(t *testing.T) {
	out, err := run(t, "", "eval", "-o", "json", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `"value": "2"`)
}

func TestEvalArgumentErrors(t *testing.T) {
	_, err := run(t, "", "eval")
	assert.EqualError(t, err, "no expression given")

	_, err = run(t, "", "eval", "-f", "x.calc", "1")
	assert.EqualError(t, err, "cannot combine --file with an expression")

	_, err = run(t, "", "eval", "-o", "xml", "1")
	assert.EqualError(t, err, "unknown format: xml")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.calc")
	bad := filepath.Join(dir, "bad.calc")
	require.NoError(t, os.WriteFile(good, []byte("1 / 0"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("1 +"), 0o644))

	out, err := run(t, "color = false\n", "check", good)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "color = false\n", "check", bad)
	assert.ErrorIs(t, err, reportedError{})
	assert.Contains(t, out, "bad.calc:1:4:")
}
