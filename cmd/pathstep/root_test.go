package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(context.Background(), strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRoot_ManualScenario(t *testing.T) {
	out, _, err := execute(t, "f\nq\n", "--graph", "scenario", "--manual")
	require.NoError(t, err)
	assert.Contains(t, out, "path: 1 → 5 → 4 → 2 → 3")
}

func TestRoot_TimedScenario(t *testing.T) {
	out, logs, err := execute(t, "", "-g", "scenario", "-i", "1ms", "-d", "4", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "path: 1 → 5 → 4")
	assert.Contains(t, logs, "level=debug")
}

func TestRoot_ConfigFileAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph: scenario\nmanual: true\ndestination: 2\n"), 0o600))

	out, _, err := execute(t, "f\n", "--config", path, "--destination", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "path: 1 → 5\n")
}

func TestRoot_InvalidInput(t *testing.T) {
	_, _, err := execute(t, "", "--graph", "grid")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "", "--graph", "scenario", "--destination", "9", "--manual")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "", "extra-arg")
	assert.Error(t, err)
}
