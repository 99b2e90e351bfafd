package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/config"
	"github.com/katalvlaran/pathstep/core"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.GraphComplete, cfg.Graph)
	assert.Equal(t, 50, cfg.Vertices)
	assert.Equal(t, core.VertexID(1), cfg.Source)
	assert.Equal(t, core.VertexID(3), cfg.Destination)
	assert.Equal(t, 100*time.Millisecond, cfg.Interval)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
graph: sparse
vertices: 12
density: 0.3
seed: 7
interval: 250ms
loop: true
`))
	require.NoError(t, err)
	assert.Equal(t, config.GraphSparse, cfg.Graph)
	assert.Equal(t, 12, cfg.Vertices)
	assert.Equal(t, 0.3, cfg.Density)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.True(t, cfg.Loop)
	// Untouched keys keep their defaults.
	assert.Equal(t, core.VertexID(3), cfg.Destination)

	empty, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), empty)

	_, err = config.Parse([]byte("vertixes: 3\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph: scenario\nmanual: true\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.GraphScenario, cfg.Graph)
	assert.True(t, cfg.Manual)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"graph", func(c *config.Config) { c.Graph = "grid" }},
		{"vertices", func(c *config.Config) { c.Vertices = 0 }},
		{"density", func(c *config.Config) { c.Density = 1.5 }},
		{"density", func(c *config.Config) { c.Density = math.NaN() }},
		{"vertices", func(c *config.Config) { c.Vertices = config.MaxVertices + 1 }},
		{"max_weight", func(c *config.Config) { c.MaxWeight = 0 }},
		{"interval", func(c *config.Config) { c.Interval = 0 }},
		{"log_level", func(c *config.Config) { c.LogLevel = "loud" }},
		{"color", func(c *config.Config) { c.Color = "sometimes" }},
		{"style", func(c *config.Config) { c.Style = "fancy" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.name)
		})
	}

	// Manual runs do not need an interval; scenario ignores the vertex count.
	cfg := config.Default()
	cfg.Manual, cfg.Interval = true, 0
	cfg.Graph, cfg.Vertices = config.GraphScenario, 0
	assert.NoError(t, cfg.Validate())
}

func TestBuildGraph(t *testing.T) {
	cfg := config.Default()
	cfg.Graph = config.GraphScenario
	g, err := cfg.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, 5, g.Len())
	assert.Equal(t, 9, g.EdgeCount())

	cfg.Destination = 9
	_, err = cfg.BuildGraph()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "destination")

	cfg = config.Default()
	cfg.Vertices, cfg.Seed = 4, 1
	g, err = cfg.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 12, g.EdgeCount())

	cfg = config.Default()
	cfg.Graph, cfg.Vertices, cfg.Density, cfg.Seed = config.GraphSparse, 10, 0.4, 5
	a, err := cfg.BuildGraph()
	require.NoError(t, err)
	b, err := cfg.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same graph")

	cfg.Vertices = 2
	cfg.Source = 5
	_, err = cfg.BuildGraph()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMerge(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagged := config.Default()
	config.BindFlags(fs, &flagged)
	require.NoError(t, fs.Parse([]string{"--vertices=7", "-s", "2", "--interval=1s"}))

	base, err := config.Parse([]byte("vertices: 20\ndestination: 4\n"))
	require.NoError(t, err)

	got := config.Merge(base, flagged, fs)
	assert.Equal(t, 7, got.Vertices, "flag beats file")
	assert.Equal(t, core.VertexID(2), got.Source)
	assert.Equal(t, time.Second, got.Interval)
	assert.Equal(t, core.VertexID(4), got.Destination, "file beats default")
	assert.Equal(t, config.GraphComplete, got.Graph)
}

func TestRenderOptions(t *testing.T) {
	cfg := config.Default()
	assert.Len(t, cfg.RenderOptions(), 1)
	cfg.Color = config.ColorNever
	assert.Len(t, cfg.RenderOptions(), 2)
}
