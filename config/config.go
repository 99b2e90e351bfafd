package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/render"
)

// ErrInvalidConfig is wrapped by every Validate and BuildGraph failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Graph kinds.
const (
	GraphScenario = "scenario"
	GraphComplete = "complete"
	GraphSparse   = "sparse"
)

// MaxVertices caps generated graphs; a complete digraph over n vertices
// holds n·(n-1) edges.
const MaxVertices = 2000

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the full description of a run.
type Config struct {
	Graph       string        `yaml:"graph"`
	Vertices    int           `yaml:"vertices"`
	Density     float64       `yaml:"density"`
	MaxWeight   int64         `yaml:"max_weight"`
	Seed        int64         `yaml:"seed"` // 0 picks a time-based seed
	Source      core.VertexID `yaml:"source"`
	Destination core.VertexID `yaml:"destination"`

	Interval time.Duration `yaml:"interval"`
	Manual   bool          `yaml:"manual"`
	Loop     bool          `yaml:"loop"`

	LogLevel string `yaml:"log_level"`
	Color    string `yaml:"color"`
	Style    string `yaml:"style"`
}

// Default returns the stock run: a random complete digraph over 50 vertices
// with weights in [0, 10), searched from 1 towards 3, one step every 100ms.
func Default() Config {
	return Config{
		Graph:       GraphComplete,
		Vertices:    50,
		Density:     0.1,
		MaxWeight:   builder.DefaultMaxWeight,
		Source:      1,
		Destination: 3,
		Interval:    100 * time.Millisecond,
		LogLevel:    logrus.InfoLevel.String(),
		Color:       ColorAuto,
		Style:       "light",
	}
}

// Load reads the YAML file at path over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default. An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks every field independently of the graph it describes.
// Vertex membership of Source and Destination is checked by BuildGraph.
func (c Config) Validate() error {
	switch c.Graph {
	case GraphScenario, GraphComplete, GraphSparse:
	default:
		return invalid("graph", "unknown kind %q", c.Graph)
	}
	if c.Graph != GraphScenario && (c.Vertices < 1 || c.Vertices > MaxVertices) {
		return invalid("vertices", "must be in [1,%d], got %d", MaxVertices, c.Vertices)
	}
	if !(c.Density >= 0 && c.Density <= 1) {
		return invalid("density", "must be in [0,1], got %g", c.Density)
	}
	if c.MaxWeight <= 0 {
		return invalid("max_weight", "must be > 0, got %d", c.MaxWeight)
	}
	if !c.Manual && c.Interval <= 0 {
		return invalid("interval", "must be > 0, got %s", c.Interval)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return invalid("log_level", "%v", err)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return invalid("color", "unknown mode %q", c.Color)
	}
	if _, err := render.ParseStyle(c.Style); err != nil {
		return invalid("style", "%v", err)
	}

	return nil
}

// Level returns the parsed log level, falling back to Info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// RenderOptions translates Color and Style into renderer options.
func (c Config) RenderOptions() []render.Option {
	var opts []render.Option
	switch c.Color {
	case ColorAlways:
		opts = append(opts, render.WithColor(true))
	case ColorNever:
		opts = append(opts, render.WithColor(false))
	}
	if _, err := render.ParseStyle(c.Style); err == nil {
		opts = append(opts, render.WithStyle(c.Style))
	}

	return opts
}

// EffectiveSeed returns Seed, or a time-based seed when Seed is 0.
func (c Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}

	return time.Now().UnixNano()
}

// BuildGraph validates c and builds the graph it describes. Source and
// Destination must both be vertices of the result.
func (c Config) BuildGraph() (*core.Graph, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	bopts := []builder.BuilderOption{
		builder.WithSeed(c.EffectiveSeed()),
		builder.WithMaxWeight(c.MaxWeight),
	}
	var con builder.Constructor
	switch c.Graph {
	case GraphScenario:
		con = builder.Scenario()
	case GraphComplete:
		con = builder.Complete(c.Vertices)
	case GraphSparse:
		con = builder.RandomSparse(c.Vertices, c.Density)
	}

	g, err := builder.BuildGraph(nil, bopts, con)
	if err != nil {
		return nil, fmt.Errorf("%w: graph: %v", ErrInvalidConfig, err)
	}
	if !g.HasVertex(c.Source) {
		return nil, invalid("source", "vertex %d not in %s graph", c.Source, c.Graph)
	}
	if !g.HasVertex(c.Destination) {
		return nil, invalid("destination", "vertex %d not in %s graph", c.Destination, c.Graph)
	}

	return g, nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}
