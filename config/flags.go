package config

import "github.com/spf13/pflag"

// Flag names shared by BindFlags and Merge.
const (
	FlagGraph       = "graph"
	FlagVertices    = "vertices"
	FlagDensity     = "density"
	FlagMaxWeight   = "max-weight"
	FlagSeed        = "seed"
	FlagSource      = "source"
	FlagDestination = "destination"
	FlagInterval    = "interval"
	FlagManual      = "manual"
	FlagLoop        = "loop"
	FlagLogLevel    = "log-level"
	FlagColor       = "color"
	FlagStyle       = "style"
)

// BindFlags registers one flag per field on fs, writing into c. The current
// values of c become the flag defaults.
func BindFlags(fs *pflag.FlagSet, c *Config) {
	fs.StringVarP(&c.Graph, FlagGraph, "g", c.Graph, "graph kind: scenario, complete or sparse")
	fs.IntVarP(&c.Vertices, FlagVertices, "n", c.Vertices, "vertex count for generated graphs")
	fs.Float64Var(&c.Density, FlagDensity, c.Density, "edge probability for sparse graphs")
	fs.Int64Var(&c.MaxWeight, FlagMaxWeight, c.MaxWeight, "generated weights are drawn from [0, max-weight)")
	fs.Int64Var(&c.Seed, FlagSeed, c.Seed, "random seed (0 = time based)")
	fs.IntVarP((*int)(&c.Source), FlagSource, "s", int(c.Source), "source vertex")
	fs.IntVarP((*int)(&c.Destination), FlagDestination, "d", int(c.Destination), "destination vertex")
	fs.DurationVarP(&c.Interval, FlagInterval, "i", c.Interval, "delay between steps")
	fs.BoolVarP(&c.Manual, FlagManual, "m", c.Manual, "step on Enter instead of a timer")
	fs.BoolVar(&c.Loop, FlagLoop, c.Loop, "restart the search after it terminates")
	fs.StringVar(&c.LogLevel, FlagLogLevel, c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&c.Color, FlagColor, c.Color, "colour output: auto, always or never")
	fs.StringVar(&c.Style, FlagStyle, c.Style, "table style")
}

var copiers = map[string]func(dst *Config, src Config){
	FlagGraph:       func(d *Config, s Config) { d.Graph = s.Graph },
	FlagVertices:    func(d *Config, s Config) { d.Vertices = s.Vertices },
	FlagDensity:     func(d *Config, s Config) { d.Density = s.Density },
	FlagMaxWeight:   func(d *Config, s Config) { d.MaxWeight = s.MaxWeight },
	FlagSeed:        func(d *Config, s Config) { d.Seed = s.Seed },
	FlagSource:      func(d *Config, s Config) { d.Source = s.Source },
	FlagDestination: func(d *Config, s Config) { d.Destination = s.Destination },
	FlagInterval:    func(d *Config, s Config) { d.Interval = s.Interval },
	FlagManual:      func(d *Config, s Config) { d.Manual = s.Manual },
	FlagLoop:        func(d *Config, s Config) { d.Loop = s.Loop },
	FlagLogLevel:    func(d *Config, s Config) { d.LogLevel = s.LogLevel },
	FlagColor:       func(d *Config, s Config) { d.Color = s.Color },
	FlagStyle:       func(d *Config, s Config) { d.Style = s.Style },
}

// Merge returns base with every field whose flag was set on fs replaced by
// the value in flagged (the Config that BindFlags wrote into).
func Merge(base, flagged Config, fs *pflag.FlagSet) Config {
	fs.Visit(func(f *pflag.Flag) {
		if cp, ok := copiers[f.Name]; ok {
			cp(&base, flagged)
		}
	})

	return base
}
