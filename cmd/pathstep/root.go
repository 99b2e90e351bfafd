package main

import (
	"context"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathstep/config"
	"github.com/katalvlaran/pathstep/session"
)

// newRootCommand builds the pathstep command. Settings resolve as
// flag > --config file > built-in default.
func newRootCommand(ctx context.Context, in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		configPath string
		verbose    bool
		flagged    = config.Default()
	)

	rootCmd := &cobra.Command{
		Use:          "pathstep",
		Short:        "Watch Dijkstra's shortest-path search advance one step at a time.",
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base := config.Default()
			if configPath != "" {
				var err error
				if base, err = config.Load(configPath); err != nil {
					return err
				}
			}
			cfg := config.Merge(base, flagged, cmd.Flags())
			if verbose {
				cfg.LogLevel = log.DebugLevel.String()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(errOut, cfg.Level())
			cfg.Seed = cfg.EffectiveSeed()
			logger.WithFields(log.Fields{
				"graph":    cfg.Graph,
				"vertices": cfg.Vertices,
				"seed":     cfg.Seed,
			}).Debug("building graph")

			g, err := cfg.BuildGraph()
			if err != nil {
				return err
			}
			sess, err := session.New(cfg, g, out, logger)
			if err != nil {
				return err
			}
			if cfg.Manual {
				return sess.RunManual(ctx, in)
			}

			return sess.Run(ctx)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML run configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	config.BindFlags(rootCmd.Flags(), &flagged)

	return rootCmd
}

func newLogger(w io.Writer, lvl log.Level) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	return logger
}
