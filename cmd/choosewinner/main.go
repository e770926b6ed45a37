package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Defaults for the command line flags
type config struct {
	Catalog string `env:"CHOOSEWINNER_CATALOG" envDefault:"themes.yaml"`
	Seed    int64  `env:"CHOOSEWINNER_SEED"`
	Verbose bool   `env:"CHOOSEWINNER_VERBOSE"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

type cli struct {
	cfg    config
	logger *zap.Logger
}

func newRootCmd(cfg config) *cobra.Command {
	c := &cli{cfg: cfg, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "choosewinner",
		Short: "Pick your favorite card in a knockout tournament",
		Long: `choosewinner plays the cards of a theme against each other.

Two cards are shown at a time and the one you pick advances to the
next round until a single winner is left. The bracket of the
tournament is printed at the end.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logConfig := zap.NewProductionConfig()
			if c.cfg.Verbose {
				logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := logConfig.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&c.cfg.Catalog, "catalog", "c", cfg.Catalog, "path of the theme catalog file")
	root.PersistentFlags().BoolVarP(&c.cfg.Verbose, "verbose", "v", cfg.Verbose, "log every tournament step")

	root.AddCommand(c.newPlayCmd(), c.newThemesCmd(), c.newAddCmd())

	return root
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
