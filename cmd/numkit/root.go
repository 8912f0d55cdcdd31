package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"numkit/utils"
)

type demoConfig struct {
	Verbose bool
	Seed    uint64
}

var cfg demoConfig

var rootCmd = &cobra.Command{
	Use:           "numkit",
	Short:         "Demonstrate the numkit arithmetic, dataset and utility packages",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := slog.LevelWarn
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		utils.SetLogger(logger)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "seed for the random section (0 picks a random seed)")
}
