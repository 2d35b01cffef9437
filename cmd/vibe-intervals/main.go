// Package main provides the vibe-intervals command-line tool, an
// interactive-grade explorer for GFF2/GFF3 and BED interval files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "vibe-intervals",
		Short:   "Explore, convert, and summarize GFF and BED interval files",
		Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newViewCmd(&verbose))
	cmd.AddCommand(newConvertCmd(&verbose))
	cmd.AddCommand(newStatsCmd(&verbose))
	cmd.AddCommand(newMergeCmd(&verbose))
	cmd.AddCommand(newDistanceCmd(&verbose))
	cmd.AddCommand(newExportCmd(&verbose))
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.vibe-intervals.yaml and establishes defaults.
func initConfig() {
	viper.SetConfigName(".vibe-intervals")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetDefault("convert.name_attr", "Name")
	viper.SetDefault("convert.score_attr", "score")
	viper.SetDefault("convert.default_score", "0")
	viper.SetDefault("convert.default_phase", "")
	viper.SetDefault("convert.feature_type", "region")
	viper.SetDefault("convert.source", "bed2gff")
	viper.SetDefault("display.color_strands", true)

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// newLogger builds the stderr logger used for per-line warnings.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		cfg.DisableStacktrace = true
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
