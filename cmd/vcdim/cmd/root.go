package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vcdim/applog"
	"github.com/katalvlaran/vcdim/config"
)

var (
	verbose          bool
	configPath       string
	coverSizeCeiling int

	logger applog.Logger
	cfg    *config.Config
)

// rootCmd is the base vcdim command; each statistic of spec.md §6 is
// registered as a subcommand by init() in its own file.
var rootCmd = &cobra.Command{
	Use:   "vcdim <statistic> <file> [<candidates-file>]",
	Short: "Compute VC dimension, ladder index, crown size, or biclique number of a degenerate graph",
	Long: `vcdim searches a degeneracy-ordered graph for the largest witness set
realizing a given combinatorial pattern: a shattered set (vc), a ladder,
a crown, or a biclique. The input is a whitespace-separated edge list
(plain text or gzip-compressed); an optional second file restricts the
initial witness-candidate set to a subset of vertices.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := applog.LevelInfo
		if verbose {
			level = applog.LevelDebug
		} else if lv, ok := parseLevel(cfg.Verbosity); ok {
			level = lv
		}
		logger = applog.NewWriterLogger(level, os.Stdout)

		return nil
	},
}

// Execute runs the root command, exiting nonzero on any error (spec.md
// §6 "exit code 0 on success, nonzero on parse or I/O failure").
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level progress output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to vcdim.yaml (defaults to ./vcdim.yaml if present)")
	rootCmd.PersistentFlags().IntVar(&coverSizeCeiling, "cover-size-ceiling", 0, "override the VC engine's cover-size ceiling (0 = theoretical default)")
}

func parseLevel(name string) (applog.Level, bool) {
	switch name {
	case "debug":
		return applog.LevelDebug, true
	case "info":
		return applog.LevelInfo, true
	case "warn":
		return applog.LevelWarn, true
	case "error":
		return applog.LevelError, true
	default:
		return applog.LevelInfo, false
	}
}

// effectiveCoverSizeCeiling returns the --flag override if set, else the
// config file's value (spec.md §1.1: "merged under explicit --flag
// overrides").
func effectiveCoverSizeCeiling() int {
	if coverSizeCeiling != 0 {
		return coverSizeCeiling
	}
	if cfg != nil {
		return cfg.CoverSizeCeiling
	}

	return 0
}
