// Package cmd implements the solarcalc CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/shenergia/solarcalc/internal/cli"
	"github.com/shenergia/solarcalc/internal/config"
	"github.com/shenergia/solarcalc/internal/logging"
	"github.com/shenergia/solarcalc/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "solarcalc",
	Short: "Solar savings and ROI estimator",
	Long: "Estimate what a solar system saves on your electricity bill, and what an\n" +
		"investment returns, then request a quote from SH Energia Solar on WhatsApp.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ie *pipeline.InputError
		if errors.As(err, &ie) {
			fmt.Fprintln(os.Stderr, cli.RenderNotice(ie.Notice))
		} else {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log estimator details to stderr")
}

// newEstimator loads the config and builds the estimator shared by the
// one-shot commands. A missing or unreadable config falls back to defaults.
func newEstimator() (*pipeline.Estimator, *slog.Logger, func() error, error) {
	logger, closeLog, err := logging.New(logging.Options{Verbose: flagVerbose})
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config unreadable, using defaults", "path", config.Path(), "err", err)
		cfg = config.DefaultConfig()
	}

	est, err := pipeline.NewEstimator(cfg, logger)
	if err != nil {
		_ = closeLog()
		return nil, nil, nil, err
	}
	return est, logger, closeLog, nil
}
