package cmd

import (
	"fmt"

	"github.com/shenergia/solarcalc/internal/config"
	"github.com/shenergia/solarcalc/internal/logging"
	"github.com/shenergia/solarcalc/internal/tui"
	"github.com/shenergia/solarcalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive estimator",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Bubble Tea owns the terminal; logs only go to SOLARCALC_LOG
	logger, closeLog, err := logging.New(logging.Options{Verbose: flagVerbose, Interactive: true})
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config unreadable, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app, err := tui.NewSession(cfg, logger, !config.Exists())
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
