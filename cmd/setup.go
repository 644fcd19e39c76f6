package cmd

import (
	"errors"
	"fmt"

	"github.com/shenergia/solarcalc/internal/config"
	"github.com/shenergia/solarcalc/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg := config.LoadOrDefault()

	fmt.Println()
	fmt.Println("  Bem-vindo ao solarcalc!")
	fmt.Println()

	if _, err := tui.RunSetup(cfg); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `solarcalc setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
