package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/shenergia/solarcalc/internal/cli"
	"github.com/shenergia/solarcalc/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default tier:  %s\n", cfg.General.DefaultTier)
	fmt.Printf("    Minimum bill:  %s\n", cli.FormatBRL(cfg.General.MinBill))
	fmt.Printf("    Quick values:  %s\n", joinAmounts(cfg.General.QuickValues))
	fmt.Println()

	fmt.Println("  [Contact]")
	fmt.Printf("    WhatsApp: %s\n", config.GetWhatsAppPhone(cfg))
	if os.Getenv("SOLARCALC_WHATSAPP_PHONE") != "" {
		fmt.Println("    (from SOLARCALC_WHATSAPP_PHONE)")
	}
	if cfg.Contact.MessageTemplate != "" {
		fmt.Printf("    Message:  %s\n", cfg.Contact.MessageTemplate)
	}
	fmt.Println()

	fmt.Println("  [ROI]")
	fmt.Printf("    Range:   %s to %s (step %s)\n",
		cli.FormatBRL(cfg.ROI.Min), cli.FormatBRL(cfg.ROI.Max), cli.FormatBRL(cfg.ROI.Step))
	fmt.Printf("    Presets: %s\n", joinAmounts(cfg.ROI.Presets))
	fmt.Println()

	fmt.Println("  [Animation]")
	a := cfg.Animation
	fmt.Printf("    Duration: %s  Counters: %s  Frame: %s\n", a.Duration(), a.CounterDuration(), a.Frame())
	fmt.Printf("    Notices:  %s  Throttle: %s\n", a.Notice(), a.Throttle())
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	if len(cfg.Coefficients.Overrides) > 0 {
		fmt.Println("  [Coefficients]")
		for name := range cfg.Coefficients.Overrides {
			fmt.Printf("    Override: %s\n", name)
		}
		fmt.Println()
	}

	fmt.Println("  Run `solarcalc setup` to reconfigure.")
	return nil
}

func joinAmounts(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = cli.FormatBRL(v)
	}
	return strings.Join(parts, ", ")
}
