package cmd

import (
	"fmt"

	"github.com/shenergia/solarcalc/internal/cli"

	"github.com/spf13/cobra"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the coefficient table in use",
	RunE:  runTiers,
}

func init() {
	rootCmd.AddCommand(tiersCmd)
}

func runTiers(_ *cobra.Command, _ []string) error {
	est, _, closeLog, err := newEstimator()
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	table := est.Table()

	fmt.Println()
	fmt.Println(cli.RenderTitle("COEFICIENTES"))
	fmt.Println()

	rows := make([][]string, 0, len(table.Tiers))
	for _, tier := range table.Names() {
		c := table.Tiers[tier]
		rows = append(rows, []string{
			string(tier),
			tier.Label(),
			cli.FormatPercent(c.SavingsRatio * 100),
			cli.FormatBRL(c.UnitCost),
			cli.FormatDecimal(c.PaybackFactor, 2),
			cli.FormatDecimal(c.RevenueMultiplier, 2),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Tier", "Tipo", "Economia", "R$/kWp", "Payback", "Multiplicador"},
		Rows:    rows,
	}))
	fmt.Println()

	s := table.Sizing
	fmt.Printf("  Tarifa: R$ %s/kWh · Geração: %s kWh/kWp/mês · Horizonte: %s anos\n\n",
		cli.FormatDecimal(s.EnergyPrice, 2), cli.FormatNumber(s.KWhPerKWp), cli.FormatNumber(s.HorizonYears))
	return nil
}
