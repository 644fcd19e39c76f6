package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shenergia/solarcalc/internal/cli"
	"github.com/shenergia/solarcalc/internal/estimate"
	"github.com/shenergia/solarcalc/internal/model"
	"github.com/shenergia/solarcalc/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagTier string

var estimateCmd = &cobra.Command{
	Use:   "estimate <bill>",
	Short: "Estimate savings for a monthly electricity bill",
	Example: "  solarcalc estimate 500\n" +
		"  solarcalc estimate \"R$ 1.234,56\" --tier comercial",
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&flagTier, "tier", "t", "", "Installation type (residencial, comercial, rural, industrial)")
	estimateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(estimateCmd)
}

type estimateOutput struct {
	Tier         model.Tier          `json:"tier"`
	Result       model.SavingsResult `json:"result"`
	GaugePercent float64             `json:"gauge_percent"`
	ArcOffset    float64             `json:"arc_offset"` // SVG stroke offset of the savings arc
	Link         string              `json:"whatsapp_link"`
}

func runEstimate(_ *cobra.Command, args []string) error {
	est, _, closeLog, err := newEstimator()
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	name := flagTier
	if name == "" {
		name = est.Config().General.DefaultTier
	}
	tier, err := model.ParseTier(name)
	if err != nil {
		return err
	}

	plan, err := est.Savings(args[0], tier)
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(estimateOutput{
			Tier:         tier,
			Result:       plan.Result,
			GaugePercent: plan.GaugePercent,
			ArcOffset:    estimate.ArcOffset(plan.GaugePercent, estimate.GaugeRadius),
			Link:         plan.Link,
		})
	}

	printSavingsPlan(plan)
	return nil
}

func printSavingsPlan(plan pipeline.SavingsPlan) {
	r := plan.Result

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ECONOMIA SOLAR  %s · %s", cli.FormatBRL(r.Bill), plan.Input.Tier.Label())))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Economia mensal", cli.FormatBRL(r.MonthlySavings)},
			{"Economia anual", cli.FormatBRL(r.AnnualSavings)},
			{"Economia em 25 anos", cli.FormatBRL(r.LifetimeSavings)},
			{"---"},
			{"Sistema recomendado", cli.FormatKWp(r.SystemKWp)},
			{"Investimento estimado", cli.FormatBRL(r.SystemCost)},
			{"Retorno do investimento", cli.FormatYears(r.PaybackYears)},
		},
	}))
	fmt.Println()

	fmt.Println("  Redução na conta")
	fmt.Println(cli.RenderGauge(plan.GaugePercent, 30))
	fmt.Println()

	fmt.Print(cli.RenderDataset("Retorno por tipo de instalação", plan.Chart, cli.FormatYears, 24))
	fmt.Println()

	fmt.Println("  Solicite um orçamento pelo WhatsApp:")
	fmt.Printf("  %s\n\n", plan.Link)
}
