package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shenergia/solarcalc/internal/cli"
	"github.com/shenergia/solarcalc/internal/model"
	"github.com/shenergia/solarcalc/internal/pipeline"

	"github.com/spf13/cobra"
)

var roiCmd = &cobra.Command{
	Use:   "roi <amount>",
	Short: "Project the return of an investment",
	Long: "Project the revenue and profit of an investment amount. Amounts outside\n" +
		"the configured range are clamped to it.",
	Example: "  solarcalc roi 900\n  solarcalc roi 3000 --json",
	Args:    cobra.ExactArgs(1),
	RunE:    runROI,
}

func init() {
	roiCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(roiCmd)
}

type roiOutput struct {
	Result  model.ROIResult `json:"result"`
	Clamped bool            `json:"clamped"`
	Link    string          `json:"whatsapp_link"`
}

func runROI(_ *cobra.Command, args []string) error {
	est, logger, closeLog, err := newEstimator()
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	plan, err := est.ROI(args[0])
	if err != nil {
		return err
	}
	if plan.Clamped {
		logger.Info("amount clamped to range", "raw", args[0], "amount", plan.Result.Amount)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(roiOutput{Result: plan.Result, Clamped: plan.Clamped, Link: plan.Link})
	}

	printROIPlan(plan)
	return nil
}

func printROIPlan(plan pipeline.ROIPlan) {
	r := plan.Result

	fmt.Println()
	fmt.Println(cli.RenderTitle("RETORNO DO INVESTIMENTO  " + cli.FormatBRL(r.Amount)))
	fmt.Println()

	if plan.Clamped {
		fmt.Printf("  Valor ajustado para %s\n\n", cli.FormatBRL(r.Amount))
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Investimento", cli.FormatBRL(r.Amount)},
			{"Receita projetada", cli.FormatBRL(r.Revenue)},
			{"Lucro", cli.FormatBRL(r.Profit)},
			{"Retorno", cli.FormatMultiple(r.Multiple)},
			{"Por dia", "R$ " + cli.FormatDecimal(r.Daily, 2)},
		},
	}))
	fmt.Println()

	fmt.Print(cli.RenderDataset("Receita por investimento", plan.Chart, cli.FormatBRL, 24))
	fmt.Println()

	fmt.Println("  Solicite uma proposta pelo WhatsApp:")
	fmt.Printf("  %s\n\n", plan.Link)
}
