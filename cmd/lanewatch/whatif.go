package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lanewatch/lanewatch/internal/cli"
	"github.com/lanewatch/lanewatch/internal/scenario"
)

func whatifCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whatif",
		Short: "Project a pricing and SLA scenario",
		Long: `Project sales, profit and breach rate under a what-if scenario.

The baseline comes from the selected dataset; the sliders adjust it:

  lanewatch whatif --price-uplift 5 --demand-shift -10 --sla-improvement 3`,
		RunE: runWhatif,
	}

	addDataFlags(cmd)
	addFilterFlags(cmd)
	addFormatFlag(cmd)
	cmd.Flags().Float64("price-uplift", 0, "Price uplift in percent (-10 to 20)")
	cmd.Flags().Float64("demand-shift", 0, "Demand shift in percent (-30 to 30)")
	cmd.Flags().Float64("sla-improvement", 0, "SLA improvement in percentage points (0 to 15)")
	cmd.Flags().Float64("variable-cost", 60, "Variable cost share in percent (30 to 90)")

	return cmd
}

func runWhatif(cmd *cobra.Command, _ []string) error {
	orders, err := loadOrders(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	inputs := scenario.Inputs{}
	inputs.PriceUpliftPct, _ = cmd.Flags().GetFloat64("price-uplift")
	inputs.DemandShiftPct, _ = cmd.Flags().GetFloat64("demand-shift")
	inputs.SLAImprovementPP, _ = cmd.Flags().GetFloat64("sla-improvement")
	inputs.VariableCostPct, _ = cmd.Flags().GetFloat64("variable-cost")

	baseline := scenario.BaselineFrom(orders)
	result, err := scenario.Simulate(baseline, inputs)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(struct {
			Baseline scenario.Baseline `json:"baseline"`
			Result   scenario.Result   `json:"result"`
		}{Baseline: baseline, Result: result})
	}

	projection := fmt.Sprintf(`Sales: %s → %s (%+.1f%%)
Profit: %s → %s (%+.1f%%)
Breach rate: %s → %s (%+.1f pp)`,
		cli.FormatMoney(baseline.Sales), cli.FormatMoney(result.ProjectedSales), result.SalesDeltaPct,
		cli.FormatMoney(baseline.Profit), cli.FormatMoney(result.ProjectedProfit), result.ProfitDeltaPct,
		cli.FormatPercent(baseline.BreachPct), cli.FormatPercent(result.ProjectedBreachPct), result.BreachDeltaPP)

	fmt.Println(cli.RenderBox("Scenario Projection", projection))

	var recs strings.Builder
	for i, r := range result.Recommendations {
		fmt.Fprintf(&recs, "%d. %s\n", i+1, r)
	}
	fmt.Println(cli.RenderBox("Recommendations", strings.TrimRight(recs.String(), "\n")))

	return nil
}
