package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanewatch/lanewatch/internal/cli"
	"github.com/lanewatch/lanewatch/internal/engine"
)

func opsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Show the daily operations pulse",
		Long: `Show a day-by-day view of order volume, sales and SLA breach rate.

Days with no orders appear as zero rows so gaps in the record are visible.`,
		RunE: runOps,
	}

	addDataFlags(cmd)
	addFilterFlags(cmd)
	addFormatFlag(cmd)
	cmd.Flags().Int("last", 0, "Only show the most recent N days")
	return cmd
}

func runOps(cmd *cobra.Command, _ []string) error {
	orders, err := loadOrders(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	daily := engine.ResampleDaily(orders)

	if last, _ := cmd.Flags().GetInt("last"); last > 0 && len(daily) > last {
		daily = daily[len(daily)-last:]
	}

	if wantJSON(cmd) {
		return printJSON(daily)
	}

	if len(daily) == 0 {
		fmt.Println(cli.FormatWarning("No orders in the selected range"))
		return nil
	}

	rows := make([][]string, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, []string{
			d.Date.Format("2006-01-02"),
			fmt.Sprintf("%d", d.Orders),
			cli.FormatMoney(d.Sales),
			cli.FormatPercent(d.BreachRate * 100),
		})
	}

	fmt.Println(cli.FormatTitle("Daily Operations"))
	fmt.Print(cli.RenderTable([]string{"Date", "Orders", "Sales", "Breach Rate"}, rows))
	return nil
}
