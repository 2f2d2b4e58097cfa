package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanewatch/lanewatch/internal/cli"
	"github.com/lanewatch/lanewatch/internal/engine"
)

func kpisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Show headline KPIs and service gauges",
		RunE:  runKPIs,
	}

	addDataFlags(cmd)
	addFilterFlags(cmd)
	addFormatFlag(cmd)
	return cmd
}

func runKPIs(cmd *cobra.Command, _ []string) error {
	orders, err := loadOrders(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	kpis := engine.ComputeKPIs(orders)
	gauges := engine.ComputeGauges(kpis)

	if wantJSON(cmd) {
		return printJSON(struct {
			KPIs   engine.KPIs   `json:"kpis"`
			Gauges engine.Gauges `json:"gauges"`
		}{KPIs: kpis, Gauges: gauges})
	}

	summary := fmt.Sprintf(`Orders: %d
Total sales: %s
Total profit: %s
On-time rate: %s
Avg order value: %s`,
		kpis.Orders,
		cli.FormatMoney(kpis.TotalSales),
		cli.FormatMoney(kpis.TotalProfit),
		cli.FormatPercent(kpis.OnTimeRate*100),
		cli.FormatMoney(gauges.AvgOrderValue))

	fmt.Println(cli.RenderBox("Headline KPIs", summary))
	fmt.Println(cli.RenderGauge("Service OK", gauges.ServiceOKPct, 30))
	fmt.Println(cli.RenderGauge("Late", gauges.LatePct, 30))
	fmt.Println(cli.RenderGauge("Margin", gauges.MarginPct, 30))

	return nil
}
