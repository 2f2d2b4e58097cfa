package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanewatch/lanewatch/internal/cli"
	"github.com/lanewatch/lanewatch/internal/insights"
)

func insightsCmd() *cobra.Command {
	defaults := insights.DefaultParams()

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Surface lateness, margin and emissions insights",
		RunE:  runInsights,
	}

	addDataFlags(cmd)
	addFilterFlags(cmd)
	addFormatFlag(cmd)
	cmd.Flags().Int("top-markets", defaults.TopMarkets, "Markets to rank by late share (3 to 12)")
	cmd.Flags().Float64("sales-quantile", defaults.SalesQuantile, "High-sales threshold quantile (0.50 to 0.95)")
	cmd.Flags().Int("top-cities", defaults.TopCities, "Cities to rank by breach share (3 to 15)")
	cmd.Flags().Float64("co2-per-dollar", defaults.CO2PerDollar, "kg CO2e per sales dollar (0.0001 to 0.01)")

	return cmd
}

func runInsights(cmd *cobra.Command, _ []string) error {
	orders, err := loadOrders(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	params := insights.Params{}
	params.TopMarkets, _ = cmd.Flags().GetInt("top-markets")
	params.SalesQuantile, _ = cmd.Flags().GetFloat64("sales-quantile")
	params.TopCities, _ = cmd.Flags().GetInt("top-cities")
	params.CO2PerDollar, _ = cmd.Flags().GetFloat64("co2-per-dollar")

	report, err := insights.BuildReport(orders, params)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(report)
	}

	fmt.Println(cli.RenderBox("Health", fmt.Sprintf(
		"On-time: %s\nMargin: %s\nCO2e last 12 periods: %s kg",
		cli.FormatPercent(report.OnTimePct),
		cli.FormatPercent(report.MarginPct),
		cli.FormatAmount(report.CO2Last12Kg))))

	marketRows := make([][]string, 0, len(report.Markets))
	for _, m := range report.Markets {
		marketRows = append(marketRows, []string{
			m.Market,
			cli.FormatPercent(m.LatePct),
			cli.FormatMoney(m.Sales),
			cli.FormatMoney(m.Profit),
		})
	}
	fmt.Println(cli.FormatTitle("Markets by Late Share"))
	fmt.Print(cli.RenderTable([]string{"Market", "Late", "Sales", "Profit"}, marketRows))
	fmt.Println()

	if len(report.LowMarginCategories) > 0 {
		catRows := make([][]string, 0, len(report.LowMarginCategories))
		for _, c := range report.LowMarginCategories {
			catRows = append(catRows, []string{
				c.Category,
				cli.FormatPercent(c.MarginPct),
				cli.FormatMoney(c.Sales),
			})
		}
		fmt.Println(cli.FormatTitle("High-Sales, Low-Margin Categories"))
		fmt.Print(cli.RenderTable([]string{"Category", "Margin", "Sales"}, catRows))
		fmt.Println()
	}

	if len(report.CityHotspots) > 0 {
		cityRows := make([][]string, 0, len(report.CityHotspots))
		for _, c := range report.CityHotspots {
			cityRows = append(cityRows, []string{c.City, cli.FormatPercent(c.LatePct)})
		}
		fmt.Println(cli.FormatTitle("Breach Hotspot Cities"))
		fmt.Print(cli.RenderTable([]string{"City", "Breach"}, cityRows))
		fmt.Println()
	}

	if report.Seasonality != nil {
		fmt.Println(cli.FormatTitle("Late Share by Month and Market"))
		fmt.Print(cli.RenderHeatmap(report.Seasonality.Months, report.Seasonality.Markets, report.Seasonality.Cells))
	}

	return nil
}
