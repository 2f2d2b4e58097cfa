package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanewatch/lanewatch/internal/cli"
	"github.com/lanewatch/lanewatch/internal/forecast"
)

func forecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project demand forward",
		Long: `Project sales demand forward from the selected dataset.

Orders are bucketed by month or week and extended by a seasonal model. Short
or empty histories fall back to a moving average automatically.`,
		RunE: runForecast,
	}

	addDataFlags(cmd)
	addFilterFlags(cmd)
	addFormatFlag(cmd)
	cmd.Flags().String("granularity", "monthly", "Bucket size (monthly, weekly)")
	cmd.Flags().Int("horizon", 12, "Periods to project (6 to 18)")
	cmd.Flags().Bool("simple", false, "Skip the seasonal model and use a moving average")

	return cmd
}

func runForecast(cmd *cobra.Command, _ []string) error {
	orders, err := loadOrders(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	granName, _ := cmd.Flags().GetString("granularity")
	gran, err := forecast.ParseGranularity(granName)
	if err != nil {
		return err
	}

	horizon, _ := cmd.Flags().GetInt("horizon")

	var modeler forecast.Modeler
	if simple, _ := cmd.Flags().GetBool("simple"); !simple {
		modeler = forecast.NewHoltWinters()
	}

	series := forecast.Resample(orders, gran)
	result, err := forecast.Run(series, horizon, gran, modeler)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(result)
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Demand Forecast (%s, %s path)", gran, result.Path)))

	rows := make([][]string, 0, len(result.Forecast))
	for _, p := range result.Forecast {
		lower, upper := "-", "-"
		if p.Lower != nil {
			lower = cli.FormatAmount(*p.Lower)
		}
		if p.Upper != nil {
			upper = cli.FormatAmount(*p.Upper)
		}
		rows = append(rows, []string{
			p.Date.Format("2006-01-02"),
			cli.FormatAmount(p.Estimate),
			lower,
			upper,
		})
	}
	fmt.Print(cli.RenderTable([]string{"Period", "Estimate", "Lower", "Upper"}, rows))

	if len(result.Actuals) > 0 {
		last := result.Actuals[len(result.Actuals)-1]
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
			"History: %d periods through %s", len(result.Actuals), last.Date.Format("2006-01-02"))))
	}

	return nil
}
