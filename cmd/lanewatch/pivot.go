package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lanewatch/lanewatch/internal/cli"
	"github.com/lanewatch/lanewatch/internal/engine"
	"github.com/lanewatch/lanewatch/internal/olap"
)

func pivotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pivot",
		Short: "Cross-tabulate orders across dimensions",
		Long: `Build a pivot table over the order data.

Rows and columns take dimension names (year, market, segment, category, city,
country, month). Slices pre-filter the data per dimension, for example:

  lanewatch pivot --rows market --cols year --measure sales --agg sum \
      --slice segment=Consumer,Corporate --chart heatmap`,
		RunE: runPivot,
	}

	addDataFlags(cmd)
	addFilterFlags(cmd)
	addFormatFlag(cmd)
	cmd.Flags().StringSlice("rows", []string{}, "Row dimensions (comma-separated)")
	cmd.Flags().StringSlice("cols", []string{}, "Column dimensions (comma-separated)")
	cmd.Flags().String("measure", "sales", "Measure (sales, profit, order_count, late_percent)")
	cmd.Flags().String("agg", "sum", "Aggregation function (sum, mean, count)")
	cmd.Flags().StringArray("slice", []string{}, "Slice filter as dim=v1,v2 (repeatable)")
	cmd.Flags().String("chart", "heatmap", "Projection (heatmap, bars, line)")
	cmd.Flags().Int("top-k", 10, "Rows to keep for bars and line projections")

	return cmd
}

func runPivot(cmd *cobra.Command, _ []string) error {
	orders, err := loadOrders(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	spec, err := pivotSpecFromFlags(cmd)
	if err != nil {
		return err
	}

	pivot, err := olap.Build(orders, spec)
	if err != nil {
		return err
	}

	chartName, _ := cmd.Flags().GetString("chart")
	chartType, err := olap.ParseChartType(chartName)
	if err != nil {
		return err
	}

	topK, _ := cmd.Flags().GetInt("top-k")
	chart, err := pivot.Project(chartType, topK)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(chart)
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Pivot: %s (%s)", spec.Measure.Label(), spec.Agg)))

	switch chart.Type {
	case olap.ChartHeatmap:
		fmt.Print(cli.RenderHeatmap(pivot.RowLabels(), pivot.ColLabels(), pivot.Cells))
	case olap.ChartBars, olap.ChartLine:
		rows := make([][]string, 0, len(chart.Series))
		for _, r := range chart.Series {
			rows = append(rows, []string{r.Label, cli.FormatAmount(r.Total)})
		}
		fmt.Print(cli.RenderTable([]string{"Group", spec.Measure.Label()}, rows))
	}

	return nil
}

func pivotSpecFromFlags(cmd *cobra.Command) (olap.Spec, error) {
	var spec olap.Spec

	rowNames, _ := cmd.Flags().GetStringSlice("rows")
	colNames, _ := cmd.Flags().GetStringSlice("cols")

	for _, name := range rowNames {
		d, err := engine.ParseDimension(name)
		if err != nil {
			return spec, err
		}
		spec.Rows = append(spec.Rows, d)
	}
	for _, name := range colNames {
		d, err := engine.ParseDimension(name)
		if err != nil {
			return spec, err
		}
		spec.Cols = append(spec.Cols, d)
	}

	measureName, _ := cmd.Flags().GetString("measure")
	measure, err := engine.ParseMeasure(measureName)
	if err != nil {
		return spec, err
	}
	spec.Measure = measure

	aggName, _ := cmd.Flags().GetString("agg")
	agg, err := engine.ParseAggFunc(aggName)
	if err != nil {
		return spec, err
	}
	spec.Agg = agg

	slices, _ := cmd.Flags().GetStringArray("slice")
	for _, s := range slices {
		dim, values, err := parseSlice(s)
		if err != nil {
			return spec, err
		}
		if spec.Slice == nil {
			spec.Slice = make(map[engine.Dimension][]string)
		}
		spec.Slice[dim] = append(spec.Slice[dim], values...)
	}

	return spec, nil
}

func parseSlice(s string) (engine.Dimension, []string, error) {
	name, valueList, ok := strings.Cut(s, "=")
	if !ok {
		return "", nil, fmt.Errorf("invalid slice %q, expected dim=v1,v2", s)
	}

	dim, err := engine.ParseDimension(strings.TrimSpace(name))
	if err != nil {
		return "", nil, err
	}

	var values []string
	for _, v := range strings.Split(valueList, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return "", nil, fmt.Errorf("slice %q has no values", s)
	}

	return dim, values, nil
}
