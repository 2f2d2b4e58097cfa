package engine

import (
	"fmt"

	"github.com/lanewatch/lanewatch/internal/common"
	"github.com/lanewatch/lanewatch/internal/model"
)

// Measure is the quantity being aggregated. Besides the stored numeric
// fields there are two synthetic measures: order_count (distinct order ids)
// and late_percent (100 * mean of the late flag).
type Measure string

// Supported measures.
const (
	MeasureSales       Measure = "sales"
	MeasureProfit      Measure = "profit"
	MeasureOrderCount  Measure = "order_count"
	MeasureLatePercent Measure = "late_percent"
)

// AggFunc selects how a stored measure is reduced within a group.
type AggFunc string

// Supported aggregation functions.
const (
	AggSum   AggFunc = "sum"
	AggMean  AggFunc = "mean"
	AggCount AggFunc = "count"
)

// ParseMeasure resolves a user-supplied measure name.
func ParseMeasure(name string) (Measure, error) {
	m := Measure(name)
	switch m {
	case MeasureSales, MeasureProfit, MeasureOrderCount, MeasureLatePercent:
		return m, nil
	}
	return "", common.NewUserError(fmt.Sprintf("unknown measure %q", name), common.ErrUnknownMeasure)
}

// ParseAggFunc resolves a user-supplied aggregation function name.
func ParseAggFunc(name string) (AggFunc, error) {
	fn := AggFunc(name)
	switch fn {
	case AggSum, AggMean, AggCount:
		return fn, nil
	}
	return "", common.NewUserError(fmt.Sprintf("unknown aggregation %q", name), common.ErrUnknownAggFunc)
}

// RowValue returns the measure's per-row value, with synthetic measures
// materialized as constant 1 (order_count) and 100*late (late_percent) so
// they can be aggregated like stored fields.
func (m Measure) RowValue(o *model.Order) float64 {
	switch m {
	case MeasureSales:
		return o.Sales
	case MeasureProfit:
		return o.Profit
	case MeasureOrderCount:
		return 1
	case MeasureLatePercent:
		return o.LatePercent()
	}
	return 0
}

// Label returns a human-readable label for the measure.
func (m Measure) Label() string {
	switch m {
	case MeasureSales:
		return "Sales"
	case MeasureProfit:
		return "Profit"
	case MeasureOrderCount:
		return "Orders"
	case MeasureLatePercent:
		return "Late %"
	}
	return string(m)
}
