package engine

import (
	"strings"

	"github.com/lanewatch/lanewatch/internal/model"
)

// GroupRow is one grouped aggregate: the group's key values (one per
// group-by dimension, empty for the scalar call) and the aggregated value.
type GroupRow struct {
	Key   []string
	Value float64
	Rows  int
}

const keySeparator = "\x1f"

// Aggregate groups orders by the given dimensions, in input order, and
// reduces the measure within each group. Groups appear in insertion order of
// first occurrence. An empty groupBy yields a single scalar row.
//
// The synthetic measures carry their own reduction: order_count is the
// distinct order-id count per group and late_percent is 100*mean(late),
// whatever fn says. Stored measures honor fn exactly: algebraic sum,
// arithmetic mean over the group's rows, or row cardinality.
func Aggregate(orders []model.Order, groupBy []Dimension, measure Measure, fn AggFunc) ([]GroupRow, error) {
	if _, err := ParseMeasure(string(measure)); err != nil {
		return nil, err
	}
	if _, err := ParseAggFunc(string(fn)); err != nil {
		return nil, err
	}

	type bucket struct {
		key      []string
		orderIDs map[string]struct{}
		sum      float64
		lateSum  float64
		rows     int
	}

	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for i := range orders {
		o := &orders[i]
		key := make([]string, len(groupBy))
		for j, d := range groupBy {
			key[j] = d.Value(o)
		}
		mapKey := strings.Join(key, keySeparator)

		b, ok := buckets[mapKey]
		if !ok {
			b = &bucket{key: key, orderIDs: make(map[string]struct{})}
			buckets[mapKey] = b
			order = append(order, mapKey)
		}
		b.rows++
		b.sum += measure.RowValue(o)
		b.lateSum += o.LatePercent()
		b.orderIDs[o.OrderID] = struct{}{}
	}

	rows := make([]GroupRow, 0, len(order))
	for _, mapKey := range order {
		b := buckets[mapKey]
		rows = append(rows, GroupRow{
			Key:   b.key,
			Rows:  b.rows,
			Value: reduce(b.sum, b.lateSum, b.rows, len(b.orderIDs), measure, fn),
		})
	}
	return rows, nil
}

func reduce(sum, lateSum float64, rows, distinctOrders int, measure Measure, fn AggFunc) float64 {
	switch measure {
	case MeasureOrderCount:
		return float64(distinctOrders)
	case MeasureLatePercent:
		return lateSum / float64(rows)
	}
	switch fn {
	case AggSum:
		return sum
	case AggMean:
		return sum / float64(rows)
	case AggCount:
		return float64(rows)
	}
	return 0
}
