package engine

import "github.com/lanewatch/lanewatch/internal/model"

// SegmentSales is total sales for one customer segment.
type SegmentSales struct {
	Segment string
	Sales   float64
}

// StatusSplit is the on-time vs late row split.
type StatusSplit struct {
	OnTime int
	Late   int
}

// MarketTotals carries sales and profit totals for one market.
type MarketTotals struct {
	Market string
	Sales  float64
	Profit float64
}

// SalesBySegment sums sales per customer segment, insertion order.
func SalesBySegment(orders []model.Order) []SegmentSales {
	rows, _ := Aggregate(orders, []Dimension{DimSegment}, MeasureSales, AggSum)
	out := make([]SegmentSales, 0, len(rows))
	for _, r := range rows {
		out = append(out, SegmentSales{Segment: r.Key[0], Sales: r.Value})
	}
	return out
}

// SplitByStatus counts on-time and late rows.
func SplitByStatus(orders []model.Order) StatusSplit {
	var s StatusSplit
	for i := range orders {
		if orders[i].IsLate {
			s.Late++
		} else {
			s.OnTime++
		}
	}
	return s
}

// TotalsByMarket sums sales and profit per market, insertion order.
func TotalsByMarket(orders []model.Order) []MarketTotals {
	index := make(map[string]int)
	out := make([]MarketTotals, 0)
	for i := range orders {
		o := &orders[i]
		j, ok := index[o.Market]
		if !ok {
			j = len(out)
			index[o.Market] = j
			out = append(out, MarketTotals{Market: o.Market})
		}
		out[j].Sales += o.Sales
		out[j].Profit += o.Profit
	}
	return out
}
