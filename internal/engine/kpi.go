package engine

import "github.com/lanewatch/lanewatch/internal/model"

// KPIs are the four executive scalars over a filtered dataset.
type KPIs struct {
	TotalSales  float64
	TotalProfit float64
	OnTimeRate  float64 // fraction in [0,1]; 1 for an empty dataset
	Orders      int     // distinct order ids
}

// Gauges are the four derived gauge values. Values are raw: late % and
// margin % may leave [0,100] and the renderer decides whether to clamp.
type Gauges struct {
	ServiceOKPct  float64
	LatePct       float64
	MarginPct     float64
	AvgOrderValue float64
}

// ComputeKPIs computes the executive scalars.
func ComputeKPIs(orders []model.Order) KPIs {
	k := KPIs{OnTimeRate: 1}
	if len(orders) == 0 {
		return k
	}

	ids := make(map[string]struct{})
	var lateRows int
	for i := range orders {
		o := &orders[i]
		k.TotalSales += o.Sales
		k.TotalProfit += o.Profit
		if o.IsLate {
			lateRows++
		}
		ids[o.OrderID] = struct{}{}
	}
	k.OnTimeRate = 1 - float64(lateRows)/float64(len(orders))
	k.Orders = len(ids)
	return k
}

// ComputeGauges derives the gauge values from the KPI scalars.
// Ratio divisors are floored at 1 so an empty or zero-sales dataset still
// yields finite values.
func ComputeGauges(k KPIs) Gauges {
	g := Gauges{
		ServiceOKPct: k.OnTimeRate * 100,
		LatePct:      (1 - k.OnTimeRate) * 100,
	}
	if k.TotalSales != 0 {
		g.MarginPct = k.TotalProfit / max1(k.TotalSales) * 100
	}
	g.AvgOrderValue = k.TotalSales / max1(float64(k.Orders))
	return g
}

func max1(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
