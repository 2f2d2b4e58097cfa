// Package insights ranks where operational action pays off: late-heavy
// markets, high-sales/low-margin categories, city hotspots, breach
// seasonality and an emissions proxy trend.
package insights

import (
	"fmt"
	"math"
	"sort"

	"github.com/lanewatch/lanewatch/internal/common"
	"github.com/lanewatch/lanewatch/internal/engine"
	"github.com/lanewatch/lanewatch/internal/forecast"
	"github.com/lanewatch/lanewatch/internal/model"
)

// Params tune the report. Ranges mirror the control surface.
type Params struct {
	TopMarkets    int     // 3..12
	SalesQuantile float64 // 0.50..0.95, threshold for "high sales"
	TopCities     int     // 3..15
	CO2PerDollar  float64 // 0.0001..0.01 kg CO2e per sales dollar
}

// DefaultParams returns the default report tuning.
func DefaultParams() Params {
	return Params{TopMarkets: 6, SalesQuantile: 0.75, TopCities: 8, CO2PerDollar: 0.0008}
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	if p.TopMarkets < 3 || p.TopMarkets > 12 {
		return common.NewUserError(fmt.Sprintf("top markets must be between 3 and 12, got %d", p.TopMarkets), common.ErrOutOfRange)
	}
	if p.SalesQuantile < 0.50 || p.SalesQuantile > 0.95 {
		return common.NewUserError(fmt.Sprintf("sales quantile must be between 0.50 and 0.95, got %g", p.SalesQuantile), common.ErrOutOfRange)
	}
	if p.TopCities < 3 || p.TopCities > 15 {
		return common.NewUserError(fmt.Sprintf("top cities must be between 3 and 15, got %d", p.TopCities), common.ErrOutOfRange)
	}
	if p.CO2PerDollar < 0.0001 || p.CO2PerDollar > 0.01 {
		return common.NewUserError(fmt.Sprintf("CO2e factor must be between 0.0001 and 0.01, got %g", p.CO2PerDollar), common.ErrOutOfRange)
	}
	return nil
}

// MarketLateness is one market ranked by its late share.
type MarketLateness struct {
	Market  string
	LatePct float64
	Sales   float64
	Profit  float64
}

// CategoryMargin is one high-sales category with its margin.
type CategoryMargin struct {
	Category  string
	Sales     float64
	Profit    float64
	MarginPct float64
}

// CityBreach is one city ranked by its breach share.
type CityBreach struct {
	City    string
	LatePct float64
}

// Seasonality is the month × market late-percent matrix, months fixed
// January through December, zero-filled.
type Seasonality struct {
	Months  []string
	Markets []string
	Cells   [][]float64 // [month][market]
}

// Report is the full action-insight output for the current filter.
type Report struct {
	Seasonality         *Seasonality
	Markets             []MarketLateness
	LowMarginCategories []CategoryMargin
	CityHotspots        []CityBreach
	CO2Trend            []forecast.Point
	CO2Last12Kg         float64
	OnTimePct           float64
	MarginPct           float64
}

// maxLowMarginCategories caps the category list.
const maxLowMarginCategories = 12

// BuildReport computes the report. An empty dataset yields an empty report,
// not an error.
func BuildReport(orders []model.Order, p Params) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	r := &Report{
		Markets:             marketsByLateness(orders, p.TopMarkets),
		LowMarginCategories: lowMarginCategories(orders, p.SalesQuantile),
		CityHotspots:        cityHotspots(orders, p.TopCities),
		Seasonality:         breachSeasonality(orders),
	}

	k := engine.ComputeKPIs(orders)
	g := engine.ComputeGauges(k)
	r.OnTimePct = g.ServiceOKPct
	r.MarginPct = g.MarginPct

	monthly := forecast.Resample(orders, forecast.Monthly)
	r.CO2Trend = make([]forecast.Point, len(monthly))
	for i, pt := range monthly {
		r.CO2Trend[i] = forecast.Point{Date: pt.Date, Value: pt.Value * p.CO2PerDollar}
	}
	start := len(r.CO2Trend) - 12
	if start < 0 {
		start = 0
	}
	for _, pt := range r.CO2Trend[start:] {
		r.CO2Last12Kg += pt.Value
	}

	return r, nil
}

func marketsByLateness(orders []model.Order, topN int) []MarketLateness {
	late, _ := engine.Aggregate(orders, []engine.Dimension{engine.DimMarket}, engine.MeasureLatePercent, engine.AggMean)
	totals := engine.TotalsByMarket(orders)

	byMarket := make(map[string]engine.MarketTotals, len(totals))
	for _, t := range totals {
		byMarket[t.Market] = t
	}

	out := make([]MarketLateness, 0, len(late))
	for _, row := range late {
		t := byMarket[row.Key[0]]
		out = append(out, MarketLateness{
			Market:  row.Key[0],
			LatePct: row.Value,
			Sales:   t.Sales,
			Profit:  t.Profit,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].LatePct > out[j].LatePct })
	if topN < len(out) {
		out = out[:topN]
	}
	return out
}

func lowMarginCategories(orders []model.Order, quantile float64) []CategoryMargin {
	index := make(map[string]int)
	var cats []CategoryMargin
	for i := range orders {
		o := &orders[i]
		j, ok := index[o.Category]
		if !ok {
			j = len(cats)
			index[o.Category] = j
			cats = append(cats, CategoryMargin{Category: o.Category})
		}
		cats[j].Sales += o.Sales
		cats[j].Profit += o.Profit
	}
	if len(cats) == 0 {
		return nil
	}

	sales := make([]float64, len(cats))
	for i := range cats {
		if cats[i].Sales > 0 {
			cats[i].MarginPct = cats[i].Profit / cats[i].Sales * 100
		}
		sales[i] = cats[i].Sales
	}
	threshold := Quantile(sales, quantile)

	out := make([]CategoryMargin, 0, len(cats))
	for _, c := range cats {
		if c.Sales >= threshold {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MarginPct != out[j].MarginPct {
			return out[i].MarginPct < out[j].MarginPct
		}
		return out[i].Sales > out[j].Sales
	})
	if len(out) > maxLowMarginCategories {
		out = out[:maxLowMarginCategories]
	}
	return out
}

func cityHotspots(orders []model.Order, topN int) []CityBreach {
	rows, _ := engine.Aggregate(orders, []engine.Dimension{engine.DimCity}, engine.MeasureLatePercent, engine.AggMean)
	out := make([]CityBreach, 0, len(rows))
	for _, r := range rows {
		out = append(out, CityBreach{City: r.Key[0], LatePct: r.Value})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].LatePct > out[j].LatePct })
	if topN < len(out) {
		out = out[:topN]
	}
	return out
}

func breachSeasonality(orders []model.Order) *Seasonality {
	s := &Seasonality{
		Months: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	}

	marketIndex := make(map[string]int)
	type cell struct {
		late float64
		rows int
	}
	cells := make(map[[2]int]*cell)

	for i := range orders {
		o := &orders[i]
		m, ok := marketIndex[o.Market]
		if !ok {
			m = len(s.Markets)
			marketIndex[o.Market] = m
			s.Markets = append(s.Markets, o.Market)
		}
		month := int(o.OrderDate.Month()) - 1
		c, ok := cells[[2]int{month, m}]
		if !ok {
			c = &cell{}
			cells[[2]int{month, m}] = c
		}
		c.rows++
		c.late += o.LatePercent()
	}

	s.Cells = make([][]float64, len(s.Months))
	for month := range s.Cells {
		s.Cells[month] = make([]float64, len(s.Markets))
		for m := range s.Cells[month] {
			if c, ok := cells[[2]int{month, m}]; ok {
				s.Cells[month][m] = c.late / float64(c.rows)
			}
		}
	}
	return s
}

// Quantile computes the q-quantile of values with linear interpolation
// between order statistics.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
