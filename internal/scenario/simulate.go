// Package scenario projects what-if outcomes from baseline aggregates.
package scenario

import (
	"fmt"

	"github.com/lanewatch/lanewatch/internal/common"
	"github.com/lanewatch/lanewatch/internal/engine"
	"github.com/lanewatch/lanewatch/internal/model"
)

// Baseline carries the aggregates a scenario adjusts.
type Baseline struct {
	Sales     float64
	Profit    float64
	BreachPct float64
}

// Inputs are the scenario sliders. Ranges mirror the control surface:
// price uplift -10..20 %, demand shift -30..30 %, SLA improvement 0..15 pp,
// variable cost 30..90 %.
type Inputs struct {
	PriceUpliftPct   float64
	DemandShiftPct   float64
	SLAImprovementPP float64
	VariableCostPct  float64
}

// Result is the projected outcome plus rule-based recommendations.
type Result struct {
	Recommendations    []string
	ProjectedSales     float64
	ProjectedProfit    float64
	ProjectedBreachPct float64
	SalesDeltaPct      float64
	ProfitDeltaPct     float64
	BreachDeltaPP      float64
}

// Recommendation texts, in rule order.
const (
	recElasticityPilot = "Pilot uplift on loyal segments; A/B test elasticities by region."
	recRenegotiateSLA  = "Renegotiate SLAs and buffer volatile lanes."
	recCostDown        = "Drive supplier/3PL cost-down initiatives."
	recStatusQuo       = "Maintain status quo; iterate on high-volume lanes for small gains."
)

// Validate checks the slider ranges. Out-of-range values are a reported
// input error, never a crash.
func (in Inputs) Validate() error {
	check := func(name string, v, lo, hi float64) error {
		if v < lo || v > hi {
			return common.NewUserError(
				fmt.Sprintf("%s must be between %g and %g, got %g", name, lo, hi, v),
				common.ErrOutOfRange)
		}
		return nil
	}
	if err := check("price uplift", in.PriceUpliftPct, -10, 20); err != nil {
		return err
	}
	if err := check("demand shift", in.DemandShiftPct, -30, 30); err != nil {
		return err
	}
	if err := check("SLA improvement", in.SLAImprovementPP, 0, 15); err != nil {
		return err
	}
	return check("variable cost", in.VariableCostPct, 30, 90)
}

// BaselineFrom derives the scenario baseline from a filtered dataset.
func BaselineFrom(orders []model.Order) Baseline {
	k := engine.ComputeKPIs(orders)
	b := Baseline{Sales: k.TotalSales, Profit: k.TotalProfit}
	if len(orders) > 0 {
		b.BreachPct = (1 - k.OnTimeRate) * 100
	}
	return b
}

// Simulate applies the scenario to the baseline.
//
// The arithmetic is the business contract and must not be "improved":
// sales scale by both price and demand factors, only the price share of the
// gain survives variable cost, and the breach drop floors at zero. Ratio
// divisors floor at 1 so zero baselines stay finite.
func Simulate(b Baseline, in Inputs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	projectedSales := b.Sales * (1 + in.PriceUpliftPct/100) * (1 + in.DemandShiftPct/100)
	marginGain := b.Sales * (in.PriceUpliftPct / 100) * (1 - in.VariableCostPct/100)
	projectedProfit := b.Profit + marginGain
	projectedBreach := b.BreachPct - in.SLAImprovementPP
	if projectedBreach < 0 {
		projectedBreach = 0
	}

	res := Result{
		ProjectedSales:     projectedSales,
		ProjectedProfit:    projectedProfit,
		ProjectedBreachPct: projectedBreach,
		SalesDeltaPct:      (projectedSales - b.Sales) / max1(b.Sales) * 100,
		ProfitDeltaPct:     (projectedProfit - b.Profit) / max1(b.Profit) * 100,
		BreachDeltaPP:      -in.SLAImprovementPP,
	}

	if in.PriceUpliftPct > 0 && in.DemandShiftPct < 0 {
		res.Recommendations = append(res.Recommendations, recElasticityPilot)
	}
	if in.SLAImprovementPP >= 5 {
		res.Recommendations = append(res.Recommendations, recRenegotiateSLA)
	}
	if in.VariableCostPct > 70 {
		res.Recommendations = append(res.Recommendations, recCostDown)
	}
	if len(res.Recommendations) == 0 {
		res.Recommendations = append(res.Recommendations, recStatusQuo)
	}
	return res, nil
}

func max1(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
