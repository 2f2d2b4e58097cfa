package scenario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanewatch/lanewatch/internal/model"
)

func TestSimulate_WorkedExample(t *testing.T) {
	b := Baseline{Sales: 100000, Profit: 15000, BreachPct: 8.0}
	in := Inputs{PriceUpliftPct: 10, DemandShiftPct: -5, SLAImprovementPP: 5, VariableCostPct: 60}

	res, err := Simulate(b, in)
	require.NoError(t, err)

	assert.InDelta(t, 104500.0, res.ProjectedSales, 1e-6)  // 100000*1.10*0.95
	assert.InDelta(t, 19000.0, res.ProjectedProfit, 1e-6)  // 15000 + 100000*0.10*0.40
	assert.InDelta(t, 3.0, res.ProjectedBreachPct, 1e-9)

	assert.Contains(t, res.Recommendations, recElasticityPilot)
	assert.Contains(t, res.Recommendations, recRenegotiateSLA)
	assert.NotContains(t, res.Recommendations, recCostDown)
	assert.NotContains(t, res.Recommendations, recStatusQuo)
}

func TestSimulate_RuleOrderAndDefault(t *testing.T) {
	b := Baseline{Sales: 1000, Profit: 100, BreachPct: 10}

	// All three rules fire, in declaration order.
	res, err := Simulate(b, Inputs{PriceUpliftPct: 5, DemandShiftPct: -5, SLAImprovementPP: 10, VariableCostPct: 80})
	require.NoError(t, err)
	assert.Equal(t, []string{recElasticityPilot, recRenegotiateSLA, recCostDown}, res.Recommendations)

	// No rule fires: single default.
	res, err = Simulate(b, Inputs{VariableCostPct: 60})
	require.NoError(t, err)
	assert.Equal(t, []string{recStatusQuo}, res.Recommendations)
}

func TestSimulate_BreachFloorsAtZero(t *testing.T) {
	res, err := Simulate(Baseline{Sales: 1000, BreachPct: 3}, Inputs{SLAImprovementPP: 10, VariableCostPct: 60})
	require.NoError(t, err)
	assert.Zero(t, res.ProjectedBreachPct)
}

func TestSimulate_ZeroSalesStaysFinite(t *testing.T) {
	res, err := Simulate(Baseline{}, Inputs{PriceUpliftPct: 10, VariableCostPct: 60})
	require.NoError(t, err)

	assert.False(t, isNaN(res.ProjectedSales))
	assert.False(t, isNaN(res.SalesDeltaPct))
	assert.False(t, isNaN(res.ProfitDeltaPct))
	assert.Zero(t, res.ProjectedSales)
}

func TestInputs_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      Inputs
		wantErr bool
	}{
		{"all defaults within range", Inputs{VariableCostPct: 60}, false},
		{"price uplift too high", Inputs{PriceUpliftPct: 25, VariableCostPct: 60}, true},
		{"price uplift too low", Inputs{PriceUpliftPct: -15, VariableCostPct: 60}, true},
		{"demand shift out of range", Inputs{DemandShiftPct: 40, VariableCostPct: 60}, true},
		{"negative SLA improvement", Inputs{SLAImprovementPP: -1, VariableCostPct: 60}, true},
		{"variable cost below floor", Inputs{VariableCostPct: 20}, true},
		{"bounds are inclusive", Inputs{PriceUpliftPct: 20, DemandShiftPct: -30, SLAImprovementPP: 15, VariableCostPct: 90}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBaselineFrom(t *testing.T) {
	mk := func(id string, sales, profit, late float64) model.Order {
		o := model.Order{
			OrderID:   id,
			OrderDate: time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC),
			Sales:     sales,
			Profit:    profit,
			LateRisk:  late,
		}
		o.Derive()
		return o
	}

	b := BaselineFrom([]model.Order{
		mk("A1", 100, 10, 1),
		mk("A2", 300, 30, 0),
	})
	assert.InDelta(t, 400.0, b.Sales, 1e-9)
	assert.InDelta(t, 40.0, b.Profit, 1e-9)
	assert.InDelta(t, 50.0, b.BreachPct, 1e-9)

	empty := BaselineFrom(nil)
	assert.Zero(t, empty.Sales)
	assert.Zero(t, empty.BreachPct)
}

func isNaN(v float64) bool { return v != v }
