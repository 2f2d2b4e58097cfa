package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanewatch/lanewatch/internal/model"
)

func testOrders() []model.Order {
	mk := func(id string, date time.Time, market, segment string, sales, profit, lateRisk float64) model.Order {
		o := model.Order{
			OrderID:   id,
			OrderDate: date,
			Market:    market,
			Segment:   segment,
			Category:  "Fishing",
			City:      "Madrid",
			Country:   "Spain",
			Sales:     sales,
			Profit:    profit,
			LateRisk:  lateRisk,
		}
		o.Derive()
		return o
	}
	return []model.Order{
		mk("A1", time.Date(2016, 2, 1, 0, 0, 0, 0, time.UTC), "Europe", "Consumer", 100, 20, 1),
		mk("A1", time.Date(2016, 2, 1, 0, 0, 0, 0, time.UTC), "Europe", "Consumer", 50, 5, 1),
		mk("A2", time.Date(2016, 8, 15, 0, 0, 0, 0, time.UTC), "LATAM", "Corporate", 200, -10, 0),
		mk("A3", time.Date(2017, 1, 10, 0, 0, 0, 0, time.UTC), "Pacific Asia", "Consumer", 300, 60, 0),
	}
}

func TestApply_Idempotent(t *testing.T) {
	orders := testOrders()
	f := model.Filter{
		From:    time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
		To:      time.Date(2016, 12, 31, 0, 0, 0, 0, time.UTC),
		Markets: []string{"Europe", "LATAM"},
	}

	once := Apply(orders, f)
	twice := Apply(once, f)
	assert.Equal(t, once, twice)
}

func TestApply_EmptySetMeansNoRestriction(t *testing.T) {
	orders := testOrders()

	unrestricted := Apply(orders, model.Filter{})
	allMarkets := Apply(orders, model.Filter{Markets: []string{"Europe", "LATAM", "Pacific Asia"}})

	assert.Equal(t, allMarkets, unrestricted)
	assert.Len(t, unrestricted, len(orders))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	orders := testOrders()
	snapshot := make([]model.Order, len(orders))
	copy(snapshot, orders)

	_ = Apply(orders, model.Filter{Markets: []string{"Europe"}})
	assert.Equal(t, snapshot, orders)
}

func TestApply_EmptyResultIsValid(t *testing.T) {
	orders := testOrders()
	none := Apply(orders, model.Filter{Markets: []string{"Africa"}})
	require.Empty(t, none)

	// Downstream calls on an empty table must return zero results, not fail.
	k := ComputeKPIs(none)
	assert.Zero(t, k.TotalSales)
	assert.Zero(t, k.Orders)
	assert.Equal(t, 1.0, k.OnTimeRate)

	rows, err := Aggregate(none, []Dimension{DimMarket}, MeasureSales, AggSum)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.Nil(t, ResampleDaily(none))
}
