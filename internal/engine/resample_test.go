package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanewatch/lanewatch/internal/model"
)

func TestResampleDaily_FillsGapDays(t *testing.T) {
	mk := func(id string, day int, sales float64, late float64) model.Order {
		o := model.Order{
			OrderID:   id,
			OrderDate: time.Date(2017, 3, day, 10, 0, 0, 0, time.UTC),
			Sales:     sales,
			LateRisk:  late,
		}
		o.Derive()
		return o
	}

	points := ResampleDaily([]model.Order{
		mk("A1", 1, 100, 1),
		mk("A2", 1, 50, 0),
		mk("A3", 4, 75, 0),
	})

	require.Len(t, points, 4) // Mar 1 through Mar 4
	assert.Equal(t, 150.0, points[0].Sales)
	assert.Equal(t, 2, points[0].Orders)
	assert.InDelta(t, 0.5, points[0].BreachRate, 1e-9)

	// Gap days carry zeros.
	assert.Zero(t, points[1].Sales)
	assert.Zero(t, points[1].Orders)
	assert.Zero(t, points[2].Sales)

	assert.Equal(t, 75.0, points[3].Sales)
}

func TestBreakdowns(t *testing.T) {
	orders := testOrders()

	seg := SalesBySegment(orders)
	require.Len(t, seg, 2)
	assert.Equal(t, "Consumer", seg[0].Segment)
	assert.InDelta(t, 450.0, seg[0].Sales, 1e-9)

	split := SplitByStatus(orders)
	assert.Equal(t, 2, split.OnTime)
	assert.Equal(t, 2, split.Late)

	markets := TotalsByMarket(orders)
	require.Len(t, markets, 3)
	assert.Equal(t, "Europe", markets[0].Market)
	assert.InDelta(t, 150.0, markets[0].Sales, 1e-9)
	assert.InDelta(t, 25.0, markets[0].Profit, 1e-9)
}
