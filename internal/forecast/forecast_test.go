package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanewatch/lanewatch/internal/model"
)

func monthlySeries(values ...float64) []Point {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{
			Date:  time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0),
			Value: v,
		}
	}
	return points
}

func TestResample_MonthlyBucketsContiguous(t *testing.T) {
	mk := func(id string, y int, m time.Month, sales float64) model.Order {
		o := model.Order{OrderID: id, OrderDate: time.Date(y, m, 15, 0, 0, 0, 0, time.UTC), Sales: sales}
		o.Derive()
		return o
	}

	points := Resample([]model.Order{
		mk("A1", 2016, time.January, 100),
		mk("A2", 2016, time.January, 50),
		mk("A3", 2016, time.April, 75),
	}, Monthly)

	require.Len(t, points, 4) // Jan through Apr, gaps filled
	assert.Equal(t, time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.Equal(t, 150.0, points[0].Value)
	assert.Zero(t, points[1].Value)
	assert.Zero(t, points[2].Value)
	assert.Equal(t, 75.0, points[3].Value)
}

func TestResample_WeeklyBucketsStartMonday(t *testing.T) {
	// 2017-06-15 is a Thursday; its week starts Monday 2017-06-12.
	o := model.Order{OrderID: "A1", OrderDate: time.Date(2017, 6, 15, 0, 0, 0, 0, time.UTC), Sales: 10}
	o.Derive()

	points := Resample([]model.Order{o}, Weekly)
	require.Len(t, points, 1)
	assert.Equal(t, time.Date(2017, 6, 12, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.Equal(t, time.Monday, points[0].Date.Weekday())
}

func TestRun_ShortSeriesUsesFallbackDespiteModeler(t *testing.T) {
	series := monthlySeries(10, 20, 30, 40, 50)

	res, err := Run(series, 6, Monthly, NewHoltWinters())
	require.NoError(t, err)
	assert.Equal(t, PathMovingAverage, res.Path)
	for _, p := range res.Forecast {
		assert.Nil(t, p.Lower)
		assert.Nil(t, p.Upper)
	}
}

func TestRun_AllZeroSeriesUsesFallback(t *testing.T) {
	series := monthlySeries(0, 0, 0, 0, 0, 0, 0, 0, 0, 0)

	res, err := Run(series, 6, Monthly, NewHoltWinters())
	require.NoError(t, err)
	assert.Equal(t, PathMovingAverage, res.Path)
}

func TestRun_NoModelerUsesFallback(t *testing.T) {
	series := monthlySeries(10, 20, 30, 40, 50, 60, 70, 80, 90, 100)

	res, err := Run(series, 6, Monthly, nil)
	require.NoError(t, err)
	assert.Equal(t, PathMovingAverage, res.Path)
}

func TestRun_ModelPathWithSufficientData(t *testing.T) {
	series := monthlySeries(10, 20, 30, 40, 50, 60, 70, 80, 90, 100)

	res, err := Run(series, 6, Monthly, NewHoltWinters())
	require.NoError(t, err)
	assert.Equal(t, PathModel, res.Path)
	require.Len(t, res.Forecast, 6)
	for _, p := range res.Forecast {
		require.NotNil(t, p.Lower)
		require.NotNil(t, p.Upper)
		assert.LessOrEqual(t, *p.Lower, p.Estimate)
		assert.GreaterOrEqual(t, p.Estimate, *p.Lower)
		assert.LessOrEqual(t, p.Estimate, *p.Upper)
	}
	assert.Equal(t, series, res.Actuals)

	// Future dates continue the monthly buckets.
	assert.Equal(t, time.Date(2016, 11, 1, 0, 0, 0, 0, time.UTC), res.Forecast[0].Date)
	assert.Equal(t, time.Date(2017, 4, 1, 0, 0, 0, 0, time.UTC), res.Forecast[5].Date)
}

func TestRun_HorizonBounds(t *testing.T) {
	series := monthlySeries(10, 20, 30)

	_, err := Run(series, 5, Monthly, nil)
	assert.Error(t, err)

	_, err = Run(series, 19, Monthly, nil)
	assert.Error(t, err)

	_, err = Run(series, 18, Monthly, nil)
	assert.NoError(t, err)
}

func TestMovingAverage_WindowAndMinPeriods(t *testing.T) {
	out := movingAverage(monthlySeries(10, 20, 30, 40, 50, 60, 70, 80))

	// First smoothed point appears at index 2 (3 observations).
	require.Len(t, out, 6)
	assert.InDelta(t, 20.0, out[0].Estimate, 1e-9) // (10+20+30)/3
	assert.InDelta(t, 25.0, out[1].Estimate, 1e-9) // (10+20+30+40)/4

	// Trailing window caps at 6 periods.
	last := out[len(out)-1]
	assert.InDelta(t, (30+40+50+60+70+80)/6.0, last.Estimate, 1e-9)
}

func TestMovingAverage_TooShort(t *testing.T) {
	assert.Nil(t, movingAverage(monthlySeries(10, 20)))
}

func TestHoltWinters_LinearTrendSeries(t *testing.T) {
	// A clean linear series under the short-series (Holt) path should
	// project a continuing upward trend.
	series := monthlySeries(10, 20, 30, 40, 50, 60, 70, 80, 90, 100)

	out, err := NewHoltWinters().FitAndPredict(series, 6, Monthly)
	require.NoError(t, err)
	require.Len(t, out, 6)
	assert.Greater(t, out[0].Estimate, 100.0)
	for i := 1; i < len(out); i++ {
		assert.Greater(t, out[i].Estimate, out[i-1].Estimate)
	}
}

func TestHoltWinters_SeasonalSeries(t *testing.T) {
	// Three years of monthly data with a strong December peak.
	var values []float64
	for year := 0; year < 3; year++ {
		for m := 0; m < 12; m++ {
			v := 100.0
			if m == 11 {
				v = 300.0
			}
			values = append(values, v)
		}
	}

	out, err := NewHoltWinters().FitAndPredict(monthlySeries(values...), 12, Monthly)
	require.NoError(t, err)
	require.Len(t, out, 12)

	// The projected December stays well above the other months.
	december := out[11]
	assert.Equal(t, time.Month(12), december.Date.Month())
	for i, p := range out {
		if i == 11 {
			continue
		}
		assert.Greater(t, december.Estimate, p.Estimate)
	}
}

func TestHoltWinters_RejectsTinySeries(t *testing.T) {
	_, err := NewHoltWinters().FitAndPredict(monthlySeries(10), 6, Monthly)
	assert.Error(t, err)
}
