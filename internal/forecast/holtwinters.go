package forecast

import (
	"fmt"
	"math"
)

// HoltWinters is the built-in model path: additive triple exponential
// smoothing with a yearly seasonal cycle (12 monthly or 52 weekly periods).
// When the series is shorter than two full cycles it degrades to Holt's
// linear trend. Interval bounds are point ± Z·σ·√m, where σ is the
// one-step-ahead residual deviation and m the steps ahead.
type HoltWinters struct {
	Alpha float64 // level smoothing
	Beta  float64 // trend smoothing
	Gamma float64 // seasonal smoothing
	Z     float64 // interval width in residual deviations
}

// NewHoltWinters returns a modeler with conventional smoothing defaults and
// 95% interval bounds.
func NewHoltWinters() *HoltWinters {
	return &HoltWinters{Alpha: 0.35, Beta: 0.1, Gamma: 0.2, Z: 1.96}
}

func seasonLength(g Granularity) int {
	if g == Weekly {
		return 52
	}
	return 12
}

// FitAndPredict implements Modeler.
func (hw *HoltWinters) FitAndPredict(series []Point, horizon int, g Granularity) ([]FuturePoint, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("need at least 2 observations, got %d", len(series))
	}
	if horizon < 1 {
		return nil, fmt.Errorf("horizon must be positive, got %d", horizon)
	}

	values := make([]float64, len(series))
	for i, p := range series {
		values[i] = p.Value
	}

	season := seasonLength(g)
	var estimates []float64
	var sigma float64
	if len(values) >= 2*season {
		estimates, sigma = hw.tripleSmooth(values, season, horizon)
	} else {
		estimates, sigma = hw.doubleSmooth(values, horizon)
	}

	out := make([]FuturePoint, horizon)
	date := series[len(series)-1].Date
	for m := 1; m <= horizon; m++ {
		date = nextBucket(date, g)
		width := hw.Z * sigma * math.Sqrt(float64(m))
		lower := estimates[m-1] - width
		upper := estimates[m-1] + width
		out[m-1] = FuturePoint{
			Date:     date,
			Estimate: estimates[m-1],
			Lower:    &lower,
			Upper:    &upper,
		}
	}
	return out, nil
}

// tripleSmooth runs additive Holt-Winters and returns the horizon estimates
// plus the one-step residual deviation.
func (hw *HoltWinters) tripleSmooth(values []float64, season, horizon int) ([]float64, float64) {
	cycles := len(values) / season

	// Initial seasonal indices: per-position deviation from the cycle mean,
	// averaged over all complete cycles.
	cycleMeans := make([]float64, cycles)
	for c := 0; c < cycles; c++ {
		for i := 0; i < season; i++ {
			cycleMeans[c] += values[c*season+i]
		}
		cycleMeans[c] /= float64(season)
	}
	seasonal := make([]float64, season)
	for i := 0; i < season; i++ {
		for c := 0; c < cycles; c++ {
			seasonal[i] += values[c*season+i] - cycleMeans[c]
		}
		seasonal[i] /= float64(cycles)
	}

	level := cycleMeans[0]
	trend := (cycleMeans[1] - cycleMeans[0]) / float64(season)

	var residSum float64
	var residN int
	for t := 0; t < len(values); t++ {
		predicted := level + trend + seasonal[t%season]
		resid := values[t] - predicted
		residSum += resid * resid
		residN++

		lastLevel := level
		level = hw.Alpha*(values[t]-seasonal[t%season]) + (1-hw.Alpha)*(level+trend)
		trend = hw.Beta*(level-lastLevel) + (1-hw.Beta)*trend
		seasonal[t%season] = hw.Gamma*(values[t]-level) + (1-hw.Gamma)*seasonal[t%season]
	}

	estimates := make([]float64, horizon)
	n := len(values)
	for m := 1; m <= horizon; m++ {
		estimates[m-1] = level + float64(m)*trend + seasonal[(n-1+m)%season]
	}
	return estimates, math.Sqrt(residSum / float64(residN))
}

// doubleSmooth runs Holt's linear trend for series too short for a full
// seasonal fit.
func (hw *HoltWinters) doubleSmooth(values []float64, horizon int) ([]float64, float64) {
	level := values[0]
	trend := values[1] - values[0]

	var residSum float64
	var residN int
	for t := 1; t < len(values); t++ {
		predicted := level + trend
		resid := values[t] - predicted
		residSum += resid * resid
		residN++

		lastLevel := level
		level = hw.Alpha*values[t] + (1-hw.Alpha)*(level+trend)
		trend = hw.Beta*(level-lastLevel) + (1-hw.Beta)*trend
	}

	estimates := make([]float64, horizon)
	for m := 1; m <= horizon; m++ {
		estimates[m-1] = level + float64(m)*trend
	}
	return estimates, math.Sqrt(residSum / float64(residN))
}
