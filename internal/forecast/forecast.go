package forecast

import (
	"fmt"
	"time"

	"github.com/lanewatch/lanewatch/internal/common"
)

// Path tags which strategy produced a result.
type Path string

// Forecast paths.
const (
	PathModel         Path = "model"
	PathMovingAverage Path = "moving_average"
)

// FuturePoint is one projected period. Bounds are present only on the
// model path.
type FuturePoint struct {
	Date     time.Time
	Estimate float64
	Lower    *float64
	Upper    *float64
}

// Result is a forecast plus the echoed actuals for overlay plotting.
type Result struct {
	Actuals  []Point
	Forecast []FuturePoint
	Path     Path
}

// Modeler is the injected forecasting capability. Implementations fit the
// resampled actuals and project horizon future periods with interval bounds.
type Modeler interface {
	FitAndPredict(series []Point, horizon int, g Granularity) ([]FuturePoint, error)
}

// Horizon bounds of the control surface.
const (
	MinHorizon = 6
	MaxHorizon = 18
)

// minModelObservations is the shortest series the model path accepts.
const minModelObservations = 8

// Run selects between the model path and the moving-average fallback.
//
// The model path runs only when a modeler is supplied AND the series has at
// least 8 observed periods AND the values do not sum to zero; any failed
// precondition routes to the fallback. The choice is binary and stateless;
// there is no retry and no merging of partial results.
func Run(series []Point, horizon int, g Granularity, m Modeler) (Result, error) {
	if horizon < MinHorizon || horizon > MaxHorizon {
		return Result{}, common.NewUserError(
			fmt.Sprintf("horizon must be between %d and %d periods, got %d", MinHorizon, MaxHorizon, horizon),
			common.ErrOutOfRange)
	}

	res := Result{Actuals: series}

	var sum float64
	for _, p := range series {
		sum += p.Value
	}

	if m != nil && len(series) >= minModelObservations && sum != 0 {
		forecast, err := m.FitAndPredict(series, horizon, g)
		if err != nil {
			return Result{}, fmt.Errorf("model fit failed: %w", err)
		}
		res.Path = PathModel
		res.Forecast = forecast
		return res, nil
	}

	res.Path = PathMovingAverage
	res.Forecast = movingAverage(series)
	return res, nil
}
