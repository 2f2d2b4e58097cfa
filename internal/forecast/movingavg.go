package forecast

// Moving-average fallback parameters: trailing window of 6 periods with at
// least 3 observations before a smoothed value is emitted.
const (
	maWindow     = 6
	maMinPeriods = 3
)

// movingAverage smooths the actuals in place of a forecast. It projects no
// future periods and carries no interval bounds; points before the minimum
// window are omitted.
func movingAverage(series []Point) []FuturePoint {
	if len(series) < maMinPeriods {
		return nil
	}

	out := make([]FuturePoint, 0, len(series)-maMinPeriods+1)
	for i := maMinPeriods - 1; i < len(series); i++ {
		start := i - maWindow + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for j := start; j <= i; j++ {
			sum += series[j].Value
		}
		out = append(out, FuturePoint{
			Date:     series[i].Date,
			Estimate: sum / float64(i-start+1),
		})
	}
	return out
}
