// Package forecast resamples order activity into period series and projects
// them forward, either with an injected model or a moving-average fallback.
package forecast

import (
	"fmt"
	"time"

	"github.com/lanewatch/lanewatch/internal/common"
	"github.com/lanewatch/lanewatch/internal/model"
)

// Granularity selects the resampling period.
type Granularity string

// Supported granularities.
const (
	Monthly Granularity = "monthly"
	Weekly  Granularity = "weekly"
)

// ParseGranularity resolves a user-supplied granularity name.
func ParseGranularity(name string) (Granularity, error) {
	g := Granularity(name)
	switch g {
	case Monthly, Weekly:
		return g, nil
	}
	return "", common.NewUserError(fmt.Sprintf("unknown granularity %q", name), nil)
}

// Point is one period of actual activity.
type Point struct {
	Date  time.Time
	Value float64
}

// Resample buckets order sales into contiguous periods from the first to the
// last observed order. Monthly buckets start on the first of the month,
// weekly buckets on Monday. Periods without orders appear with value zero.
func Resample(orders []model.Order, g Granularity) []Point {
	if len(orders) == 0 {
		return nil
	}

	sums := make(map[time.Time]float64)
	var first, last time.Time
	for i := range orders {
		b := bucketStart(orders[i].OrderDate, g)
		sums[b] += orders[i].Sales
		if first.IsZero() || b.Before(first) {
			first = b
		}
		if b.After(last) {
			last = b
		}
	}

	var points []Point
	for b := first; !b.After(last); b = nextBucket(b, g) {
		points = append(points, Point{Date: b, Value: sums[b]})
	}
	return points
}

func bucketStart(t time.Time, g Granularity) time.Time {
	if g == Weekly {
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		offset := (int(day.Weekday()) + 6) % 7 // Monday start
		return day.AddDate(0, 0, -offset)
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func nextBucket(t time.Time, g Granularity) time.Time {
	if g == Weekly {
		return t.AddDate(0, 0, 7)
	}
	return t.AddDate(0, 1, 0)
}
