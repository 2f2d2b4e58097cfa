package engine

import (
	"time"

	"github.com/lanewatch/lanewatch/internal/model"
)

// DailyPoint is one calendar day of operational activity.
type DailyPoint struct {
	Date       time.Time
	Sales      float64
	BreachRate float64 // fraction of rows late; 0 for empty days
	Orders     int     // distinct order ids
}

// ResampleDaily buckets orders per calendar day, contiguous from the first
// to the last observed day. Days without orders appear with zero values.
func ResampleDaily(orders []model.Order) []DailyPoint {
	if len(orders) == 0 {
		return nil
	}

	type bucket struct {
		ids   map[string]struct{}
		sales float64
		rows  int
		late  int
	}

	buckets := make(map[time.Time]*bucket)
	var first, last time.Time
	for i := range orders {
		o := &orders[i]
		day := time.Date(o.OrderDate.Year(), o.OrderDate.Month(), o.OrderDate.Day(), 0, 0, 0, 0, time.UTC)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{ids: make(map[string]struct{})}
			buckets[day] = b
		}
		b.sales += o.Sales
		b.rows++
		if o.IsLate {
			b.late++
		}
		b.ids[o.OrderID] = struct{}{}

		if first.IsZero() || day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}

	points := make([]DailyPoint, 0, int(last.Sub(first).Hours()/24)+1)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		p := DailyPoint{Date: day}
		if b, ok := buckets[day]; ok {
			p.Sales = b.sales
			p.Orders = len(b.ids)
			p.BreachRate = float64(b.late) / float64(b.rows)
		}
		points = append(points, p)
	}
	return points
}
