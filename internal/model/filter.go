package model

import "time"

// Filter selects a subset of orders by date range and categorical membership.
// An empty Markets/Segments/Years set means no restriction on that dimension,
// not an empty result.
type Filter struct {
	From     time.Time
	To       time.Time
	Markets  []string
	Segments []string
	Years    []int
}

// Matches reports whether an order passes the filter. Date bounds are
// inclusive; a zero From or To disables that bound.
func (f Filter) Matches(o *Order) bool {
	day := o.OrderDate
	if !f.From.IsZero() && day.Before(truncateDay(f.From)) {
		return false
	}
	if !f.To.IsZero() && day.After(endOfDay(f.To)) {
		return false
	}
	if len(f.Markets) > 0 && !containsString(f.Markets, o.Market) {
		return false
	}
	if len(f.Segments) > 0 && !containsString(f.Segments, o.Segment) {
		return false
	}
	if len(f.Years) > 0 && !containsInt(f.Years, o.Year) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(values []int, v int) bool {
	for _, n := range values {
		if n == v {
			return true
		}
	}
	return false
}
