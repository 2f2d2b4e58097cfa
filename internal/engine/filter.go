package engine

import "github.com/lanewatch/lanewatch/internal/model"

// Apply returns the orders matching the filter. The input slice is never
// mutated; the result is a fresh slice. An empty result is valid input for
// every downstream computation.
func Apply(orders []model.Order, f model.Filter) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for i := range orders {
		if f.Matches(&orders[i]) {
			out = append(out, orders[i])
		}
	}
	return out
}
