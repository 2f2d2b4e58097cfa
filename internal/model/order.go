// Package model defines the canonical order record and shared request types.
package model

import (
	"fmt"
	"time"
)

// Unknown is the default value for categorical fields missing from the source.
const Unknown = "Unknown"

// Order represents a single order line from the supply-chain dataset.
// Derived fields (IsLate, Year, Month) are pure functions of OrderDate and
// LateRisk; Derive recomputes them and is idempotent.
type Order struct {
	OrderDate  time.Time
	OrderID    string
	Market     string
	Segment    string
	Category   string
	City       string
	Country    string
	CustomerID string
	Month      string // "YYYY-MM", derived
	Sales      float64
	Profit     float64
	LateRisk   float64
	Year       int // derived
	IsLate     bool
}

// Derive recomputes the fields derived from OrderDate and LateRisk.
func (o *Order) Derive() {
	o.IsLate = o.LateRisk > 0
	o.Year = o.OrderDate.Year()
	o.Month = fmt.Sprintf("%04d-%02d", o.OrderDate.Year(), int(o.OrderDate.Month()))
}

// LatePercent returns the row's contribution to the late-percent measure.
func (o *Order) LatePercent() float64 {
	if o.IsLate {
		return 100
	}
	return 0
}
