// Package engine implements the filter stage and the grouped
// aggregation/derivation layer every report is built on.
package engine

import (
	"fmt"
	"strconv"

	"github.com/lanewatch/lanewatch/internal/common"
	"github.com/lanewatch/lanewatch/internal/model"
)

// Dimension is a categorical field orders can be grouped or pivoted by.
type Dimension string

// Supported dimensions.
const (
	DimYear     Dimension = "year"
	DimMarket   Dimension = "market"
	DimSegment  Dimension = "segment"
	DimCategory Dimension = "category"
	DimCity     Dimension = "city"
	DimCountry  Dimension = "country"
	DimMonth    Dimension = "month"
)

// Dimensions lists every supported dimension in display order.
func Dimensions() []Dimension {
	return []Dimension{DimYear, DimMarket, DimSegment, DimCategory, DimCity, DimCountry, DimMonth}
}

// ParseDimension resolves a user-supplied dimension name.
func ParseDimension(name string) (Dimension, error) {
	d := Dimension(name)
	switch d {
	case DimYear, DimMarket, DimSegment, DimCategory, DimCity, DimCountry, DimMonth:
		return d, nil
	}
	return "", common.NewUserError(fmt.Sprintf("unknown dimension %q", name), nil)
}

// Value extracts the dimension's value from an order.
func (d Dimension) Value(o *model.Order) string {
	switch d {
	case DimYear:
		return strconv.Itoa(o.Year)
	case DimMarket:
		return o.Market
	case DimSegment:
		return o.Segment
	case DimCategory:
		return o.Category
	case DimCity:
		return o.City
	case DimCountry:
		return o.Country
	case DimMonth:
		return o.Month
	}
	return ""
}

// Label returns a human-readable label for the dimension.
func (d Dimension) Label() string {
	switch d {
	case DimYear:
		return "Order Year"
	case DimMarket:
		return "Market"
	case DimSegment:
		return "Customer Segment"
	case DimCategory:
		return "Category"
	case DimCity:
		return "Order City"
	case DimCountry:
		return "Order Country"
	case DimMonth:
		return "Month"
	}
	return string(d)
}
