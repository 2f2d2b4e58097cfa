// Package loader ingests the raw supply-chain CSV into canonical orders.
// It repairs what it can (missing columns, unparseable numbers) and drops
// what it cannot (rows without a parseable order date); downstream packages
// assume its output needs no further defense.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/encoding/charmap"

	"github.com/lanewatch/lanewatch/internal/common"
	"github.com/lanewatch/lanewatch/internal/model"
)

// Source column names, as shipped in the DataCo dataset.
const (
	colSales      = "Sales"
	colProfit     = "Order Profit Per Order"
	colLateRisk   = "Late_delivery_risk"
	colOrderID    = "Order Id"
	colMarket     = "Market"
	colSegment    = "Customer Segment"
	colCity       = "Order City"
	colCategory   = "Category Name"
	colCountry    = "Order Country"
	colCustomerID = "Customer Id"
)

// dateLayouts are tried in order when parsing the order date.
var dateLayouts = []string{
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
}

// LoadFile reads a Latin-1 encoded CSV file into canonical orders, showing a
// byte progress bar when requested.
func LoadFile(path string, progress bool) ([]model.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	var reader io.Reader = f
	if progress {
		info, statErr := f.Stat()
		if statErr == nil {
			bar := progressbar.DefaultBytes(info.Size(), "importing orders")
			reader = io.TeeReader(f, bar)
		}
	}
	return Load(reader)
}

// Load reads a Latin-1 encoded CSV stream into canonical orders.
func Load(r io.Reader) ([]model.Order, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	dateCol, ok := DetectDateColumn(headers)
	if !ok {
		return nil, common.NewUserError("order date column not found in dataset", common.ErrNoDateColumn)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}

	field := func(record []string, name string) (string, bool) {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return "", false
		}
		return strings.TrimSpace(record[i]), true
	}

	var orders []model.Order
	var dropped int
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if dateCol >= len(record) {
			dropped++
			continue
		}

		date, ok := parseDate(strings.TrimSpace(record[dateCol]))
		if !ok {
			dropped++
			continue
		}

		o := model.Order{
			OrderDate:  date,
			Sales:      numericField(field(record, colSales)),
			Profit:     numericField(field(record, colProfit)),
			LateRisk:   numericField(field(record, colLateRisk)),
			OrderID:    categoricalField(field(record, colOrderID)),
			Market:     categoricalField(field(record, colMarket)),
			Segment:    categoricalField(field(record, colSegment)),
			City:       categoricalField(field(record, colCity)),
			Category:   categoricalField(field(record, colCategory)),
			Country:    categoricalField(field(record, colCountry)),
			CustomerID: categoricalField(field(record, colCustomerID)),
		}
		o.Derive()
		orders = append(orders, o)
	}

	if dropped > 0 {
		slog.Warn("dropped rows without a parseable order date", "rows", dropped)
	}
	return orders, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// numericField coerces a numeric cell, falling back to 0 for missing or
// unparseable values.
func numericField(s string, ok bool) float64 {
	if !ok || s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// categoricalField fills missing categorical cells with the Unknown default.
func categoricalField(s string, ok bool) string {
	if !ok || s == "" {
		return model.Unknown
	}
	return s
}
