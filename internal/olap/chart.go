package olap

import (
	"fmt"
	"sort"

	"github.com/lanewatch/lanewatch/internal/common"
)

// ChartType selects a pivot projection.
type ChartType string

// Supported projections.
const (
	ChartHeatmap ChartType = "heatmap"
	ChartBars    ChartType = "bars"
	ChartLine    ChartType = "line"
)

// ParseChartType resolves a user-supplied chart type name.
func ParseChartType(name string) (ChartType, error) {
	t := ChartType(name)
	switch t {
	case ChartHeatmap, ChartBars, ChartLine:
		return t, nil
	}
	return "", common.NewUserError(fmt.Sprintf("unknown chart type %q", name), nil)
}

// RankedRow is one entry of a top-K reduced series.
type RankedRow struct {
	Label string
	Key   []string
	Total float64
}

// Chart is a pivot projection ready for rendering. Heatmaps carry the full
// matrix; bars and lines carry the top-K reduced series.
type Chart struct {
	Pivot  *Pivot
	Series []RankedRow
	Type   ChartType
}

// TopK collapses the matrix across columns, sorts rows descending by total
// with the original key order as stable tie-break, and keeps the first k.
// Any k >= 1 is accepted; k beyond the row count keeps every row.
func (p *Pivot) TopK(k int) ([]RankedRow, error) {
	if k < 1 {
		return nil, common.NewUserError(fmt.Sprintf("top-K must be at least 1, got %d", k), common.ErrOutOfRange)
	}

	totals := p.RowTotals()
	ranked := make([]RankedRow, len(p.RowKeys))
	for i, key := range p.RowKeys {
		ranked[i] = RankedRow{Label: Label(key), Key: key, Total: totals[i]}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Total > ranked[j].Total })

	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked, nil
}

// Project builds the chart for the requested projection. topK only applies
// to bars and lines; heatmaps pass the full zero-filled matrix through.
func (p *Pivot) Project(t ChartType, topK int) (*Chart, error) {
	switch t {
	case ChartHeatmap:
		return &Chart{Type: t, Pivot: p}, nil
	case ChartBars, ChartLine:
		series, err := p.TopK(topK)
		if err != nil {
			return nil, err
		}
		return &Chart{Type: t, Pivot: p, Series: series}, nil
	}
	return nil, common.NewUserError(fmt.Sprintf("unknown chart type %q", t), nil)
}
