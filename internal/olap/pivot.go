// Package olap builds cross-tabulations over the canonical order table and
// reduces them into chart-ready series.
package olap

import (
	"strings"

	"github.com/lanewatch/lanewatch/internal/common"
	"github.com/lanewatch/lanewatch/internal/engine"
	"github.com/lanewatch/lanewatch/internal/model"
)

// LabelSeparator joins multi-part row keys for display. Cosmetic only; it
// never participates in sorting or aggregation.
const LabelSeparator = " • "

// Spec describes one pivot request.
type Spec struct {
	Slice   map[engine.Dimension][]string
	Rows    []engine.Dimension
	Cols    []engine.Dimension
	Measure engine.Measure
	Agg     engine.AggFunc
}

// Pivot is the cross-tabulation result: observed row-key and column-key
// combinations with a dense, zero-filled cell matrix.
type Pivot struct {
	RowDims []engine.Dimension
	ColDims []engine.Dimension
	RowKeys [][]string
	ColKeys [][]string
	Cells   [][]float64 // [row][col]
	Measure engine.Measure
	Agg     engine.AggFunc
}

const keySeparator = "\x1f"

// Build constructs a pivot table. Slice filters apply first; the grouped
// measure is then reshaped over the observed row × column combinations, with
// unobserved cells filled with zero so renderers never see missing values.
//
// Unlike the aggregation engine's order_count, the pivoted order_count is a
// materialized constant-1 column reduced by Agg, so sum yields row counts.
func Build(orders []model.Order, spec Spec) (*Pivot, error) {
	if len(spec.Rows) == 0 && len(spec.Cols) == 0 {
		return nil, common.NewUserError("choose at least one row or column dimension", common.ErrNoDimensions)
	}
	if _, err := engine.ParseMeasure(string(spec.Measure)); err != nil {
		return nil, err
	}
	if _, err := engine.ParseAggFunc(string(spec.Agg)); err != nil {
		return nil, err
	}

	sliced := applySlice(orders, spec.Slice)

	type cell struct {
		sum  float64
		rows int
	}

	p := &Pivot{
		RowDims: spec.Rows,
		ColDims: spec.Cols,
		Measure: spec.Measure,
		Agg:     spec.Agg,
	}

	rowIndex := make(map[string]int)
	colIndex := make(map[string]int)
	cells := make(map[[2]int]*cell)

	for i := range sliced {
		o := &sliced[i]
		rowKey := keyFor(o, spec.Rows)
		colKey := keyFor(o, spec.Cols)

		r, ok := rowIndex[strings.Join(rowKey, keySeparator)]
		if !ok {
			r = len(p.RowKeys)
			rowIndex[strings.Join(rowKey, keySeparator)] = r
			p.RowKeys = append(p.RowKeys, rowKey)
		}
		c, ok := colIndex[strings.Join(colKey, keySeparator)]
		if !ok {
			c = len(p.ColKeys)
			colIndex[strings.Join(colKey, keySeparator)] = c
			p.ColKeys = append(p.ColKeys, colKey)
		}

		cl, ok := cells[[2]int{r, c}]
		if !ok {
			cl = &cell{}
			cells[[2]int{r, c}] = cl
		}
		cl.sum += spec.Measure.RowValue(o)
		cl.rows++
	}

	p.Cells = make([][]float64, len(p.RowKeys))
	for r := range p.Cells {
		p.Cells[r] = make([]float64, len(p.ColKeys))
		for c := range p.Cells[r] {
			cl, ok := cells[[2]int{r, c}]
			if !ok {
				continue // zero fill
			}
			switch spec.Agg {
			case engine.AggSum:
				p.Cells[r][c] = cl.sum
			case engine.AggMean:
				p.Cells[r][c] = cl.sum / float64(cl.rows)
			case engine.AggCount:
				p.Cells[r][c] = float64(cl.rows)
			}
		}
	}
	return p, nil
}

func keyFor(o *model.Order, dims []engine.Dimension) []string {
	key := make([]string, len(dims))
	for i, d := range dims {
		key[i] = d.Value(o)
	}
	return key
}

func applySlice(orders []model.Order, slice map[engine.Dimension][]string) []model.Order {
	active := make(map[engine.Dimension]map[string]struct{})
	for dim, values := range slice {
		if len(values) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		active[dim] = set
	}
	if len(active) == 0 {
		return orders
	}

	out := make([]model.Order, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		pass := true
		for dim, set := range active {
			if _, ok := set[dim.Value(o)]; !ok {
				pass = false
				break
			}
		}
		if pass {
			out = append(out, *o)
		}
	}
	return out
}

// RowLabels renders every row key with the display separator.
func (p *Pivot) RowLabels() []string {
	labels := make([]string, len(p.RowKeys))
	for i, key := range p.RowKeys {
		labels[i] = Label(key)
	}
	return labels
}

// ColLabels renders every column key, falling back to the measure label when
// there are no column dimensions.
func (p *Pivot) ColLabels() []string {
	labels := make([]string, len(p.ColKeys))
	for i, key := range p.ColKeys {
		if len(key) == 0 {
			labels[i] = p.Measure.Label()
			continue
		}
		labels[i] = Label(key)
	}
	return labels
}

// RowTotals sums each row across all columns.
func (p *Pivot) RowTotals() []float64 {
	totals := make([]float64, len(p.RowKeys))
	for r, row := range p.Cells {
		for _, v := range row {
			totals[r] += v
		}
	}
	return totals
}

// Label joins a multi-part key for display.
func Label(key []string) string {
	return strings.Join(key, LabelSeparator)
}
