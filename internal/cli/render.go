package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// heatRamp shades heatmap cells from cold to hot.
var heatRamp = []lipgloss.Color{
	lipgloss.Color("#4D96FF"),
	lipgloss.Color("#6BCB77"),
	lipgloss.Color("#FFD93D"),
	lipgloss.Color("#FFA94D"),
	lipgloss.Color("#FF6B6B"),
}

// RenderTable renders headers and rows as an aligned text table.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = TableCellStyle.Render(pad(h, widths[i]))
	}
	b.WriteString(TableHeaderStyle.Render(strings.Join(headerCells, "")))
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			cells[i] = TableCellStyle.Render(pad(cell, w))
		}
		b.WriteString(strings.Join(cells, ""))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderGauge renders a labeled horizontal gauge for a 0-100 percentage.
// Values outside the range are reported as-is but drawn clamped.
func RenderGauge(label string, value float64, width int) string {
	if width < 4 {
		width = 4
	}

	clamped := value
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}

	filled := int(clamped/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	bar := GaugeFillStyle.Render(strings.Repeat("█", filled)) +
		GaugeTrackStyle.Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("%s %s %s", pad(label, 16), bar, BoldStyle.Render(FormatPercent(value)))
}

// RenderHeatmap renders a matrix of values with cells shaded by magnitude.
func RenderHeatmap(rowLabels, colLabels []string, cells [][]float64) string {
	minVal, maxVal := matrixRange(cells)

	labelWidth := 0
	for _, l := range rowLabels {
		if lipgloss.Width(l) > labelWidth {
			labelWidth = lipgloss.Width(l)
		}
	}

	cellWidth := 10
	for _, l := range colLabels {
		if lipgloss.Width(l) > cellWidth {
			cellWidth = lipgloss.Width(l)
		}
	}

	var b strings.Builder

	header := make([]string, 0, len(colLabels)+1)
	header = append(header, pad("", labelWidth))
	for _, l := range colLabels {
		header = append(header, padLeft(l, cellWidth))
	}
	b.WriteString(TableHeaderStyle.Render(strings.Join(header, " ")))
	b.WriteString("\n")

	for i, row := range cells {
		label := ""
		if i < len(rowLabels) {
			label = rowLabels[i]
		}
		b.WriteString(pad(label, labelWidth))
		for _, v := range row {
			style := lipgloss.NewStyle().Foreground(heatColor(v, minVal, maxVal))
			b.WriteString(" ")
			b.WriteString(style.Render(padLeft(FormatAmount(v), cellWidth)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatAmount formats a value with thousands separators and up to two
// decimal places.
func FormatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if idx := strings.Index(s, "."); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ",") + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatMoney formats a currency amount.
func FormatMoney(v float64) string {
	return "$" + FormatAmount(v)
}

// FormatPercent formats a percentage with one decimal place.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func heatColor(v, minVal, maxVal float64) lipgloss.Color {
	if maxVal <= minVal {
		return heatRamp[0]
	}
	norm := (v - minVal) / (maxVal - minVal)
	idx := int(norm * float64(len(heatRamp)))
	if idx >= len(heatRamp) {
		idx = len(heatRamp) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return heatRamp[idx]
}

func matrixRange(cells [][]float64) (minVal, maxVal float64) {
	first := true
	for _, row := range cells {
		for _, v := range row {
			if first {
				minVal, maxVal = v, v
				first = false
				continue
			}
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return minVal, maxVal
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
