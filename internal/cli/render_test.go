package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "zero", value: 0, want: "0"},
		{name: "small", value: 42, want: "42"},
		{name: "thousands", value: 1000, want: "1,000"},
		{name: "millions with decimals", value: 1234567.5, want: "1,234,567.5"},
		{name: "trailing zeros trimmed", value: 12.30, want: "12.3"},
		{name: "negative", value: -98765, want: "-98,765"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.value))
		})
	}
}

func TestFormatMoneyAndPercent(t *testing.T) {
	assert.Equal(t, "$104,500", FormatMoney(104500))
	assert.Equal(t, "3.0%", FormatPercent(3))
	assert.Equal(t, "97.5%", FormatPercent(97.54))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"Market", "Sales"},
		[][]string{
			{"Europe", "1,200"},
			{"LATAM", "880"},
		},
	)

	assert.Contains(t, out, "Market")
	assert.Contains(t, out, "Europe")
	assert.Contains(t, out, "880")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.GreaterOrEqual(t, len(lines), 3)
}

func TestRenderGaugeClampsDrawingOnly(t *testing.T) {
	full := RenderGauge("Service", 150, 10)
	assert.Equal(t, 10, strings.Count(full, "█"))
	assert.Equal(t, 0, strings.Count(full, "░"))
	// The reported number is not clamped.
	assert.Contains(t, full, "150.0%")

	empty := RenderGauge("Late", -5, 10)
	assert.Equal(t, 0, strings.Count(empty, "█"))
	assert.Equal(t, 10, strings.Count(empty, "░"))

	half := RenderGauge("Margin", 50, 10)
	assert.Equal(t, 5, strings.Count(half, "█"))
	assert.Equal(t, 5, strings.Count(half, "░"))
}

func TestRenderHeatmap(t *testing.T) {
	out := RenderHeatmap(
		[]string{"Europe", "LATAM"},
		[]string{"2016", "2017"},
		[][]float64{
			{100, 200},
			{50, 0},
		},
	)

	assert.Contains(t, out, "Europe")
	assert.Contains(t, out, "2017")
	assert.Contains(t, out, "200")
}

func TestRenderHeatmapUniformValues(t *testing.T) {
	// A flat matrix must not divide by zero when normalizing.
	out := RenderHeatmap(
		[]string{"A"},
		[]string{"X", "Y"},
		[][]float64{{5, 5}},
	)
	assert.Contains(t, out, "5")
}
