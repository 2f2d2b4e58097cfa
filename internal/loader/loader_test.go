package loader

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanewatch/lanewatch/internal/model"
)

func TestDetectDateColumn(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    int
		wantOK  bool
	}{
		{
			name:    "dateorders style header wins",
			headers: []string{"Type", "order date (DateOrders)", "Order Date"},
			want:    1,
			wantOK:  true,
		},
		{
			name:    "order plus date fallback",
			headers: []string{"Type", "Order Date", "Sales"},
			want:    1,
			wantOK:  true,
		},
		{
			name:    "exact OrderDate fallback",
			headers: []string{"Type", "OrderDate", "Sales"},
			want:    1,
			wantOK:  true,
		},
		{
			name:    "higher priority rule beats column position",
			headers: []string{"Order Date", "shipping (DateOrders)"},
			want:    1,
			wantOK:  true,
		},
		{
			name:    "no date column",
			headers: []string{"Type", "Sales"},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectDateColumn(tt.headers)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

const sampleCSV = `Type, order date (DateOrders) ,Sales,Order Profit Per Order,Late_delivery_risk,Order Id,Market,Customer Segment,Order City,Category Name,Order Country,Customer Id
DEBIT,1/18/2017 12:27,327.75,91.25,0,75001,Pacific Asia,Consumer,Bekasi,Sporting Goods,Indonesia,20755
TRANSFER,1/13/2017 11:45,327.75,-249.09,1,75030,Pacific Asia,Consumer,Bikaner,Sporting Goods,India,19492
CASH,not-a-date,10.00,1.00,0,75100,Europe,Corporate,Madrid,Fishing,Spain,111
PAYMENT,1/16/2017 10:15,,,,,,,,,,
`

func TestLoad(t *testing.T) {
	orders, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, orders, 3) // the unparseable-date row is dropped

	first := orders[0]
	assert.Equal(t, time.Date(2017, 1, 18, 12, 27, 0, 0, time.UTC), first.OrderDate)
	assert.Equal(t, 327.75, first.Sales)
	assert.Equal(t, 91.25, first.Profit)
	assert.False(t, first.IsLate)
	assert.Equal(t, "75001", first.OrderID)
	assert.Equal(t, "Pacific Asia", first.Market)
	assert.Equal(t, 2017, first.Year)
	assert.Equal(t, "2017-01", first.Month)

	second := orders[1]
	assert.True(t, second.IsLate)
	assert.Equal(t, -249.09, second.Profit)

	// Empty cells coerce to defaults.
	blank := orders[2]
	assert.Zero(t, blank.Sales)
	assert.Zero(t, blank.Profit)
	assert.Equal(t, model.Unknown, blank.Market)
	assert.Equal(t, model.Unknown, blank.OrderID)
}

func TestLoad_NoDateColumn(t *testing.T) {
	_, err := Load(strings.NewReader("Type,Sales\nDEBIT,10\n"))
	require.Error(t, err)
}

func TestLoad_DerivedFieldsIdempotent(t *testing.T) {
	orders, err := Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	for i := range orders {
		before := orders[i]
		orders[i].Derive()
		assert.Equal(t, before, orders[i])
	}
}
