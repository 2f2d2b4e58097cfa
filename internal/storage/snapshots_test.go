package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanewatch/lanewatch/internal/common"
	"github.com/lanewatch/lanewatch/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lanewatch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleOrders() []model.Order {
	orders := []model.Order{
		{
			OrderDate:  time.Date(2017, 3, 5, 0, 0, 0, 0, time.UTC),
			OrderID:    "A1",
			Market:     "Europe",
			Segment:    "Consumer",
			Category:   "Fishing",
			City:       "Berlin",
			Country:    "Germany",
			CustomerID: "C1",
			Sales:      120.50,
			Profit:     14.20,
			LateRisk:   1,
		},
		{
			OrderDate:  time.Date(2017, 4, 12, 0, 0, 0, 0, time.UTC),
			OrderID:    "A2",
			Market:     "LATAM",
			Segment:    "Corporate",
			Category:   "Cleats",
			City:       "Bogota",
			Country:    "Colombia",
			CustomerID: "C2",
			Sales:      88.00,
			Profit:     -3.50,
			LateRisk:   0,
		},
	}
	for i := range orders {
		orders[i].Derive()
	}
	return orders
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.SaveSnapshot(ctx, "q1-import", "orders.csv", sampleOrders())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := s.LoadSnapshot(ctx, id)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "A1", loaded[0].OrderID)
	assert.Equal(t, "Europe", loaded[0].Market)
	assert.InDelta(t, 120.50, loaded[0].Sales, 1e-9)

	// Derived fields come back recomputed, not stored.
	assert.True(t, loaded[0].IsLate)
	assert.Equal(t, 2017, loaded[0].Year)
	assert.Equal(t, "2017-03", loaded[0].Month)
	assert.False(t, loaded[1].IsLate)
}

func TestSaveSnapshotValidation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		snap   string
		orders []model.Order
	}{
		{name: "empty name", snap: "  ", orders: sampleOrders()},
		{name: "no orders", snap: "empty", orders: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SaveSnapshot(ctx, tt.snap, "", tt.orders)
			assert.Error(t, err)
		})
	}
}

func TestLoadSnapshotNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadSnapshot(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrSnapshotNotFound)
}

func TestLatestSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.LatestSnapshot(ctx)
	assert.ErrorIs(t, err, common.ErrSnapshotNotFound)

	_, err = s.SaveSnapshot(ctx, "first", "a.csv", sampleOrders())
	require.NoError(t, err)
	second, err := s.SaveSnapshot(ctx, "second", "b.csv", sampleOrders())
	require.NoError(t, err)

	snap, err := s.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, snap.ID)
	assert.Equal(t, "second", snap.Name)
	assert.Equal(t, 2, snap.RowCount)
}

func TestLoadLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.SaveSnapshot(ctx, "only", "a.csv", sampleOrders())
	require.NoError(t, err)

	orders, snap, err := s.LoadLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, snap.ID)
	assert.Len(t, orders, 2)
}

func TestListSnapshots(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	snaps, err := s.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Empty(t, snaps)

	_, err = s.SaveSnapshot(ctx, "first", "a.csv", sampleOrders())
	require.NoError(t, err)
	second, err := s.SaveSnapshot(ctx, "second", "b.csv", sampleOrders())
	require.NoError(t, err)

	snaps, err = s.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, second, snaps[0].ID)
}

func TestDeleteSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.SaveSnapshot(ctx, "doomed", "a.csv", sampleOrders())
	require.NoError(t, err)

	require.NoError(t, s.DeleteSnapshot(ctx, id))

	_, err = s.LoadSnapshot(ctx, id)
	assert.ErrorIs(t, err, common.ErrSnapshotNotFound)

	err = s.DeleteSnapshot(ctx, id)
	assert.ErrorIs(t, err, common.ErrSnapshotNotFound)
}
