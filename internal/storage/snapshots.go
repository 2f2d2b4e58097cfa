package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lanewatch/lanewatch/internal/common"
	"github.com/lanewatch/lanewatch/internal/model"
)

// Snapshot describes a stored dataset.
type Snapshot struct {
	CreatedAt time.Time
	ID        string
	Name      string
	Source    string
	RowCount  int
}

// SaveSnapshot persists a dataset under a new snapshot and returns its ID.
func (s *Store) SaveSnapshot(ctx context.Context, name, source string, orders []model.Order) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(name, "name"); err != nil {
		return "", err
	}
	if len(orders) == 0 {
		return "", fmt.Errorf("cannot save empty snapshot")
	}

	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, name, source, row_count) VALUES (?, ?, ?, ?)`,
		id, name, source, len(orders)); err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO orders (
		snapshot_id, order_date, order_id, market, segment, category,
		city, country, customer_id, sales, profit, late_risk
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range orders {
		o := &orders[i]
		if _, err := stmt.ExecContext(ctx,
			id, o.OrderDate, o.OrderID, o.Market, o.Segment, o.Category,
			o.City, o.Country, o.CustomerID, o.Sales, o.Profit, o.LateRisk); err != nil {
			return "", fmt.Errorf("failed to insert order row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit snapshot: %w", err)
	}

	common.LogInfo("saved snapshot", common.Fields{"id": id, "name": name, "rows": len(orders)})
	return id, nil
}

// LoadSnapshot returns all orders stored under a snapshot ID. Derived
// fields are recomputed on the way out.
func (s *Store) LoadSnapshot(ctx context.Context, id string) ([]model.Order, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check snapshot: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("snapshot %s: %w", id, common.ErrSnapshotNotFound)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT
		order_date, order_id, market, segment, category,
		city, country, customer_id, sales, profit, late_risk
	FROM orders WHERE snapshot_id = ? ORDER BY order_date, order_id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.OrderDate, &o.OrderID, &o.Market, &o.Segment, &o.Category,
			&o.City, &o.Country, &o.CustomerID, &o.Sales, &o.Profit, &o.LateRisk); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		o.Derive()
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}
	return orders, nil
}

// LatestSnapshot returns the most recently created snapshot.
func (s *Store) LatestSnapshot(ctx context.Context) (*Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var snap Snapshot
	err := s.db.QueryRowContext(ctx, `SELECT id, name, COALESCE(source, ''), row_count, created_at
		FROM snapshots ORDER BY created_at DESC, rowid DESC LIMIT 1`).Scan(
		&snap.ID, &snap.Name, &snap.Source, &snap.RowCount, &snap.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest snapshot: %w", err)
	}
	return &snap, nil
}

// LoadLatest loads the orders of the most recent snapshot.
func (s *Store) LoadLatest(ctx context.Context) ([]model.Order, *Snapshot, error) {
	snap, err := s.LatestSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	orders, err := s.LoadSnapshot(ctx, snap.ID)
	if err != nil {
		return nil, nil, err
	}
	return orders, snap, nil
}

// ListSnapshots returns all snapshots, newest first.
func (s *Store) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, COALESCE(source, ''), row_count, created_at
		FROM snapshots ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.Source, &snap.RowCount, &snap.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	return snaps, nil
}

// DeleteSnapshot removes a snapshot and its orders.
func (s *Store) DeleteSnapshot(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("snapshot %s: %w", id, common.ErrSnapshotNotFound)
	}

	common.LogInfo("deleted snapshot", common.Fields{"id": id})
	return nil
}
