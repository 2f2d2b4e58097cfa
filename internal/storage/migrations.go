package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lanewatch/lanewatch/internal/common"
)

// ExpectedSchemaVersion is the latest schema version the application expects.
const ExpectedSchemaVersion = 1

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS snapshots (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					source TEXT,
					row_count INTEGER NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS orders (
					snapshot_id TEXT NOT NULL,
					order_date DATETIME NOT NULL,
					order_id TEXT NOT NULL,
					market TEXT NOT NULL,
					segment TEXT NOT NULL,
					category TEXT NOT NULL,
					city TEXT NOT NULL,
					country TEXT NOT NULL,
					customer_id TEXT NOT NULL,
					sales REAL NOT NULL,
					profit REAL NOT NULL,
					late_risk REAL NOT NULL,
					FOREIGN KEY (snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_orders_snapshot ON orders(snapshot_id)`,
				`CREATE INDEX idx_orders_date ON orders(order_date)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies any pending schema migrations.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}
		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		common.LogDebug("applied schema migration", common.Fields{"version": m.Version, "description": m.Description})
	}
	return nil
}
